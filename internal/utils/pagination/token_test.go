package pagination

import (
	"testing"
	"time"

	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTransactionCursor(t *testing.T) {
	cursor := domain.TransactionCursor{OccurredOn: domain.NewDate(2024, time.March, 10), TransactionID: 12345}

	token := EncodeTransactionCursor(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeTransactionCursor(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, *decoded)
}

func TestDecodeTransactionCursorError(t *testing.T) {
	// Test invalid base64
	_, err := DecodeTransactionCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, err = DecodeTransactionCursor(EncodeMultiFieldToken("2024-03-10"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Test invalid date
	_, err = DecodeTransactionCursor(EncodeMultiFieldToken("10/03/2024", "1"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	// Test invalid id
	_, err = DecodeTransactionCursor(EncodeMultiFieldToken("2024-03-10", "abc"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
