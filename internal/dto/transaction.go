package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/fin_assist/internal/apperrors"
	"github.com/SscSPs/fin_assist/internal/core/domain"
	"github.com/SscSPs/fin_assist/internal/utils"
	"github.com/SscSPs/fin_assist/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Kind     string  `json:"kind" binding:"required,oneof=INCOME EXPENSE income expense"`
	Amount   string  `json:"amount" binding:"required,brlamount" example:"1.234,56"`
	Date     string  `json:"date" binding:"required" example:"10/03/2024"`
	Category string  `json:"category" binding:"required,max=50"`
	Note     *string `json:"note,omitempty" binding:"omitempty,max=100"`
}

// ToDomain parses the textual fields. Dates after today (as seen by now) are
// rejected.
func (r CreateTransactionRequest) ToDomain(now time.Time) (domain.NewTransaction, error) {
	kind, err := domain.ParseTransactionKind(r.Kind)
	if err != nil {
		return domain.NewTransaction{}, err
	}
	amount, err := utils.ParseBRLAmount(r.Amount)
	if err != nil {
		return domain.NewTransaction{}, apperrors.NewValidationError("amount", err.Error())
	}
	date, err := utils.ParseDate(r.Date)
	if err != nil {
		return domain.NewTransaction{}, apperrors.NewValidationError("date", err.Error())
	}
	if utils.IsFutureDate(date, now) {
		return domain.NewTransaction{}, apperrors.NewValidationError("date", "must not be in the future")
	}
	return domain.NewTransaction{
		Kind:       kind,
		Amount:     amount,
		OccurredOn: date,
		Category:   r.Category,
		Note:       r.Note,
	}, nil
}

// ListTransactionsParams defines the query parameters of a ledger listing.
type ListTransactionsParams struct {
	Kind      string `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE income expense"`
	Category  string `form:"category"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ToFilter converts the query into a ledger filter. When a limit is given the
// filter asks for one extra row so the handler can tell whether a next page exists.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	if p.Kind != "" {
		kind, err := domain.ParseTransactionKind(p.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &kind
	}
	if p.Category != "" {
		filter.Category = domain.Ptr(p.Category)
	}
	if p.DateFrom != "" {
		from, err := utils.ParseDate(p.DateFrom)
		if err != nil {
			return filter, apperrors.NewValidationError("dateFrom", err.Error())
		}
		filter.DateFrom = &from
	}
	if p.DateTo != "" {
		to, err := utils.ParseDate(p.DateTo)
		if err != nil {
			return filter, apperrors.NewValidationError("dateTo", err.Error())
		}
		filter.DateTo = &to
	}
	if p.NextToken != "" {
		cursor, err := pagination.DecodeTransactionCursor(p.NextToken)
		if err != nil {
			return filter, apperrors.NewValidationError("nextToken", fmt.Sprintf("invalid token: %v", err))
		}
		filter.After = cursor
	}
	if p.Limit > 0 {
		filter.Limit = p.Limit + 1
	}
	return filter, nil
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID   int64           `json:"transactionID"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	Date            string          `json:"date"`
	DateFormatted   string          `json:"dateFormatted"`
	Category        string          `json:"category"`
	CategoryColor   string          `json:"categoryColor"`
	Note            *string         `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is one page of the ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Kind:            string(t.Kind),
		Amount:          t.Amount,
		AmountFormatted: utils.FormatBRL(t.Amount),
		Date:            t.OccurredOn.Format(domain.DateLayout),
		DateFormatted:   utils.FormatDateBR(t.OccurredOn),
		Category:        t.Category,
		CategoryColor:   utils.CategoryColor(t.Category),
		Note:            t.Note,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ToListTransactionsResponse trims the probe row fetched beyond limit and
// turns the last row of the page into the next token.
func ToListTransactionsResponse(txns []domain.Transaction, limit int) ListTransactionsResponse {
	var next string
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		next = pagination.EncodeTransactionCursor(domain.TransactionCursor{
			OccurredOn:    last.OccurredOn,
			TransactionID: last.TransactionID,
		})
	}
	return ListTransactionsResponse{
		Transactions: ToTransactionResponses(txns),
		NextToken:    next,
	}
}
