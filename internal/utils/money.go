package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const brlPrefix = "R$"

// thousandsGrouped matches integers written with "." thousands separators
// ("2.500", "1.000.000").
var thousandsGrouped = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseBRLAmount parses an amount typed the Brazilian way. It accepts an
// optional "R$" prefix, "." as thousands separator and "," as decimal
// separator ("1.234,56", "1234,56", "2.500"). Without a comma, a "." is a
// thousands separator when every group after it has three digits; otherwise
// a single "." is read as the decimal point ("1234.56", "0.5").
func ParseBRLAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, brlPrefix))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	normalized := raw
	switch {
	case strings.Contains(raw, ","):
		normalized = strings.ReplaceAll(raw, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	case thousandsGrouped.MatchString(raw):
		normalized = strings.ReplaceAll(raw, ".", "")
	case strings.Count(raw, ".") > 1:
		return decimal.Zero, fmt.Errorf("invalid amount %q: misplaced thousands separator", s)
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// FormatBRL renders amount as "R$ 1.234,56". Negative amounts get a leading
// minus sign.
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	return fmt.Sprintf("%s%s %s,%s", sign, brlPrefix, sb.String(), frac)
}
