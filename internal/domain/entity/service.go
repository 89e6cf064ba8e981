package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Service is one treatment offered by the clinic
type Service struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"` // minutes
	Price       decimal.Decimal `json:"price"`
	Icon        string          `json:"icon"`
}

// DisplayPrice renders the price the way the catalog shows it, e.g. "$85"
func (s *Service) DisplayPrice() string {
	return FormatDollars(s.Price)
}

// FormatDollars renders whole dollars with thousands separators, e.g. "$9,482"
func FormatDollars(amount decimal.Decimal) string {
	digits := amount.Abs().StringFixedBank(0)

	var b strings.Builder
	if amount.IsNegative() && digits != "0" {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
