package billing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// MonthlyStatement summarizes all invoices issued in one calendar month.
// It is derived on demand from invoice records and never persisted.
type MonthlyStatement struct {
	Year         int
	Month        int
	MonthName    string
	InvoiceCount int
	TotalAmount  decimal.Decimal
	Invoices     []*Invoice
}

// BuildMonthlyStatement assembles a statement from the invoices of the
// given month. Invoices without a stored total contribute zero to the
// statement total; the item-sum fallback applies to document rendering,
// not to statement aggregation.
func BuildMonthlyStatement(year, month int, invoices []*Invoice) (*MonthlyStatement, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	total := decimal.Zero
	for _, inv := range invoices {
		if inv.TotalAmount != nil {
			total = total.Add(*inv.TotalAmount)
		}
	}

	return &MonthlyStatement{
		Year:         year,
		Month:        month,
		MonthName:    time.Month(month).String(),
		InvoiceCount: len(invoices),
		TotalAmount:  total,
		Invoices:     invoices,
	}, nil
}
