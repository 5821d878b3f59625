package report

import (
	"github.com/shopspring/decimal"

	appbilling "github.com/shriramlogistics/backend/internal/application/billing"
	"github.com/shriramlogistics/backend/internal/domain/billing"
)

// MonthlyStatementResponse represents a monthly statement in API responses
type MonthlyStatementResponse struct {
	Year         int                          `json:"year"`
	Month        int                          `json:"month"`
	MonthName    string                       `json:"month_name"`
	InvoiceCount int                          `json:"invoice_count"`
	TotalAmount  decimal.Decimal              `json:"total_amount"`
	Invoices     []appbilling.InvoiceResponse `json:"invoices"`
}

// ToMonthlyStatementResponse converts a domain statement to a response DTO
func ToMonthlyStatementResponse(stmt *billing.MonthlyStatement) MonthlyStatementResponse {
	return MonthlyStatementResponse{
		Year:         stmt.Year,
		Month:        stmt.Month,
		MonthName:    stmt.MonthName,
		InvoiceCount: stmt.InvoiceCount,
		TotalAmount:  stmt.TotalAmount,
		Invoices:     appbilling.ToInvoiceResponses(stmt.Invoices),
	}
}

// DocumentResult carries a generated document for download
type DocumentResult struct {
	Data        []byte
	ContentType string
	Filename    string
}
