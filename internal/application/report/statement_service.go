package report

import (
	"context"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// StatementService aggregates invoices into period summaries
type StatementService struct {
	invoiceRepo billing.InvoiceRepository
}

// NewStatementService creates a new StatementService
func NewStatementService(invoiceRepo billing.InvoiceRepository) *StatementService {
	return &StatementService{
		invoiceRepo: invoiceRepo,
	}
}

// MonthlyStatement computes the statement for a calendar month: invoice
// count, decimal sum of stored invoice totals, and the invoices in
// chronological order.
func (s *StatementService) MonthlyStatement(ctx context.Context, year, month int) (*MonthlyStatementResponse, error) {
	stmt, err := s.monthlyStatement(ctx, year, month)
	if err != nil {
		return nil, err
	}

	response := ToMonthlyStatementResponse(stmt)
	return &response, nil
}

func (s *StatementService) monthlyStatement(ctx context.Context, year, month int) (*billing.MonthlyStatement, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Month must be between 1 and 12")
	}

	invoices, err := s.invoiceRepo.FindByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return billing.BuildMonthlyStatement(year, month, invoices)
}
