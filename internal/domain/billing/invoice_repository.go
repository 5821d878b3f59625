package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

// InvoiceRepository defines the interface for invoice persistence.
// Implementations must load and save an invoice together with its full
// item list; saving replaces the stored item set wholesale.
type InvoiceRepository interface {
	// FindByID finds an invoice with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByInvoiceNo finds an invoice by its business key
	FindByInvoiceNo(ctx context.Context, invoiceNo string) (*Invoice, error)

	// FindByDateRange finds invoices dated within [start, end], inclusive,
	// ordered by invoice date then invoice number
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*Invoice, error)

	// FindByYearMonth finds invoices dated in the given calendar month
	FindByYearMonth(ctx context.Context, year, month int) ([]*Invoice, error)

	// FindLatest returns the most recently created invoice, or nil when
	// no invoices exist
	FindLatest(ctx context.Context) (*Invoice, error)

	// Search finds invoices whose invoice number, party name, or any item
	// LR number matches the query
	Search(ctx context.Context, query string, filter shared.Filter) ([]*Invoice, error)

	// FindAll finds all invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]*Invoice, error)

	// Save creates or updates an invoice and replaces its items
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
