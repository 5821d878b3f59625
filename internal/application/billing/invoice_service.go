package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
)

const dateParam = "2006-01-02"

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  billing.ClientRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, clientRepo billing.ClientRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// Create creates a new invoice with its items
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	existing, err := s.invoiceRepo.FindByInvoiceNo(ctx, req.InvoiceNo)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
	}

	invoice, err := billing.NewInvoice(req.InvoiceNo)
	if err != nil {
		return nil, err
	}

	invoice.InvoiceDate = req.InvoiceDate

	if err := s.applyParty(ctx, invoice, req.ClientID, req.PartyName, req.PartyAddress, req.PartyGST); err != nil {
		return nil, err
	}

	if err := invoice.SetCharges(req.HaltingCharges, req.LoadingCharges, req.UnloadingCharges); err != nil {
		return nil, err
	}
	if err := invoice.SetTotal(req.TotalAmount); err != nil {
		return nil, err
	}
	invoice.AmountInWords = req.AmountInWords
	invoice.Remarks = req.Remarks

	if len(req.Items) > 0 {
		if err := invoice.ReplaceItems(toDomainItems(req.Items)); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice with its items by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByInvoiceNo retrieves an invoice by its business key
func (s *InvoiceService) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination. When both
// start_date and end_date are given the date range constrains the result
// instead of the paginated listing.
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	if filter.StartDate != "" && filter.EndDate != "" {
		start, end, err := parseDateRange(filter.StartDate, filter.EndDate)
		if err != nil {
			return nil, 0, err
		}
		invoices, err := s.invoiceRepo.FindByDateRange(ctx, start, end)
		if err != nil {
			return nil, 0, err
		}
		return ToInvoiceResponses(invoices), int64(len(invoices)), nil
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// Search retrieves invoices matching the query by invoice number, party
// name, or item LR number
func (s *InvoiceService) Search(ctx context.Context, query string, filter InvoiceListFilter) ([]InvoiceResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}

	invoices, err := s.invoiceRepo.Search(ctx, query, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponses(invoices), nil
}

// Update updates an invoice; a non-nil item list replaces all items
func (s *InvoiceService) Update(ctx context.Context, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNo != nil && *req.InvoiceNo != invoice.InvoiceNo {
		existing, err := s.invoiceRepo.FindByInvoiceNo(ctx, *req.InvoiceNo)
		if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
		}
		if err := invoice.SetInvoiceNo(*req.InvoiceNo); err != nil {
			return nil, err
		}
	}

	if req.InvoiceDate != nil {
		invoice.InvoiceDate = req.InvoiceDate
	}

	if req.ClientID != nil || req.PartyName != nil || req.PartyAddress != nil || req.PartyGST != nil {
		partyID := invoice.PartyID
		name := invoice.PartyName
		address := invoice.PartyAddress
		gst := invoice.PartyGST

		if req.ClientID != nil {
			partyID = req.ClientID
		}
		if req.PartyName != nil {
			name = *req.PartyName
		}
		if req.PartyAddress != nil {
			address = *req.PartyAddress
		}
		if req.PartyGST != nil {
			gst = *req.PartyGST
		}

		// A newly attached client with no explicit snapshot fields gets a
		// fresh snapshot of the client record.
		if req.ClientID != nil && req.PartyName == nil && req.PartyAddress == nil && req.PartyGST == nil {
			if err := s.applyParty(ctx, invoice, req.ClientID, "", "", ""); err != nil {
				return nil, err
			}
		} else {
			invoice.SetParty(partyID, name, address, gst)
		}
	}

	if req.HaltingCharges != nil || req.LoadingCharges != nil || req.UnloadingCharges != nil {
		halting := invoice.HaltingCharges
		loading := invoice.LoadingCharges
		unloading := invoice.UnloadingCharges
		if req.HaltingCharges != nil {
			halting = *req.HaltingCharges
		}
		if req.LoadingCharges != nil {
			loading = *req.LoadingCharges
		}
		if req.UnloadingCharges != nil {
			unloading = *req.UnloadingCharges
		}
		if err := invoice.SetCharges(halting, loading, unloading); err != nil {
			return nil, err
		}
	}

	if req.TotalAmount != nil {
		if err := invoice.SetTotal(req.TotalAmount); err != nil {
			return nil, err
		}
	}
	if req.AmountInWords != nil {
		invoice.AmountInWords = *req.AmountInWords
	}
	if req.Remarks != nil {
		invoice.Remarks = *req.Remarks
	}

	if req.Items != nil {
		if err := invoice.ReplaceItems(toDomainItems(req.Items)); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete deletes an invoice and its items
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

// NextInvoiceNumber suggests the next invoice number from the most
// recently created invoice. The suggestion is advisory only; uniqueness
// is enforced by the invoice number's unique index on save.
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	latest, err := s.invoiceRepo.FindLatest(ctx)
	if err != nil {
		return "", err
	}

	if latest == nil {
		return billing.NextInvoiceNumber(""), nil
	}
	return billing.NextInvoiceNumber(latest.InvoiceNo), nil
}

// applyParty attaches a party to the invoice. When a client ID is given
// with blank snapshot fields, the snapshot is taken from the client record.
func (s *InvoiceService) applyParty(ctx context.Context, invoice *billing.Invoice, clientID *uuid.UUID, name, address, gst string) error {
	if clientID != nil && name == "" && address == "" && gst == "" {
		client, err := s.clientRepo.FindByID(ctx, *clientID)
		if err != nil {
			return err
		}
		invoice.SetParty(clientID, client.Name, client.Address, client.GSTNumber)
		return nil
	}

	if clientID != nil || name != "" || address != "" || gst != "" {
		invoice.SetParty(clientID, name, address, gst)
	}
	return nil
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateParam, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "start_date must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateParam, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "end_date must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, shared.NewDomainError("INVALID_INPUT", "end_date must not be before start_date")
	}
	return start, end, nil
}
