package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/printing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
	"github.com/shriramlogistics/backend/internal/infrastructure/export"
	infra "github.com/shriramlogistics/backend/internal/infrastructure/printing"
)

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByInvoiceNo(ctx context.Context, invoiceNo string) (*billing.Invoice, error) {
	args := m.Called(ctx, invoiceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*billing.Invoice, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByYearMonth(ctx context.Context, year, month int) ([]*billing.Invoice, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLatest(ctx context.Context) (*billing.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Search(ctx context.Context, query string, filter shared.Filter) ([]*billing.Invoice, error) {
	args := m.Called(ctx, query, filter)
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*billing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPDFRenderer is a mock implementation of infra.PDFRenderer
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(ctx context.Context, req *infra.RenderRequest) (*infra.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infra.RenderResult), args.Error(1)
}

func (m *MockPDFRenderer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func reportInvoice(t *testing.T, no string, amount float64) *billing.Invoice {
	t.Helper()

	inv, err := billing.NewInvoice(no)
	require.NoError(t, err)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	inv.InvoiceDate = &date
	inv.SetParty(nil, "Acme Traders", "12 Market Road", "33AAACA1234A1Z5")
	require.NoError(t, inv.ReplaceItems([]billing.InvoiceItem{
		{LRNo: "LR101", FromLocation: "Chennai", ToLocation: "Bangalore", Amount: decimal.NewFromFloat(amount)},
	}))
	total := decimal.NewFromFloat(amount)
	require.NoError(t, inv.SetTotal(&total))

	return inv
}

func newDocumentService(t *testing.T, invoiceRepo *MockInvoiceRepository, renderer *MockPDFRenderer) *DocumentService {
	t.Helper()

	engine, err := infra.NewTemplateEngine()
	require.NoError(t, err)

	return NewDocumentService(
		invoiceRepo,
		NewStatementService(invoiceRepo),
		engine,
		renderer,
		export.NewExcelExporter(),
		nil,
	)
}

func TestRenderInvoiceDocumentPDF(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	service := newDocumentService(t, invoiceRepo, renderer)

	inv := reportInvoice(t, "INV0042", 4500)
	invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	renderer.On("Render", mock.Anything, mock.MatchedBy(func(req *infra.RenderRequest) bool {
		return req.PaperSize == printing.PaperSizeA4 &&
			req.Orientation == printing.OrientationPortrait &&
			req.HTML != ""
	})).Return(&infra.RenderResult{PDFData: []byte("%PDF-1.4 test")}, nil)

	result, err := service.RenderInvoiceDocument(context.Background(), inv.ID, printing.VariantDetailed, printing.DocFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "INV0042.pdf", result.Filename)
	assert.Equal(t, []byte("%PDF-1.4 test"), result.Data)
	renderer.AssertExpectations(t)
}

func TestRenderInvoiceDocumentXLSX(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	service := newDocumentService(t, invoiceRepo, renderer)

	inv := reportInvoice(t, "INV0042", 4500)
	invoiceRepo.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)

	result, err := service.RenderInvoiceDocument(context.Background(), inv.ID, printing.VariantDetailed, printing.DocFormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "INV0042.xlsx", result.Filename)
	assert.NotEmpty(t, result.Data)
	// The spreadsheet path never touches the PDF renderer.
	renderer.AssertNotCalled(t, "Render")
}

func TestRenderInvoiceDocumentValidation(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	service := newDocumentService(t, invoiceRepo, new(MockPDFRenderer))

	t.Run("invalid variant", func(t *testing.T) {
		_, err := service.RenderInvoiceDocument(context.Background(), uuid.New(), printing.InvoiceVariant("FANCY"), printing.DocFormatPDF)
		require.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := service.RenderInvoiceDocument(context.Background(), uuid.New(), printing.VariantDetailed, printing.DocFormat("DOCX"))
		require.Error(t, err)
	})

	t.Run("invoice not found", func(t *testing.T) {
		missing := uuid.New()
		invoiceRepo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

		_, err := service.RenderInvoiceDocument(context.Background(), missing, printing.VariantDetailed, printing.DocFormatPDF)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestRenderPeriodReport(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("PDF is landscape", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockPDFRenderer)
		service := newDocumentService(t, invoiceRepo, renderer)

		invoiceRepo.On("FindByDateRange", mock.Anything, start, end).
			Return([]*billing.Invoice{reportInvoice(t, "INV0042", 4500)}, nil)
		renderer.On("Render", mock.Anything, mock.MatchedBy(func(req *infra.RenderRequest) bool {
			return req.Orientation == printing.OrientationLandscape
		})).Return(&infra.RenderResult{PDFData: []byte("%PDF")}, nil)

		result, err := service.RenderPeriodReport(context.Background(), start, end, printing.DocFormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "invoice-report-2024-03-01-to-2024-03-31.pdf", result.Filename)
	})

	t.Run("XLSX export", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		renderer := new(MockPDFRenderer)
		service := newDocumentService(t, invoiceRepo, renderer)

		invoiceRepo.On("FindByDateRange", mock.Anything, start, end).
			Return([]*billing.Invoice{reportInvoice(t, "INV0042", 4500)}, nil)

		result, err := service.RenderPeriodReport(context.Background(), start, end, printing.DocFormatXLSX)
		require.NoError(t, err)
		assert.Equal(t, "invoice-report-2024-03-01-to-2024-03-31.xlsx", result.Filename)
		assert.NotEmpty(t, result.Data)
	})
}

func TestRenderMonthlyStatement(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	service := newDocumentService(t, invoiceRepo, renderer)

	invoiceRepo.On("FindByYearMonth", mock.Anything, 2024, 3).
		Return([]*billing.Invoice{reportInvoice(t, "INV0042", 4500)}, nil)
	renderer.On("Render", mock.Anything, mock.MatchedBy(func(req *infra.RenderRequest) bool {
		return req.Orientation == printing.OrientationLandscape && req.Title == "MONTHLY STATEMENT - MARCH 2024"
	})).Return(&infra.RenderResult{PDFData: []byte("%PDF")}, nil)

	result, err := service.RenderMonthlyStatement(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, "monthly-statement-2024-03.pdf", result.Filename)
}

func TestMonthlyStatementService(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	service := NewStatementService(invoiceRepo)

	t.Run("aggregates stored totals", func(t *testing.T) {
		inv1 := reportInvoice(t, "INV0042", 100)
		inv2 := reportInvoice(t, "INV0043", 250.50)
		invoiceRepo.On("FindByYearMonth", mock.Anything, 2024, 3).
			Return([]*billing.Invoice{inv1, inv2}, nil)

		stmt, err := service.MonthlyStatement(context.Background(), 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, stmt.InvoiceCount)
		assert.Equal(t, "March", stmt.MonthName)
		assert.True(t, decimal.NewFromFloat(350.50).Equal(stmt.TotalAmount))
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := service.MonthlyStatement(context.Background(), 2024, 13)
		require.Error(t, err)
	})
}
