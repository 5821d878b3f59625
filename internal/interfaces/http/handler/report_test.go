package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reportapp "github.com/shriramlogistics/backend/internal/application/report"
	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/infrastructure/export"
	infra "github.com/shriramlogistics/backend/internal/infrastructure/printing"
)

func setupReportHandler(t *testing.T, invoiceRepo *MockInvoiceRepository, renderer *MockPDFRenderer) *ReportHandler {
	t.Helper()

	engine, err := infra.NewTemplateEngine()
	require.NoError(t, err)

	statementService := reportapp.NewStatementService(invoiceRepo)
	documentService := reportapp.NewDocumentService(
		invoiceRepo,
		statementService,
		engine,
		renderer,
		export.NewExcelExporter(),
		nil,
	)
	return NewReportHandler(statementService, documentService)
}

func TestReportHandler_MonthlyStatement(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	handler := setupReportHandler(t, invoiceRepo, new(MockPDFRenderer))

	inv := createTestInvoice(t)
	total := decimal.NewFromInt(4500)
	require.NoError(t, inv.SetTotal(&total))
	invoiceRepo.On("FindByYearMonth", mock.Anything, 2024, 3).
		Return([]*billing.Invoice{inv}, nil)

	router := setupTestRouter()
	router.GET("/statements/monthly", handler.MonthlyStatement)

	req := httptest.NewRequest(http.MethodGet, "/statements/monthly?year=2024&month=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"month_name":"March"`)
	assert.Contains(t, w.Body.String(), `"invoice_count":1`)
}

func TestReportHandler_MonthlyStatement_InvalidMonth(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	handler := setupReportHandler(t, invoiceRepo, new(MockPDFRenderer))

	router := setupTestRouter()
	router.GET("/statements/monthly", handler.MonthlyStatement)

	req := httptest.NewRequest(http.MethodGet, "/statements/monthly?year=2024&month=13", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invoiceRepo.AssertNotCalled(t, "FindByYearMonth")
}

func TestReportHandler_MonthlyStatementPDF(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	handler := setupReportHandler(t, invoiceRepo, renderer)

	invoiceRepo.On("FindByYearMonth", mock.Anything, 2024, 3).
		Return([]*billing.Invoice{createTestInvoice(t)}, nil)
	renderer.On("Render", mock.Anything, mock.AnythingOfType("*printing.RenderRequest")).
		Return(&infra.RenderResult{PDFData: []byte("%PDF-1.4")}, nil)

	router := setupTestRouter()
	router.GET("/statements/monthly/pdf", handler.MonthlyStatementPDF)

	req := httptest.NewRequest(http.MethodGet, "/statements/monthly/pdf?year=2024&month=3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `inline; filename="monthly-statement-2024-03.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestReportHandler_PeriodReportPDF_MissingRange(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	handler := setupReportHandler(t, invoiceRepo, new(MockPDFRenderer))

	router := setupTestRouter()
	router.GET("/reports/invoices/pdf", handler.PeriodReportPDF)

	req := httptest.NewRequest(http.MethodGet, "/reports/invoices/pdf?start_date=2024-03-01", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	invoiceRepo.AssertNotCalled(t, "FindByDateRange")
}

func TestReportHandler_PeriodReportXLSX(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	renderer := new(MockPDFRenderer)
	handler := setupReportHandler(t, invoiceRepo, renderer)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	invoiceRepo.On("FindByDateRange", mock.Anything, start, end).
		Return([]*billing.Invoice{createTestInvoice(t)}, nil)

	router := setupTestRouter()
	router.GET("/reports/invoices/xlsx", handler.PeriodReportXLSX)

	req := httptest.NewRequest(http.MethodGet, "/reports/invoices/xlsx?start_date=2024-03-01&end_date=2024-03-31", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="invoice-report-2024-03-01-to-2024-03-31.xlsx"`, w.Header().Get("Content-Disposition"))
	renderer.AssertNotCalled(t, "Render")
}
