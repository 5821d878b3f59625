package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/domain/printing"
	"github.com/shriramlogistics/backend/internal/domain/shared"
	"github.com/shriramlogistics/backend/internal/infrastructure/export"
	infra "github.com/shriramlogistics/backend/internal/infrastructure/printing"
)

// DocumentService turns invoices and period aggregates into downloadable
// PDF and spreadsheet documents.
type DocumentService struct {
	invoiceRepo    billing.InvoiceRepository
	statements     *StatementService
	templateEngine *infra.TemplateEngine
	pdfRenderer    infra.PDFRenderer
	excel          *export.ExcelExporter
	logger         *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	invoiceRepo billing.InvoiceRepository,
	statements *StatementService,
	templateEngine *infra.TemplateEngine,
	pdfRenderer infra.PDFRenderer,
	excel *export.ExcelExporter,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		invoiceRepo:    invoiceRepo,
		statements:     statements,
		templateEngine: templateEngine,
		pdfRenderer:    pdfRenderer,
		excel:          excel,
		logger:         logger,
	}
}

// RenderInvoiceDocument produces a single-invoice document in the
// requested format and template variant.
func (s *DocumentService) RenderInvoiceDocument(ctx context.Context, invoiceID uuid.UUID, variant printing.InvoiceVariant, format printing.DocFormat) (*DocumentResult, error) {
	if !variant.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid invoice variant")
	}
	if !format.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid document format")
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if format == printing.DocFormatXLSX {
		data, err := s.excel.SingleInvoice(invoice)
		if err != nil {
			return nil, err
		}
		return &DocumentResult{
			Data:        data,
			ContentType: format.ContentType(),
			Filename:    invoice.InvoiceNo + format.Extension(),
		}, nil
	}

	var (
		templateName = infra.TemplateForVariant(variant)
		viewModel    interface{}
	)
	if variant == printing.VariantCompact {
		viewModel = infra.BuildCompactInvoice(invoice)
	} else {
		viewModel = infra.BuildDetailedInvoice(invoice)
	}

	data, err := s.renderPDF(ctx, templateName, viewModel, printing.InvoicePageSetup(), invoice.InvoiceNo)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice document rendered",
		zap.String("invoice_no", invoice.InvoiceNo),
		zap.String("variant", string(variant)),
		zap.Int("bytes", len(data)))

	return &DocumentResult{
		Data:        data,
		ContentType: format.ContentType(),
		Filename:    invoice.InvoiceNo + format.Extension(),
	}, nil
}

// RenderPeriodReport produces a date-range report. The PDF lists one row
// per invoice; the spreadsheet export is item-level.
func (s *DocumentService) RenderPeriodReport(ctx context.Context, start, end time.Time, format printing.DocFormat) (*DocumentResult, error) {
	if !format.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid document format")
	}

	invoices, err := s.invoiceRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("invoice-report-%s-to-%s%s",
		start.Format("2006-01-02"), end.Format("2006-01-02"), format.Extension())

	if format == printing.DocFormatXLSX {
		data, err := s.excel.PeriodReport(invoices)
		if err != nil {
			return nil, err
		}
		return &DocumentResult{Data: data, ContentType: format.ContentType(), Filename: filename}, nil
	}

	viewModel := infra.BuildPeriodReport(invoices, start, end)
	data, err := s.renderPDF(ctx, infra.TemplateReport, viewModel, printing.ReportPageSetup(), viewModel.Title)
	if err != nil {
		return nil, err
	}

	return &DocumentResult{Data: data, ContentType: format.ContentType(), Filename: filename}, nil
}

// RenderMonthlyStatement produces the landscape statement PDF for a
// calendar month.
func (s *DocumentService) RenderMonthlyStatement(ctx context.Context, year, month int) (*DocumentResult, error) {
	stmt, err := s.statements.monthlyStatement(ctx, year, month)
	if err != nil {
		return nil, err
	}

	viewModel := infra.BuildMonthlyStatementDocument(stmt)
	data, err := s.renderPDF(ctx, infra.TemplateReport, viewModel, printing.ReportPageSetup(), viewModel.Title)
	if err != nil {
		return nil, err
	}

	format := printing.DocFormatPDF
	return &DocumentResult{
		Data:        data,
		ContentType: format.ContentType(),
		Filename:    fmt.Sprintf("monthly-statement-%04d-%02d%s", year, month, format.Extension()),
	}, nil
}

func (s *DocumentService) renderPDF(ctx context.Context, templateName string, viewModel interface{}, setup printing.PageSetup, title string) ([]byte, error) {
	html, err := s.templateEngine.RenderDocument(templateName, viewModel)
	if err != nil {
		return nil, err
	}

	result, err := s.pdfRenderer.Render(ctx, &infra.RenderRequest{
		HTML:        html,
		PaperSize:   setup.PaperSize,
		Orientation: setup.Orientation,
		Margins:     setup.Margins,
		Title:       title,
	})
	if err != nil {
		return nil, err
	}

	return result.PDFData, nil
}
