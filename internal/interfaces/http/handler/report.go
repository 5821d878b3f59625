package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/shriramlogistics/backend/internal/application/report"
	"github.com/shriramlogistics/backend/internal/domain/printing"
)

const dateParam = "2006-01-02"

// ReportHandler handles period report and monthly statement endpoints
type ReportHandler struct {
	BaseHandler
	statementService *reportapp.StatementService
	documentService  *reportapp.DocumentService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(statementService *reportapp.StatementService, documentService *reportapp.DocumentService) *ReportHandler {
	return &ReportHandler{
		statementService: statementService,
		documentService:  documentService,
	}
}

// RegisterRoutes registers report and statement routes on the given group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/invoices/pdf", h.PeriodReportPDF)
		reports.GET("/invoices/xlsx", h.PeriodReportXLSX)
	}

	statements := rg.Group("/statements")
	{
		statements.GET("/monthly", h.MonthlyStatement)
		statements.GET("/monthly/pdf", h.MonthlyStatementPDF)
	}
}

// PeriodReportPDF renders the landscape invoice report for a date range
func (h *ReportHandler) PeriodReportPDF(c *gin.Context) {
	h.periodReport(c, printing.DocFormatPDF)
}

// PeriodReportXLSX renders the item-level spreadsheet report for a date range
func (h *ReportHandler) PeriodReportXLSX(c *gin.Context) {
	h.periodReport(c, printing.DocFormatXLSX)
}

func (h *ReportHandler) periodReport(c *gin.Context, format printing.DocFormat) {
	start, end, ok := h.bindDateRange(c)
	if !ok {
		return
	}

	result, err := h.documentService.RenderPeriodReport(c.Request.Context(), start, end, format)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	serveDocument(c, result)
}

// MonthlyStatement returns the JSON statement for a calendar month
func (h *ReportHandler) MonthlyStatement(c *gin.Context) {
	year, month, ok := h.bindYearMonth(c)
	if !ok {
		return
	}

	statement, err := h.statementService.MonthlyStatement(c.Request.Context(), year, month)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}

// MonthlyStatementPDF renders the landscape statement PDF for a calendar month
func (h *ReportHandler) MonthlyStatementPDF(c *gin.Context) {
	year, month, ok := h.bindYearMonth(c)
	if !ok {
		return
	}

	result, err := h.documentService.RenderMonthlyStatement(c.Request.Context(), year, month)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	serveDocumentInline(c, result)
}

func (h *ReportHandler) bindDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		h.BadRequest(c, "start_date and end_date are required (YYYY-MM-DD)")
		return
	}

	start, err := time.Parse(dateParam, startStr)
	if err != nil {
		h.BadRequest(c, "Invalid start_date format, expected YYYY-MM-DD")
		return
	}
	end, err = time.Parse(dateParam, endStr)
	if err != nil {
		h.BadRequest(c, "Invalid end_date format, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		h.BadRequest(c, "end_date must not be before start_date")
		return
	}

	return start, end, true
}

// bindYearMonth parses year/month query parameters, falling back to the
// current calendar month when both are absent.
func (h *ReportHandler) bindYearMonth(c *gin.Context) (year, month int, ok bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		h.BadRequest(c, "Invalid or missing year")
		return
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.BadRequest(c, "Invalid or missing month (1-12)")
		return
	}

	return year, month, true
}
