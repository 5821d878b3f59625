package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/shriramlogistics/backend/internal/application/billing"
	reportapp "github.com/shriramlogistics/backend/internal/application/report"
	"github.com/shriramlogistics/backend/internal/domain/printing"
	"github.com/shriramlogistics/backend/internal/interfaces/http/middleware"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService  *billingapp.InvoiceService
	documentService *reportapp.DocumentService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService, documentService *reportapp.DocumentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
	}
}

// RegisterRoutes registers invoice routes on the given group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/search", h.Search)
		invoices.GET("/next-number", h.NextNumber)
		invoices.GET("/:id", h.GetByID)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
		invoices.GET("/:id/pdf", h.DownloadPDF)
		invoices.GET("/:id/xlsx", h.DownloadXLSX)
	}
}

// Create creates a new invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billingapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invoice)
}

// GetByID retrieves an invoice by its ID
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List retrieves a paginated list of invoices, optionally restricted
// to an invoice date range via start_date and end_date (YYYY-MM-DD).
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// Search searches invoices by invoice number or party name
func (h *InvoiceHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "Search query is required")
		return
	}

	var filter billingapp.InvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoices, err := h.invoiceService.Search(c.Request.Context(), query, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoices)
}

// NextNumberResponse carries the suggested next invoice number
type NextNumberResponse struct {
	InvoiceNo string `json:"invoice_no"`
}

// NextNumber suggests the next invoice number based on the latest invoice
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	next, err := h.invoiceService.NextInvoiceNumber(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, NextNumberResponse{InvoiceNo: next})
}

// Update updates an existing invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	var req billingapp.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), invoiceID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete deletes an invoice and its line items
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), invoiceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// DownloadPDF renders an invoice as a PDF document. The variant query
// parameter selects the template: "detailed" (default) or "compact".
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	variant := printing.VariantDetailed
	if v := c.Query("variant"); v != "" {
		variant = printing.InvoiceVariant(strings.ToUpper(v))
	}

	result, err := h.documentService.RenderInvoiceDocument(c.Request.Context(), invoiceID, variant, printing.DocFormatPDF)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	serveDocumentInline(c, result)
}

// DownloadXLSX renders an invoice as a spreadsheet
func (h *InvoiceHandler) DownloadXLSX(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	result, err := h.documentService.RenderInvoiceDocument(c.Request.Context(), invoiceID, printing.VariantDetailed, printing.DocFormatXLSX)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	serveDocument(c, result)
}

// serveDocument writes a generated document as an attachment download
func serveDocument(c *gin.Context, result *reportapp.DocumentResult) {
	serveDocumentWithDisposition(c, result, "attachment")
}

// serveDocumentInline writes a generated document for in-browser viewing
func serveDocumentInline(c *gin.Context, result *reportapp.DocumentResult) {
	serveDocumentWithDisposition(c, result, "inline")
}

func serveDocumentWithDisposition(c *gin.Context, result *reportapp.DocumentResult, disposition string) {
	c.Header("Content-Disposition", disposition+`; filename="`+result.Filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(result.Data)))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
