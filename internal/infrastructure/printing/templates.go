package printing

import (
	"embed"

	domain "github.com/shriramlogistics/backend/internal/domain/printing"
)

//go:embed templates/*.html
var templateFS embed.FS

// Embedded template names.
const (
	TemplateInvoiceDetailed = "invoice_detailed.html"
	TemplateInvoiceCompact  = "invoice_compact.html"
	TemplateReport          = "report.html"
)

// TemplateForVariant maps an invoice layout variant to its template name.
func TemplateForVariant(variant domain.InvoiceVariant) string {
	if variant == domain.VariantCompact {
		return TemplateInvoiceCompact
	}
	return TemplateInvoiceDetailed
}
