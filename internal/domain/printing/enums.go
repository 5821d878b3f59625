package printing

// DocType represents the type of business document that can be generated
type DocType string

const (
	DocTypeInvoice          DocType = "INVOICE"           // single transport invoice
	DocTypePeriodReport     DocType = "PERIOD_REPORT"     // item-level report over a date range
	DocTypeMonthlyStatement DocType = "MONTHLY_STATEMENT" // monthly invoice summary
)

// IsValid checks if the DocType is a valid value
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeInvoice, DocTypePeriodReport, DocTypeMonthlyStatement:
		return true
	}
	return false
}

// String returns the string representation of DocType
func (d DocType) String() string {
	return string(d)
}

// AllDocTypes returns all valid DocType values
func AllDocTypes() []DocType {
	return []DocType{DocTypeInvoice, DocTypePeriodReport, DocTypeMonthlyStatement}
}

// DocFormat represents the output byte format of a generated document
type DocFormat string

const (
	DocFormatPDF  DocFormat = "PDF"
	DocFormatXLSX DocFormat = "XLSX"
)

// IsValid checks if the DocFormat is a valid value
func (f DocFormat) IsValid() bool {
	switch f {
	case DocFormatPDF, DocFormatXLSX:
		return true
	}
	return false
}

// String returns the string representation of DocFormat
func (f DocFormat) String() string {
	return string(f)
}

// ContentType returns the MIME type for the format
func (f DocFormat) ContentType() string {
	switch f {
	case DocFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

// Extension returns the file extension for the format, including the dot
func (f DocFormat) Extension() string {
	switch f {
	case DocFormatXLSX:
		return ".xlsx"
	default:
		return ".pdf"
	}
}

// InvoiceVariant selects which invoice template family is rendered
type InvoiceVariant string

const (
	// VariantDetailed is the full-page layout with the itemized LR table,
	// conditional charge rows, amount in words and signature block.
	VariantDetailed InvoiceVariant = "DETAILED"

	// VariantCompact is the two-copy layout: the same invoice rendered as
	// a DUPLICATE COPY page followed by an ORIGINAL COPY page.
	VariantCompact InvoiceVariant = "COMPACT"
)

// IsValid checks if the InvoiceVariant is a valid value
func (v InvoiceVariant) IsValid() bool {
	switch v {
	case VariantDetailed, VariantCompact:
		return true
	}
	return false
}

// String returns the string representation of InvoiceVariant
func (v InvoiceVariant) String() string {
	return string(v)
}

// AllInvoiceVariants returns all valid InvoiceVariant values
func AllInvoiceVariants() []InvoiceVariant {
	return []InvoiceVariant{VariantDetailed, VariantCompact}
}

// PaperSize represents the paper size for printing
type PaperSize string

const (
	PaperSizeA4 PaperSize = "A4" // 210mm x 297mm
	PaperSizeA5 PaperSize = "A5" // 148mm x 210mm
)

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA5:
		return true
	}
	return false
}

// String returns the string representation of PaperSize
func (p PaperSize) String() string {
	return string(p)
}

// Dimensions returns the paper dimensions in millimeters (width, height)
func (p PaperSize) Dimensions() (width, height int) {
	switch p {
	case PaperSizeA5:
		return 148, 210
	default:
		return 210, 297
	}
}

// Orientation represents the page orientation for printing
type Orientation string

const (
	OrientationPortrait  Orientation = "PORTRAIT"
	OrientationLandscape Orientation = "LANDSCAPE"
)

// IsValid checks if the Orientation is a valid value
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}
