package printing

import "github.com/shriramlogistics/backend/internal/domain/shared"

// Margins represents the page margins in millimeters
type Margins struct {
	Top    int `json:"top"`    // Top margin in mm
	Right  int `json:"right"`  // Right margin in mm
	Bottom int `json:"bottom"` // Bottom margin in mm
	Left   int `json:"left"`   // Left margin in mm
}

// NewMargins creates a new Margins value object
func NewMargins(top, right, bottom, left int) (Margins, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot be negative")
	}
	if top > 100 || right > 100 || bottom > 100 || left > 100 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot exceed 100mm")
	}
	return Margins{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}, nil
}

// DefaultMargins returns the default page margins for invoice documents
func DefaultMargins() Margins {
	return Margins{
		Top:    10,
		Right:  10,
		Bottom: 10,
		Left:   10,
	}
}

// ReportMargins returns the narrower margins used for landscape reports
func ReportMargins() Margins {
	return Margins{
		Top:    8,
		Right:  8,
		Bottom: 8,
		Left:   8,
	}
}

// IsZero returns true if all margins are zero
func (m Margins) IsZero() bool {
	return m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m.Top == other.Top &&
		m.Right == other.Right &&
		m.Bottom == other.Bottom &&
		m.Left == other.Left
}

// PageSetup bundles the physical page parameters for a document type
type PageSetup struct {
	PaperSize   PaperSize
	Orientation Orientation
	Margins     Margins
}

// InvoicePageSetup returns the page setup used for invoice documents
func InvoicePageSetup() PageSetup {
	return PageSetup{
		PaperSize:   PaperSizeA4,
		Orientation: OrientationPortrait,
		Margins:     DefaultMargins(),
	}
}

// ReportPageSetup returns the page setup used for period reports
func ReportPageSetup() PageSetup {
	return PageSetup{
		PaperSize:   PaperSizeA4,
		Orientation: OrientationLandscape,
		Margins:     ReportMargins(),
	}
}
