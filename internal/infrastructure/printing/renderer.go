package printing

import (
	"context"
	"fmt"
	"time"

	domain "github.com/shriramlogistics/backend/internal/domain/printing"
)

// RenderRequest describes a single HTML-to-PDF conversion.
type RenderRequest struct {
	// HTML is the complete document markup to render.
	HTML string

	// PaperSize selects the physical page dimensions.
	PaperSize domain.PaperSize

	// Orientation selects portrait or landscape.
	Orientation domain.Orientation

	// Margins are the page margins in millimeters.
	Margins domain.Margins

	// Title is used as the PDF document title metadata.
	Title string

	// HeaderHTML is optional markup repeated on every page header.
	HeaderHTML string

	// FooterHTML is optional markup repeated on every page footer.
	FooterHTML string

	// Timeout overrides the renderer default when positive.
	Timeout time.Duration
}

// RenderResult carries the produced PDF and render metadata.
type RenderResult struct {
	PDFData        []byte
	RenderDuration time.Duration
}

// PDFRenderer converts HTML documents into PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

// Render error codes.
const (
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeInvalidHTML      = "INVALID_HTML"
	ErrCodeBinaryNotFound   = "BINARY_NOT_FOUND"
	ErrCodeInvalidPaperSize = "INVALID_PAPER_SIZE"
)

// RenderError describes a PDF rendering failure with a stable code.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a RenderError with the given code and message.
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}
