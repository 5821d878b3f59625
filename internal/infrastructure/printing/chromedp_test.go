package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/shriramlogistics/backend/internal/domain/printing"
)

func newTestRenderer(t *testing.T) *ChromedpRenderer {
	t.Helper()
	r, err := NewChromedpRenderer(&ChromedpConfig{NoSandbox: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRenderValidation(t *testing.T) {
	r := newTestRenderer(t)
	ctx := context.Background()

	t.Run("nil request", func(t *testing.T) {
		_, err := r.Render(ctx, nil)
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})

	t.Run("empty HTML", func(t *testing.T) {
		_, err := r.Render(ctx, &RenderRequest{HTML: "   ", PaperSize: domain.PaperSizeA4})
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})

	t.Run("invalid paper size", func(t *testing.T) {
		_, err := r.Render(ctx, &RenderRequest{HTML: "<p>hi</p>", PaperSize: domain.PaperSize("TABLOID")})
		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidPaperSize, renderErr.Code)
	})
}

func TestBuildPrintParams(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("A4 portrait", func(t *testing.T) {
		params := r.buildPrintParams(&RenderRequest{
			PaperSize:   domain.PaperSizeA4,
			Orientation: domain.OrientationPortrait,
			Margins:     domain.DefaultMargins(),
		})

		assert.InDelta(t, 210.0/25.4, params.paperWidth, 0.001)
		assert.InDelta(t, 297.0/25.4, params.paperHeight, 0.001)
		assert.False(t, params.landscape)
		assert.True(t, params.printBackground)
		assert.InDelta(t, 10.0/25.4, params.marginTop, 0.001)
	})

	t.Run("landscape orientation", func(t *testing.T) {
		params := r.buildPrintParams(&RenderRequest{
			PaperSize:   domain.PaperSizeA4,
			Orientation: domain.OrientationLandscape,
			Margins:     domain.ReportMargins(),
		})
		assert.True(t, params.landscape)
	})

	t.Run("header forces minimum top margin", func(t *testing.T) {
		margins, err := domain.NewMargins(2, 2, 2, 2)
		require.NoError(t, err)

		params := r.buildPrintParams(&RenderRequest{
			PaperSize:  domain.PaperSizeA4,
			Margins:    margins,
			HeaderHTML: "<span>header</span>",
		})

		assert.True(t, params.displayHeaderFooter)
		assert.InDelta(t, 10.0/25.4, params.marginTop, 0.001)
		assert.InDelta(t, 2.0/25.4, params.marginBottom, 0.001)
	})
}

func TestBuildCompleteHTML(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("fragment is wrapped", func(t *testing.T) {
		html := r.buildCompleteHTML(&RenderRequest{HTML: "<p>hello</p>", Title: "Doc"})
		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.Contains(t, html, "<title>Doc</title>")
		assert.Contains(t, html, "<p>hello</p>")
	})

	t.Run("complete document passes through", func(t *testing.T) {
		doc := "<!DOCTYPE html><html><body>x</body></html>"
		assert.Equal(t, doc, r.buildCompleteHTML(&RenderRequest{HTML: doc}))
	})
}

func TestMMToInches(t *testing.T) {
	assert.InDelta(t, 1.0, mmToInches(25.4), 0.0001)
	assert.InDelta(t, 0.0, mmToInches(0), 0.0001)
}
