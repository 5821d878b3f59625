package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shriramlogistics/backend/internal/domain/billing"
)

// TemplateEngine renders the embedded document templates with business data.
// It uses Go's html/template package with custom formatting functions.
type TemplateEngine struct {
	funcMap   template.FuncMap
	templates *template.Template
}

// NewTemplateEngine creates a template engine with the embedded document
// templates parsed and the default formatting functions installed.
func NewTemplateEngine() (*TemplateEngine, error) {
	e := &TemplateEngine{}

	e.funcMap = template.FuncMap{
		// Money formatting
		"formatCurrency":    FormatCurrency,
		"formatAmount":      FormatAmount,
		"formatAmountWhole": FormatAmountWhole,
		"amountWords":       amountWords,

		// Date formatting
		"formatDate":       FormatDate,
		"formatDateDotted": FormatDateDotted,

		// String utilities
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"title":   titleCase,
		"trim":    strings.TrimSpace,
		"join":    strings.Join,
		"replace": strings.ReplaceAll,

		// Comparison on decimals
		"decLT": decLT,
		"decGT": decGT,

		// Arithmetic
		"add": add,
		"sub": sub,

		// Conditional
		"default": defaultFunc,

		// Safe HTML
		"safeHTML": safeHTML,
		"safeCSS":  safeCSS,

		// Misc
		"now": time.Now,
	}

	tmpl, err := template.New("documents").Funcs(e.funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse embedded templates", err)
	}
	e.templates = tmpl

	return e, nil
}

// RenderDocument executes the named embedded template with the provided data.
func (e *TemplateEngine) RenderDocument(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template "+name, err)
	}
	return buf.String(), nil
}

// RenderString renders a template string with the provided data.
func (e *TemplateEngine) RenderString(name, content string, data interface{}) (string, error) {
	if content == "" {
		return "", NewRenderError(ErrCodeInvalidHTML, "template content is empty", nil)
	}

	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "failed to parse template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}

	return buf.String(), nil
}

// GetFuncMap returns a copy of the template function map.
func (e *TemplateEngine) GetFuncMap() template.FuncMap {
	funcMap := make(template.FuncMap, len(e.funcMap))
	maps.Copy(funcMap, e.funcMap)
	return funcMap
}

// amountWords spells out a rupee amount in words, ignoring paise.
func amountWords(v interface{}) string {
	return billing.AmountInWords(toDecimal(v))
}

// titleCase converts string to title case using proper Unicode handling.
func titleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}

func decLT(a, b interface{}) bool {
	return toDecimal(a).LessThan(toDecimal(b))
}

func decGT(a, b interface{}) bool {
	return toDecimal(a).GreaterThan(toDecimal(b))
}

func add(a, b interface{}) decimal.Decimal {
	return toDecimal(a).Add(toDecimal(b))
}

func sub(a, b interface{}) decimal.Decimal {
	return toDecimal(a).Sub(toDecimal(b))
}

func defaultFunc(val, def interface{}) interface{} {
	if val == nil || fmt.Sprintf("%v", val) == "" {
		return def
	}
	return val
}

// safeHTML marks a string as safe HTML, bypassing automatic escaping.
// SECURITY: Only use with trusted, non-user-generated content.
func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

// safeCSS marks a string as safe CSS, bypassing automatic escaping.
// SECURITY: Only use with trusted, non-user-generated content.
func safeCSS(s string) template.CSS {
	return template.CSS(s)
}
