package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shriramlogistics/backend/internal/domain/billing"
)

// InvoiceItemRow is one rendered line of the invoice items table.
type InvoiceItemRow struct {
	LRLabel     string
	Route       string
	Description string
	Package     string
	Vehicle     string
	VehicleType string
	Amount      string
}

// InvoiceDocumentData is the view model bound to an invoice template.
// All monetary and date fields are pre-formatted strings so that rendering
// is a pure function of the invoice record.
type InvoiceDocumentData struct {
	Letterhead   Letterhead
	Bank         BankDetails
	CopyLabel    string
	InvoiceNo    string
	InvoiceDate  string
	PartyBlock   string
	Items        []InvoiceItemRow
	ItemsTotal   string
	// Charge lines are empty strings when the charge is not positive,
	// which suppresses the row in the template.
	HaltingCharges   string
	LoadingCharges   string
	UnloadingCharges string
	GrandTotal       string
	AmountInWords    string
	Remarks          string
	Jurisdiction     string
}

// CompactInvoiceData renders the two-copy compact layout: a DUPLICATE page
// followed by an ORIGINAL page, identical except for the copy label.
type CompactInvoiceData struct {
	InvoiceNo string
	Copies    []InvoiceDocumentData
}

// ReportRow is one line of the tabular period report or monthly statement.
type ReportRow struct {
	Index     int
	InvoiceNo string
	Date      string
	PartyName string
	Address   string
	GST       string
	Amount    string
}

// ReportDocumentData is the view model for the landscape tabular report.
type ReportDocumentData struct {
	Letterhead  Letterhead
	Title       string
	SummaryLine string
	Rows        []ReportRow
	Total       string
}

// BuildDetailedInvoice builds the view model for the detailed invoice layout.
// Dates use dd-MM-yyyy and amounts keep two decimal places.
func BuildDetailedInvoice(inv *billing.Invoice) InvoiceDocumentData {
	data := InvoiceDocumentData{
		Letterhead:   CompanyLetterhead(),
		Bank:         CompanyBankDetails(),
		InvoiceNo:    inv.InvoiceNo,
		InvoiceDate:  formatDatePtr(inv.InvoiceDate, false),
		PartyBlock:   partyBlock(inv),
		ItemsTotal:   FormatCurrency(inv.ItemsTotal()),
		GrandTotal:   FormatCurrency(inv.DisplayTotal()),
		Remarks:      inv.Remarks,
		Jurisdiction: JurisdictionNotice,
	}

	data.HaltingCharges = chargeLine(inv.HaltingCharges, false)
	data.LoadingCharges = chargeLine(inv.LoadingCharges, false)
	data.UnloadingCharges = chargeLine(inv.UnloadingCharges, false)
	data.AmountInWords = wordsOrDerived(inv)

	for _, item := range inv.Items {
		data.Items = append(data.Items, buildItemRow(item, false))
	}

	return data
}

// BuildCompactInvoice builds the two-copy compact layout view model.
// Dates use dd.MM.yyyy and amounts drop sub-rupee precision for display.
func BuildCompactInvoice(inv *billing.Invoice) CompactInvoiceData {
	base := InvoiceDocumentData{
		Letterhead:   CompanyLetterhead(),
		Bank:         CompanyBankDetails(),
		InvoiceNo:    inv.InvoiceNo,
		InvoiceDate:  formatDatePtr(inv.InvoiceDate, true),
		PartyBlock:   partyBlock(inv),
		ItemsTotal:   wholeAmount(inv.ItemsTotal()),
		GrandTotal:   wholeAmount(inv.DisplayTotal()),
		Remarks:      inv.Remarks,
		Jurisdiction: JurisdictionNotice,
	}

	base.HaltingCharges = chargeLine(inv.HaltingCharges, true)
	base.LoadingCharges = chargeLine(inv.LoadingCharges, true)
	base.UnloadingCharges = chargeLine(inv.UnloadingCharges, true)
	base.AmountInWords = wordsOrDerived(inv)

	for _, item := range inv.Items {
		base.Items = append(base.Items, buildItemRow(item, true))
	}

	duplicate := base
	duplicate.CopyLabel = "DUPLICATE"
	original := base
	original.CopyLabel = "ORIGINAL"

	return CompactInvoiceData{
		InvoiceNo: inv.InvoiceNo,
		Copies:    []InvoiceDocumentData{duplicate, original},
	}
}

// BuildPeriodReport builds the tabular view model for a date-range report,
// one row per invoice in the given order.
func BuildPeriodReport(invoices []*billing.Invoice, start, end time.Time) ReportDocumentData {
	data := ReportDocumentData{
		Letterhead: CompanyLetterhead(),
		Title:      "INVOICE REPORT",
		SummaryLine: fmt.Sprintf("Period: %s to %s  |  Total Invoices: %d",
			FormatDate(start), FormatDate(end), len(invoices)),
	}

	total := decimal.Zero
	for i, inv := range invoices {
		amount := inv.DisplayTotal()
		total = total.Add(amount)
		data.Rows = append(data.Rows, buildReportRow(i+1, inv, amount))
	}
	data.Total = FormatCurrency(total)

	return data
}

// BuildMonthlyStatementDocument builds the tabular view model for a monthly
// statement. The statement total comes from the aggregator unchanged, and
// rows show stored totals only (zero when unset) so they always sum to it.
func BuildMonthlyStatementDocument(stmt *billing.MonthlyStatement) ReportDocumentData {
	data := ReportDocumentData{
		Letterhead: CompanyLetterhead(),
		Title:      fmt.Sprintf("MONTHLY STATEMENT - %s %d", strings.ToUpper(stmt.MonthName), stmt.Year),
		SummaryLine: fmt.Sprintf("Total Invoices: %d  |  Total Amount: %s",
			stmt.InvoiceCount, FormatCurrency(stmt.TotalAmount)),
		Total: FormatCurrency(stmt.TotalAmount),
	}

	for i, inv := range stmt.Invoices {
		amount := decimal.Zero
		if inv.TotalAmount != nil {
			amount = *inv.TotalAmount
		}
		data.Rows = append(data.Rows, buildReportRow(i+1, inv, amount))
	}

	return data
}

func buildReportRow(index int, inv *billing.Invoice, amount decimal.Decimal) ReportRow {
	return ReportRow{
		Index:     index,
		InvoiceNo: inv.InvoiceNo,
		Date:      formatDatePtr(inv.InvoiceDate, false),
		PartyName: inv.PartyName,
		Address:   inv.PartyAddress,
		GST:       inv.PartyGST,
		Amount:    FormatCurrency(amount),
	}
}

func buildItemRow(item billing.InvoiceItem, compact bool) InvoiceItemRow {
	row := InvoiceItemRow{
		Description: item.GoodsDescription,
		Vehicle:     item.VehicleNumber,
		VehicleType: item.VehicleType,
	}

	row.LRLabel = item.LRNo
	if date := formatDatePtr(item.LRDate, compact); date != "" {
		row.LRLabel = row.LRLabel + "\n" + date
	}

	if item.FromLocation != "" || item.ToLocation != "" {
		row.Route = item.FromLocation + " → " + item.ToLocation
	}

	row.Package = packageLabel(item, compact)

	if compact {
		row.Amount = wholeAmount(item.Amount)
	} else {
		row.Amount = FormatAmount(item.Amount)
	}

	return row
}

// packageLabel renders "<type> x <count>" when a count is present. The
// compact layout substitutes a placeholder when the type is blank.
func packageLabel(item billing.InvoiceItem, compact bool) string {
	label := item.PackageType
	if compact && strings.TrimSpace(label) == "" {
		label = "AS PER INVOICE"
	}
	if item.PackageCount > 0 && label != "" {
		label = fmt.Sprintf("%s x %d", label, item.PackageCount)
	}
	return label
}

// partyBlock assembles the multi-line bill-to block, skipping blank lines.
func partyBlock(inv *billing.Invoice) string {
	var lines []string
	if inv.PartyName != "" {
		lines = append(lines, inv.PartyName)
	}
	if inv.PartyAddress != "" {
		lines = append(lines, inv.PartyAddress)
	}
	if inv.PartyGST != "" {
		lines = append(lines, "GST: "+inv.PartyGST)
	}
	return strings.Join(lines, "\n")
}

// chargeLine formats a charge for display, or returns "" when the charge is
// not positive so the template suppresses the row.
func chargeLine(charge decimal.Decimal, compact bool) string {
	if !charge.IsPositive() {
		return ""
	}
	if compact {
		return wholeAmount(charge)
	}
	return FormatCurrency(charge)
}

// wordsOrDerived returns the stored amount-in-words, spelling out the
// display total when none was recorded.
func wordsOrDerived(inv *billing.Invoice) string {
	if strings.TrimSpace(inv.AmountInWords) != "" {
		return inv.AmountInWords
	}
	return billing.AmountInWords(inv.DisplayTotal())
}

func wholeAmount(d decimal.Decimal) string {
	return "₹" + FormatAmountWhole(d)
}

func formatDatePtr(t *time.Time, dotted bool) string {
	if t == nil {
		return ""
	}
	if dotted {
		return FormatDateDotted(*t)
	}
	return FormatDate(*t)
}
