package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/shriramlogistics/backend/internal/domain/billing"
	"github.com/shriramlogistics/backend/internal/infrastructure/printing"
)

const currencyNumFmt = "₹#,##0.00"

// ExcelExporter produces spreadsheet exports of invoices and reports.
type ExcelExporter struct{}

// NewExcelExporter creates an ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// reportColumns is the item-level period report header row.
var reportColumns = []string{
	"Invoice Date", "LR Number", "Invoice Number", "Client Name",
	"GST Number", "From", "To", "Description", "Amount",
}

// PeriodReport writes an item-level report workbook: one row per invoice
// item across the given invoices, followed by a TOTAL row.
func (e *ExcelExporter) PeriodReport(invoices []*billing.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoice Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to build report workbook: %w", err)
	}

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build report workbook: %w", err)
	}

	for col, title := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	_ = setRowStyle(f, sheet, 1, len(reportColumns), styles.header)

	row := 2
	total := decimal.Zero
	for _, inv := range invoices {
		for _, item := range inv.Items {
			values := []interface{}{
				printing.FormatDate(inv.InvoiceDate),
				item.LRNo,
				inv.InvoiceNo,
				inv.PartyName,
				inv.PartyGST,
				item.FromLocation,
				item.ToLocation,
				item.GoodsDescription,
				item.Amount.InexactFloat64(),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			_ = setRowStyle(f, sheet, row, len(values)-1, styles.data)
			amountCell, _ := excelize.CoordinatesToCellName(len(values), row)
			_ = f.SetCellStyle(sheet, amountCell, amountCell, styles.currency)

			total = total.Add(item.Amount)
			row++
		}
	}

	labelCell, _ := excelize.CoordinatesToCellName(len(reportColumns)-1, row)
	amountCell, _ := excelize.CoordinatesToCellName(len(reportColumns), row)
	_ = f.SetCellValue(sheet, labelCell, "TOTAL:")
	_ = f.SetCellStyle(sheet, labelCell, labelCell, styles.total)
	_ = f.SetCellValue(sheet, amountCell, total.InexactFloat64())
	_ = f.SetCellStyle(sheet, amountCell, amountCell, styles.totalCurrency)

	autoSizeColumns(f, sheet, len(reportColumns))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// itemColumns is the single-invoice item table header row.
var itemColumns = []string{
	"#", "LR No", "LR Date", "From", "To", "Description",
	"Pkg Type", "Vehicle No", "Vehicle Type", "Amount",
}

// SingleInvoice writes a structured workbook for one invoice: header
// label/value pairs, the item table, additional charges, and the total.
func (e *ExcelExporter) SingleInvoice(inv *billing.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Invoice numbers may contain characters excelize rejects in sheet
	// names ("2024/45"), so the number only appears in cells.
	sheet := "Invoice"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to build invoice workbook: %w", err)
	}

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build invoice workbook: %w", err)
	}

	row := 1
	setTitle := func(text string) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellValue(sheet, cell, text)
		_ = f.SetCellStyle(sheet, cell, cell, styles.title)
		row++
	}
	setPair := func(label string, value interface{}) {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, labelCell, label)
		_ = f.SetCellStyle(sheet, labelCell, labelCell, styles.label)
		_ = f.SetCellValue(sheet, valueCell, value)
		row++
	}
	setCharge := func(label string, charge decimal.Decimal) {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, labelCell, label)
		_ = f.SetCellStyle(sheet, labelCell, labelCell, styles.label)
		_ = f.SetCellValue(sheet, valueCell, charge.InexactFloat64())
		_ = f.SetCellStyle(sheet, valueCell, valueCell, styles.currency)
		row++
	}

	setTitle(printing.CompanyName)
	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, cell, printing.CompanyAddress)
	row += 2

	setPair("Invoice No:", inv.InvoiceNo)
	setPair("Invoice Date:", printing.FormatDate(inv.InvoiceDate))
	row++

	setTitle("Party Details")
	setPair("Party Name:", inv.PartyName)
	setPair("Address:", inv.PartyAddress)
	setPair("GSTIN:", inv.PartyGST)
	row++

	setTitle("Line Items")
	for col, title := range itemColumns {
		headerCell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheet, headerCell, title)
	}
	_ = setRowStyle(f, sheet, row, len(itemColumns), styles.header)
	row++

	for i, item := range inv.Items {
		values := []interface{}{
			i + 1,
			item.LRNo,
			printing.FormatDate(item.LRDate),
			item.FromLocation,
			item.ToLocation,
			item.GoodsDescription,
			item.PackageType,
			item.VehicleNumber,
			item.VehicleType,
			item.Amount.InexactFloat64(),
		}
		for col, v := range values {
			valueCell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, valueCell, v)
		}
		_ = setRowStyle(f, sheet, row, len(values)-1, styles.data)
		amountCell, _ := excelize.CoordinatesToCellName(len(values), row)
		_ = f.SetCellStyle(sheet, amountCell, amountCell, styles.currency)
		row++
	}
	row++

	setTitle("Additional Charges")
	setCharge("Halting Charges:", inv.HaltingCharges)
	setCharge("Loading Charges:", inv.LoadingCharges)
	setCharge("Unloading Charges:", inv.UnloadingCharges)
	row++

	totalLabelCell, _ := excelize.CoordinatesToCellName(1, row)
	totalValueCell, _ := excelize.CoordinatesToCellName(2, row)
	_ = f.SetCellValue(sheet, totalLabelCell, "TOTAL AMOUNT:")
	_ = f.SetCellStyle(sheet, totalLabelCell, totalLabelCell, styles.title)
	_ = f.SetCellValue(sheet, totalValueCell, inv.DisplayTotal().InexactFloat64())
	_ = f.SetCellStyle(sheet, totalValueCell, totalValueCell, styles.totalCurrency)
	row++

	if inv.AmountInWords != "" {
		setPair("Amount in Words:", inv.AmountInWords)
	}

	autoSizeColumns(f, sheet, len(itemColumns))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write invoice workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetStyles holds the style IDs shared by both export layouts.
type sheetStyles struct {
	header        int
	data          int
	currency      int
	total         int
	totalCurrency int
	title         int
	label         int
}

func buildStyles(f *excelize.File) (*sheetStyles, error) {
	borders := []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
	numFmt := currencyNumFmt

	s := &sheetStyles{}
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		return nil, err
	}
	s.data, err = f.NewStyle(&excelize.Style{Border: borders})
	if err != nil {
		return nil, err
	}
	s.currency, err = f.NewStyle(&excelize.Style{Border: borders, CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Border:    borders,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, err
	}
	s.totalCurrency, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 12},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Border:       borders,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, err
	}
	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func setRowStyle(f *excelize.File, sheet string, row, cols, style int) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(cols, row)
	return f.SetCellStyle(sheet, start, end, style)
}

// autoSizeColumns approximates column auto-sizing by widening each column
// to its longest cell value. Sizing is cosmetic only.
func autoSizeColumns(f *excelize.File, sheet string, cols int) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return
	}
	for col := 0; col < cols; col++ {
		width := 10.0
		for _, r := range rows {
			if col < len(r) {
				if w := float64(len(r[col])) + 2; w > width {
					width = w
				}
			}
		}
		if width > 60 {
			width = 60
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(sheet, name, name, width)
	}
}
