package printing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Display layouts used on generated documents. Invoices and reports use
// the dashed layout; the compact invoice uses the dotted one.
const (
	DateLayoutDashed = "02-01-2006"
	DateLayoutDotted = "02.01.2006"
)

// FormatCurrency formats an amount as rupee currency with thousands
// separators and two decimal places, e.g. 1234.5 -> "₹1,234.50".
// A nil pointer formats as "₹0.00".
func FormatCurrency(v interface{}) string {
	return "₹" + FormatAmount(v)
}

// FormatAmount formats an amount with thousands separators and two
// decimal places, without the currency symbol.
func FormatAmount(v interface{}) string {
	d := toDecimal(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.Split(d.StringFixed(2), ".")
	return sign + groupWestern(parts[0]) + "." + parts[1]
}

// FormatAmountWhole formats a whole-rupee amount using Indian digit
// grouping, e.g. 1234567 -> "12,34,567". Paise are rounded away.
func FormatAmountWhole(v interface{}) string {
	d := toDecimal(v).Round(0)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + groupIndian(d.String())
}

// FormatDate formats a date in the dashed document layout, dd-MM-yyyy.
// Zero and nil dates format as the empty string.
func FormatDate(v interface{}) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDashed)
}

// FormatDateDotted formats a date in the dotted layout, dd.MM.yyyy.
func FormatDateDotted(v interface{}) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDotted)
}

// groupWestern inserts a separator every three digits: 1234567 -> 1,234,567
func groupWestern(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// groupIndian inserts separators in the Indian system: the last three
// digits form one group, the rest pair off: 1234567 -> 12,34,567
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// toDecimal converts various types to decimal.Decimal
func toDecimal(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case decimal.Decimal:
		return val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero
		}
		return *val
	case int:
		return decimal.NewFromInt(int64(val))
	case int32:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case float32:
		return decimal.NewFromFloat(float64(val))
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// toTime converts various types to time.Time
func toTime(v interface{}) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	case string:
		formats := []string{
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02",
		}
		for _, f := range formats {
			if t, err := time.Parse(f, val); err == nil {
				return t
			}
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
