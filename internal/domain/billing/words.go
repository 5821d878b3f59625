package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY",
	"EIGHTY", "NINETY",
}

// AmountInWords spells out a rupee amount in the Indian numbering
// system (crore / lakh / thousand), e.g. 123456 becomes
// "RUPEES ONE LAKH TWENTY THREE THOUSAND FOUR HUNDRED AND FIFTY SIX ONLY".
// Paise are truncated; zero and negative amounts read "RUPEES ZERO ONLY".
func AmountInWords(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n <= 0 {
		return "RUPEES ZERO ONLY"
	}

	var parts []string
	appendGroup := func(value int64, unit string) {
		if value > 0 {
			parts = append(parts, threeDigitWords(value))
			if unit != "" {
				parts = append(parts, unit)
			}
		}
	}

	appendGroup(n/10000000, "CRORE")
	n %= 10000000
	appendGroup(n/100000, "LAKH")
	n %= 100000
	appendGroup(n/1000, "THOUSAND")
	n %= 1000
	appendGroup(n/100, "HUNDRED")
	n %= 100
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "AND")
		}
		parts = append(parts, twoDigitWords(n))
	}

	return "RUPEES " + strings.Join(parts, " ") + " ONLY"
}

// threeDigitWords spells a group value below 1000. The crore group can
// carry three digits for amounts of one hundred crore and above.
func threeDigitWords(n int64) string {
	if n < 100 {
		return twoDigitWords(n)
	}
	word := onesWords[n/100] + " HUNDRED"
	if n%100 > 0 {
		word += " " + twoDigitWords(n%100)
	}
	return word
}

func twoDigitWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	word := tensWords[n/10]
	if n%10 > 0 {
		word += " " + onesWords[n%10]
	}
	return word
}
