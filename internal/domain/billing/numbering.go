package billing

// NextInvoiceNumber derives the next invoice number from the most
// recently issued one. The trailing run of digits is incremented in
// place and its zero-padded width is preserved ("INV0099" -> "INV0100",
// "2024/45" -> "2024/46"). When the latest number is empty or carries
// no trailing digits, the sequence starts at "INV001".
func NextInvoiceNumber(latest string) string {
	if latest == "" {
		return "INV001"
	}

	end := len(latest)
	start := end
	for start > 0 && latest[start-1] >= '0' && latest[start-1] <= '9' {
		start--
	}
	if start == end {
		return "INV001"
	}

	digits := []byte(latest[start:end])
	carried := increment(digits)
	if carried {
		// e.g. "INV999" -> "INV1000": the run grows by one digit.
		digits = append([]byte{'1'}, digits...)
	}
	return latest[:start] + string(digits)
}

// increment adds one to a decimal digit string in place, returning true
// when the carry overflows past the leading digit.
func increment(digits []byte) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return false
		}
		digits[i] = '0'
	}
	return true
}
