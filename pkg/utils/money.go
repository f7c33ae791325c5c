package utils

import "strconv"

// FormatINR renders a whole-rupee amount with the Indian grouping convention
// (last three digits, then groups of two): 1234567 -> "₹12,34,567".
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		grouped := ""
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		digits = head + grouped + "," + digits[len(digits)-3:]
	}

	if negative {
		return "-₹" + digits
	}
	return "₹" + digits
}

// DigitsOnly strips every non-decimal character from a phone string, the
// shape the wa.me phone parameter requires.
func DigitsOnly(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			out = append(out, phone[i])
		}
	}
	return string(out)
}
