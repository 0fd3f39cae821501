package utils

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/restaurant-client/models"
)

// FormatCurrency renders a cent amount in Indonesian Rupiah format.
// Example: 1500050 cents -> "Rp 15.000,50"
func FormatCurrency(amount models.Cents) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	integerPart := fmt.Sprintf("%d", amount/100)
	decimalPart := fmt.Sprintf("%02d", amount%100)

	// Group the integer part with thousands separators
	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "Rp " + strings.Join(groups, ".") + "," + decimalPart
}
