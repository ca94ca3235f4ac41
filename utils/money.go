package utils

import "github.com/shopspring/decimal"

// PenceToPounds converts an amount in pence to a two-decimal pound string, e.g. 1400 -> "14.00".
func PenceToPounds(pence int64) string {
	return decimal.New(pence, -2).StringFixed(2)
}

// FormatGBP renders an amount in pence for display, e.g. 1400 -> "£14.00".
func FormatGBP(pence int64) string {
	return "£" + PenceToPounds(pence)
}
