package view

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown for missing metrics and undefined ratios.
const Placeholder = "-"

// printer formats numbers with Russian digit grouping and decimal comma.
var printer = message.NewPrinter(language.Russian)

// FormatInt formats an integer with digit grouping.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPrice rounds a money amount up to a whole rouble and groups digits.
func FormatPrice(v float64) string {
	return FormatInt(int64(math.Ceil(v)))
}

// FormatRatio formats a ratio rounded to two decimals.
func FormatRatio(v float64) string {
	return printer.Sprintf("%.2f", math.Round(v*100)/100)
}

// OptInt formats an optional counter.
func OptInt(v *int64) string {
	if v == nil {
		return Placeholder
	}
	return FormatInt(*v)
}

// OptPrice formats an optional money amount.
func OptPrice(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Placeholder
	}
	return FormatPrice(*v)
}

// OptRatio formats an optional ratio.
func OptRatio(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Placeholder
	}
	return FormatRatio(*v)
}
