package controller

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/gowc/internal/model"
)

const (
	fieldWidth = 8
	totalLabel = "total"
)

// Pad returns the spaces printed before a count rendered as digits: enough to
// right-align it in fieldWidth columns, and never fewer than one.
func Pad(digits string) string {
	if n := fieldWidth - len(digits); n > 0 {
		return strings.Repeat(" ", n)
	}

	return " "
}

// FormatRow renders one wc line for a source. Only selected metrics appear.
func FormatRow(counts m.Counts, metrics m.Metrics, label string) string {
	return formatRow(counts, metrics, label, false)
}

// FormatTotalRow renders the total line. A zero total keeps its padding but
// prints no digit.
func FormatTotalRow(totals m.Counts, metrics m.Metrics) string {
	return formatRow(totals, metrics, totalLabel, true)
}

func formatRow(counts m.Counts, metrics m.Metrics, label string, blankZero bool) string {
	var b strings.Builder

	for _, mt := range metrics.Ordered() {
		value := counts.Value(mt)
		digits := strconv.Itoa(value)

		b.WriteString(Pad(digits))

		if value != 0 || !blankZero {
			b.WriteString(digits)
		}
	}

	b.WriteString(" ")
	b.WriteString(label)

	return b.String()
}

func totalCell(value int) string {
	if value == 0 {
		return ""
	}

	return strconv.Itoa(value)
}
