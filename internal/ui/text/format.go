package text

import (
	"fmt"
	"strconv"
)

// FormatUnits formats a layout distance: whole values print without a
// fraction, others with one decimal. 310 -> "310", 253.54 -> "253.5".
func FormatUnits(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatSize formats a width and height: "1000×575".
func FormatSize(w, h float64) string {
	return FormatUnits(w) + "×" + FormatUnits(h)
}

// FormatPoint formats a position: "(20, 50)".
func FormatPoint(x, y float64) string {
	return fmt.Sprintf("(%s, %s)", FormatUnits(x), FormatUnits(y))
}

// Plural formats a count with its noun: 1 -> "1 pane", 3 -> "3 panes".
func Plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// OnOff renders a flag for the status bar.
func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
