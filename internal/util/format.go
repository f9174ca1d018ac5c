package util

import "fmt"

// FormatSeconds formats a time span in seconds as "1.24s".
func FormatSeconds(t float64) string {
	if t < 0 {
		t = 0
	}
	return fmt.Sprintf("%.2fs", t)
}

// FormatRatio formats a dimensionless parameter with two decimals.
func FormatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatVector formats a 2D quantity as "(+1.20, -0.40)".
func FormatVector(x, y float64) string {
	return fmt.Sprintf("(%+.2f, %+.2f)", x, y)
}
