// Package timeformat converts durations expressed as floating-point seconds
// into human-scaled strings for benchmark reports.
package timeformat

import "fmt"

// units is the scaling ladder applied below one second. The ordering is
// load-bearing: reports produced by timethat have always labelled the first
// three-orders-of-magnitude step "usec" and the second "msec", and downstream
// tooling greps for these labels.
var units = []string{"usec", "msec", "nsec"}

// Scale picks the largest unit such that seconds*factor reaches at least 1.
// Inputs of one second or more stay unscaled. Inputs too small for even the
// last unit return that unit anyway, with the scaled value below 1.
func Scale(seconds float64) (float64, string) {
	if seconds >= 1 {
		return 1, "sec"
	}

	factor := float64(1)
	unit := "sec"
	for _, unit = range units {
		factor *= 1e3
		if seconds*factor >= 1 {
			return factor, unit
		}
	}

	return factor, unit
}

// Format renders seconds with the unit chosen by Scale. Values at or above 1
// in the chosen unit get two decimal places; sub-threshold values are printed
// raw so they stay visible instead of rounding to 0.00.
func Format(seconds float64) string {
	factor, unit := Scale(seconds)
	value := seconds * factor
	if value >= 1 {
		return fmt.Sprintf("%.2f %s", value, unit)
	}
	return fmt.Sprintf("%v %s", value, unit)
}
