package timeformat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAndFormat(t *testing.T) {
	tests := []struct {
		seconds   float64
		factor    float64
		unit      string
		formatted string
	}{
		{1, 1, "sec", "1.00 sec"},
		{0.1, 1e3, "usec", "100.00 usec"},
		{1.1e-6, 1e6, "msec", "1.10 msec"},
		{2e-9, 1e9, "nsec", "2.00 nsec"},
		// Below the last rung the raw value is kept visible instead of
		// rounding to 0.00.
		{2e-10, 1e9, "nsec", "0.2 nsec"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.seconds), func(t *testing.T) {
			factor, unit := Scale(tt.seconds)
			assert.Equal(t, tt.factor, factor)
			assert.Equal(t, tt.unit, unit)
			assert.Equal(t, tt.formatted, Format(tt.seconds))
		})
	}
}

func TestFormat_LargeValuesStayInSeconds(t *testing.T) {
	assert.Equal(t, "90.00 sec", Format(90))
}
