// Package stats compares benchmark duration series, deciding whether two
// recorded distributions plausibly come from the same code path.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Confidence selects the significance level of the two-sample test.
type Confidence = int

const (
	C90 Confidence = iota
	C95
	C97d5
	C99
	C99d5
	C99d9
)

// ksCoefficients map each confidence level to its critical KS coefficient.
// Retrieved from: https://www.webdepot.umontreal.ca/Usagers/angers/MonDepotPublic/STT3500H10/Critical_KS.pdf
var ksCoefficients = map[Confidence]float64{
	C90:   1.22,
	C95:   1.36,
	C97d5: 1.48,
	C99:   1.63,
	C99d5: 1.73,
	C99d9: 1.95,
}

// DistributionsDiffer runs a two-tailed two-sample Kolmogorov-Smirnov test on
// two duration series, returning true when the null hypothesis is rejected at
// the given confidence, i.e. when the candidate series does not belong to the
// control distribution.
func DistributionsDiffer(control, candidate []float64, confidence Confidence) bool {
	coeff, ok := ksCoefficients[confidence]
	if !ok {
		panic(fmt.Sprintf("unexpected confidence %v, see Confidence type", confidence))
	}

	criticalValue := coeff * math.Sqrt(
		float64(len(control)+len(candidate))/float64(len(control)*len(candidate)))

	// gonum's KolmogorovSmirnov requires sorted inputs; sort copies so the
	// callers' series stay untouched.
	sortedControl := make([]float64, len(control))
	copy(sortedControl, control)
	sort.Float64s(sortedControl)

	sortedCandidate := make([]float64, len(candidate))
	copy(sortedCandidate, candidate)
	sort.Float64s(sortedCandidate)

	// nil weights: every recorded duration counts equally.
	testStatistic := stat.KolmogorovSmirnov(sortedControl, nil, sortedCandidate, nil)

	return testStatistic > criticalValue
}
