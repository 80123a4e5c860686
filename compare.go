package timethat

import (
	"fmt"

	"github.com/Doist/timethat/stats"
)

// Comparison holds the outcome of comparing a candidate benchmark against a
// control benchmark.
type Comparison struct {
	Control   string
	Candidate string

	// Means are in seconds.
	ControlMean   float64
	CandidateMean float64
	// MeanDiffPercent is the relative change of the candidate mean against
	// the control mean; negative means the candidate is faster.
	MeanDiffPercent float64

	// Significant is true when the Kolmogorov-Smirnov test rejects the two
	// duration series coming from the same distribution. A large mean diff
	// with Significant == false is noise, not a regression.
	Significant bool
}

// Compare measures a candidate benchmark against a control benchmark. Both
// must have recorded at least one region each; comparing an empty series
// fails the same way Mean does.
func Compare(control, candidate *Benchmark, confidence stats.Confidence) (Comparison, error) {
	controlMean, err := control.Mean()
	if err != nil {
		return Comparison{}, fmt.Errorf("control benchmark %q: %w", control.Name, err)
	}
	candidateMean, err := candidate.Mean()
	if err != nil {
		return Comparison{}, fmt.Errorf("candidate benchmark %q: %w", candidate.Name, err)
	}

	comparison := Comparison{
		Control:       control.Name,
		Candidate:     candidate.Name,
		ControlMean:   controlMean,
		CandidateMean: candidateMean,
		Significant:   stats.DistributionsDiffer(control.Results(), candidate.Results(), confidence),
	}
	if controlMean != 0 {
		comparison.MeanDiffPercent = (candidateMean - controlMean) / controlMean * 100
	}
	return comparison, nil
}

func (c Comparison) String() string {
	verdict := "not significant"
	if c.Significant {
		verdict = "significant"
	}
	return fmt.Sprintf("%s vs %s: %+.2f%% mean time (%s)",
		c.Candidate, c.Control, c.MeanDiffPercent, verdict)
}
