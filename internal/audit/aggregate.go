package audit

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"rotaudit/domain/core"
	"rotaudit/domain/rotation"
)

// Aggregator folds per-curve evaluations into a corpus summary.
type Aggregator struct {
	targets *rotation.CalibrationTargets
}

// NewAggregator creates an aggregator without a calibration check.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// NewCalibratedAggregator creates an aggregator that self-checks the summary
// against externally supplied targets. The check is a reproducibility aid,
// not a correctness requirement.
func NewCalibratedAggregator(targets rotation.CalibrationTargets) *Aggregator {
	return &Aggregator{targets: &targets}
}

// Summarize builds the corpus summary from all evaluations. Zero evaluations
// yield a zeroed summary rather than dividing by nothing.
func (a *Aggregator) Summarize(runID core.RunID, evals []rotation.Evaluation, excluded int) rotation.Summary {
	summary := rotation.Summary{
		RunID:     runID,
		Evaluated: len(evals),
		Excluded:  excluded,
	}
	if len(evals) == 0 {
		return summary
	}

	improvements := make([]float64, 0, len(evals))
	rmseBaselines := make([]float64, 0, len(evals))
	rmseAlternatives := make([]float64, 0, len(evals))

	for _, e := range evals {
		improvements = append(improvements, e.ImprovementPct)
		rmseBaselines = append(rmseBaselines, e.RMSEBaseline)
		rmseAlternatives = append(rmseAlternatives, e.RMSEAlternative)
		if e.Winner == rotation.WinnerAlternative {
			summary.AlternativeWins++
		}
	}

	summary.WinRatePct = float64(summary.AlternativeWins) / float64(len(evals)) * 100

	median, _ := stats.Median(improvements)
	summary.MedianImprovementPct = median

	meanBase, _ := stats.Mean(rmseBaselines)
	meanAlt, _ := stats.Mean(rmseAlternatives)
	summary.MeanRMSEBaseline = meanBase
	summary.MeanRMSEAlternative = meanAlt

	if a.targets != nil {
		summary.Calibration = &rotation.CalibrationCheck{
			Targets: *a.targets,
			Passed: withinTolerance(summary.WinRatePct, a.targets.WinRatePct, a.targets.TolerancePct) &&
				withinTolerance(summary.MedianImprovementPct, a.targets.MedianImprovementPct, a.targets.TolerancePct),
		}
	}

	return summary
}

func withinTolerance(got, want, tolerance float64) bool {
	return math.Abs(got-want) <= tolerance
}

// SortEvaluations orders results by galaxy name for deterministic rendering.
func SortEvaluations(evals []rotation.Evaluation) {
	sort.Slice(evals, func(i, j int) bool {
		return evals[i].Name < evals[j].Name
	})
}
