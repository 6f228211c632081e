package audit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"rotaudit/domain/rotation"
)

// Regime labels a third of the corpus by mean baryonic field strength.
type Regime string

const (
	RegimeLow  Regime = "low-acceleration"
	RegimeMid  Regime = "mid-acceleration"
	RegimeHigh Regime = "high-acceleration"
)

// RegimeStats aggregates one field-strength bin.
type RegimeStats struct {
	Regime          Regime
	Count           int
	AlternativeWins int
	WinRatePct      float64
	MeanFieldMs2    float64
}

// RegimeReport splits evaluations into three field-strength regimes and
// correlates field strength with improvement. A negative correlation means
// the alternative model earns its wins where gravity is weak, which is
// exactly where its correction term dominates.
type RegimeReport struct {
	Bins                 []RegimeStats
	FieldImprovementCorr float64 // Pearson r between log10(field) and improvement
}

// AnalyzeRegimes bins the evaluations by mean field strength. Needs at least
// one evaluation per bin; returns an empty report for fewer than 3 inputs.
func AnalyzeRegimes(evals []rotation.Evaluation) RegimeReport {
	if len(evals) < 3 {
		return RegimeReport{}
	}

	sorted := make([]rotation.Evaluation, len(evals))
	copy(sorted, evals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MeanFieldMs2 < sorted[j].MeanFieldMs2
	})

	third := len(sorted) / 3
	bounds := [][2]int{
		{0, third},
		{third, 2 * third},
		{2 * third, len(sorted)},
	}
	labels := []Regime{RegimeLow, RegimeMid, RegimeHigh}

	report := RegimeReport{Bins: make([]RegimeStats, 0, 3)}
	for i, b := range bounds {
		report.Bins = append(report.Bins, binStats(labels[i], sorted[b[0]:b[1]]))
	}

	logField := make([]float64, 0, len(sorted))
	improvement := make([]float64, 0, len(sorted))
	for _, e := range sorted {
		if e.MeanFieldMs2 <= 0 {
			continue
		}
		logField = append(logField, math.Log10(e.MeanFieldMs2))
		improvement = append(improvement, e.ImprovementPct)
	}
	if len(logField) >= 2 {
		report.FieldImprovementCorr = stat.Correlation(logField, improvement, nil)
	}

	return report
}

func binStats(label Regime, group []rotation.Evaluation) RegimeStats {
	s := RegimeStats{Regime: label, Count: len(group)}
	if len(group) == 0 {
		return s
	}

	var fieldSum float64
	for _, e := range group {
		fieldSum += e.MeanFieldMs2
		if e.Winner == rotation.WinnerAlternative {
			s.AlternativeWins++
		}
	}

	s.WinRatePct = float64(s.AlternativeWins) / float64(len(group)) * 100
	s.MeanFieldMs2 = fieldSum / float64(len(group))
	return s
}
