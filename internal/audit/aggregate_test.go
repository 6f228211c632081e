package audit

import (
	"math"
	"reflect"
	"testing"

	"rotaudit/domain/core"
	"rotaudit/domain/rotation"
)

func evalFor(name string, rmseBase, rmseAlt float64) rotation.Evaluation {
	improvement := 0.0
	if rmseBase > 0 {
		improvement = (rmseBase - rmseAlt) / rmseBase * 100
	}
	winner := rotation.WinnerBaseline
	if rmseAlt < rmseBase {
		winner = rotation.WinnerAlternative
	}
	return rotation.Evaluation{
		Name:            core.GalaxyName(name),
		RMSEBaseline:    rmseBase,
		RMSEAlternative: rmseAlt,
		ImprovementPct:  improvement,
		Winner:          winner,
	}
}

func TestSummarize_ThreeGalaxyScenario(t *testing.T) {
	// RMSE pairs (10,8), (5,6), (20,15) → improvements {20%, -20%, 25%}
	evals := []rotation.Evaluation{
		evalFor("A", 10, 8),
		evalFor("B", 5, 6),
		evalFor("C", 20, 15),
	}

	summary := NewAggregator().Summarize(core.RunID("run-1"), evals, 0)

	if summary.Evaluated != 3 {
		t.Fatalf("expected 3 evaluated, got %d", summary.Evaluated)
	}
	if summary.AlternativeWins != 2 {
		t.Errorf("expected 2 alternative wins, got %d", summary.AlternativeWins)
	}
	if math.Abs(summary.WinRatePct-66.666666) > 0.01 {
		t.Errorf("expected win rate 66.7, got %f", summary.WinRatePct)
	}
	if math.Abs(summary.MedianImprovementPct-20) > 1e-9 {
		t.Errorf("expected median improvement 20%%, got %f", summary.MedianImprovementPct)
	}
}

func TestSummarize_EmptyCorpusIsZeroedNotPanicking(t *testing.T) {
	summary := NewAggregator().Summarize(core.RunID("run-2"), nil, 4)

	if summary.Evaluated != 0 || summary.WinRatePct != 0 || summary.MedianImprovementPct != 0 {
		t.Errorf("empty corpus must produce a zeroed summary: %+v", summary)
	}
	if summary.Excluded != 4 {
		t.Errorf("excluded count must survive: %d", summary.Excluded)
	}
}

func TestSummarize_CalibrationCheck(t *testing.T) {
	evals := []rotation.Evaluation{
		evalFor("A", 10, 8),
		evalFor("B", 5, 6),
		evalFor("C", 20, 15),
	}

	// Win rate 66.7, median 20: targets within ±15 points pass
	pass := NewCalibratedAggregator(rotation.CalibrationTargets{
		WinRatePct:           56.0,
		MedianImprovementPct: 13.1,
		TolerancePct:         15.0,
	}).Summarize(core.RunID("run-3"), evals, 0)

	if pass.Calibration == nil || !pass.Calibration.Passed {
		t.Errorf("expected calibration pass, got %+v", pass.Calibration)
	}

	fail := NewCalibratedAggregator(rotation.CalibrationTargets{
		WinRatePct:           56.0,
		MedianImprovementPct: 13.1,
		TolerancePct:         5.0,
	}).Summarize(core.RunID("run-4"), evals, 0)

	if fail.Calibration == nil || fail.Calibration.Passed {
		t.Errorf("expected calibration failure, got %+v", fail.Calibration)
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	evals := []rotation.Evaluation{
		evalFor("A", 12, 9),
		evalFor("B", 7, 8),
		evalFor("C", 30, 22),
		evalFor("D", 4, 4),
	}

	first := NewAggregator().Summarize(core.RunID("same"), evals, 1)
	second := NewAggregator().Summarize(core.RunID("same"), evals, 1)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("summaries of an unchanged corpus must be identical:\n%+v\n%+v", first, second)
	}
}

func TestSortEvaluations_ByName(t *testing.T) {
	evals := []rotation.Evaluation{
		evalFor("NGC6503", 10, 8),
		evalFor("DDO154", 5, 4),
		evalFor("UGC2885", 20, 15),
	}

	SortEvaluations(evals)

	got := []string{evals[0].Name.String(), evals[1].Name.String(), evals[2].Name.String()}
	want := []string{"DDO154", "NGC6503", "UGC2885"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
