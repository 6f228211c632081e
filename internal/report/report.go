// Package report renders audit results. Rendering is purely presentational:
// it never recomputes or alters a value produced by the audit fold.
package report

import (
	"fmt"
	"io"
	"strings"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
	"rotaudit/internal/audit"
)

// Renderer writes the per-galaxy table and the corpus summary block.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer targeting w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

const tableWidth = 78

// RenderTable writes one row per evaluated galaxy. Callers pass evaluations
// already name-sorted; the renderer does not reorder.
func (r *Renderer) RenderTable(evals []rotation.Evaluation) {
	fmt.Fprintf(r.w, "%-14s | %5s | %12s | %12s | %-11s | %8s\n",
		"GALAXY", "PTS", "RMSE BASE", "RMSE ALT", "WINNER", "IMPROVE")
	fmt.Fprintln(r.w, strings.Repeat("-", tableWidth))

	for _, e := range evals {
		fmt.Fprintf(r.w, "%-14s | %5d | %9.2f km/s | %9.2f km/s | %-11s | %+7.1f%%\n",
			e.Name, e.Points,
			e.RMSEBaseline/physics.KmsInMs,
			e.RMSEAlternative/physics.KmsInMs,
			e.Winner, e.ImprovementPct)
	}
}

// RenderSummary writes the corpus summary block, including the calibration
// verdict when the self-check was configured.
func (r *Renderer) RenderSummary(s rotation.Summary) {
	fmt.Fprintln(r.w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(r.w, "RUN:                  %s\n", s.RunID)
	fmt.Fprintf(r.w, "GALAXIES EVALUATED:   %d (%d excluded for too few samples)\n", s.Evaluated, s.Excluded)
	fmt.Fprintf(r.w, "ALTERNATIVE WINS:     %d (%.1f%%)\n", s.AlternativeWins, s.WinRatePct)
	fmt.Fprintf(r.w, "MEDIAN IMPROVEMENT:   %.1f%%\n", s.MedianImprovementPct)
	fmt.Fprintf(r.w, "MEAN RMSE (BASE):     %.2f km/s\n", s.MeanRMSEBaseline/physics.KmsInMs)
	fmt.Fprintf(r.w, "MEAN RMSE (ALT):      %.2f km/s\n", s.MeanRMSEAlternative/physics.KmsInMs)

	if s.Calibration != nil {
		verdict := "FAIL"
		if s.Calibration.Passed {
			verdict = "PASS"
		}
		t := s.Calibration.Targets
		fmt.Fprintf(r.w, "CALIBRATION:          %s (targets %.1f%% win rate, %.1f%% median, ±%.1f)\n",
			verdict, t.WinRatePct, t.MedianImprovementPct, t.TolerancePct)
	}
}

// RenderRegimes writes the field-strength regime breakdown.
func (r *Renderer) RenderRegimes(report audit.RegimeReport) {
	if len(report.Bins) == 0 {
		fmt.Fprintln(r.w, "regime analysis needs at least 3 evaluated galaxies")
		return
	}

	fmt.Fprintf(r.w, "%-18s | %5s | %10s | %14s\n", "REGIME", "N", "ALT WINS", "MEAN FIELD")
	fmt.Fprintln(r.w, strings.Repeat("-", 58))
	for _, bin := range report.Bins {
		fmt.Fprintf(r.w, "%-18s | %5d | %9.1f%% | %10.3e m/s²\n",
			bin.Regime, bin.Count, bin.WinRatePct, bin.MeanFieldMs2)
	}
	fmt.Fprintf(r.w, "\nlog10(field) vs improvement correlation: %+.3f\n", report.FieldImprovementCorr)
}

// RenderSweep writes the threshold scan outcome.
func (r *Renderer) RenderSweep(result *audit.SweepResult) {
	fmt.Fprintf(r.w, "THRESHOLD SWEEP (%d candidates, %d samples pooled)\n", len(result.Points), result.SamplesPooled)
	fmt.Fprintln(r.w, strings.Repeat("-", 58))
	fmt.Fprintf(r.w, "REFERENCE a0:   %.4e m/s²\n", result.Reference)
	fmt.Fprintf(r.w, "BEST a0:        %.4e m/s² (%.3fx reference)\n", result.Best.Threshold, result.BestOverRef)
	fmt.Fprintf(r.w, "BEST RMSE:      %.2f km/s\n", result.Best.GlobalRMSE/physics.KmsInMs)
}
