package audit

import (
	"math"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
)

// Evaluator scores both velocity models against one curve's samples.
type Evaluator struct {
	model      *physics.Model
	minSamples int
}

// NewEvaluator creates an evaluator. Curves need strictly more than
// minSamples valid samples to be eligible.
func NewEvaluator(model *physics.Model, minSamples int) *Evaluator {
	return &Evaluator{model: model, minSamples: minSamples}
}

// Eligible applies the data-sufficiency filter. An ineligible curve is not an
// error, it simply carries too few points to score.
func (e *Evaluator) Eligible(c rotation.Curve) bool {
	return c.PointCount() > e.minSamples
}

// Evaluate computes both models' RMSE against the observed curve and
// classifies the winner. Deterministic; no side effects.
func (e *Evaluator) Evaluate(c rotation.Curve) rotation.Evaluation {
	var sqErrBaseline, sqErrAlternative, fieldSum float64

	for _, s := range c.Samples {
		baseline := e.model.PredictBaseline(s.RadiusM, s.VBarMs)
		alternative := e.model.PredictAlternative(s.RadiusM, s.VBarMs)

		dBase := s.VObsMs - baseline
		dAlt := s.VObsMs - alternative
		sqErrBaseline += dBase * dBase
		sqErrAlternative += dAlt * dAlt

		if s.RadiusM > 0 {
			fieldSum += s.VBarMs * s.VBarMs / s.RadiusM
		}
	}

	n := float64(c.PointCount())
	rmseBaseline := math.Sqrt(sqErrBaseline / n)
	rmseAlternative := math.Sqrt(sqErrAlternative / n)

	// Guard: a perfect baseline leaves nothing to improve on
	improvement := 0.0
	if rmseBaseline > 0 {
		improvement = (rmseBaseline - rmseAlternative) / rmseBaseline * 100
	}

	winner := rotation.WinnerBaseline
	if rmseAlternative < rmseBaseline {
		winner = rotation.WinnerAlternative
	}

	return rotation.Evaluation{
		Name:            c.Name,
		Points:          c.PointCount(),
		RMSEBaseline:    rmseBaseline,
		RMSEAlternative: rmseAlternative,
		ImprovementPct:  improvement,
		Winner:          winner,
		MeanFieldMs2:    fieldSum / n,
	}
}
