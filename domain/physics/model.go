package physics

import "math"

// Model maps one (radius, baryonic velocity) pair to the two competing
// predictions: the baseline (mass-only) velocity and the alternative
// (modified-acceleration) velocity. All inputs and outputs are SI.
type Model struct {
	threshold float64
	shielding float64
}

// NewModel creates a velocity model with the given constants and no
// saturation shielding.
func NewModel(c Constants) *Model {
	return &Model{threshold: c.AccelThreshold}
}

// NewShieldedModel creates a velocity model whose threshold saturates
// exponentially in strong fields: effective a0 = a0 * exp(-gBar/(factor*a0)).
// A factor of 0 disables shielding entirely.
func NewShieldedModel(c Constants, factor float64) *Model {
	return &Model{threshold: c.AccelThreshold, shielding: factor}
}

// NewRawModel builds a model from an explicit acceleration threshold instead
// of derived constants. Threshold sweeps use this to test candidate values.
func NewRawModel(threshold, shieldingFactor float64) *Model {
	return &Model{threshold: threshold, shielding: shieldingFactor}
}

// Threshold returns the acceleration threshold the model was built with.
func (m *Model) Threshold() float64 {
	return m.threshold
}

// PredictBaseline is the null model: baryonic matter alone explains the
// curve, so the predicted velocity is the baryonic velocity itself.
func (m *Model) PredictBaseline(radiusM, vBarMs float64) float64 {
	return vBarMs
}

// PredictAlternative applies the modified-acceleration correction.
//
// gObs is the positive root of gObs² - gBar·gObs - gBar·a0 = 0, so
// gObs → gBar when gBar >> a0 and gObs → sqrt(gBar*a0) when gBar << a0.
// Returns 0 for non-positive inputs; callers treat 0 as "undefined", not as
// a genuine zero velocity.
func (m *Model) PredictAlternative(radiusM, vBarMs float64) float64 {
	if radiusM <= 0 || vBarMs <= 0 {
		return 0
	}

	gBar := vBarMs * vBarMs / radiusM
	a0 := m.effectiveThreshold(gBar)

	gObs := (gBar + math.Sqrt(gBar*gBar+4*gBar*a0)) / 2

	return math.Sqrt(gObs * radiusM)
}

// effectiveThreshold applies the optional saturation shielding. The added
// term under PredictAlternative's square root stays non-negative, so the
// alternative prediction never drops below the baseline.
func (m *Model) effectiveThreshold(gBar float64) float64 {
	if m.shielding <= 0 {
		return m.threshold
	}
	return m.threshold * math.Exp(-gBar/(m.shielding*m.threshold))
}
