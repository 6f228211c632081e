package rotation

import (
	"math"

	"rotaudit/domain/core"
	"rotaudit/domain/physics"
)

// RadialSample is one valid measurement row of a rotation curve, in SI units.
type RadialSample struct {
	RadiusM float64 // radius, meters, > 0
	VObsMs  float64 // observed velocity, m/s, > 0
	VBarMs  float64 // derived baryonic velocity, m/s, >= 0
}

// Curve is one object's ordered sequence of valid samples plus bookkeeping
// about rows the parse rejected. A curve with few samples is still a valid
// curve; eligibility for evaluation is the evaluator's concern.
type Curve struct {
	Name        core.GalaxyName
	Samples     []RadialSample
	SkippedRows int
}

// PointCount returns the number of valid samples.
func (c Curve) PointCount() int {
	return len(c.Samples)
}

// Winner identifies which model scored the lower RMSE for a curve.
type Winner string

const (
	WinnerBaseline    Winner = "baseline"
	WinnerAlternative Winner = "alternative"
)

// Evaluation is the immutable per-curve scoring result.
type Evaluation struct {
	Name            core.GalaxyName
	Points          int
	RMSEBaseline    float64 // m/s
	RMSEAlternative float64 // m/s
	ImprovementPct  float64
	Winner          Winner
	MeanFieldMs2    float64 // mean baryonic acceleration over the curve, m/s^2
}

// CalibrationTargets are externally supplied expectations used by the
// optional reproducibility self-check. They are fixtures, not truth: the
// divisor choice alone moves them materially.
type CalibrationTargets struct {
	WinRatePct           float64
	MedianImprovementPct float64
	TolerancePct         float64
}

// CalibrationCheck is the outcome of comparing a summary against targets.
type CalibrationCheck struct {
	Targets CalibrationTargets
	Passed  bool
}

// Summary is the corpus-level aggregate, built once after the fold.
type Summary struct {
	RunID                core.RunID
	Evaluated            int
	Excluded             int // curves below the sample-count threshold
	AlternativeWins      int
	WinRatePct           float64
	MedianImprovementPct float64
	MeanRMSEBaseline     float64
	MeanRMSEAlternative  float64
	Calibration          *CalibrationCheck
}

// BaryonicSpeed combines the gas, disk and bulge component velocities (km/s,
// sign preserved) into a single baryonic velocity in m/s. Negative component
// contributions subtract their squares; a net negative sum clamps to zero.
func BaryonicSpeed(vGasKms, vDiskKms, vBulKms float64) float64 {
	sq := signedSquare(vGasKms) + signedSquare(vDiskKms) + signedSquare(vBulKms)
	if sq < 0 {
		sq = 0
	}
	return math.Sqrt(sq) * physics.KmsInMs
}

func signedSquare(v float64) float64 {
	return math.Abs(v) * v
}
