package audit

import (
	"math"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
	"rotaudit/internal/errors"
)

// SweepConfig controls the threshold scan: Steps candidate values spread
// linearly across [LoFactor, HiFactor] times the derived threshold.
type SweepConfig struct {
	Steps           int
	LoFactor        float64
	HiFactor        float64
	ShieldingFactor float64
}

// DefaultSweepConfig mirrors the reference scan: 100 candidates between half
// and twice the derived value.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Steps: 100, LoFactor: 0.5, HiFactor: 2.0}
}

// SweepPoint is one candidate threshold with its pooled corpus RMSE.
type SweepPoint struct {
	Threshold  float64 // m/s^2
	GlobalRMSE float64 // m/s, pooled over every sample in the corpus
}

// SweepResult reports the full scan plus the best candidate relative to the
// derived reference threshold.
type SweepResult struct {
	Reference     float64 // the derived threshold the scan is centered on
	Best          SweepPoint
	BestOverRef   float64 // Best.Threshold / Reference
	Points        []SweepPoint
	SamplesPooled int
}

// RunThresholdSweep scans candidate acceleration thresholds and scores each
// by the alternative model's pooled RMSE over the whole corpus. The scan
// treats the threshold as a free parameter; comparing the minimum against the
// derived reference is the caller's judgement call.
func RunThresholdSweep(constants physics.Constants, curves []rotation.Curve, cfg SweepConfig) (*SweepResult, error) {
	if cfg.Steps < 2 {
		return nil, errors.InvalidInput("sweep needs at least 2 steps")
	}
	if cfg.LoFactor <= 0 || cfg.HiFactor <= cfg.LoFactor {
		return nil, errors.InvalidInput("sweep range must satisfy 0 < lo < hi")
	}

	samples := 0
	for _, c := range curves {
		samples += c.PointCount()
	}
	if samples == 0 {
		return nil, errors.InvalidInput("sweep needs a non-empty corpus")
	}

	ref := constants.AccelThreshold
	start := ref * cfg.LoFactor
	stepSize := ref * (cfg.HiFactor - cfg.LoFactor) / float64(cfg.Steps)

	result := &SweepResult{
		Reference:     ref,
		Points:        make([]SweepPoint, 0, cfg.Steps),
		SamplesPooled: samples,
		Best:          SweepPoint{GlobalRMSE: math.Inf(1)},
	}

	for i := 0; i < cfg.Steps; i++ {
		candidate := start + float64(i)*stepSize
		model := physics.NewRawModel(candidate, cfg.ShieldingFactor)

		var sqErr float64
		for _, c := range curves {
			for _, s := range c.Samples {
				d := s.VObsMs - model.PredictAlternative(s.RadiusM, s.VBarMs)
				sqErr += d * d
			}
		}

		point := SweepPoint{
			Threshold:  candidate,
			GlobalRMSE: math.Sqrt(sqErr / float64(samples)),
		}
		result.Points = append(result.Points, point)

		if point.GlobalRMSE < result.Best.GlobalRMSE {
			result.Best = point
		}
	}

	result.BestOverRef = result.Best.Threshold / ref
	return result, nil
}
