package physics

import "math"

// Unit conversions for SPARC rotation-curve data.
const (
	// SpeedOfLight in m/s (exact, SI definition)
	SpeedOfLight = 299792458.0

	// KpcInMeters converts kiloparsecs to meters
	KpcInMeters = 3.08567758e19

	// MpcInMeters converts megaparsecs to meters
	MpcInMeters = 3.08567758e22

	// KmsInMs converts km/s to m/s
	KmsInMs = 1000.0
)

// Geometric divisor choices for the acceleration threshold. The choice
// materially changes corpus-level results, so it is always explicit
// configuration, never an implicit literal.
const (
	// DivisorCircle derives the threshold from circular geometry (2π)
	DivisorCircle = 2 * math.Pi

	// DivisorSphere derives the threshold from spherical geometry (4π)
	DivisorSphere = 4 * math.Pi
)

// DefaultHubbleRate is the Hubble rate in km/s/Mpc used by the reference audits
const DefaultHubbleRate = 67.30

// Constants holds the fixed numeric inputs of the velocity models plus the
// one derived value, the acceleration threshold. Immutable for the lifetime
// of a run.
type Constants struct {
	C              float64 // speed of light, m/s
	HubbleRateSI   float64 // Hubble rate, 1/s
	Divisor        float64 // dimensionless geometric divisor
	AccelThreshold float64 // derived: C * H0 / Divisor, m/s^2
}

// NewConstants derives the acceleration threshold from a Hubble rate given in
// km/s/Mpc and an explicit geometric divisor.
func NewConstants(hubbleRateKmsMpc, divisor float64) Constants {
	h0 := hubbleRateKmsMpc * KmsInMs / MpcInMeters
	return Constants{
		C:              SpeedOfLight,
		HubbleRateSI:   h0,
		Divisor:        divisor,
		AccelThreshold: SpeedOfLight * h0 / divisor,
	}
}

// DefaultConstants returns the reference configuration: H0 = 67.30 km/s/Mpc
// with the circular (2π) divisor, giving a threshold near 1.04e-10 m/s^2.
func DefaultConstants() Constants {
	return NewConstants(DefaultHubbleRate, DivisorCircle)
}
