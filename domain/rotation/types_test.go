package rotation

import (
	"math"
	"testing"

	"rotaudit/domain/physics"
)

func TestBaryonicSpeed_CombinesComponents(t *testing.T) {
	// 3-4-0 triangle: sqrt(9+16) = 5 km/s
	got := BaryonicSpeed(3, 4, 0)
	want := 5.0 * physics.KmsInMs
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f m/s, got %f", want, got)
	}
}

func TestBaryonicSpeed_PreservesComponentSign(t *testing.T) {
	// A negative gas velocity subtracts its square instead of adding it.
	with := BaryonicSpeed(10, 50, 0)
	against := BaryonicSpeed(-10, 50, 0)

	if against >= with {
		t.Errorf("negative component should reduce the total: %f >= %f", against, with)
	}

	want := math.Sqrt(50*50-10*10) * physics.KmsInMs
	if math.Abs(against-want) > 1e-9 {
		t.Errorf("expected %f m/s, got %f", want, against)
	}
}

func TestBaryonicSpeed_ClampsNetNegativeToZero(t *testing.T) {
	if got := BaryonicSpeed(-100, 1, 0); got != 0 {
		t.Errorf("net negative sum must clamp to 0, got %f", got)
	}
}

func TestCurve_PointCount(t *testing.T) {
	c := Curve{Name: "NGC6503", Samples: make([]RadialSample, 7), SkippedRows: 2}
	if c.PointCount() != 7 {
		t.Errorf("expected 7 points, got %d", c.PointCount())
	}
}
