package sparc

import (
	"strconv"
	"strings"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
)

// SkipReason classifies why a row was rejected during parsing. Row-level
// rejection is expected and silent; the reasons exist so skip counts stay
// inspectable instead of being swallowed.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipComment     SkipReason = "comment"
	SkipFieldCount  SkipReason = "field_count"
	SkipNotNumeric  SkipReason = "not_numeric"
	SkipNonPositive SkipReason = "non_positive"
)

// RowResult is the outcome of parsing one data line: either a valid sample
// or a skip with its reason.
type RowResult struct {
	Sample rotation.RadialSample
	Skip   SkipReason
}

// Valid reports whether the row produced a usable sample.
func (r RowResult) Valid() bool {
	return r.Skip == SkipNone
}

// minFields is the SPARC rotmod column count this loader requires:
// radius, v_obs, v_obs_err, v_gas, v_disk, v_bulge.
const minFields = 6

// ParseRow parses one line of a rotmod file. Field 2 (the observational
// error) is read past but unused.
func ParseRow(line string) RowResult {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return RowResult{Skip: SkipComment}
	}

	fields := strings.Fields(trimmed)
	if len(fields) < minFields {
		return RowResult{Skip: SkipFieldCount}
	}

	values := make([]float64, 0, minFields)
	for _, f := range fields[:minFields] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RowResult{Skip: SkipNotNumeric}
		}
		values = append(values, v)
	}

	rKpc := values[0]
	vObsKms := values[1]
	if rKpc <= 0 || vObsKms <= 0 {
		return RowResult{Skip: SkipNonPositive}
	}

	return RowResult{Sample: rotation.RadialSample{
		RadiusM: rKpc * physics.KpcInMeters,
		VObsMs:  vObsKms * physics.KmsInMs,
		VBarMs:  rotation.BaryonicSpeed(values[3], values[4], values[5]),
	}}
}
