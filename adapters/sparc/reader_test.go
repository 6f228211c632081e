package sparc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotaudit/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleFile = `# Distance = 5.27 Mpc
# Rad   Vobs    errV    Vgas    Vdisk   Vbul
0.64    79.7    2.1     20.1    55.0    0.0
1.27    95.8    1.8     28.4    70.2    0.0
bad     row     here    x       y       z
2.55    111.4   1.5     35.0    81.0    0.0
-1.0    50.0    1.0     10.0    10.0    0.0
3.18    114.6   1.4     37.2    82.1
`

func TestReadCurve_ParsesValidRowsAndCountsSkips(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "NGC6503_rotmod.dat", sampleFile)

	reader := NewCorpusReader(DefaultConfig(dir))
	curve, err := reader.ReadCurve(path)
	require.NoError(t, err)

	assert.Equal(t, "NGC6503", curve.Name.String())
	// 3 valid rows; non-numeric, negative radius and short rows skipped,
	// comments not counted as skips
	assert.Equal(t, 3, curve.PointCount())
	assert.Equal(t, 3, curve.SkippedRows)

	first := curve.Samples[0]
	assert.InDelta(t, 0.64*3.08567758e19, first.RadiusM, 1e12)
	assert.InDelta(t, 79700.0, first.VObsMs, 1e-6)
	assert.Greater(t, first.VBarMs, 0.0)
}

func TestDiscover_PrefersPrimaryPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "NGC0001_rotmod.dat", sampleFile)
	writeFile(t, dir, "stray.dat", sampleFile)

	reader := NewCorpusReader(DefaultConfig(dir))
	files, err := reader.Discover()
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "NGC0001_rotmod.dat")
}

func TestDiscover_FallsBackToDatPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zwicky.dat", sampleFile)
	writeFile(t, dir, "andromeda.dat", sampleFile)

	reader := NewCorpusReader(DefaultConfig(dir))
	files, err := reader.Discover()
	require.NoError(t, err)

	// name-sorted, not enumeration order
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "andromeda.dat")
	assert.Contains(t, files[1], "zwicky.dat")
}

func TestDiscover_EmptyDirIsFatal(t *testing.T) {
	reader := NewCorpusReader(DefaultConfig(t.TempDir()))

	_, err := reader.Discover()
	require.Error(t, err)
	assert.Equal(t, errors.CodeCorpusNotFound, errors.GetCode(err))
}

func TestLoadCorpus_SkipsUnreadableFileAndContinues(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "NGC0001_rotmod.dat", sampleFile)
	unreadable := writeFile(t, dir, "NGC0002_rotmod.dat", sampleFile)
	require.NoError(t, os.Chmod(unreadable, 0o000))
	t.Cleanup(func() { _ = os.Chmod(unreadable, 0o644) })

	reader := NewCorpusReader(DefaultConfig(dir))
	curves, err := reader.LoadCorpus()
	require.NoError(t, err)

	assert.Len(t, curves, 1)
	assert.Equal(t, "NGC0001", curves[0].Name.String())
}

func TestParseRow_SkipReasons(t *testing.T) {
	cases := []struct {
		name string
		line string
		skip SkipReason
	}{
		{"comment", "# Rad Vobs errV Vgas Vdisk Vbul", SkipComment},
		{"blank", "   ", SkipComment},
		{"short row", "1.0 100.0 2.0 10.0 50.0", SkipFieldCount},
		{"non numeric", "1.0 100.0 2.0 ten 50.0 0.0", SkipNotNumeric},
		{"zero radius", "0.0 100.0 2.0 10.0 50.0 0.0", SkipNonPositive},
		{"negative velocity", "1.0 -5.0 2.0 10.0 50.0 0.0", SkipNonPositive},
		{"valid", "1.0 100.0 2.0 10.0 50.0 0.0", SkipNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.skip, ParseRow(tc.line).Skip)
		})
	}
}

func TestGalaxyName_SuffixHandling(t *testing.T) {
	assert.Equal(t, "NGC6503", GalaxyName("/data/NGC6503_rotmod.dat").String())
	assert.Equal(t, "DDO154", GalaxyName("DDO154.dat").String())
}
