package sparc

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rotaudit/domain/core"
	"rotaudit/domain/rotation"
	"rotaudit/internal"
	"rotaudit/internal/errors"
)

// CorpusReader discovers and parses rotation-curve measurement files.
type CorpusReader struct {
	cfg    Config
	logger *internal.Logger
}

// NewCorpusReader creates a reader for the configured corpus directory.
func NewCorpusReader(cfg Config) *CorpusReader {
	return &CorpusReader{cfg: cfg, logger: internal.DefaultLogger}
}

// Discover lists the measurement files, trying the primary pattern first and
// the fallback pattern only when the primary matches nothing. Paths come back
// name-sorted so downstream output never depends on filesystem enumeration
// order. Returns CorpusNotFound when neither pattern matches.
func (r *CorpusReader) Discover() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(r.cfg.DataDir, r.cfg.PrimaryPattern))
	if err != nil {
		return nil, errors.Wrap(err, "invalid primary pattern")
	}

	if len(files) == 0 && r.cfg.FallbackPattern != "" {
		files, err = filepath.Glob(filepath.Join(r.cfg.DataDir, r.cfg.FallbackPattern))
		if err != nil {
			return nil, errors.Wrap(err, "invalid fallback pattern")
		}
	}

	if len(files) == 0 {
		return nil, errors.CorpusNotFound(r.cfg.DataDir, []string{r.cfg.PrimaryPattern, r.cfg.FallbackPattern})
	}

	sort.Strings(files)
	return files, nil
}

// LoadCorpus discovers and parses every measurement file. Files that cannot
// be opened are skipped with a warning; only an empty corpus is fatal. Curves
// with few samples are still returned, eligibility is the evaluator's call.
func (r *CorpusReader) LoadCorpus() ([]rotation.Curve, error) {
	files, err := r.Discover()
	if err != nil {
		return nil, err
	}

	r.logger.Info("found %d rotation-curve files in %s", len(files), r.cfg.DataDir)

	curves := make([]rotation.Curve, 0, len(files))
	for _, path := range files {
		curve, err := r.ReadCurve(path)
		if err != nil {
			r.logger.Warn("skipping %s: %v", path, err)
			continue
		}
		curves = append(curves, curve)
	}

	return curves, nil
}

// ReadCurve parses a single measurement file into a curve. Rejected rows are
// counted, not reported; noisy real-world files shed rows routinely.
func (r *CorpusReader) ReadCurve(path string) (rotation.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return rotation.Curve{}, errors.FileRead(path, err)
	}
	defer f.Close()

	curve := rotation.Curve{Name: GalaxyName(path)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		row := ParseRow(scanner.Text())
		switch {
		case row.Valid():
			curve.Samples = append(curve.Samples, row.Sample)
		case row.Skip != SkipComment:
			curve.SkippedRows++
		}
	}
	if err := scanner.Err(); err != nil {
		return rotation.Curve{}, errors.FileRead(path, err)
	}

	return curve, nil
}

// GalaxyName derives the object name from the file identity: the rotmod
// suffix is stripped when present, otherwise just the extension.
func GalaxyName(path string) core.GalaxyName {
	base := filepath.Base(path)
	if name, ok := strings.CutSuffix(base, "_rotmod.dat"); ok {
		return core.GalaxyName(name)
	}
	return core.GalaxyName(strings.TrimSuffix(base, filepath.Ext(base)))
}
