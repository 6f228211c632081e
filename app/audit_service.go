package app

import (
	"context"
	"time"

	"rotaudit/adapters/sparc"
	"rotaudit/domain/core"
	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
	"rotaudit/internal"
	"rotaudit/internal/audit"
	"rotaudit/internal/config"
)

// AuditService orchestrates one corpus audit: load, evaluate both models,
// aggregate. It owns no state between runs; every Run is a fresh fold.
type AuditService struct {
	cfg    *config.Config
	logger *internal.Logger
}

// AuditResult is the complete outcome of one audit run.
type AuditResult struct {
	RunID       core.RunID
	Constants   physics.Constants
	Evaluations []rotation.Evaluation // name-sorted
	Summary     rotation.Summary
	RuntimeMs   int64
}

// NewAuditService creates an audit service from validated configuration.
func NewAuditService(cfg *config.Config) *AuditService {
	return &AuditService{cfg: cfg, logger: internal.DefaultLogger}
}

// Constants derives the physical constants from the configured Hubble rate
// and divisor.
func (s *AuditService) Constants() physics.Constants {
	return physics.NewConstants(s.cfg.Physics.HubbleRateKmsMpc, s.cfg.Physics.Divisor)
}

// LoadCorpus reads every measurement file under the configured directory.
func (s *AuditService) LoadCorpus() ([]rotation.Curve, error) {
	reader := sparc.NewCorpusReader(sparc.Config{
		DataDir:         s.cfg.Corpus.DataDir,
		PrimaryPattern:  s.cfg.Corpus.PrimaryPattern,
		FallbackPattern: s.cfg.Corpus.FallbackPattern,
	})
	return reader.LoadCorpus()
}

// Run executes the full pipeline and returns the immutable result set.
func (s *AuditService) Run(ctx context.Context) (*AuditResult, error) {
	started := time.Now()
	runID := core.RunID(core.NewID())

	constants := s.Constants()
	s.logger.Info("run %s: a0 = %.4e m/s² (divisor %.4f)", runID, constants.AccelThreshold, constants.Divisor)

	curves, err := s.LoadCorpus()
	if err != nil {
		return nil, err
	}

	model := physics.NewShieldedModel(constants, s.cfg.Physics.ShieldingFactor)
	evaluator := audit.NewEvaluator(model, s.cfg.Audit.MinSamples)
	executor := audit.NewConcurrentEvaluator(evaluator, s.cfg.Audit.Workers)

	evals, excluded, err := executor.EvaluateAll(ctx, curves)
	if err != nil {
		return nil, err
	}

	summary := s.aggregator().Summarize(runID, evals, excluded)
	s.logger.Info("run %s: %d galaxies evaluated, %.1f%% alternative wins", runID, summary.Evaluated, summary.WinRatePct)

	return &AuditResult{
		RunID:       runID,
		Constants:   constants,
		Evaluations: evals,
		Summary:     summary,
		RuntimeMs:   time.Since(started).Milliseconds(),
	}, nil
}

func (s *AuditService) aggregator() *audit.Aggregator {
	if !s.cfg.Calibration.Enabled {
		return audit.NewAggregator()
	}
	return audit.NewCalibratedAggregator(rotation.CalibrationTargets{
		WinRatePct:           s.cfg.Calibration.WinRatePct,
		MedianImprovementPct: s.cfg.Calibration.MedianImprovementPct,
		TolerancePct:         s.cfg.Calibration.TolerancePct,
	})
}
