package app

import (
	"rotaudit/internal"
	"rotaudit/internal/audit"
	"rotaudit/internal/config"
)

// SweepService scans candidate acceleration thresholds over a loaded corpus.
type SweepService struct {
	auditSvc *AuditService
	logger   *internal.Logger
}

// NewSweepService creates a sweep service sharing the audit configuration.
func NewSweepService(cfg *config.Config) *SweepService {
	return &SweepService{
		auditSvc: NewAuditService(cfg),
		logger:   internal.DefaultLogger,
	}
}

// Run loads the corpus and executes the threshold scan.
func (s *SweepService) Run(sweepCfg audit.SweepConfig) (*audit.SweepResult, error) {
	constants := s.auditSvc.Constants()

	curves, err := s.auditSvc.LoadCorpus()
	if err != nil {
		return nil, err
	}

	s.logger.Info("sweeping %d thresholds around %.4e m/s²", sweepCfg.Steps, constants.AccelThreshold)
	return audit.RunThresholdSweep(constants, curves, sweepCfg)
}
