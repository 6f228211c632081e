package config

import (
	"os"
	"strconv"

	"rotaudit/domain/physics"
	"rotaudit/internal/errors"
)

// Config represents the complete audit configuration
type Config struct {
	Corpus      CorpusConfig
	Physics     PhysicsConfig
	Audit       AuditConfig
	Calibration CalibrationConfig
	Report      ReportConfig
}

// CorpusConfig locates the measurement files
type CorpusConfig struct {
	DataDir         string
	PrimaryPattern  string
	FallbackPattern string
}

// PhysicsConfig parameterizes the constants and the velocity model
type PhysicsConfig struct {
	HubbleRateKmsMpc float64
	Divisor          float64 // 2π or 4π, always explicit
	ShieldingFactor  float64 // 0 disables saturation shielding
}

// AuditConfig controls evaluation and execution
type AuditConfig struct {
	MinSamples int // curves need strictly more valid samples than this
	Workers    int
}

// CalibrationConfig parameterizes the optional reproducibility self-check
type CalibrationConfig struct {
	Enabled              bool
	WinRatePct           float64
	MedianImprovementPct float64
	TolerancePct         float64
}

// ReportConfig controls rendering targets
type ReportConfig struct {
	TextPath  string // empty writes the table to stdout only
	ExcelPath string // empty disables the workbook export
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Corpus: CorpusConfig{
			DataDir:         getEnvOrDefault("SPARC_DATA_DIR", "sparc_data"),
			PrimaryPattern:  getEnvOrDefault("SPARC_PRIMARY_PATTERN", "*_rotmod.dat"),
			FallbackPattern: getEnvOrDefault("SPARC_FALLBACK_PATTERN", "*.dat"),
		},
		Physics: PhysicsConfig{
			HubbleRateKmsMpc: getEnvFloatOrDefault("HUBBLE_RATE", physics.DefaultHubbleRate),
			Divisor:          physics.DivisorCircle,
			ShieldingFactor:  getEnvFloatOrDefault("SHIELDING_FACTOR", 0),
		},
		Audit: AuditConfig{
			MinSamples: getEnvIntOrDefault("MIN_SAMPLES", 5),
			Workers:    getEnvIntOrDefault("AUDIT_WORKERS", 4),
		},
		Calibration: CalibrationConfig{
			Enabled:              getEnvBoolOrDefault("CALIBRATION_ENABLED", false),
			WinRatePct:           getEnvFloatOrDefault("CALIBRATION_WIN_RATE", 56.0),
			MedianImprovementPct: getEnvFloatOrDefault("CALIBRATION_MEDIAN_IMPROVEMENT", 13.1),
			TolerancePct:         getEnvFloatOrDefault("CALIBRATION_TOLERANCE", 5.0),
		},
		Report: ReportConfig{
			TextPath:  getEnvOrDefault("REPORT_TEXT_PATH", ""),
			ExcelPath: getEnvOrDefault("REPORT_EXCEL_PATH", ""),
		},
	}

	switch getEnvOrDefault("GEOMETRY_DIVISOR", "2pi") {
	case "2pi":
		cfg.Physics.Divisor = physics.DivisorCircle
	case "4pi":
		cfg.Physics.Divisor = physics.DivisorSphere
	default:
		return nil, errors.ConfigInvalid("GEOMETRY_DIVISOR must be 2pi or 4pi")
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Corpus.DataDir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if cfg.Physics.HubbleRateKmsMpc <= 0 {
		return errors.ConfigInvalid("Hubble rate must be positive")
	}
	if cfg.Physics.ShieldingFactor < 0 {
		return errors.ConfigInvalid("shielding factor cannot be negative")
	}
	if cfg.Audit.MinSamples < 0 {
		return errors.ConfigInvalid("minimum sample count cannot be negative")
	}
	if cfg.Audit.Workers < 1 {
		return errors.ConfigInvalid("at least one worker is required")
	}
	if cfg.Calibration.Enabled && cfg.Calibration.TolerancePct <= 0 {
		return errors.ConfigInvalid("calibration tolerance must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
