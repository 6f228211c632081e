package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rotaudit/app"
	"rotaudit/domain/physics"
	"rotaudit/internal/audit"
	"rotaudit/internal/config"
	"rotaudit/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rotaudit-cli",
		Short: "Rotation-curve model audit over a SPARC-format corpus",
	}

	rootCmd.AddCommand(
		newAuditCmd(),
		newSweepCmd(),
		newDiagnoseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags overlays CLI flags on top of the env-derived configuration.
type commonFlags struct {
	dataDir    string
	divisor    string
	hubbleRate float64
	shielding  float64
	minSamples int
	workers    int
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "directory containing *_rotmod.dat files")
	cmd.Flags().StringVar(&f.divisor, "divisor", "", "geometric divisor: 2pi or 4pi")
	cmd.Flags().Float64Var(&f.hubbleRate, "hubble", 0, "Hubble rate in km/s/Mpc")
	cmd.Flags().Float64Var(&f.shielding, "shielding", -1, "saturation shielding factor (0 disables)")
	cmd.Flags().IntVar(&f.minSamples, "min-samples", -1, "curves need strictly more valid samples than this")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent evaluation workers")
}

func (f *commonFlags) apply(cfg *config.Config) error {
	if f.dataDir != "" {
		cfg.Corpus.DataDir = f.dataDir
	}
	switch f.divisor {
	case "":
	case "2pi":
		cfg.Physics.Divisor = physics.DivisorCircle
	case "4pi":
		cfg.Physics.Divisor = physics.DivisorSphere
	default:
		return fmt.Errorf("divisor must be 2pi or 4pi, got %q", f.divisor)
	}
	if f.hubbleRate > 0 {
		cfg.Physics.HubbleRateKmsMpc = f.hubbleRate
	}
	if f.shielding >= 0 {
		cfg.Physics.ShieldingFactor = f.shielding
	}
	if f.minSamples >= 0 {
		cfg.Audit.MinSamples = f.minSamples
	}
	if f.workers > 0 {
		cfg.Audit.Workers = f.workers
	}
	return nil
}

func loadConfig(flags *commonFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := flags.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAuditCmd() *cobra.Command {
	flags := &commonFlags{}
	var excelPath string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Score both velocity models against every galaxy in the corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			result, err := app.NewAuditService(cfg).Run(context.Background())
			if err != nil {
				return err
			}

			renderer := report.NewRenderer(cmd.OutOrStdout())
			renderer.RenderTable(result.Evaluations)
			renderer.RenderSummary(result.Summary)

			if excelPath != "" {
				if err := report.ExportWorkbook(excelPath, result.Evaluations, result.Summary); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nworkbook saved to %s\n", excelPath)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&excelPath, "excel", "", "also export results to an .xlsx workbook")
	return cmd
}

func newSweepCmd() *cobra.Command {
	flags := &commonFlags{}
	sweepCfg := audit.DefaultSweepConfig()

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan candidate acceleration thresholds for the pooled-RMSE minimum",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			sweepCfg.ShieldingFactor = cfg.Physics.ShieldingFactor

			result, err := app.NewSweepService(cfg).Run(sweepCfg)
			if err != nil {
				return err
			}

			report.NewRenderer(cmd.OutOrStdout()).RenderSweep(result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&sweepCfg.Steps, "steps", sweepCfg.Steps, "number of candidate thresholds")
	cmd.Flags().Float64Var(&sweepCfg.LoFactor, "lo", sweepCfg.LoFactor, "scan start as a multiple of the derived threshold")
	cmd.Flags().Float64Var(&sweepCfg.HiFactor, "hi", sweepCfg.HiFactor, "scan end as a multiple of the derived threshold")
	return cmd
}

func newDiagnoseCmd() *cobra.Command {
	flags := &commonFlags{}

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Break win rates down by field-strength regime",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			result, err := app.NewAuditService(cfg).Run(context.Background())
			if err != nil {
				return err
			}

			report.NewRenderer(cmd.OutOrStdout()).RenderRegimes(audit.AnalyzeRegimes(result.Evaluations))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
