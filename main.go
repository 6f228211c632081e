package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"rotaudit/app"
	"rotaudit/internal"
	"rotaudit/internal/config"
	"rotaudit/internal/errors"
	"rotaudit/internal/report"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "audit failed [%s]: %v\n", errors.GetCode(err), err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	result, err := app.NewAuditService(cfg).Run(context.Background())
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(os.Stdout)
	renderer.RenderTable(result.Evaluations)
	renderer.RenderSummary(result.Summary)

	if cfg.Report.TextPath != "" {
		if err := writeTextReport(cfg.Report.TextPath, result); err != nil {
			return err
		}
		internal.DefaultLogger.Info("report saved to %s", cfg.Report.TextPath)
	}

	if cfg.Report.ExcelPath != "" {
		if err := report.ExportWorkbook(cfg.Report.ExcelPath, result.Evaluations, result.Summary); err != nil {
			return err
		}
		internal.DefaultLogger.Info("workbook saved to %s", cfg.Report.ExcelPath)
	}

	return nil
}

func writeTextReport(path string, result *app.AuditResult) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create report file %s", path)
	}
	defer f.Close()

	renderer := report.NewRenderer(f)
	renderer.RenderTable(result.Evaluations)
	renderer.RenderSummary(result.Summary)
	return nil
}
