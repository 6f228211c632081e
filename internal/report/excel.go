package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rotaudit/domain/physics"
	"rotaudit/domain/rotation"
	"rotaudit/internal/errors"
)

const (
	galaxySheet  = "Galaxies"
	summarySheet = "Summary"
)

// ExportWorkbook writes the per-galaxy results and the corpus summary into
// an Excel workbook at path. The export mirrors the text report; values stay
// untouched apart from the km/s display conversion.
func ExportWorkbook(path string, evals []rotation.Evaluation, summary rotation.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(galaxySheet); err != nil {
		return errors.Wrap(err, "failed to create galaxy sheet")
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}
	// Drop the default sheet so the workbook opens on the results
	f.DeleteSheet("Sheet1")

	headers := []string{"Galaxy", "Points", "RMSE Baseline (km/s)", "RMSE Alternative (km/s)", "Winner", "Improvement (%)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(galaxySheet, cell, h); err != nil {
			return errors.Wrap(err, "failed to write galaxy header")
		}
	}

	for row, e := range evals {
		values := []interface{}{
			e.Name.String(),
			e.Points,
			e.RMSEBaseline / physics.KmsInMs,
			e.RMSEAlternative / physics.KmsInMs,
			string(e.Winner),
			e.ImprovementPct,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(galaxySheet, cell, v); err != nil {
				return errors.Wrapf(err, "failed to write galaxy row %d", row+1)
			}
		}
	}

	summaryRows := [][2]interface{}{
		{"Run", summary.RunID.String()},
		{"Galaxies evaluated", summary.Evaluated},
		{"Excluded (too few samples)", summary.Excluded},
		{"Alternative wins", summary.AlternativeWins},
		{"Win rate (%)", summary.WinRatePct},
		{"Median improvement (%)", summary.MedianImprovementPct},
		{"Mean RMSE baseline (km/s)", summary.MeanRMSEBaseline / physics.KmsInMs},
		{"Mean RMSE alternative (km/s)", summary.MeanRMSEAlternative / physics.KmsInMs},
	}
	if summary.Calibration != nil {
		verdict := "FAIL"
		if summary.Calibration.Passed {
			verdict = "PASS"
		}
		summaryRows = append(summaryRows, [2]interface{}{"Calibration", verdict})
	}

	for row, pair := range summaryRows {
		keyCell := fmt.Sprintf("A%d", row+1)
		valCell := fmt.Sprintf("B%d", row+1)
		if err := f.SetCellValue(summarySheet, keyCell, pair[0]); err != nil {
			return errors.Wrap(err, "failed to write summary label")
		}
		if err := f.SetCellValue(summarySheet, valCell, pair[1]); err != nil {
			return errors.Wrap(err, "failed to write summary value")
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook to %s", path)
	}
	return nil
}
