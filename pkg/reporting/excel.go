package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/crypto-analyzer/internal/analysis"
	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// ExcelReporter writes a full analysis workbook: summary, the aligned
// indicator series for charting, and the detected events.
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// WriteReportXLSX writes the analysis result to an Excel workbook.
func (r *ExcelReporter) WriteReportXLSX(result *analysis.Result, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const indicatorsSheet = "Indicators"
	const eventsSheet = "Events"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(indicatorsSheet); err != nil {
		return err
	}
	if _, err := fx.NewSheet(eventsSheet); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, result.Report, headerStyle); err != nil {
		return err
	}
	if err := r.writeIndicatorsSheet(fx, indicatorsSheet, result, headerStyle); err != nil {
		return err
	}
	if err := r.writeEventsSheet(fx, eventsSheet, result, headerStyle); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, rep *analysis.Report, headerStyle int) error {
	rows := [][]interface{}{
		{"Symbol", rep.Symbol},
		{"Period Start", rep.PeriodStart.Format("2006-01-02 15:04")},
		{"Period End", rep.PeriodEnd.Format("2006-01-02 15:04")},
		{"Current Price", rep.CurrentPrice},
		{"Price Change %", rep.PriceChangePct},
	}
	for _, name := range indicators.Names {
		if v, ok := rep.Indicators[name]; ok {
			rows = append(rows, []interface{}{"Latest " + name, v})
		}
	}
	for kind, count := range rep.EventCounts {
		rows = append(rows, []interface{}{"Count " + kind, count})
	}

	if err := fx.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return err
	}
	if err := fx.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return fx.SetColWidth(sheet, "A", "B", 22)
}

func (r *ExcelReporter) writeIndicatorsSheet(fx *excelize.File, sheet string, result *analysis.Result, headerStyle int) error {
	closes := types.Closes(result.Series)
	header := append([]string{"Index", "close"}, indicators.Names...)
	for j, name := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i := 0; i < result.Indicators.Length; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, i); err != nil {
			return err
		}
		closeCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, closeCell, closes[i]); err != nil {
			return err
		}
		for j, name := range indicators.Names {
			cell, err := excelize.CoordinatesToCellName(j+3, i+2)
			if err != nil {
				return err
			}
			v := result.Indicators.Get(name)[i]
			// Warm-up samples stay empty; NaN is not representable in xlsx
			if !indicators.IsDefined(v) {
				continue
			}
			if err := fx.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ExcelReporter) writeEventsSheet(fx *excelize.File, sheet string, result *analysis.Result, headerStyle int) error {
	header := []string{"Timestamp", "Pattern", "Readings"}
	for j, name := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := fx.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	if err := fx.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}

	for i, ev := range result.Events {
		row := []interface{}{
			ev.Timestamp.Format("2006-01-02 15:04:05"),
			KindLabel(ev.Kind),
			formatValues(ev.Values),
		}
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := fx.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return fx.SetColWidth(sheet, "A", "C", 24)
}
