package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
)

// WriteWorkbook writes one worksheet per sample containing the sample's
// metadata and its underlying data table.
func WriteWorkbook(path string, samples []*pipeline.Sample) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range samples {
		sheet := fmt.Sprintf("sample_%02d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}
		if err := writeSheet(f, sheet, s); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, s *pipeline.Sample) error {
	meta := [][2]any{
		{"Title", s.Chart.Title},
		{"Kind", string(s.Chart.Kind)},
		{"Persona", s.Persona},
		{"Topic", s.Topic},
		{"Language", s.Language},
	}
	row := 1
	for _, kv := range meta {
		if err := setCell(f, sheet, 1, row, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, row, kv[1]); err != nil {
			return err
		}
		row++
	}
	row++ // blank row between metadata and data

	switch s.Chart.Kind {
	case chartspec.KindBar, chartspec.KindGroupedBar:
		return writeCategoryTable(f, sheet, row, &s.Chart)
	case chartspec.KindHistogram:
		return writeValueColumn(f, sheet, row, &s.Chart)
	default:
		return writeXYTable(f, sheet, row, &s.Chart)
	}
}

// writeCategoryTable lays out categories down column A with one value
// column per series.
func writeCategoryTable(f *excelize.File, sheet string, row int, spec *chartspec.ChartSpec) error {
	header := row
	if err := setCell(f, sheet, 1, header, spec.XAxisTitle); err != nil {
		return err
	}
	for i, series := range spec.Series {
		if err := setCell(f, sheet, 2+i, header, series.Name); err != nil {
			return err
		}
	}
	for ci, cat := range spec.Categories {
		r := header + 1 + ci
		if err := setCell(f, sheet, 1, r, cat); err != nil {
			return err
		}
		for si, series := range spec.Series {
			if ci >= len(series.Y) {
				continue
			}
			if err := setCell(f, sheet, 2+si, r, series.Y[ci]); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeXYTable lays out each series as an adjacent X/Y column pair.
func writeXYTable(f *excelize.File, sheet string, row int, spec *chartspec.ChartSpec) error {
	header := row
	for si, series := range spec.Series {
		xCol := 1 + si*2
		if err := setCell(f, sheet, xCol, header, series.Name+" X"); err != nil {
			return err
		}
		if err := setCell(f, sheet, xCol+1, header, series.Name+" Y"); err != nil {
			return err
		}
		for pi := range series.Y {
			r := header + 1 + pi
			if pi < len(series.X) {
				if err := setCell(f, sheet, xCol, r, series.X[pi]); err != nil {
					return err
				}
			}
			if err := setCell(f, sheet, xCol+1, r, series.Y[pi]); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeValueColumn(f *excelize.File, sheet string, row int, spec *chartspec.ChartSpec) error {
	series := spec.Series[0]
	if err := setCell(f, sheet, 1, row, series.Name); err != nil {
		return err
	}
	for i, v := range series.Y {
		if err := setCell(f, sheet, 1, row+1+i, v); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}
