package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
)

func TestWriteWorkbook(t *testing.T) {
	line := &pipeline.Sample{
		ID:       "s-2",
		Pipeline: "PlotlyChartPipeline",
		Language: "English",
		Persona:  "a park ranger",
		Topic:    "trail usage",
		Chart: chartspec.ChartSpec{
			Kind:       chartspec.KindLine,
			Title:      "Trail Usage",
			XAxisTitle: "Week",
			YAxisTitle: "Hikers",
			Series: []chartspec.Series{
				{Name: "North Trail", X: []float64{1, 2, 3}, Y: []float64{40, 55, 48}},
			},
		},
	}
	samples := []*pipeline.Sample{sampleFixture("Library Visits"), line}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, WriteWorkbook(path, samples))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"sample_01", "sample_02"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	// Bar sample: metadata block then category table.
	assert.Equal(t, "Library Visits", cell("sample_01", "B1"))
	assert.Equal(t, "bar", cell("sample_01", "B2"))
	assert.Equal(t, "利用者", cell("sample_01", "B7"))
	assert.Equal(t, "1月", cell("sample_01", "A8"))
	assert.Equal(t, "120", cell("sample_01", "B8"))

	// Line sample: X/Y column pair.
	assert.Equal(t, "North Trail X", cell("sample_02", "A7"))
	assert.Equal(t, "North Trail Y", cell("sample_02", "B7"))
	assert.Equal(t, "55", cell("sample_02", "B9"))
}

func TestWriteWorkbookHistogram(t *testing.T) {
	hist := &pipeline.Sample{
		ID:       "s-3",
		Pipeline: "PlotlyChartPipeline",
		Language: "English",
		Persona:  "a statistician",
		Topic:    "response times",
		Chart: chartspec.ChartSpec{
			Kind:   chartspec.KindHistogram,
			Title:  "Response Times",
			Series: []chartspec.Series{{Name: "ms", Y: []float64{12, 15, 11, 19, 14}}},
		},
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, WriteWorkbook(path, []*pipeline.Sample{hist}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("sample_01", "A7")
	require.NoError(t, err)
	assert.Equal(t, "ms", v)
	v, err = f.GetCellValue("sample_01", "A8")
	require.NoError(t, err)
	assert.Equal(t, "12", v)
}
