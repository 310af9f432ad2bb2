package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/chartspec"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/export"
	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
)

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writeRun(t *testing.T) string {
	t.Helper()
	w, err := export.NewWriter(t.TempDir(), "PlotlyChartPipeline")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	samples := []*pipeline.Sample{
		{
			ID: "a", Pipeline: "PlotlyChartPipeline", ChartType: "bar chart",
			Language: "English", Persona: "a florist", Topic: "seasonal sales",
			Caption: "Sales peak in **spring**.",
			Chart:   chartspec.ChartSpec{Kind: chartspec.KindBar, Title: "Seasonal Sales"},
			Model:   "gpt-4o",
		},
		{
			ID: "b", Pipeline: "PlotlyChartPipeline", ChartType: "line chart",
			Language: "French", Persona: "un boulanger", Topic: "ventes de pain",
			Caption: "Les ventes augmentent en été.",
			Chart:   chartspec.ChartSpec{Kind: chartspec.KindLine, Title: "Ventes"},
			Model:   "gpt-4o",
		},
	}
	img := tinyPNG(t)
	for _, s := range samples {
		if _, err := w.Write(s, img); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	return w.Dir()
}

func TestWriteGallery(t *testing.T) {
	dir := writeRun(t)

	path, err := WriteGallery(dir)
	if err != nil {
		t.Fatalf("WriteGallery: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	html := string(raw)

	for _, want := range []string{
		`src="image_0000.png"`,
		`src="image_0001.png"`,
		"<strong>spring</strong>", // caption markdown is rendered
		"Les ventes augmentent en été.",
		"2 samples",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("gallery missing %q", want)
		}
	}
}

func TestWriteGalleryMissingRun(t *testing.T) {
	if _, err := WriteGallery(t.TempDir()); err == nil {
		t.Fatal("expected error for directory without data.jsonl")
	}
}

func TestWriteContactSheet(t *testing.T) {
	dir := writeRun(t)

	path, err := WriteContactSheet(dir)
	if err != nil {
		t.Fatalf("WriteContactSheet: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", raw[:8])
	}
	if len(raw) < 500 {
		t.Errorf("PDF suspiciously small: %d bytes", len(raw))
	}
}
