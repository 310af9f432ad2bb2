package report

import (
	"fmt"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/export"
)

const contactSheetName = "contact_sheet.pdf"

// WriteContactSheet writes a PDF with one generated image per page and
// its metadata underneath. It returns the path of the written file.
func WriteContactSheet(dir string) (string, error) {
	records, err := export.ReadRecords(dir)
	if err != nil {
		return "", err
	}

	titler := cases.Title(language.English)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(filepath.Base(dir), false)

	for i, rec := range records {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		heading := fmt.Sprintf("%d. %s", i+1, titler.String(rec.ChartType))
		pdf.CellFormat(0, 12, heading, "", 1, "L", false, 0, "")

		pdf.ImageOptions(filepath.Join(dir, rec.Image), 15, 35, 180, 0, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		pdf.SetY(175)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Topic: %s", rec.Topic), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Persona: %s", rec.Persona), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Language: %s", rec.Language), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Model: %s", rec.Model), "", "L", false)
	}

	path := filepath.Join(dir, contactSheetName)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write %s: %w", contactSheetName, err)
	}
	return path, nil
}
