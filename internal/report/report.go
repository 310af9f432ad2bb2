// Package report builds human-readable summaries of a run directory:
// an HTML gallery of the generated images and, on request, a PDF
// contact sheet.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/export"
)

const galleryName = "gallery.html"

var galleryTmpl = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
figure { border: 1px solid #ccc; padding: 1rem; margin: 1rem 0; }
figure img { max-width: 100%; }
figcaption { margin-top: 0.5rem; color: #333; }
.meta { font-size: 0.85rem; color: #777; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Count}} samples</p>
{{range .Entries}}<figure>
<img src="{{.Image}}" alt="{{.Alt}}">
<figcaption>{{.Caption}}</figcaption>
<p class="meta">{{.Persona}} &middot; {{.Topic}} &middot; {{.Language}} &middot; {{.Model}}</p>
</figure>
{{end}}</body>
</html>
`))

type galleryEntry struct {
	Image    string
	Alt      string
	Caption  template.HTML
	Persona  string
	Topic    string
	Language string
	Model    string
}

type galleryData struct {
	Title   string
	Count   int
	Entries []galleryEntry
}

// WriteGallery reads the run directory's records and writes gallery.html
// next to them. Captions are rendered as Markdown. It returns the path
// of the written file.
func WriteGallery(dir string) (string, error) {
	records, err := export.ReadRecords(dir)
	if err != nil {
		return "", err
	}

	data := galleryData{
		Title: filepath.Base(dir),
		Count: len(records),
	}
	for _, rec := range records {
		caption, err := mdToHTML(rec.Caption)
		if err != nil {
			return "", fmt.Errorf("render caption for %s: %w", rec.Image, err)
		}
		data.Entries = append(data.Entries, galleryEntry{
			Image:    rec.Image,
			Alt:      rec.Chart.Title,
			Caption:  caption,
			Persona:  rec.Persona,
			Topic:    rec.Topic,
			Language: rec.Language,
			Model:    rec.Model,
		})
	}

	var buf bytes.Buffer
	if err := galleryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render gallery: %w", err)
	}

	path := filepath.Join(dir, galleryName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", galleryName, err)
	}
	return path, nil
}

func mdToHTML(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
