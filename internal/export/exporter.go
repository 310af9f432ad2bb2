// Package export writes generated samples to disk: a JSONL annotation
// file plus one PNG per sample, and optionally an Excel workbook with the
// raw data tables.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dreamness-dnalm/pixmo-docs-custom/internal/pipeline"
)

const (
	jsonlName    = "data.jsonl"
	imagePattern = "image_%04d.png"
)

// Record is one JSONL line: the sample plus the name of its paired image.
type Record struct {
	pipeline.Sample
	Image string `json:"image"`
}

// Writer exports samples into a single run directory.
type Writer struct {
	dir    string
	jsonl  *os.File
	enc    *json.Encoder
	index  int
	closed bool
}

// NewWriter creates the run directory <baseDir>/<pipelineName>_<timestamp>/
// and opens the JSONL file inside it.
func NewWriter(baseDir, pipelineName string) (*Writer, error) {
	timestamp := time.Now().Format("20060102_150405")
	dir := filepath.Join(baseDir, fmt.Sprintf("%s_%s", pipelineName, timestamp))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, jsonlName))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", jsonlName, err)
	}

	enc := json.NewEncoder(f)
	// Keep generated text readable: the tool exists to produce
	// non-English samples, so no HTML escaping of the JSON.
	enc.SetEscapeHTML(false)

	return &Writer{dir: dir, jsonl: f, enc: enc}, nil
}

// Dir returns the run directory path.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores the sample's PNG and appends its JSONL record.
// It returns the image file name within the run directory.
func (w *Writer) Write(s *pipeline.Sample, png []byte) (string, error) {
	imageName := fmt.Sprintf(imagePattern, w.index)

	if err := os.WriteFile(filepath.Join(w.dir, imageName), png, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", imageName, err)
	}

	rec := Record{Sample: *s, Image: imageName}
	if err := w.enc.Encode(rec); err != nil {
		return "", fmt.Errorf("append JSONL record: %w", err)
	}

	w.index++
	return imageName, nil
}

// Count returns the number of samples written so far.
func (w *Writer) Count() int {
	return w.index
}

// Close flushes and closes the JSONL file. Closing an already closed
// Writer is a no-op, so callers can pair a deferred Close with an
// error-checked one on the success path.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.jsonl.Close()
}

// ReadRecords loads all records from a run directory's JSONL file.
// Used by the report command.
func ReadRecords(dir string) ([]Record, error) {
	f, err := os.Open(filepath.Join(dir, jsonlName))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", jsonlName, err)
	}
	defer f.Close()

	var records []Record
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse %s: %w", jsonlName, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
