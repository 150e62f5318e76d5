// Package report renders computed estimates into output files.
// Rendering is decoupled from estimation: a failure here never invalidates
// the computed totals.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"roadcost/core/estimate"
	"roadcost/internal/errors"
)

// Format represents a report output format
type Format string

const (
	// FormatCSV is a flat line-item table
	FormatCSV Format = "csv"

	// FormatExcel is a styled workbook with summary and detail sheets
	FormatExcel Format = "excel"

	// FormatPDF is a printable cost report
	FormatPDF Format = "pdf"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format label
func ParseFormat(label string) (Format, error) {
	switch f := Format(strings.ToLower(label)); f {
	case FormatCSV, FormatExcel, FormatPDF, FormatJSON:
		return f, nil
	}
	return "", errors.Validationf("unsupported report format: %s", label)
}

// Writer renders an estimate in a specific format
type Writer interface {
	// Format returns the format type
	Format() Format

	// Extension returns the file extension without the dot
	Extension() string

	// Render writes the report for the given result
	Render(w io.Writer, result *estimate.Result) error
}

// Registry maps formats to writers
type Registry struct {
	writers map[Format]Writer
}

// NewRegistry returns a registry with all built-in writers registered
func NewRegistry() *Registry {
	r := &Registry{writers: make(map[Format]Writer)}
	r.Register(&CSVWriter{})
	r.Register(&JSONWriter{})
	r.Register(&ExcelWriter{})
	r.Register(&PDFWriter{})
	return r
}

// Register adds a writer to the registry
func (r *Registry) Register(w Writer) {
	r.writers[w.Format()] = w
}

// Writer returns the writer for a format
func (r *Registry) Writer(f Format) (Writer, bool) {
	w, ok := r.writers[f]
	return w, ok
}

// Generate renders a result into dir and returns the generated filename.
// Filenames embed a timestamp and a short unique suffix so concurrent
// estimates for the same alignment never clobber each other.
func (r *Registry) Generate(result *estimate.Result, format Format, dir string) (string, error) {
	w, ok := r.writers[format]
	if !ok {
		return "", errors.Validationf("unsupported report format: %s", format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Rendering("creating report directory", err)
	}

	name := fmt.Sprintf("cost_estimate_%s_%s_%s_%s.%s",
		sanitize(result.ProjectID),
		sanitize(result.AlignmentID),
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		w.Extension(),
	)

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", errors.Rendering("creating report file", err)
	}
	defer f.Close()

	if err := w.Render(f, result); err != nil {
		return "", errors.Rendering(fmt.Sprintf("rendering %s report", format), err)
	}

	return name, nil
}

// sanitize strips path separators from identifiers used in filenames
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ':
			return '-'
		}
		return r
	}, s)
}
