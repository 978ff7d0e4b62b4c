// Package output provides utilities for formatting and displaying
// calculator reports.
package output

import (
	"fmt"
	"io"

	"github.com/lendkit/lendkit/internal/runner"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, reports []runner.Report) {
	p := message.NewPrinter(language.English)
	for i, report := range reports {
		_, _ = p.Fprintf(w, "--- %s (%s) ---\n", report.Name, report.Type)
		for _, field := range report.Fields {
			_, _ = p.Fprintf(w, "%-28s | %s\n", field.Label, field.Value)
		}
		if i < len(reports)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat writes reports in comma-separated value format, one row per
// field.
func CsvFormat(w io.Writer, reports []runner.Report) {
	_, _ = fmt.Fprintf(w, "\"job\",\"type\",\"field\",\"value\"\n")
	for _, report := range reports {
		for _, field := range report.Fields {
			_, _ = fmt.Fprintf(w, "%q,%q,%q,%q\n", report.Name, report.Type, field.Label, field.Value)
		}
	}
}
