// Package surface defines output rendering for rockscore analysis reports.
// Implementations handle different output targets: terminal, JSON, CSV.
package surface

import (
	"io"

	"github.com/rockscore/rockscore/pkg/analysis"
)

// Renderer produces formatted output from an analysis report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *analysis.Report) error
}

// ForFormat returns the renderer for a CLI output format name.
// Unknown names fall back to the terminal renderer.
func ForFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "csv":
		return &CSVRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
