// Package output renders command results as tables, plain text, or
// JSON depending on the configured output mode.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Mode selects the rendering style.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// ValidMode reports whether m is a known output mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeAuto, ModeText, ModeJSON, "":
		return true
	}
	return false
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out  io.Writer
	errw io.Writer
	mode Mode
}

// NewRenderer creates a renderer. An empty mode behaves like ModeAuto.
func NewRenderer(out, errw io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errw: errw, mode: mode}
}

// JSONMode reports whether structured JSON output was requested.
func (r *Renderer) JSONMode() bool { return r.mode == ModeJSON }

// Table renders a header and rows as a bordered table.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// JSON renders v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Textf writes formatted text to the output stream.
func (r *Renderer) Textf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Errorf writes formatted text to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errw, format, args...)
}
