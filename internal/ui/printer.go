// Package ui renders calculation results and errors for the terminal.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"calc/internal/calculator"
	"calc/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes results to out and failures to errOut in the configured format.
type Printer struct {
	out, errOut io.Writer
	outR, errR  *lipgloss.Renderer
	format      config.OutputFormat
	precision   int
}

// NewPrinter binds a renderer to each writer. With ColorAuto the colour profile is
// detected from the writer itself, so buffers and pipes get plain text.
func NewPrinter(out, errOut io.Writer, s config.Settings) *Printer {
	format := s.Output
	if format == "" {
		format = config.DefaultOutput
	}
	return &Printer{
		out:       out,
		errOut:    errOut,
		outR:      newRenderer(out, s.Color),
		errR:      newRenderer(errOut, s.Color),
		format:    format,
		precision: s.Precision,
	}
}

func newRenderer(w io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// FormatValue formats v with %g semantics using the configured number of
// significant digits; -1 gives the shortest representation that round-trips.
func (p *Printer) FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', p.precision, 64)
}

// PrintResult writes a successful calculation.
func (p *Printer) PrintResult(res calculator.Result) error {
	if p.format == config.OutputJSON {
		return writeJSON(p.out, jsonResult{
			Operation: res.Operation.String(),
			Operand1:  jsonNumber(res.Operand1),
			Operand2:  jsonNumber(res.Operand2),
			Result:    jsonNumber(res.Value),
		})
	}

	_, err := fmt.Fprintf(p.out, "Result: %s\n", resultStyle(p.outR).Render(p.FormatValue(res.Value)))
	return err
}

// PrintError writes a failure. usage, when non-empty, is printed on the following line.
func (p *Printer) PrintError(err error, usage string) error {
	if p.format == config.OutputJSON {
		return writeJSON(p.errOut, jsonError{Error: err.Error(), Usage: usage})
	}

	if _, werr := fmt.Fprintf(p.errOut, "%s %v\n", errorStyle(p.errR).Render("Error:"), err); werr != nil {
		return werr
	}
	if usage != "" {
		_, werr := fmt.Fprintln(p.errOut, usageStyle(p.errR).Render(usage))
		return werr
	}
	return nil
}

type jsonResult struct {
	Operation string `json:"operation"`
	Operand1  any    `json:"operand1"`
	Operand2  any    `json:"operand2"`
	Result    any    `json:"result"`
}

type jsonError struct {
	Error string `json:"error"`
	Usage string `json:"usage,omitempty"`
}

// jsonNumber keeps finite values numeric; overflowed results become strings
// because JSON has no representation for infinities.
func jsonNumber(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
