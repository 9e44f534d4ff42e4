package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/electron-kit/pkg/types"
)

// NewReporter returns the progress reporter for format writing to output.
// FormatAuto is resolved with ResolveWriter.
func NewReporter(format Format, output io.Writer) types.Reporter {
	switch ResolveWriter(format, output, false) {
	case FormatTerminal:
		return NewSpinnerReporter(output)
	case FormatJSON:
		return NewJSONReporter(output)
	default:
		return NewLineReporter(output)
	}
}

// SpinnerReporter shows one pterm spinner per running step
type SpinnerReporter struct {
	out      io.Writer
	spinner  *pterm.SpinnerPrinter
	warnings []string
}

// NewSpinnerReporter creates a SpinnerReporter writing to out
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: out}
}

// Report implements types.Reporter
func (r *SpinnerReporter) Report(e types.Event) {
	title := StepTitle(e.Step)

	switch e.Kind {
	case types.EventStart:
		r.stop()
		r.warnings = nil
		spinner, err := pterm.DefaultSpinner.
			WithWriter(r.out).
			WithRemoveWhenDone(false).
			Start(title)
		if err != nil {
			pterm.Info.WithWriter(r.out).Println(title)
			return
		}
		r.spinner = spinner
	case types.EventWarn:
		r.warnings = append(r.warnings, e.Message)
		if r.spinner != nil {
			r.spinner.UpdateText(title + " (" + e.Message + ")")
		}
	case types.EventDone:
		if r.spinner == nil {
			return
		}
		if len(r.warnings) > 0 {
			r.spinner.Warning(title + ": " + r.warnings[len(r.warnings)-1])
		} else {
			r.spinner.Success(title)
		}
		r.spinner = nil
	case types.EventFail:
		if r.spinner == nil {
			pterm.Error.WithWriter(r.out).Println(title + ": " + e.Message)
			return
		}
		r.spinner.Fail(title + ": " + e.Message)
		r.spinner = nil
	}
}

func (r *SpinnerReporter) stop() {
	if r.spinner != nil {
		_ = r.spinner.Stop()
		r.spinner = nil
	}
}

// LineReporter prints one plain line per event
type LineReporter struct {
	out io.Writer
}

// NewLineReporter creates a LineReporter writing to out
func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

// Report implements types.Reporter
func (r *LineReporter) Report(e types.Event) {
	switch e.Kind {
	case types.EventStart:
		fmt.Fprintf(r.out, "==> %s\n", StepTitle(e.Step))
	case types.EventWarn:
		fmt.Fprintf(r.out, "    warning: %s\n", e.Message)
	case types.EventFail:
		fmt.Fprintf(r.out, "    failed: %s\n", e.Message)
	}
}

// JSONReporter writes each event as one JSON object per line
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter creates a JSONReporter writing to out
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(out)}
}

type jsonEvent struct {
	Step    types.Step      `json:"step"`
	Kind    types.EventKind `json:"kind"`
	Message string          `json:"message,omitempty"`
}

// Report implements types.Reporter
func (r *JSONReporter) Report(e types.Event) {
	_ = r.enc.Encode(jsonEvent{Step: e.Step, Kind: e.Kind, Message: e.Message})
}
