package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/arthur-debert/electron-kit/pkg/ui"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{"plain", ui.FormatText},
		{"json", ui.FormatJSON},
	}
	for _, tt := range tests {
		got, err := ui.ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
		if tt.input != "" {
			assert.NotEqual(t, "unknown", got.String())
		}
	}

	_, err := ui.ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestDetectFormatForFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f, false))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatTerminal, f, true))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, f, true))

	_, isLine := ui.NewReporter(ui.FormatAuto, f).(*ui.LineReporter)
	assert.True(t, isLine)
	_, isJSON := ui.NewReporter(ui.FormatJSON, f).(*ui.JSONReporter)
	assert.True(t, isJSON)
}

func TestReporterForWriters(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, ui.FormatText, ui.ResolveWriter(ui.FormatAuto, &buf, false))
	assert.Equal(t, ui.FormatText, ui.ResolveWriter(ui.FormatTerminal, &buf, true))
	assert.Equal(t, ui.FormatTerminal, ui.ResolveWriter(ui.FormatTerminal, &buf, false))
	assert.Equal(t, ui.FormatJSON, ui.ResolveWriter(ui.FormatJSON, &buf, true))

	_, isLine := ui.NewReporter(ui.FormatAuto, &buf).(*ui.LineReporter)
	assert.True(t, isLine)
	_, isSpinner := ui.NewReporter(ui.FormatTerminal, &buf).(*ui.SpinnerReporter)
	assert.True(t, isSpinner)
	_, isJSON := ui.NewReporter(ui.FormatJSON, &buf).(*ui.JSONReporter)
	assert.True(t, isJSON)
}

func TestStepTitle(t *testing.T) {
	assert.Equal(t, "Copying runtime", ui.StepTitle(types.StepCopyRuntime))
	assert.Equal(t, "custom", ui.StepTitle(types.Step("custom")))
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewLineReporter(&buf)

	r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventStart})
	r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventWarn, Message: "no package.json"})
	r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventDone})
	r.Report(types.Event{Step: types.StepArchive, Kind: types.EventStart})
	r.Report(types.Event{Step: types.StepArchive, Kind: types.EventFail, Message: "disk full"})

	assert.Equal(t, strings.Join([]string{
		"==> Installing dependencies",
		"    warning: no package.json",
		"==> Packing application",
		"    failed: disk full",
		"",
	}, "\n"), buf.String())
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewJSONReporter(&buf)

	r.Report(types.Event{Step: types.StepClean, Kind: types.EventStart})
	r.Report(types.Event{Step: types.StepClean, Kind: types.EventFail, Message: "boom"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var event map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &event))
	assert.Equal(t, map[string]string{"step": "clean", "kind": "fail", "message": "boom"}, event)
	assert.NotContains(t, lines[0], "message")
}

func TestSpinnerReporterSequence(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewSpinnerReporter(&buf)

	assert.NotPanics(t, func() {
		r.Report(types.Event{Step: types.StepStage, Kind: types.EventStart})
		r.Report(types.Event{Step: types.StepStage, Kind: types.EventDone})
		r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventStart})
		r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventWarn, Message: "skipped"})
		r.Report(types.Event{Step: types.StepDependencies, Kind: types.EventDone})
		r.Report(types.Event{Step: types.StepArchive, Kind: types.EventFail, Message: "cancelled"})
	})
}

func TestRenderResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := ui.RenderResult(types.Result{
			Success:   true,
			Warnings:  []string{"no package.json"},
			Artifacts: []string{"build/Demo Setup.exe"},
			Duration:  1500 * time.Millisecond,
		}, ui.PlainTheme)

		assert.Equal(t, strings.Join([]string{
			"Build succeeded (1.5s)",
			"  1 warning(s):",
			"    - no package.json",
			"  Artifacts:",
			"    build/Demo Setup.exe",
		}, "\n"), out)
	})

	t.Run("failure", func(t *testing.T) {
		out := ui.RenderResult(types.Result{
			Message: "runtime distribution not found",
			Step:    types.StepCopyRuntime,
		}, ui.PlainTheme)

		assert.Equal(t, "Build failed (0s)\n  Copying runtime: runtime distribution not found", out)
	})
}
