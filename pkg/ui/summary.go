package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Theme holds the styles used to render summaries
type Theme struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
}

// Colors
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#EF6C00", Dark: "#FFB74D"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

// StyledTheme is used for terminals
var StyledTheme = Theme{
	Success: lipgloss.NewStyle().Foreground(SuccessColor).Bold(true),
	Failure: lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	Warning: lipgloss.NewStyle().Foreground(WarningColor),
	Muted:   lipgloss.NewStyle().Foreground(MutedColor),
	Path:    lipgloss.NewStyle().Foreground(PathColor).Italic(true),
}

// PlainTheme renders text unchanged
var PlainTheme = Theme{
	Success: lipgloss.NewStyle(),
	Failure: lipgloss.NewStyle(),
	Warning: lipgloss.NewStyle(),
	Muted:   lipgloss.NewStyle(),
	Path:    lipgloss.NewStyle(),
}

// ThemeFor returns the theme matching an output format
func ThemeFor(format Format) Theme {
	if format == FormatTerminal {
		return StyledTheme
	}
	return PlainTheme
}

// RenderResult renders the terminal result of a build
func RenderResult(result types.Result, theme Theme) string {
	var b strings.Builder

	if result.Success {
		b.WriteString(theme.Success.Render("Build succeeded"))
	} else {
		b.WriteString(theme.Failure.Render("Build failed"))
	}
	b.WriteString(theme.Muted.Render(fmt.Sprintf(" (%s)", result.Duration.Round(time.Millisecond))))
	b.WriteString("\n")

	if !result.Success {
		step := ""
		if result.Step != "" {
			step = StepTitle(result.Step) + ": "
		}
		b.WriteString("  " + theme.Failure.Render(step+result.Message) + "\n")
	}

	if len(result.Warnings) > 0 {
		b.WriteString(fmt.Sprintf("  %d warning(s):\n", len(result.Warnings)))
		for _, w := range result.Warnings {
			b.WriteString("    " + theme.Warning.Render("- "+w) + "\n")
		}
	}

	if len(result.Artifacts) > 0 {
		b.WriteString("  Artifacts:\n")
		for _, a := range result.Artifacts {
			b.WriteString("    " + theme.Path.Render(a) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
