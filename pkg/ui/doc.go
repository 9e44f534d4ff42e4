// Package ui renders build progress and results for a terminal, a plain
// text log or a machine reader.
//
// The format is detected from the output stream: a color-capable TTY gets
// pterm spinners and lipgloss styling, anything else gets one plain line
// per event. NO_COLOR forces plain output.
package ui
