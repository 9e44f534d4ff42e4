package types

import "time"

// Result is the terminal outcome of one pipeline run
type Result struct {
	Success bool
	// Message is empty on success, otherwise a human-readable failure
	Message string
	// Step names the step that failed
	Step      Step
	Warnings  []string
	Artifacts []string
	Duration  time.Duration
}
