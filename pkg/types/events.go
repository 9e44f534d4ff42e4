package types

import "sync"

// Step identifies a pipeline step
type Step string

const (
	StepClean        Step = "clean"
	StepStage        Step = "stage"
	StepCopyRuntime  Step = "copy-runtime"
	StepDependencies Step = "dependencies"
	StepArchive      Step = "archive"
	StepCopyApp      Step = "copy-app"
	StepRebrand      Step = "rebrand"
	StepCleanup      Step = "cleanup"
	StepInstaller    Step = "installer"
)

// EventKind classifies a progress event
type EventKind string

const (
	EventStart EventKind = "start"
	EventWarn  EventKind = "warn"
	EventDone  EventKind = "done"
	EventFail  EventKind = "fail"
)

// Event is a progress notification emitted by the pipeline
type Event struct {
	Step    Step
	Kind    EventKind
	Message string
}

// Reporter receives progress events. The pipeline calls it from a single
// goroutine.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(Event)

// Report implements Reporter
func (f ReporterFunc) Report(e Event) { f(e) }

// NopReporter discards events
type NopReporter struct{}

// Report implements Reporter
func (NopReporter) Report(Event) {}

// RecordingReporter keeps every event it receives
type RecordingReporter struct {
	mu     sync.Mutex
	events []Event
}

// Report implements Reporter
func (r *RecordingReporter) Report(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events
func (r *RecordingReporter) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Steps returns the steps of all start events, in order
func (r *RecordingReporter) Steps() []Step {
	var steps []Step
	for _, e := range r.Events() {
		if e.Kind == EventStart {
			steps = append(steps, e.Step)
		}
	}
	return steps
}
