// Package types defines the core types and interfaces used throughout
// electron-kit: build options, the target platform, the pipeline result and
// progress events, and the narrow contracts of the collaborators the pipeline
// calls (filesystem, process runner, archive builder, executable editor,
// installer generators).
package types
