// Package paths provides centralized path handling for electron-kit.
//
// It resolves the absolute locations a build run reads from and writes to,
// all derived from the options' working directory:
//
//	<work>/<output>/unpacked/electron/...      staged runtime tree
//	<work>/<output>/unpacked/<resource path>   application content
//	<work>/.temp-electron-kit/app.asar        transient archive
//
// It also locates the tool's own state (the log file) following the XDG
// Base Directory specification.
package paths
