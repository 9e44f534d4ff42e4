// Package pipeline turns an application directory and a prebuilt runtime
// distribution into a branded, runnable application tree and, where the
// platform has one, an installer.
//
// A run is a fixed sequence of steps:
//
//	clean → stage → copy runtime → install dependencies → archive or copy app
//	      → rebrand → cleanup → installer
//
// Steps run strictly one after another. Dependency installation and cleanup
// are best-effort and only add warnings; every other step aborts the run on
// failure. The Driver reports progress to a types.Reporter and returns a
// single types.Result per run.
package pipeline
