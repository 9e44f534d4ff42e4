// Package testutil provides utilities for testing electron-kit components.
//
// Key components:
//   - TestProject: a temporary working directory with an application tree
//     and a fake runtime distribution for a chosen platform
//   - Mock collaborators (runner, executable editor, bundle editor,
//     installer builders) that record their calls
//
// Tests that touch the disk always use t.TempDir() through TestProject.
package testutil
