// Package filesystem provides filesystem implementations for electron-kit.
//
// All implementations are backed by afero: NewOS wraps the real disk and
// NewMemory an in-memory tree for tests. The package also provides the
// recursive copy and tolerant remove primitives the pipeline uses.
package filesystem
