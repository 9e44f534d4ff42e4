package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/electron-kit/pkg/types"
)

// MockRunner is a mock implementation of types.CommandRunner that records
// every command it receives.
type MockRunner struct {
	RunFunc func(ctx context.Context, cmd types.Command) (types.CommandOutput, error)

	mu    sync.Mutex
	calls []types.Command
}

// Run records cmd and delegates to RunFunc when set
func (m *MockRunner) Run(ctx context.Context, cmd types.Command) (types.CommandOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cmd)
	m.mu.Unlock()
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	return types.CommandOutput{}, nil
}

// Calls returns the recorded commands
func (m *MockRunner) Calls() []types.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Command, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockInstaller is a mock implementation of types.DependencyInstaller
type MockInstaller struct {
	Err  error
	Dirs []string
}

// Install records dir and returns Err
func (m *MockInstaller) Install(_ context.Context, dir string) error {
	m.Dirs = append(m.Dirs, dir)
	return m.Err
}

// MockEditor is a mock implementation of types.ExecutableEditor
type MockEditor struct {
	EditFunc func(exePath string, meta types.ExecutableMetadata) error

	Path string
	Meta *types.ExecutableMetadata
}

// Edit records the request and delegates to EditFunc when set
func (m *MockEditor) Edit(_ context.Context, exePath string, meta types.ExecutableMetadata) error {
	m.Path = exePath
	m.Meta = &meta
	if m.EditFunc != nil {
		return m.EditFunc(exePath, meta)
	}
	return nil
}

// MockBundleEditor is a mock implementation of types.BundleEditor
type MockBundleEditor struct {
	Err      error
	Bundle   string
	Identity *types.BundleIdentity
}

// Rebrand records the request and returns Err
func (m *MockBundleEditor) Rebrand(bundlePath string, id types.BundleIdentity) error {
	m.Bundle = bundlePath
	m.Identity = &id
	return m.Err
}

// MockWindowsInstaller is a mock implementation of types.WindowsInstallerBuilder
type MockWindowsInstaller struct {
	BuildFunc func(spec types.WindowsInstallerSpec) (string, error)
	Spec      *types.WindowsInstallerSpec
}

// Build records spec and delegates to BuildFunc when set
func (m *MockWindowsInstaller) Build(_ context.Context, spec types.WindowsInstallerSpec) (string, error) {
	m.Spec = &spec
	if m.BuildFunc != nil {
		return m.BuildFunc(spec)
	}
	return "", nil
}

// MockDiskImage is a mock implementation of types.DiskImageBuilder
type MockDiskImage struct {
	BuildFunc func(spec types.DiskImageSpec) (string, error)
	Spec      *types.DiskImageSpec
}

// Build records spec and delegates to BuildFunc when set
func (m *MockDiskImage) Build(_ context.Context, spec types.DiskImageSpec) (string, error) {
	m.Spec = &spec
	if m.BuildFunc != nil {
		return m.BuildFunc(spec)
	}
	return "", nil
}
