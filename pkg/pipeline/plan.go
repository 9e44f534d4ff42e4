package pipeline

import (
	"github.com/arthur-debert/electron-kit/pkg/layout"
	"github.com/arthur-debert/electron-kit/pkg/paths"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Plan is everything a run derives from its options before touching disk
type Plan struct {
	Options  types.Options
	Platform types.Platform
	Layout   layout.Layout
	Paths    paths.Build
}

// NewPlan validates opts and resolves the target platform, the resource
// layout and the absolute paths of a run.
func NewPlan(opts types.Options) (Plan, error) {
	if err := opts.Validate(); err != nil {
		return Plan{}, err
	}

	platform := opts.Platform
	if platform == "" {
		platform = types.HostPlatform()
	}

	l := layout.Resolve(platform, opts.Archive, opts.ProductName)
	b, err := paths.NewBuild(opts, l)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Options:  opts,
		Platform: platform,
		Layout:   l,
		Paths:    b,
	}, nil
}

// ExecutablePath is the runtime executable before rebranding
func (p Plan) ExecutablePath() string {
	return p.Paths.Executable(layout.ExecutableName(p.Platform))
}

// BrandedExecutablePath is the runtime executable after rebranding
func (p Plan) BrandedExecutablePath() string {
	return p.Paths.Executable(layout.RebrandedExecutableName(p.Platform, p.Options.ProductName))
}
