package ui

import "github.com/arthur-debert/electron-kit/pkg/types"

var stepTitles = map[types.Step]string{
	types.StepClean:        "Cleaning previous build",
	types.StepStage:        "Staging directories",
	types.StepCopyRuntime:  "Copying runtime",
	types.StepDependencies: "Installing dependencies",
	types.StepArchive:      "Packing application",
	types.StepCopyApp:      "Copying application",
	types.StepRebrand:      "Applying product identity",
	types.StepCleanup:      "Removing transient files",
	types.StepInstaller:    "Building installer",
}

// StepTitle returns the human readable title of a step
func StepTitle(s types.Step) string {
	if title, ok := stepTitles[s]; ok {
		return title
	}
	return string(s)
}
