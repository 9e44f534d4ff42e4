package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Package an Electron application for distribution"
	MsgRootLong        = "electron-kit copies a prebuilt Electron runtime, places your application inside it\n(packed as app.asar or as a plain directory), applies your product identity and\nbuilds the platform installer: an NSIS setup on Windows, a disk image on macOS."
	MsgBuildShort      = "Build the application"
	MsgBuildLong       = "Run the full packaging pipeline: clean, stage, copy runtime, install dependencies,\narchive or copy the application, rebrand, clean up and build the installer."
	MsgLayoutShort     = "Show where the build places files"
	MsgConfigShort     = "Inspect or create configuration"
	MsgConfigShowShort = "Print the merged configuration"
	MsgConfigInitShort = "Write a starter electron-kit.toml"
	MsgVersionShort    = "Print version information"

	MsgBuildExample = `  electron-kit build                              # package ./app with the defaults
  electron-kit build --product-name Demo          # rename and rebrand the runtime
  electron-kit build --asar=false --platform linux
  electron-kit build --config release.toml --no-installer`

	// Output
	MsgVersionFormat   = "electron-kit version %s\n"
	MsgCommitFormat    = "  commit: %s\n"
	MsgBuiltFormat     = "  built:  %s\n"
	MsgConfigCreated   = "Created %s\n"
	MsgLayoutPlatform  = "Platform:       %s\n"
	MsgLayoutResources = "Resource path:  %s\n"
	MsgLayoutOutput    = "Output:         %s\n"
	MsgLayoutRuntime   = "Runtime:        %s -> %s\n"
	MsgLayoutApp       = "Application:    %s -> %s\n"
	MsgLayoutExe       = "Executable:     %s\n"
	MsgLayoutConfig    = "Config file:    %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagConfig      = "Config file (default: electron-kit.toml in the working directory)"
	MsgFlagWorkDir     = "Working directory that relative paths resolve against"
	MsgFlagOutput      = "Build directory, removed before every build"
	MsgFlagInput       = "Application directory"
	MsgFlagAsar        = "Pack the application into app.asar"
	MsgFlagProductName = "Product name used to rename and rebrand the runtime"
	MsgFlagCompany     = "Company name"
	MsgFlagCopyright   = "Copyright notice"
	MsgFlagVersion     = "Application version"
	MsgFlagDescription = "File description (defaults to company, then product name)"
	MsgFlagIcon        = "Icon file for the executable and installer"
	MsgFlagPermission  = "Requested execution level: asInvoker, highestAvailable or requireAdministrator"
	MsgFlagManifest    = "Application manifest embedded into the Windows executable"
	MsgFlagRuntime     = "Prebuilt runtime distribution directory"
	MsgFlagPlatform    = "Target platform: darwin, windows or linux (default: host)"
	MsgFlagBundleID    = "macOS bundle identifier"
	MsgFlagSkipInstall = "Do not install application dependencies"
	MsgFlagNoInstaller = "Do not build an installer"
	MsgFlagProgress    = "Progress output: auto, term, text or json"
	MsgFlagFormat      = "Output format: toml or yaml"
	MsgFlagForce       = "Overwrite an existing file"
)
