package installer

import (
	"bytes"
	"context"
	"embed"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var nsisTemplate = template.Must(template.New("installer.nsi.tmpl").
	Funcs(template.FuncMap{"nsis": nsisEscape}).
	ParseFS(templatesFS, "templates/installer.nsi.tmpl"))

// DefaultMakensis is the NSIS compiler looked up on PATH
const DefaultMakensis = "makensis"

// scriptName is written into the output directory and removed after compiling
const scriptName = ".electron-kit-installer.nsi"

// NSIS builds Windows setup executables with makensis
type NSIS struct {
	fs       types.FS
	runner   types.CommandRunner
	makensis string
}

// NewNSIS creates an NSIS builder. An empty makensis means DefaultMakensis.
func NewNSIS(fsys types.FS, r types.CommandRunner, makensis string) *NSIS {
	if makensis == "" {
		makensis = DefaultMakensis
	}
	return &NSIS{fs: fsys, runner: r, makensis: makensis}
}

type nsisData struct {
	types.WindowsInstallerSpec
	OutFile   string
	VIVersion string
}

// SetupFileName returns the installer file name for a product
func SetupFileName(productName string) string {
	if productName == "" {
		productName = "electron"
	}
	return productName + " Setup.exe"
}

// Script renders the NSIS script for spec
func Script(spec types.WindowsInstallerSpec, outFile string) ([]byte, error) {
	if spec.ProductName == "" {
		spec.ProductName = spec.Name
	}
	data := nsisData{
		WindowsInstallerSpec: spec,
		OutFile:              outFile,
		VIVersion:            viVersion(spec.Version),
	}
	if data.Description == "" {
		data.Description = spec.ProductName
	}
	var buf bytes.Buffer
	if err := nsisTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, errors.ErrInstaller, "failed to render installer script")
	}
	return buf.Bytes(), nil
}

// Build compiles the installer and returns its path
func (n *NSIS) Build(ctx context.Context, spec types.WindowsInstallerSpec) (string, error) {
	logger := logging.GetLogger("installer.nsis")
	done := logging.LogOperationStart(logger, "makensis")
	defer done()

	if spec.AppDirectory == "" || spec.OutputDirectory == "" {
		return "", errors.New(errors.ErrInvalidInput, "installer needs an app and an output directory")
	}
	if spec.Exe == "" {
		return "", errors.New(errors.ErrInvalidInput, "installer needs the executable name")
	}
	if _, err := n.fs.Stat(filepath.Join(spec.AppDirectory, spec.Exe)); err != nil {
		return "", errors.Wrapf(err, errors.ErrInstaller, "executable %s not found in %s", spec.Exe, spec.AppDirectory)
	}

	outFile := filepath.Join(spec.OutputDirectory, SetupFileName(spec.ProductName))
	script, err := Script(spec, outFile)
	if err != nil {
		return "", err
	}

	scriptPath := filepath.Join(spec.OutputDirectory, scriptName)
	if err := n.fs.WriteFile(scriptPath, script, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrInstaller, "cannot write %s", scriptPath)
	}
	defer func() {
		if err := filesystem.RemoveIfExists(n.fs, scriptPath); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove installer script")
		}
	}()

	if _, err := n.runner.Run(ctx, types.Command{
		Name: n.makensis,
		Args: []string{"-V2", "-NOCD", scriptPath},
		Dir:  spec.OutputDirectory,
	}); err != nil {
		return "", errors.Wrap(err, errors.ErrInstaller, "makensis failed")
	}

	logger.Info().Str("installer", outFile).Msg("Windows installer created")
	return outFile, nil
}

// nsisEscape quotes a value for use inside a double-quoted NSIS string
func nsisEscape(s string) string {
	r := strings.NewReplacer(`$`, `$$`, `"`, `$\"`, "\n", `$\n`, "\r", `$\r`, "\t", `$\t`)
	return r.Replace(s)
}

// viVersion pads a version to the four numeric parts VIProductVersion requires
func viVersion(v string) string {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	out := make([]string, 4)
	for i := range out {
		out[i] = "0"
		if i < len(parts) && parts[i] != "" && strings.Trim(parts[i], "0123456789") == "" {
			out[i] = parts[i]
		}
	}
	return strings.Join(out, ".")
}
