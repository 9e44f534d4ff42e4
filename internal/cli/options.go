package cli

import (
	"github.com/spf13/pflag"

	"github.com/arthur-debert/electron-kit/pkg/config"
)

// optionFlag maps a command line flag onto a configuration key
type optionFlag struct {
	name    string
	short   string
	key     string
	usage   string
	boolean bool
	def     bool
}

var optionFlags = []optionFlag{
	{name: "output", short: "o", key: "output", usage: MsgFlagOutput},
	{name: "input", short: "i", key: "input", usage: MsgFlagInput},
	{name: "asar", key: "asar", usage: MsgFlagAsar, boolean: true, def: true},
	{name: "product-name", short: "n", key: "product_name", usage: MsgFlagProductName},
	{name: "company", key: "company", usage: MsgFlagCompany},
	{name: "copyright", key: "copyright", usage: MsgFlagCopyright},
	{name: "app-version", key: "version", usage: MsgFlagVersion},
	{name: "description", key: "description", usage: MsgFlagDescription},
	{name: "icon", key: "icon", usage: MsgFlagIcon},
	{name: "permission", key: "permission", usage: MsgFlagPermission},
	{name: "manifest", key: "manifest", usage: MsgFlagManifest},
	{name: "runtime", key: "runtime", usage: MsgFlagRuntime},
	{name: "platform", short: "p", key: "platform", usage: MsgFlagPlatform},
	{name: "bundle-id", key: "bundle_id", usage: MsgFlagBundleID},
	{name: "skip-install", key: "skip_install", usage: MsgFlagSkipInstall, boolean: true},
	{name: "no-installer", key: "no_installer", usage: MsgFlagNoInstaller, boolean: true},
}

// addOptionFlags registers the build option flags on fs
func addOptionFlags(fs *pflag.FlagSet) {
	for _, f := range optionFlags {
		if f.boolean {
			fs.BoolP(f.name, f.short, f.def, f.usage)
		} else {
			fs.StringP(f.name, f.short, "", f.usage)
		}
	}
}

// overrides returns the configuration keys of the flags set on the command line
func overrides(fs *pflag.FlagSet) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	for _, f := range optionFlags {
		if !fs.Changed(f.name) {
			continue
		}
		if f.boolean {
			v, err := fs.GetBool(f.name)
			if err != nil {
				return nil, err
			}
			out[f.key] = v
			continue
		}
		v, err := fs.GetString(f.name)
		if err != nil {
			return nil, err
		}
		out[f.key] = v
	}
	return out, nil
}

// loadConfig merges the configuration sources with the command's flags
func loadConfig(g *globalOptions, fs *pflag.FlagSet) (*config.Config, error) {
	values, err := overrides(fs)
	if err != nil {
		return nil, err
	}
	return config.Load(config.LoadOptions{
		WorkDir:   g.workDir,
		File:      g.configFile,
		Overrides: values,
	})
}
