package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/pipeline"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// EnvPrefix is the prefix of environment variables read as configuration
const EnvPrefix = "EKIT_"

// FileNames are the project config files searched for, in order
var FileNames = []string{"electron-kit.toml", ".electron-kit.toml", "electron-kit.yaml", "electron-kit.yml"}

// Config is the fully merged configuration of one invocation
type Config struct {
	types.Options `koanf:",squash" yaml:",inline"`

	Tools pipeline.Tools `koanf:"tools" toml:"tools" yaml:"tools"`

	// Source is the config file that was loaded, if any
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// WorkDir is searched for FileNames and, when set, wins over any
	// work_dir from the file or environment. Empty means the current directory.
	WorkDir string
	// File is an explicit config file, which must exist
	File string
	// Overrides are flat keys (e.g. "product_name", "tools.rcedit") applied last
	Overrides map[string]interface{}
	// Environ replaces os.Environ when set
	Environ []string
}

// Load merges defaults, the config file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project config file
	source, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		fileK := koanf.New(".")
		if err := fileK.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		if err := anchorWorkDir(fileK, filepath.Dir(source)); err != nil {
			return nil, err
		}
		if err := mergeLayer(k, fileK); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Environment
	envK := koanf.New(".")
	if err := envK.Load(envProvider(opts.Environ), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}
	if err := mergeLayer(k, envK); err != nil {
		return nil, err
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		overK := koanf.New(".")
		if err := overK.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		if err := mergeLayer(k, overK); err != nil {
			return nil, err
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToPlatformHookFunc(),
				stringToPermissionHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	cfg.Source = source
	if opts.WorkDir != "" {
		cfg.WorkDir = opts.WorkDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile returns the explicit file, or the first of FileNames in WorkDir
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// anchorWorkDir makes a relative work_dir from a config file relative to
// the directory holding that file.
func anchorWorkDir(k *koanf.Koanf, dir string) error {
	wd := k.String("work_dir")
	if wd == "" || filepath.IsAbs(wd) {
		return nil
	}
	if err := k.Set("work_dir", filepath.Join(dir, wd)); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve work_dir")
	}
	return nil
}

// mergeLayer folds src into dst, accepting "archive" as an alias of "asar"
func mergeLayer(dst, src *koanf.Koanf) error {
	if src.Exists("archive") {
		if !src.Exists("asar") {
			if err := src.Set("asar", src.Get("archive")); err != nil {
				return errors.Wrap(err, errors.ErrConfigLoad, "failed to apply archive alias")
			}
		}
		src.Delete("archive")
	}
	if err := dst.Merge(src); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to merge configuration")
	}
	return nil
}

// envProvider maps EKIT_PRODUCT_NAME to product_name and EKIT_TOOLS_RCEDIT
// to tools.rcedit.
func envProvider(environ []string) koanf.Provider {
	transform := func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if rest, ok := strings.CutPrefix(key, "tools_"); ok {
			return "tools." + rest
		}
		return key
	}
	if environ == nil {
		return env.Provider(EnvPrefix, ".", transform)
	}

	values := map[string]interface{}{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		values[transform(name)] = value
	}
	return confmap.Provider(values, ".")
}
