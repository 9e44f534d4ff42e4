package config

import (
	"bytes"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Output formats of Marshal
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Marshal renders cfg in the given format
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
		}
		return out, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (expected toml or yaml)", format).
		WithDetail("format", format)
}

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// WriteStarter writes a commented starter config file into dir and returns
// its path. An existing file is only replaced when force is set.
func WriteStarter(fsys types.FS, dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileNames[0])
	if _, err := fsys.Stat(path); err == nil && !force {
		return "", errors.Newf(errors.ErrInvalidInput, "%s already exists", path).WithDetail("path", path)
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return path, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [tools]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
