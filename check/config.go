package check

import (
	"bytes"
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/projlint/projlint"
	"github.com/projlint/projlint/fixtures"
)

// Output formats understood by Report.Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config describes one run over a fixture tree.
type Config struct {
	// Root is the directory searched for fixtures.
	Root string `yaml:"root"`
	// Pattern selects fixtures; see fixtures.Options.
	Pattern string `yaml:"pattern"`
	// Exclude lists directory name patterns that are not descended into.
	// Empty means every directory is searched.
	Exclude []string `yaml:"exclude"`
	// Jobs bounds how many files are validated concurrently.
	Jobs int `yaml:"jobs"`
	// DuplicateKeys is one of ignore, warn, error.
	DuplicateKeys string `yaml:"duplicate_keys"`
	// Format is one of text, json, yaml.
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Root:          ".",
		Pattern:       fixtures.DefaultPattern,
		Jobs:          1,
		DuplicateKeys: projlint.Ignore.String(),
		Format:        FormatText,
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their DefaultConfig values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Trace(err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Annotatef(err, "parsing config %s", path)
	}
	return cfg, errors.Annotatef(cfg.Validate(), "config %s", path)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return errors.NotValidf("jobs %d", c.Jobs)
	}
	if _, ok := projlint.ParseSeverity(c.DuplicateKeys); !ok {
		return errors.NotValidf("duplicate_keys %q", c.DuplicateKeys)
	}
	switch c.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return errors.NotValidf("format %q", c.Format)
	}
	return nil
}

func (c Config) options() projlint.Options {
	sev, _ := projlint.ParseSeverity(c.DuplicateKeys)
	return projlint.Options{Strictness: projlint.Strictness{OnDuplicateKey: sev}}
}
