package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppDirName = "temporis"

	// Env var naming an alternative config file.
	ConfigEnvVar = "TEMPORIS_CONFIG"

	// Env vars overriding config.toml settings (CLI flags still win).
	TimezoneEnvVar = "TEMPORIS_TZ"
	FormatEnvVar   = "TEMPORIS_FORMAT"
	OutputEnvVar   = "TEMPORIS_OUTPUT"

	DefaultFormat = "2006-01-02"
	DefaultOutput = "text"
)

// Output formats understood by the commands.
var OutputFormats = []string{"text", "json", "yaml"}

// File mirrors config.toml.
type File struct {
	Timezone string            `toml:"timezone"`
	Format   string            `toml:"format"`
	Output   string            `toml:"output"`
	Alias    map[string]string `toml:"alias"`
}

// Overrides carries values given on the command line. Empty fields are unset.
type Overrides struct {
	Timezone string
	Format   string
	Output   string
}

// Settings are the effective values after applying precedence.
type Settings struct {
	Location *time.Location
	Format   string
	Output   string
}

// ConfigPath returns the config file path:
//
//	$TEMPORIS_CONFIG
//
// or
//
//	$XDG_CONFIG_HOME/temporis/config.toml
//
// or
//
//	~/.config/temporis/config.toml
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		return ExpandUser(p)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, AppDirName, "config.toml"), nil
}

// Load reads config.toml. A missing file yields an empty File and no error;
// a file that exists but is malformed TOML is an error.
func Load() (File, error) {
	cfgPath, err := ConfigPath()
	if err != nil {
		return File{}, err
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, err
	}

	var cfg File
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("%s: %w", cfgPath, err)
	}
	return cfg, nil
}

// Resolve computes the effective settings based on precedence:
// CLI flag > env var > config > built-in default
func Resolve(cli Overrides) (Settings, error) {
	cfg, err := Load()
	if err != nil {
		return Settings{}, err
	}

	tz := firstNonEmpty(cli.Timezone, os.Getenv(TimezoneEnvVar), cfg.Timezone)
	loc := time.Local
	if tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
	}

	output := strings.ToLower(firstNonEmpty(cli.Output, os.Getenv(OutputEnvVar), cfg.Output, DefaultOutput))
	if !validOutput(output) {
		return Settings{}, fmt.Errorf("invalid output format %q (expected one of %s)", output, strings.Join(OutputFormats, ", "))
	}

	return Settings{
		Location: loc,
		Format:   firstNonEmpty(cli.Format, os.Getenv(FormatEnvVar), cfg.Format, DefaultFormat),
		Output:   output,
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func validOutput(o string) bool {
	for _, f := range OutputFormats {
		if o == f {
			return true
		}
	}
	return false
}

// ExpandUser expands a leading "~/" to the user home directory.
// If the path doesn't start with "~", it returns it unchanged.
func ExpandUser(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if p == "~" {
			return home, nil
		}
		return filepath.Join(home, p[2:]), nil
	}
	return p, nil
}

// Aliases is a map of alias name to target command.
type Aliases map[string]string

// LoadAliases reads config.toml and returns aliases from the [alias] section.
// Returns an empty map (not an error) if:
//   - Config file doesn't exist
//   - [alias] section doesn't exist
//   - [alias] section is empty
//
// Returns an error only if the config file exists but is malformed TOML.
func LoadAliases() (Aliases, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Return a copy to avoid external modification
	aliases := make(Aliases, len(cfg.Alias))
	for k, v := range cfg.Alias {
		aliases[k] = v
	}

	return aliases, nil
}
