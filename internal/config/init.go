package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type InitOptions struct {
	Force bool
}

type InitResult struct {
	Path    string
	Existed bool // true if a config file was already present
}

const defaultConfig = `# temporis configuration

# IANA time zone used to decide what "today" is. Empty means the system zone.
# timezone = "Europe/London"

# Go time layout for text output.
format = "2006-01-02"

# Default output: text, json or yaml.
output = "text"

[alias]
# p = "parse"
# x = "explain"
`

// InitConfig writes a default config.toml at ConfigPath. An existing file is
// left alone unless opts.Force is set.
func InitConfig(opts InitOptions) (InitResult, error) {
	cfgPath, err := ConfigPath()
	if err != nil {
		return InitResult{}, err
	}

	existed := fileExists(cfgPath)
	if existed && !opts.Force {
		return InitResult{}, fmt.Errorf(
			"config file %s already exists (use --force to overwrite)",
			cfgPath,
		)
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return InitResult{}, err
	}
	if err := os.WriteFile(cfgPath, []byte(defaultConfig), 0o644); err != nil {
		return InitResult{}, err
	}

	return InitResult{
		Path:    cfgPath,
		Existed: existed,
	}, nil
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
