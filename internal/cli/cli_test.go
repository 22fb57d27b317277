package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sjatkinson/temporis/internal/config"
	"github.com/sjatkinson/temporis/internal/date"
)

// isolate points the config at a temp file holding body (no file when body
// is empty) and pins the time zone.
func isolate(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if body != "" {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	t.Setenv(config.ConfigEnvVar, path)
	t.Setenv(config.TimezoneEnvVar, "UTC")
	t.Setenv(config.FormatEnvVar, "")
	t.Setenv(config.OutputEnvVar, "")
}

func testConfig() (Config, *bytes.Buffer, *bytes.Buffer) {
	var outBuf, errBuf bytes.Buffer
	return Config{
		AppName: "temporis",
		Out:     &outBuf,
		Err:     &errBuf,
		In:      strings.NewReader(""),
		Clock:   date.FixedClock{FixedTime: time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)},
	}, &outBuf, &errBuf
}

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name     string
		cmdName  string
		want     bool
		wantName string
	}{
		{"parse exists", "parse", true, "parse"},
		{"explain exists", "explain", true, "explain"},
		{"init exists", "init", true, "init"},
		{"nonexistent command", "nonexistent", false, ""},
		{"empty command", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := getCommand(tt.cmdName)
			if (info != nil) != tt.want {
				t.Errorf("getCommand(%q) = %v, want %v", tt.cmdName, info != nil, tt.want)
				return
			}
			if tt.want && info != nil && info.Name != tt.wantName {
				t.Errorf("getCommand(%q).Name = %q, want %q", tt.cmdName, info.Name, tt.wantName)
			}
		})
	}
}

func TestGetAllCommands(t *testing.T) {
	cmds := getAllCommands()

	expected := map[string]bool{
		"parse":   false,
		"explain": false,
		"markers": false,
		"formats": false,
		"init":    false,
	}

	for _, cmd := range cmds {
		if _, ok := expected[cmd.Name]; ok {
			expected[cmd.Name] = true
		}
		if cmd.Description == "" {
			t.Errorf("Command %q has empty description", cmd.Name)
		}
		if cmd.Usage == nil {
			t.Errorf("Command %q has nil Usage function", cmd.Name)
		}
		if cmd.Runner == nil {
			t.Errorf("Command %q has nil Runner function", cmd.Name)
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("Expected command %q not found in getAllCommands()", name)
		}
	}

	// The returned slice is a copy.
	cmds[0] = nil
	if getAllCommands()[0] == nil {
		t.Error("getAllCommands() exposed the command table")
	}
}

func TestCommandUsage(t *testing.T) {
	tests := []struct {
		name        string
		cmd         string
		wantContain string
	}{
		{"parse usage", "parse", "Usage:"},
		{"explain usage", "explain", "Usage:"},
		{"markers usage", "markers", "Usage:"},
		{"formats usage", "formats", "Usage:"},
		{"init usage", "init", "--force"},
		{"unknown command", "nonexistent", "Unknown command"},
		{"empty command", "", "Unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := commandUsage("temporis", tt.cmd)
			if !strings.Contains(result, tt.wantContain) {
				t.Errorf("commandUsage(%q) = %q, want to contain %q", tt.cmd, result, tt.wantContain)
			}
		})
	}
}

func TestUsageIncludesAllCommands(t *testing.T) {
	usageText := usage("temporis")

	for _, cmd := range []string{"parse", "explain", "markers", "formats", "init", "help"} {
		if !strings.Contains(usageText, cmd) {
			t.Errorf("usage() output does not contain command %q", cmd)
		}
	}

	expectedSections := []string{"Usage:", "Global flags:", "Commands:", "help <command>"}
	for _, section := range expectedSections {
		if !strings.Contains(usageText, section) {
			t.Errorf("usage() output does not contain section %q", section)
		}
	}
}

func TestRun_CommandParsing(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "version flag", argv: []string{"--version"}, wantCode: 0, wantOut: "temporis 0.0.0-dev"},
		{name: "help flag", argv: []string{"--help"}, wantCode: 0, wantErr: "Usage:"},
		{name: "no args", argv: []string{}, wantCode: 0, wantErr: "Usage:"},
		{name: "unknown command", argv: []string{"nonexistent"}, wantCode: 2, wantErr: "unknown command"},
		{name: "help command", argv: []string{"help"}, wantCode: 0, wantErr: "Usage:"},
		{name: "help with subcommand", argv: []string{"help", "parse"}, wantCode: 0, wantErr: "parse"},
		{name: "invalid global flag", argv: []string{"--invalid-flag"}, wantCode: 2, wantErr: "Usage:"},
		{name: "parse command", argv: []string{"parse", "tomorrow"}, wantCode: 0, wantOut: "2025-12-16\n"},
		{name: "command flags after name", argv: []string{"parse", "--format", "02/01/2006", "eom"}, wantCode: 0, wantOut: "31/12/2025\n"},
		{name: "parse failure", argv: []string{"parse", "31-feb-2025"}, wantCode: 1, wantErr: "Error:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, "")
			cfg, outBuf, errBuf := testConfig()

			code := Run(tt.argv, cfg)

			if code != tt.wantCode {
				t.Errorf("Run() exit code = %d, want %d (stderr: %q)", code, tt.wantCode, errBuf.String())
			}
			if tt.wantOut != "" && !strings.Contains(outBuf.String(), tt.wantOut) {
				t.Errorf("Run() output = %q, want to contain %q", outBuf.String(), tt.wantOut)
			}
			if tt.wantErr != "" && !strings.Contains(errBuf.String(), tt.wantErr) {
				t.Errorf("Run() error output = %q, want to contain %q", errBuf.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_DefaultToParse(t *testing.T) {
	isolate(t, "")
	cfg, outBuf, errBuf := testConfig()

	code := Run([]string{"tomorrow", "friday", "eoy"}, cfg)
	if code != 0 {
		t.Fatalf("Run() exit code = %d, want 0 (stderr: %q)", code, errBuf.String())
	}
	want := "2025-12-16\n2025-12-19\n2025-12-31\n"
	if got := outBuf.String(); got != want {
		t.Errorf("Run() output = %q, want %q", got, want)
	}
}

func TestRun_AliasResolution(t *testing.T) {
	isolate(t, "[alias]\np = \"parse\"\nx = \"explain\"\n")

	t.Run("alias to parse", func(t *testing.T) {
		cfg, outBuf, errBuf := testConfig()
		if code := Run([]string{"p", "1w"}, cfg); code != 0 {
			t.Fatalf("Run() exit code = %d, want 0 (stderr: %q)", code, errBuf.String())
		}
		if got := outBuf.String(); got != "2025-12-22\n" {
			t.Errorf("Run() output = %q, want %q", got, "2025-12-22\n")
		}
	})

	t.Run("alias to explain", func(t *testing.T) {
		cfg, outBuf, errBuf := testConfig()
		if code := Run([]string{"x", "sow"}, cfg); code != 0 {
			t.Fatalf("Run() exit code = %d, want 0 (stderr: %q)", code, errBuf.String())
		}
		if !strings.Contains(outBuf.String(), "marker") {
			t.Errorf("Run() output = %q, want the marker pattern", outBuf.String())
		}
	})
}

func TestRun_MalformedConfig(t *testing.T) {
	isolate(t, "[alias\n")
	cfg, _, errBuf := testConfig()
	cfg.Verbose = true

	// Alias loading warns; the command still runs and then fails on the
	// config when it resolves settings.
	code := Run([]string{"parse", "today"}, cfg)
	if !strings.Contains(errBuf.String(), "Warning: failed to load aliases") {
		t.Errorf("stderr = %q, want alias warning", errBuf.String())
	}
	if code != 1 {
		t.Errorf("Run() exit code = %d, want 1", code)
	}
}

func TestRun_DebugLogging(t *testing.T) {
	isolate(t, "")
	cfg, _, errBuf := testConfig()

	if code := Run([]string{"--debug", "parse", "today"}, cfg); code != 0 {
		t.Fatalf("Run() exit code = %d, want 0 (stderr: %q)", code, errBuf.String())
	}
	for _, want := range []string{"level=DEBUG", "app=temporis", "captured reference moment"} {
		if !strings.Contains(errBuf.String(), want) {
			t.Errorf("stderr = %q, want to contain %q", errBuf.String(), want)
		}
	}
}

func TestRun_QuietByDefault(t *testing.T) {
	isolate(t, "")
	cfg, _, errBuf := testConfig()

	if code := Run([]string{"parse", "today"}, cfg); code != 0 {
		t.Fatalf("Run() exit code = %d, want 0", code)
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestValidateAliases(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]string
		verbose  bool
		want     map[string]string
		wantWarn bool
	}{
		{
			name:     "valid alias",
			raw:      map[string]string{"p": "parse"},
			verbose:  false,
			want:     map[string]string{"p": "parse"},
			wantWarn: false,
		},
		{
			name:     "alias conflicts with built-in",
			raw:      map[string]string{"parse": "explain"},
			verbose:  true,
			want:     map[string]string{},
			wantWarn: true,
		},
		{
			name:     "alias points to non-existent",
			raw:      map[string]string{"foo": "nonexistent"},
			verbose:  true,
			want:     map[string]string{},
			wantWarn: true,
		},
		{
			name:     "alias points to another alias",
			raw:      map[string]string{"p": "parse", "pp": "p"},
			verbose:  true,
			want:     map[string]string{"p": "parse"},
			wantWarn: true,
		},
		{
			name:     "multiple valid aliases",
			raw:      map[string]string{"p": "parse", "m": "markers"},
			verbose:  false,
			want:     map[string]string{"p": "parse", "m": "markers"},
			wantWarn: false,
		},
		{
			name:     "quiet when not verbose",
			raw:      map[string]string{"foo": "nonexistent"},
			verbose:  false,
			want:     map[string]string{},
			wantWarn: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			raw := make(config.Aliases)
			for k, v := range tt.raw {
				raw[k] = v
			}

			valid := validateAliases(raw, tt.verbose, &errBuf)

			if len(valid) != len(tt.want) {
				t.Errorf("validateAliases() returned %d aliases, want %d", len(valid), len(tt.want))
			}
			for k, v := range tt.want {
				if valid[k] != v {
					t.Errorf("validateAliases()[%q] = %q, want %q", k, valid[k], v)
				}
			}

			hasWarn := errBuf.String() != ""
			if hasWarn != tt.wantWarn {
				t.Errorf("validateAliases() warning output = %v, want %v (output: %q)", hasWarn, tt.wantWarn, errBuf.String())
			}
		})
	}
}
