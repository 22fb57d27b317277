package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/sjatkinson/temporis/internal/config"
	"github.com/sjatkinson/temporis/internal/date"
)

// CommandContext provides the context needed for command execution.
// This avoids import cycles between cli and commands packages.
type CommandContext struct {
	AppName string
	Out     io.Writer
	Err     io.Writer
	In      io.Reader

	// Ctx carries the logger installed by the cli package.
	Ctx context.Context

	// Clock is read once per command; nil means the system clock.
	Clock date.Clock
}

func (c CommandContext) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c CommandContext) clock() date.Clock {
	if c.Clock == nil {
		return date.RealClock{}
	}
	return c.Clock
}

// momentFlags are shared by every command that resolves expressions.
type momentFlags struct {
	now    string
	tz     string
	format string
	output string
}

func (m *momentFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&m.now, "now", "", "reference moment (YYYY-MM-DD or RFC3339)")
	fs.StringVar(&m.tz, "tz", "", "IANA time zone deciding what today is")
	fs.StringVar(&m.format, "format", "", "Go time layout for text output")
	fs.StringVarP(&m.output, "output", "o", "", "output format: text, json or yaml")
}

// capture resolves the effective settings and reads the current moment
// exactly once.
func (m *momentFlags) capture(ctx CommandContext) (config.Settings, time.Time, error) {
	settings, err := config.Resolve(config.Overrides{
		Timezone: m.tz,
		Format:   m.format,
		Output:   m.output,
	})
	if err != nil {
		return config.Settings{}, time.Time{}, err
	}

	var now time.Time
	if m.now != "" {
		now, err = parseReference(m.now, settings.Location)
		if err != nil {
			return config.Settings{}, time.Time{}, err
		}
	} else {
		now = ctx.clock().Now().In(settings.Location)
	}

	ctxlog.Logger(ctx.context()).Debug("captured reference moment",
		"now", now.Format(time.RFC3339), "tz", settings.Location.String())
	return settings, now, nil
}

// parseReference accepts a plain date, taken as midnight in loc, or an
// RFC3339 timestamp, converted to loc.
func parseReference(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q (expected YYYY-MM-DD or RFC3339)", s)
	}
	return t.In(loc), nil
}

// readExpressions returns one expression per non-blank line of r.
func readExpressions(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			exprs = append(exprs, line)
		}
	}
	return exprs, sc.Err()
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, output string, v any) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
}
