package commands

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/date"
)

// result is the per-expression record written by parse and explain.
type result struct {
	Input   string `json:"input" yaml:"input"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Kind    string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`

	resolved date.Date
}

// resolveAll resolves every expression against the same moment. The
// returned error aggregates every failure.
func resolveAll(ctx CommandContext, exprs []string, now time.Time) ([]result, error) {
	logger := ctxlog.Logger(ctx.context())
	errs := &errors.M{}
	results := make([]result, 0, len(exprs))

	for _, expr := range exprs {
		res, err := date.Resolve(expr, now)
		if err != nil {
			var pe *date.ParseError
			r := result{Input: expr, Error: err.Error()}
			if errors.As(err, &pe) {
				r.Kind = pe.Kind.String()
				r.Pattern = string(pe.Pattern)
			}
			logger.Info("resolution failed", "input", expr, "kind", r.Kind, "pattern", r.Pattern)
			errs.Append(err)
			results = append(results, r)
			continue
		}
		logger.Debug("resolved", "input", expr, "pattern", string(res.Pattern), "date", res.Date.String())
		results = append(results, result{
			Input:    expr,
			Date:     res.Date.String(),
			Pattern:  string(res.Pattern),
			resolved: res.Date,
		})
	}
	return results, errs.Err()
}

func RunParse(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" parse", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, ParseUsage(ctx.AppName))
	}

	var mf momentFlags
	mf.register(fs)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, ParseUsage(ctx.AppName))
		return 2
	}

	exprs, code := expressions(fs.Args(), ctx)
	if code != 0 {
		return code
	}

	settings, now, err := mf.capture(ctx)
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	results, resolveErr := resolveAll(ctx, exprs, now)

	if settings.Output == "text" {
		for _, r := range results {
			if r.Error == "" {
				fmt.Fprintln(ctx.Out, r.resolved.Format(settings.Format))
			}
		}
	} else if err := writeStructured(ctx.Out, settings.Output, results); err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	if resolveErr != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", resolveErr)
		return 1
	}
	return 0
}

// expressions returns the positional arguments, or the lines of stdin when
// there are none.
func expressions(args []string, ctx CommandContext) ([]string, int) {
	if len(args) > 0 {
		return args, 0
	}
	exprs, err := readExpressions(ctx.In)
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: reading expressions: %v\n", err)
		return nil, 1
	}
	if len(exprs) == 0 {
		fmt.Fprintf(ctx.Err, "Error: missing argument: date expression required\n")
		return nil, 2
	}
	return exprs, 0
}

func ParseUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s parse [flags] <expr> [<expr> ...]

Resolves each date expression against the same reference moment.
With no arguments, expressions are read from stdin, one per line.
Put -- before negative offsets such as -5d so they are not read as flags.

Flags:
  --now <date>          reference moment (YYYY-MM-DD or RFC3339)
  --tz <zone>           IANA time zone deciding what today is
  --format <layout>     Go time layout for text output (default 2006-01-02)
  -o, --output <fmt>    text, json or yaml

Run '%s formats' for the recognised expressions.
`, app, app)
}
