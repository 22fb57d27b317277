package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/ui"
)

// RunExplain resolves expressions like parse but reports which pattern
// matched and, for failures, the error kind.
func RunExplain(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" explain", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, ExplainUsage(ctx.AppName))
	}

	var mf momentFlags
	mf.register(fs)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, ExplainUsage(ctx.AppName))
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

	if settings.Output != "text" {
		if err := writeStructured(ctx.Out, settings.Output, results); err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
	} else {
		disp := ui.NewDisplayContext(ctx.Out)
		fmt.Fprintf(ctx.Out, "%s %s (%s)\n\n",
			disp.Render(ui.Bold, "today:"), now.Format("2006-01-02"), now.Weekday())

		tbl := ui.NewTable(3)
		tbl.AddRow(disp.Render(ui.Bold, "INPUT"), disp.Render(ui.Bold, "PATTERN"), disp.Render(ui.Bold, "RESULT"))
		for _, r := range results {
			pattern := r.Pattern
			if pattern == "" {
				pattern = "-"
			}
			var outcome string
			if r.Error != "" {
				outcome = disp.Render(ui.Muted, r.Kind)
			} else {
				outcome = disp.Render(ui.Accent, r.resolved.Format(settings.Format)+" ("+r.resolved.Weekday().String()+")")
			}
			tbl.AddRow(r.Input, pattern, outcome)
		}
		fmt.Fprint(ctx.Out, tbl.String())
	}

	if resolveErr != nil {
		return 1
	}
	return 0
}

func ExplainUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s explain [flags] <expr> [<expr> ...]

Shows which pattern each expression matched and what it resolved to.

Flags:
  --now <date>          reference moment (YYYY-MM-DD or RFC3339)
  --tz <zone>           IANA time zone deciding what today is
  --format <layout>     Go time layout for resolved dates
  -o, --output <fmt>    text, json or yaml

`, app)
}
