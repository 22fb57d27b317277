package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/date"
	"github.com/sjatkinson/temporis/internal/ui"
)

type markerRow struct {
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

func RunMarkers(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" markers", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, MarkersUsage(ctx.AppName))
	}

	var mf momentFlags
	mf.register(fs)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, MarkersUsage(ctx.AppName))
		return 2
	}
	if len(fs.Args()) != 0 {
		fmt.Fprintf(ctx.Err, "Error: markers takes no arguments\n")
		return 2
	}

	settings, now, err := mf.capture(ctx)
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}
	today := date.DateOf(now)

	markers := date.Markers()
	if settings.Output != "text" {
		rows := make([]markerRow, 0, len(markers))
		for _, m := range markers {
			rows = append(rows, markerRow{Name: m.Name, Date: m.Resolve(today).String(), Description: m.Description})
		}
		if err := writeStructured(ctx.Out, settings.Output, rows); err != nil {
			fmt.Fprintf(ctx.Err, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	disp := ui.NewDisplayContext(ctx.Out)
	tbl := ui.NewTable(3)
	for _, m := range markers {
		d := m.Resolve(today)
		tbl.AddRow(
			disp.Render(ui.Bold, m.Name),
			disp.Render(ui.Accent, d.Format(settings.Format)),
			disp.Render(ui.Muted, d.Weekday().String()[:3]+"  "+m.Description),
		)
	}
	fmt.Fprint(ctx.Out, tbl.String())
	return 0
}

func MarkersUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s markers [flags]

Lists every period marker and the date it resolves to.

Flags:
  --now <date>          reference moment (YYYY-MM-DD or RFC3339)
  --tz <zone>           IANA time zone deciding what today is
  --format <layout>     Go time layout for dates
  -o, --output <fmt>    text, json or yaml

`, app)
}
