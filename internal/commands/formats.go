package commands

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/date"
	"github.com/sjatkinson/temporis/internal/ui"
)

const formatsIntro = `# Date expressions

Matching ignores case and surrounding whitespace. Whitespace or punctuation
inside an expression is never accepted. Shapes are tried in the order below
and the first one that fits decides the result.

| Shape | Examples | Resolves to |
|---|---|---|
| ` + "`YYYY-M-D`" + `, ` + "`YYYY/M/D`" + ` | 2024-01-16, 2024/1/6 | that date |
| ` + "`D-M-YYYY`" + `, ` + "`D/M/YYYY`" + ` | 16-01-2024 | that date |
| keywords | today, tod, now, yesterday, yes, tomorrow, tom | today, -1 day, +1 day |
| weekday | friday, fri | next occurrence, never today |
| ` + "`n<weekday>`" + ` | nfriday | one week after the next occurrence |
| ` + "`<N><weekday>`" + ` | 0fri, 2friday | this week's day plus N weeks (0 = next occurrence) |
| period marker | see below | |
| ordinal | 1st, 15th, 31st | next date with that day of month |
| relative | 5d, -2w, 3months, 1y | today plus offset (m = 30 days, y = 365 days) |
| ` + "`D-Mon`" + ` | 16-jan, 16/january | next occurrence on or after today |
| ` + "`Mon-D`" + ` | jan-16 | next occurrence on or after today |
| ` + "`D-Mon-YYYY`" + ` | 16-jan-2024 | that date |
| ` + "`YYYY-Mon-D`" + ` | 2024-jan-16 | that date |
| ` + "`D-M`" + ` | 16-1, 16/01 | next occurrence on or after today |

Relative units: d, day, days, w, wk, wks, week, weeks, m, mth, mths, month,
months, y, yr, yrs, year, years.
`

// formatsDoc returns the vocabulary reference as markdown.
func formatsDoc() string {
	var sb strings.Builder
	sb.WriteString(formatsIntro)
	sb.WriteString("\n## Period markers\n\n| Marker | Meaning |\n|---|---|\n")
	for _, m := range date.Markers() {
		fmt.Fprintf(&sb, "| %s | %s |\n", m.Name, m.Description)
	}
	return sb.String()
}

func RunFormats(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" formats", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, FormatsUsage(ctx.AppName))
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, FormatsUsage(ctx.AppName))
		return 2
	}

	out, err := ui.RenderMarkdown(ui.NewDisplayContext(ctx.Out), formatsDoc())
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}
	fmt.Fprint(ctx.Out, out)
	return 0
}

func FormatsUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s formats

Prints the recognised date expressions.

`, app)
}
