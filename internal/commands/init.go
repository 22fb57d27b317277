package commands

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/config"
)

func RunInit(args []string, ctx CommandContext) int {
	fs := flag.NewFlagSet(ctx.AppName+" init", flag.ContinueOnError)
	fs.SetOutput(ctx.Err)
	fs.Usage = func() {
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
	}

	var force bool
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(ctx.Err)
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
		return 2
	}
	if len(fs.Args()) != 0 {
		fmt.Fprintln(ctx.Err, InitUsage(ctx.AppName))
		return 2
	}

	res, err := config.InitConfig(config.InitOptions{Force: force})
	if err != nil {
		fmt.Fprintf(ctx.Err, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(ctx.Out, "Wrote config: %s\n", res.Path)
	if res.Existed {
		fmt.Fprintln(ctx.Out, "Note: --force was used; the previous config was replaced.")
	}
	return 0
}

func InitUsage(app string) string {
	return fmt.Sprintf(`Usage:
  %s init [--force]

Writes a default config.toml ($TEMPORIS_CONFIG, or under $XDG_CONFIG_HOME/temporis).

Flags:
  --force          overwrite an existing config file

`, app)
}
