package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cloudeng.io/logging/ctxlog"
	flag "github.com/spf13/pflag"

	"github.com/sjatkinson/temporis/internal/commands"
	"github.com/sjatkinson/temporis/internal/config"
	"github.com/sjatkinson/temporis/internal/date"
)

type Config struct {
	AppName string
	Out     io.Writer
	Err     io.Writer
	In      io.Reader

	Version string

	Verbose bool
	Debug   bool

	// Clock overrides the system clock (tests).
	Clock date.Clock
}

// commandInfo describes one built-in command.
type commandInfo struct {
	Name        string
	Description string
	Usage       func(app string) string
	Runner      func(args []string, ctx commands.CommandContext) int
}

// commandTable lists built-in commands in the order usage() shows them.
var commandTable = []*commandInfo{
	{"parse", "Resolve date expressions to dates", commands.ParseUsage, commands.RunParse},
	{"explain", "Show which pattern each expression matched", commands.ExplainUsage, commands.RunExplain},
	{"markers", "List period markers and their dates", commands.MarkersUsage, commands.RunMarkers},
	{"formats", "Describe the recognised expressions", commands.FormatsUsage, commands.RunFormats},
	{"init", "Write a default config file", commands.InitUsage, commands.RunInit},
}

func getCommand(name string) *commandInfo {
	for _, c := range commandTable {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func getAllCommands() []*commandInfo {
	out := make([]*commandInfo, len(commandTable))
	copy(out, commandTable)
	return out
}

func isBuiltIn(name string) bool {
	return name == "help" || getCommand(name) != nil
}

func Run(argv []string, cfg Config) int {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.AppName == "" {
		cfg.AppName = "temporis"
	}
	if cfg.Version == "" {
		cfg.Version = "0.0.0-dev"
	}

	// ---- Global flags ----
	global := flag.NewFlagSet(cfg.AppName, flag.ContinueOnError)
	global.SetOutput(cfg.Err)
	// Stop at the command name so command flags reach the command.
	global.SetInterspersed(false)

	var (
		flgHelp    bool
		flgVersion bool
	)
	global.BoolVarP(&flgHelp, "help", "h", false, "show help")
	global.BoolVar(&flgVersion, "version", false, "print version and exit")
	global.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	global.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug output")

	global.Usage = func() {}

	if err := global.Parse(argv); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(cfg.Err, usage(cfg.AppName))
			return 0
		}
		fmt.Fprintln(cfg.Err)
		fmt.Fprintln(cfg.Err, usage(cfg.AppName))
		return 2
	}

	if flgVersion {
		fmt.Fprintf(cfg.Out, "%s %s\n", cfg.AppName, cfg.Version)
		return 0
	}

	rest := global.Args()
	if flgHelp || len(rest) == 0 {
		fmt.Fprintln(cfg.Err, usage(cfg.AppName))
		return 0
	}

	cmd := rest[0]
	args := rest[1:]

	// Load aliases from config
	rawAliases, err := config.LoadAliases()
	if err != nil {
		// Log warning but continue (don't fail on malformed config)
		if cfg.Verbose || cfg.Debug {
			fmt.Fprintf(cfg.Err, "Warning: failed to load aliases: %v\n", err)
		}
		rawAliases = make(config.Aliases)
	}
	aliases := validateAliases(rawAliases, cfg.Verbose || cfg.Debug, cfg.Err)

	// Resolve alias: built-in commands take precedence
	if !isBuiltIn(cmd) {
		if target, ok := aliases[cmd]; ok {
			cmd = target
		}
	}

	ctx := commands.CommandContext{
		AppName: cfg.AppName,
		Out:     cfg.Out,
		Err:     cfg.Err,
		In:      cfg.In,
		Ctx:     newLogContext(cfg),
		Clock:   cfg.Clock,
	}

	if cmd == "help" {
		if len(args) == 0 {
			fmt.Fprintln(cfg.Err, usage(cfg.AppName))
			return 0
		}
		fmt.Fprintln(cfg.Err, commandUsage(cfg.AppName, args[0]))
		return 0
	}

	if info := getCommand(cmd); info != nil {
		return info.Runner(args, ctx)
	}

	// "temporis tomorrow" is shorthand for "temporis parse tomorrow".
	if _, ok := date.Classify(cmd); ok {
		return commands.RunParse(rest, ctx)
	}

	fmt.Fprintf(cfg.Err, "unknown command: %q\n\n", cmd)
	fmt.Fprintln(cfg.Err, usage(cfg.AppName))
	return 2
}

// newLogContext installs a text logger on stderr: debug level for --debug,
// info for --verbose. Without either the context carries no logger and
// ctxlog discards.
func newLogContext(cfg Config) context.Context {
	ctx := context.Background()
	var level slog.Level
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Verbose:
		level = slog.LevelInfo
	default:
		return ctx
	}
	handler := slog.NewTextHandler(cfg.Err, &slog.HandlerOptions{Level: level})
	return ctxlog.WithLogger(ctx, slog.New(handler).With("app", cfg.AppName))
}

func usage(app string) string {
	var cmds strings.Builder
	for _, c := range commandTable {
		fmt.Fprintf(&cmds, "  %-9s %s\n", c.Name, c.Description)
	}
	fmt.Fprintf(&cmds, "  %-9s %s\n", "help", "Help for a command")

	return fmt.Sprintf(`%s: resolve short date expressions to calendar dates

Usage:
  %s [global flags] <command> [command flags] [args]
  %s [global flags] <expr> [<expr> ...]     (same as parse)

Global flags:
  -h, --help           show help
      --version        print version and exit
  -v, --verbose        verbose output
      --debug          debug output

Commands:
%s
Run:
  %s help <command>
`, app, app, app, cmds.String(), app)
}

func commandUsage(app, cmd string) string {
	if info := getCommand(cmd); info != nil {
		return info.Usage(app)
	}
	return fmt.Sprintf("Unknown command %q\n\n%s", cmd, usage(app))
}

// validateAliases filters and validates aliases:
// - Removes aliases that conflict with built-in commands (built-in wins)
// - Removes aliases that point to non-existent commands
// - Removes aliases that point to other aliases (no recursion)
// Returns a validated map of alias -> built-in command.
func validateAliases(raw config.Aliases, verbose bool, errOut io.Writer) config.Aliases {
	valid := make(config.Aliases)

	for alias, target := range raw {
		// Skip aliases that conflict with built-in commands
		if isBuiltIn(alias) {
			if verbose {
				fmt.Fprintf(errOut, "Warning: alias %q conflicts with built-in command, ignoring\n", alias)
			}
			continue
		}

		// Check if target is a built-in command
		if !isBuiltIn(target) {
			// Check if target is another alias (recursion)
			if _, isAlias := raw[target]; isAlias {
				if verbose {
					fmt.Fprintf(errOut, "Warning: alias %q points to another alias %q (recursion not allowed), ignoring\n", alias, target)
				}
				continue
			}
			// Target is not a built-in and not an alias - invalid
			if verbose {
				fmt.Fprintf(errOut, "Warning: alias %q points to non-existent command %q, ignoring\n", alias, target)
			}
			continue
		}

		// Valid alias: points directly to a built-in command
		valid[alias] = target
	}

	return valid
}
