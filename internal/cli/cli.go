package cli

import (
	"errors"
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// ErrUsage marks an invocation shape the CLI does not understand.
var ErrUsage = errors.New("invalid arguments")

// Usage describes the accepted invocation shapes.
const Usage = `
Usage:
  ppcal            Show current month and today's events
  ppcal 3          Show 3-month view (prev/current/next)
  ppcal 2024       Show full year view
  ppcal 6 2024     Show June 2024
  ppcal add        Add a new event
  ppcal del        Delete an event from today
  ppcal list       List events for a day
  ppcal export     Write events as iCalendar
  ppcal import F   Add events from an .ics file
  ppcal prune      Remove old dated events
  ppcal status     Show storage and configuration
`

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Add    *AddCommand
	Del    *DelCommand
	List   *ListCommand
	Export *ExportCommand
	Import *ImportCommand
	Prune  *PruneCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
// Subcommands are optional: without one, the remaining arguments select a
// calendar view.
func buildParser(a *app) (*goflags.Parser, *commands) {
	parser := goflags.NewParser(&a.globals, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "ppcal"
	parser.LongDescription = "Terminal calendar with seasonal colors and a small event list."
	parser.SubcommandsOptional = true

	cmds := &commands{
		Add:    &AddCommand{app: a},
		Del:    &DelCommand{app: a},
		List:   &ListCommand{app: a},
		Export: &ExportCommand{app: a},
		Import: &ImportCommand{app: a},
		Prune:  &PruneCommand{app: a},
		Status: &StatusCommand{app: a},
	}

	parser.AddCommand("add", "Add an event", "Add an event interactively, or from --desc/--time/--date.", cmds.Add)
	parser.AddCommand("del", "Delete an event from today", "Show today's events and delete the selected one.", cmds.Del)
	parser.AddCommand("list", "List events for a day", "List the events that fall on a day, all-day events first.", cmds.List)
	parser.AddCommand("export", "Export events as iCalendar", "Write every stored event as a VEVENT.", cmds.Export)
	parser.AddCommand("import", "Import events from an .ics file", "Append the daily, monthly, yearly and single events of an .ics file.", cmds.Import)
	parser.AddCommand("prune", "Remove old dated events", "Remove exact-dated events older than a cutoff. Recurring events are kept.", cmds.Prune)
	parser.AddCommand("status", "Show storage and configuration", "Show the storage backend, event counts and configuration summary.", cmds.Status)

	return parser, cmds
}

// Run is the main entry point for the ppcal CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand or calendar view.
func RunWithArgs(version string, args []string) error {
	return newApp(version).run(args)
}

func (a *app) run(args []string) error {
	if args == nil {
		args = os.Args[1:]
	}

	// --version is valid in any position and skips everything else.
	for _, arg := range args {
		if arg == "--version" {
			fmt.Fprintf(a.out, "ppcal %s\n", a.version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _ := buildParser(a)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == goflags.ErrHelp {
				fmt.Fprintln(a.out, flagsErr.Message)
				return nil
			}
			return fmt.Errorf("%w: %s", ErrUsage, flagsErr.Message)
		}
		return err
	}

	if parser.Active != nil {
		return nil
	}
	return a.calendar(rest)
}
