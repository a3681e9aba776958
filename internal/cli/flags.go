package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Verbose bool   `long:"verbose" short:"v" description:"Enable debug logging on stderr"`
	NoColor bool   `long:"no-color" description:"Disable colored output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// AddCommand adds one event, prompting for anything not given as a flag.
type AddCommand struct {
	Desc string `long:"desc" short:"d" description:"Event description (skips the prompts)"`
	Time string `long:"time" short:"t" description:"Time as 13:00 or 1300; empty for all day"`
	Date string `long:"date" description:"Date as YYYY-MM-DD, MM-DD, DD or daily; empty for today"`

	app *app
}

// DelCommand deletes one event from a day's listing.
type DelCommand struct {
	Index int    `long:"index" short:"i" description:"Delete entry N of the listing without prompting"`
	Date  string `long:"date" description:"Day whose listing to select from; empty for today"`

	app *app
}

// ListCommand prints the agenda for a day.
type ListCommand struct {
	Date string `long:"date" description:"Day to list; same forms as add --date; empty for today"`

	app *app
}

// ExportCommand writes all events as iCalendar.
type ExportCommand struct {
	Out string `long:"out" short:"o" description:"Write to this file instead of stdout"`

	app *app
}

// ImportCommand appends events read from an .ics file.
type ImportCommand struct {
	DryRun bool `long:"dry-run" description:"Show what would be imported without writing"`
	Args   struct {
		File string `positional-arg-name:"FILE" required:"yes"`
	} `positional-args:"yes"`

	app *app
}

// PruneCommand removes exact-dated events older than a cutoff.
type PruneCommand struct {
	OlderThan string `long:"older-than" description:"Age cutoff (e.g., 30d, 2w)" default:"30d"`
	DryRun    bool   `long:"dry-run" description:"Show what would be pruned without deleting"`

	app *app
}

// StatusCommand shows storage and configuration details.
type StatusCommand struct {
	JSON bool `long:"json" description:"Output in JSON format"`

	app *app
}
