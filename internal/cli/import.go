package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/runnerr0/ppcal/internal/ics"
	"github.com/runnerr0/ppcal/internal/storage"
)

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

func (c *ImportCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	f, err := os.Open(c.Args.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.Args.File, err)
	}
	defer f.Close()

	records, skipped, err := ics.Import(f, c.app.clock.Now().Location())
	if err != nil {
		return fmt.Errorf("import %s: %w", c.Args.File, err)
	}

	if c.DryRun {
		fmt.Fprintf(c.app.out, "Would import %d events (%d skipped)\n", len(records), skipped)
		for _, r := range records {
			fmt.Fprintf(c.app.out, "  %-10s %-7s %s\n", r.Date, r.Time.Label(), r.Description)
		}
		return nil
	}

	if err := store.AppendAll(ctx, records); err != nil {
		return fmt.Errorf("storing events: %w", err)
	}

	fmt.Fprintf(c.app.out, "Imported %d events (%d skipped)\n", len(records), skipped)
	return nil
}
