package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/ppcal/internal/storage"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

func (c *ListCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	day, err := c.app.resolveDay(c.Date)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	entries, err := store.ListMatching(ctx, day)
	if err != nil {
		return err
	}

	p := c.app.presenter()
	if c.Date == "" {
		p.today(entries)
		return nil
	}

	stamp := day.Format("2006-01-02")
	if len(entries) == 0 {
		fmt.Fprintf(c.app.out, "📭 No events for %s.\n", stamp)
		return nil
	}
	p.list(fmt.Sprintf("Events for %s:", stamp), entries)
	return nil
}
