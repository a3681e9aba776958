package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/runnerr0/ppcal/internal/storage"
)

// Execute implements the go-flags Commander interface for DelCommand.
func (c *DelCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

// executeWithStore lists the day's events and deletes the chosen one.
// A bad interactive choice is reported and leaves storage untouched; a
// bad --index is returned as an error.
func (c *DelCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	day, err := c.app.resolveDay(c.Date)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}
	label := "today"
	if c.Date != "" {
		label = day.Format("2006-01-02")
	}

	entries, err := store.ListMatching(ctx, day)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(c.app.out, "📭 No events for %s.\n", label)
		return nil
	}

	ordinal := c.Index
	if ordinal == 0 {
		p := c.app.presenter()
		p.numbered(fmt.Sprintf("Events for %s:", label), entries)

		raw, err := newPrompter(c.app.in, c.app.out).ask("\nWhich one to delete [Enter = None]: ")
		if err != nil {
			return err
		}
		if raw == "" {
			fmt.Fprintln(c.app.out, "❌ Cancelled.")
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fmt.Fprintln(c.app.out, "🚫 Invalid selection.")
			return nil
		}
		ordinal = n
	}

	deleted, err := store.DeleteAt(ctx, day, ordinal)
	if errors.Is(err, storage.ErrSelection) && c.Index == 0 {
		fmt.Fprintln(c.app.out, "🚫 Invalid selection.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "🗑️ Deleted: %s %s\n", deleted.Time, deleted.Description)
	return nil
}
