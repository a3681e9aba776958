package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/runnerr0/ppcal/internal/event"
	"github.com/runnerr0/ppcal/internal/storage"
)

const (
	dateHint = "Use 'daily' or valid dates like YYYY-MM-DD, MM-DD, or DD"
	timeHint = "Use times like 13:00 or 1300, or Enter for all day"
)

// Execute implements the go-flags Commander interface for AddCommand.
func (c *AddCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

// executeWithStore runs the add logic against a provided store (used by tests).
func (c *AddCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	var (
		rec event.Record
		err error
	)
	if strings.TrimSpace(c.Desc) != "" {
		rec, err = c.fromFlags()
	} else {
		rec, err = c.fromPrompts()
	}
	if err != nil || rec.Description == "" {
		return err
	}

	if err := store.Append(ctx, rec); err != nil {
		return fmt.Errorf("storing event: %w", err)
	}

	fmt.Fprintf(c.app.out, "✅ Event added: %s %s - %s\n", rec.Date, rec.Time, rec.Description)
	return nil
}

func (c *AddCommand) fromFlags() (event.Record, error) {
	tm, err := event.ParseTime(c.Time)
	if err != nil {
		return event.Record{}, fmt.Errorf("--time: %w", err)
	}
	date, err := event.ParseDate(c.Date, c.app.clock.Now())
	if err != nil {
		return event.Record{}, fmt.Errorf("--date: %w", err)
	}
	return event.Record{Date: date, Time: tm, Description: strings.TrimSpace(c.Desc)}, nil
}

// fromPrompts asks for description, time and date. An empty description
// cancels and returns a zero record; bad time or date input re-prompts.
func (c *AddCommand) fromPrompts() (event.Record, error) {
	p := newPrompter(c.app.in, c.app.out)

	desc, err := p.ask("📌 Event description (Enter to cancel): ")
	if err != nil {
		return event.Record{}, err
	}
	if desc == "" {
		fmt.Fprintln(c.app.out, "❗ No description. Cancelled.")
		return event.Record{}, nil
	}

	tm, err := askUntil(p, "⏰ Time (13:00 / 1300) [Enter = all day]: ", timeHint, event.ErrFormat, event.ParseTime)
	if err != nil {
		return event.Record{}, err
	}

	now := c.app.clock.Now()
	date, err := askUntil(p, "📅 Date (YYYY-MM-DD / MM-DD / DD) [Enter = today]: ", dateHint, event.ErrFormat,
		func(raw string) (event.DateSpec, error) { return event.ParseDate(raw, now) })
	if err != nil {
		return event.Record{}, err
	}

	return event.Record{Date: date, Time: tm, Description: desc}, nil
}
