package cli

import (
	"context"
	"fmt"

	"github.com/runnerr0/ppcal/internal/storage"
)

// Execute implements the go-flags Commander interface for PruneCommand.
func (c *PruneCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

func (c *PruneCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	age, err := parseDuration(c.OlderThan)
	if err != nil {
		return err
	}
	cutoff := c.app.today().Add(-age)

	n, err := store.Prune(ctx, cutoff, c.DryRun)
	if err != nil {
		return fmt.Errorf("prune: %w", err)
	}

	when := fmt.Sprintf("older than %s (before %s)", formatDurationHuman(age), cutoff.Format("2006-01-02"))
	if c.DryRun {
		fmt.Fprintf(c.app.out, "Would prune %d events %s\n", n, when)
		return nil
	}
	fmt.Fprintf(c.app.out, "Pruned %d events %s\n", n, when)
	return nil
}
