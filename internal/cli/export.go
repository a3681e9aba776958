package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/ppcal/internal/ics"
	"github.com/runnerr0/ppcal/internal/storage"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

func (c *ExportCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	records, err := store.Records(ctx)
	if err != nil {
		return err
	}

	if c.Out == "" {
		n, err := ics.Export(c.app.out, records, c.app.clock.Now())
		if err != nil {
			return err
		}
		log.Debugf("exported %d event(s) to stdout", n)
		return nil
	}

	var buf bytes.Buffer
	n, err := ics.Export(&buf, records, c.app.clock.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	fmt.Fprintf(c.app.out, "Exported %d events to %s\n", n, c.Out)
	return nil
}
