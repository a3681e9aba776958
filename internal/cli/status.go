package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/runnerr0/ppcal/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version     string `json:"version"`
	Backend     string `json:"backend"`
	StoragePath string `json:"storage_path"`
	SizeBytes   int64  `json:"size_bytes"`
	Total       int    `json:"total_events"`
	Recurring   int    `json:"recurring_events"`
	AllDay      int    `json:"all_day_events"`
	Unreadable  int    `json:"unreadable_rows"`
	ConfigPath  string `json:"config_path,omitempty"`
	WeekStart   string `json:"week_start"`
	Color       string `json:"color"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	return c.app.withStore(c.executeWithStore)
}

func (c *StatusCommand) executeWithStore(ctx context.Context, store storage.Store) error {
	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	cfg, err := c.app.config()
	if err != nil {
		return err
	}

	out := statusJSON{
		Version:     c.app.version,
		Backend:     stats.Backend,
		StoragePath: stats.Path,
		SizeBytes:   stats.SizeBytes,
		Total:       stats.Total,
		Recurring:   stats.Recurring,
		AllDay:      stats.AllDay,
		Unreadable:  stats.Unreadable,
		ConfigPath:  c.app.cfgPath,
		WeekStart:   cfg.Calendar.WeekStart,
		Color:       cfg.Calendar.Color,
	}

	if c.JSON {
		enc := json.NewEncoder(c.app.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	c.printHuman(out)
	return nil
}

func (c *StatusCommand) printHuman(s statusJSON) {
	w := c.app.out
	fmt.Fprintln(w, "ppcal Status")
	fmt.Fprintln(w, "============")
	fmt.Fprintf(w, "Version:       %s\n", s.Version)
	fmt.Fprintf(w, "Backend:       %s\n", s.Backend)
	if s.StoragePath != "" {
		fmt.Fprintf(w, "Storage:       %s (%s)\n", s.StoragePath, formatBytes(s.SizeBytes))
	}
	fmt.Fprintf(w, "Events:        %s\n", formatNumber(s.Total))
	fmt.Fprintf(w, "Recurring:     %s\n", formatNumber(s.Recurring))
	fmt.Fprintf(w, "All day:       %s\n", formatNumber(s.AllDay))
	if s.Unreadable > 0 {
		fmt.Fprintf(w, "Unreadable:    %s\n", formatNumber(s.Unreadable))
	}

	fmt.Fprintln(w)
	if s.ConfigPath != "" {
		fmt.Fprintf(w, "Config:        %s\n", s.ConfigPath)
	}
	fmt.Fprintf(w, "Week start:    %s\n", s.WeekStart)
	fmt.Fprintf(w, "Color:         %s\n", s.Color)
}
