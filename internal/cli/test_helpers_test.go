package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/ppcal/internal/clock"
	"github.com/runnerr0/ppcal/internal/config"
	"github.com/runnerr0/ppcal/internal/event"
	"github.com/runnerr0/ppcal/internal/storage"
)

var june15 = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// newTestApp returns an app pinned to 2024-06-15 with uncolored output, a
// CSV store in a temp dir, and input fed from the given text.
func newTestApp(t *testing.T, input string) (*app, *bytes.Buffer, *storage.CSVStore) {
	t.Helper()

	store := storage.NewCSVStore(filepath.Join(t.TempDir(), "events.csv"))
	require.NoError(t, store.Init(context.Background()))

	cfg := config.DefaultConfig()
	cfg.Calendar.Color = "never"

	var out bytes.Buffer
	a := &app{
		version: "test",
		in:      strings.NewReader(input),
		out:     &out,
		clock:   &clock.FixedClock{FixedNow: june15},
		cfg:     cfg,
		store:   store,
	}
	return a, &out, store
}

func seedRecords(t *testing.T, store storage.Store, recs ...event.Record) {
	t.Helper()
	require.NoError(t, store.AppendAll(context.Background(), recs))
}

func storedRecords(t *testing.T, store storage.Store) []event.Record {
	t.Helper()
	recs, err := store.Records(context.Background())
	require.NoError(t, err)
	return recs
}

// agendaExample is the daily/standup/holiday set used across tests.
func agendaExample() []event.Record {
	return []event.Record{
		{Date: event.Daily(), Description: "daily"},
		{Date: event.ExactDate(2024, time.June, 15), Time: event.At(9, 0), Description: "standup"},
		{Date: event.ExactDate(2024, time.June, 15), Description: "holiday"},
	}
}
