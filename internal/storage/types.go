package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/runnerr0/ppcal/internal/event"
)

var (
	// ErrSelection is returned when a delete ordinal is outside the listing.
	ErrSelection = errors.New("selection out of range")
	// ErrStorage wraps every failure to read or write the backing table.
	ErrStorage = errors.New("storage failure")
)

// Store defines the event table operations. Records have no identity beyond
// their position, so every mutation re-reads the table first.
type Store interface {
	// Init creates the backing table (and its directory) if missing.
	Init(ctx context.Context) error
	Append(ctx context.Context, rec event.Record) error
	// AppendAll writes all records or none of them.
	AppendAll(ctx context.Context, recs []event.Record) error
	Records(ctx context.Context) ([]event.Record, error)
	ListMatching(ctx context.Context, day time.Time) ([]event.Entry, error)
	// DeleteAt removes the record shown at 1-based ordinal in day's listing.
	DeleteAt(ctx context.Context, day time.Time, ordinal int) (event.Entry, error)
	// Prune removes exact-dated records before the given day.
	Prune(ctx context.Context, before time.Time, dryRun bool) (int, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// Stats summarizes the stored table.
type Stats struct {
	Backend    string
	Path       string
	SizeBytes  int64
	Total      int
	Recurring  int
	AllDay     int
	Unreadable int
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// pickForDelete resolves ordinal in day's listing to the index of the
// record to remove: the first record in stored order that falls on day and
// shows the same time and description as the selected entry.
func pickForDelete(records []event.Record, day time.Time, ordinal int) (int, event.Entry, error) {
	listing := event.Select(records, day)
	if ordinal < 1 || ordinal > len(listing) {
		return -1, event.Entry{}, fmt.Errorf("%w: %d not in 1..%d", ErrSelection, ordinal, len(listing))
	}

	target := records[listing[ordinal-1]].Entry()
	for i, r := range records {
		if r.Date.Matches(day) && r.Entry() == target {
			return i, target, nil
		}
	}
	// Unreachable: the selected record itself satisfies the scan.
	return listing[ordinal-1], target, nil
}

// expired reports whether a record is an exact date before cutoff's day.
func expired(r event.Record, cutoff time.Time) bool {
	if r.Date.IsRecurring() {
		return false
	}
	y, m, d := cutoff.Date()
	day := time.Date(r.Date.Year, r.Date.Month, r.Date.Day, 0, 0, 0, 0, time.UTC)
	return day.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func summarize(records []event.Record, st *Stats) {
	st.Total = len(records)
	for _, r := range records {
		if r.Date.IsRecurring() {
			st.Recurring++
		}
		if r.Time.IsAllDay() {
			st.AllDay++
		}
	}
}
