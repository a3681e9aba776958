package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/ppcal/internal/event"
)

// SQLiteStore keeps events in a SQLite database. Rows are read back in
// position order so listings match the flat-file backend.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	ownsDB bool
}

// NewSQLiteStore wraps an open database. The caller keeps ownership of db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageErr("create directory", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, storageErr("open database", err)
	}
	// One writer at a time; also keeps transactions on a single connection.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, path: path, ownsDB: true}
	if err := s.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	if err := NewMigrationRunner(s.db).Run(ctx); err != nil {
		return storageErr("migrate", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec event.Record) error {
	return s.AppendAll(ctx, []event.Record{rec})
}

func (s *SQLiteStore) AppendAll(ctx context.Context, recs []event.Record) error {
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertSQL = `INSERT INTO events (id, date, time, description) VALUES (?, ?, ?, ?)`
	for _, r := range recs {
		if _, err := tx.ExecContext(ctx, insertSQL,
			uuid.NewString(), r.Date.String(), r.Time.String(), r.Description,
		); err != nil {
			return storageErr("insert event", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit", err)
	}
	log.Debugf("inserted %d event(s)", len(recs))
	return nil
}

// storedEvent is a parsed row plus its keys.
type storedEvent struct {
	position int64
	id       string
	rec      event.Record
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// loadEvents reads every parseable row in position order. Rows that fail to
// parse are skipped and left in place.
func loadEvents(ctx context.Context, q queryer) ([]storedEvent, int, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT position, id, date, time, description FROM events ORDER BY position`)
	if err != nil {
		return nil, 0, storageErr("query events", err)
	}
	defer rows.Close()

	var out []storedEvent
	skipped := 0
	for rows.Next() {
		var (
			se       storedEvent
			date, tm string
			descr    string
		)
		if err := rows.Scan(&se.position, &se.id, &date, &tm, &descr); err != nil {
			return nil, 0, storageErr("scan event", err)
		}

		d, err := event.ParseDateSpec(date)
		if err != nil {
			log.Warnf("event %s: %v", se.id, err)
			skipped++
			continue
		}
		t, err := event.ParseTimeSpec(tm)
		if err != nil {
			log.Warnf("event %s: %v", se.id, err)
			skipped++
			continue
		}
		se.rec = event.Record{Date: d, Time: t, Description: descr}
		out = append(out, se)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("iterate events", err)
	}
	return out, skipped, nil
}

func records(events []storedEvent) []event.Record {
	recs := make([]event.Record, len(events))
	for i, e := range events {
		recs[i] = e.rec
	}
	return recs
}

func (s *SQLiteStore) Records(ctx context.Context) ([]event.Record, error) {
	events, _, err := loadEvents(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return records(events), nil
}

func (s *SQLiteStore) ListMatching(ctx context.Context, day time.Time) ([]event.Entry, error) {
	recs, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return event.Agenda(recs, day), nil
}

func (s *SQLiteStore) DeleteAt(ctx context.Context, day time.Time, ordinal int) (event.Entry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return event.Entry{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	events, _, err := loadEvents(ctx, tx)
	if err != nil {
		return event.Entry{}, err
	}

	i, entry, err := pickForDelete(records(events), day, ordinal)
	if err != nil {
		return event.Entry{}, err
	}

	victim := events[i]
	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE position = ?", victim.position); err != nil {
		return event.Entry{}, storageErr("delete event", err)
	}
	if err := audit(ctx, tx, "delete", fmt.Sprintf("%s %s", victim.rec.Date, entry.Description), victim.id); err != nil {
		return event.Entry{}, err
	}

	if err := tx.Commit(); err != nil {
		return event.Entry{}, storageErr("commit", err)
	}
	return entry, nil
}

func (s *SQLiteStore) Prune(ctx context.Context, before time.Time, dryRun bool) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	events, _, err := loadEvents(ctx, tx)
	if err != nil {
		return 0, err
	}

	var victims []storedEvent
	for _, e := range events {
		if expired(e.rec, before) {
			victims = append(victims, e)
		}
	}
	if dryRun || len(victims) == 0 {
		return len(victims), nil
	}

	for _, v := range victims {
		if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE position = ?", v.position); err != nil {
			return 0, storageErr("prune event", err)
		}
	}
	detail := fmt.Sprintf("%d event(s) before %s", len(victims), before.Format("2006-01-02"))
	if err := audit(ctx, tx, "prune", detail, ""); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit", err)
	}
	return len(victims), nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	events, skipped, err := loadEvents(ctx, s.db)
	if err != nil {
		return nil, err
	}

	st := &Stats{Backend: "sqlite", Path: s.path, Unreadable: skipped}
	if s.path != "" {
		if info, err := os.Stat(s.path); err == nil {
			st.SizeBytes = info.Size()
		}
	}
	summarize(records(events), st)
	return st, nil
}

// Close closes the database if this store opened it.
func (s *SQLiteStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

func audit(ctx context.Context, tx *sql.Tx, action, detail, eventID string) error {
	var id any
	if eventID != "" {
		id = eventID
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO audit_log (action, detail, event_id) VALUES (?, ?, ?)",
		action, detail, id,
	); err != nil {
		return storageErr("write audit log", err)
	}
	return nil
}
