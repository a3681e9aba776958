package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/ppcal/internal/event"
)

// header is the first row of every events table.
var header = []string{"date", "time", "event"}

// row is one stored line. Lines that do not parse are kept verbatim so a
// rewrite never drops them.
type row struct {
	fields []string
	rec    event.Record
	ok     bool
}

// CSVStore keeps events in a comma-separated file with a header row.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Path() string {
	return s.path
}

// Init creates the directory and a header-only file when absent.
func (s *CSVStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageErr("create directory", err)
	}

	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return storageErr("stat events file", err)
	case info.Size() > 0:
		return nil
	}

	log.Debugf("creating events table at %s", s.path)
	return s.writeRows(nil)
}

func (s *CSVStore) Append(ctx context.Context, rec event.Record) error {
	return s.AppendAll(ctx, []event.Record{rec})
}

func (s *CSVStore) AppendAll(ctx context.Context, recs []event.Record) error {
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	if err := s.Init(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, r := range recs {
		if err := w.Write(fieldsOf(r)); err != nil {
			return storageErr("encode event", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return storageErr("encode event", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return storageErr("open events file", err)
	}
	// A hand-edited table may lack the final newline.
	terminated, err := endsWithNewline(f)
	if err != nil {
		f.Close()
		return storageErr("read events file", err)
	}
	data := buf.Bytes()
	if !terminated {
		data = append([]byte{'\n'}, data...)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return storageErr("append events", err)
	}
	if err := f.Close(); err != nil {
		return storageErr("close events file", err)
	}

	log.Debugf("appended %d event(s) to %s", len(recs), s.path)
	return nil
}

func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

func (s *CSVStore) Records(ctx context.Context) ([]event.Record, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}
	recs, _ := readable(rows)
	return recs, nil
}

func (s *CSVStore) ListMatching(ctx context.Context, day time.Time) ([]event.Entry, error) {
	recs, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return event.Agenda(recs, day), nil
}

func (s *CSVStore) DeleteAt(ctx context.Context, day time.Time, ordinal int) (event.Entry, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return event.Entry{}, err
	}

	recs, pos := readable(rows)
	i, entry, err := pickForDelete(recs, day, ordinal)
	if err != nil {
		return event.Entry{}, err
	}

	drop := pos[i]
	kept := make([]row, 0, len(rows)-1)
	kept = append(kept, rows[:drop]...)
	kept = append(kept, rows[drop+1:]...)
	if err := s.writeRows(kept); err != nil {
		return event.Entry{}, err
	}

	log.Debugf("deleted row %d (%s %q) from %s", drop+1, entry.Time.Label(), entry.Description, s.path)
	return entry, nil
}

func (s *CSVStore) Prune(ctx context.Context, before time.Time, dryRun bool) (int, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]row, 0, len(rows))
	for _, r := range rows {
		if r.ok && expired(r.rec, before) {
			continue
		}
		kept = append(kept, r)
	}

	n := len(rows) - len(kept)
	if dryRun || n == 0 {
		return n, nil
	}
	if err := s.writeRows(kept); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *CSVStore) Stats(ctx context.Context) (*Stats, error) {
	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{Backend: "csv", Path: s.path}
	if info, err := os.Stat(s.path); err == nil {
		st.SizeBytes = info.Size()
	}
	recs, _ := readable(rows)
	summarize(recs, st)
	st.Unreadable = len(rows) - len(recs)
	return st, nil
}

func (s *CSVStore) Close() error {
	return nil
}

// readRows returns every data row in file order.
func (s *CSVStore) readRows(ctx context.Context) ([]row, error) {
	if err := s.Init(ctx); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, storageErr("open events file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []row
	for line := 1; ; line++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, storageErr("read events file", err)
		}
		if line == 1 {
			continue
		}
		rows = append(rows, parseRow(fields, line))
	}
	return rows, nil
}

func parseRow(fields []string, line int) row {
	out := row{fields: fields}
	if len(fields) < 3 {
		log.Warnf("events line %d: expected 3 fields, got %d", line, len(fields))
		return out
	}

	date, err := event.ParseDateSpec(fields[0])
	if err != nil {
		log.Warnf("events line %d: %v", line, err)
		return out
	}
	tm, err := event.ParseTimeSpec(fields[1])
	if err != nil {
		log.Warnf("events line %d: %v", line, err)
		return out
	}

	out.rec = event.Record{Date: date, Time: tm, Description: fields[2]}
	if err := out.rec.Validate(); err != nil {
		log.Warnf("events line %d: %v", line, err)
		return out
	}
	out.ok = true
	return out
}

// readable returns the parsed records and, for each, its index in rows.
func readable(rows []row) ([]event.Record, []int) {
	recs := make([]event.Record, 0, len(rows))
	pos := make([]int, 0, len(rows))
	for i, r := range rows {
		if r.ok {
			recs = append(recs, r.rec)
			pos = append(pos, i)
		}
	}
	return recs, pos
}

func fieldsOf(r event.Record) []string {
	return []string{r.Date.String(), r.Time.String(), r.Description}
}

// writeRows replaces the file with header plus rows. The new content is
// written to a temporary file in the same directory and renamed over the
// old one, so a failure leaves the previous table intact.
func (s *CSVStore) writeRows(rows []row) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return storageErr("encode header", err)
	}
	for _, r := range rows {
		if err := w.Write(r.fields); err != nil {
			return storageErr("encode row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return storageErr("encode rows", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".events-*.tmp")
	if err != nil {
		return storageErr("create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return storageErr("write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return storageErr("sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return storageErr("close temp file", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return storageErr("chmod temp file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return storageErr(fmt.Sprintf("replace %s", s.path), err)
	}
	return nil
}
