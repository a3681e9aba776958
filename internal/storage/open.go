package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Options selects and locates a backend.
type Options struct {
	Backend    string
	Dir        string
	CSVFile    string
	SQLiteFile string
}

// Open returns an initialized store for opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendCSV:
		s := NewCSVStore(filepath.Join(opts.Dir, opts.CSVFile))
		if err := s.Init(ctx); err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(opts.Dir, opts.SQLiteFile))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
