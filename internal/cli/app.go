package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/ppcal/internal/clock"
	"github.com/runnerr0/ppcal/internal/config"
	"github.com/runnerr0/ppcal/internal/event"
	"github.com/runnerr0/ppcal/internal/storage"
	"github.com/runnerr0/ppcal/internal/style"
)

// app carries what every command needs at run time. Tests set cfg and
// store directly; otherwise both are resolved from the config file.
type app struct {
	globals GlobalFlags
	version string

	in    io.Reader
	out   io.Writer
	clock clock.Clock

	cfg     *config.Config
	cfgPath string
	store   storage.Store
}

func newApp(version string) *app {
	return &app{
		version: version,
		in:      os.Stdin,
		out:     os.Stdout,
		clock:   clock.SystemClock{},
	}
}

// config loads the configuration once and applies the logging settings.
func (a *app) config() (*config.Config, error) {
	if a.globals.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if a.cfg != nil {
		return a.cfg, nil
	}

	var (
		cfg  *config.Config
		path = a.globals.Config
		err  error
	)
	if path == "" {
		path, err = config.ExpandPath(config.DefaultConfigPath)
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadOrCreate()
	} else {
		if path, err = config.ExpandPath(path); err != nil {
			return nil, err
		}
		cfg, err = config.LoadOrCreateAt(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if !a.globals.Verbose {
		level, _ := log.ParseLevel(cfg.Logging.Level)
		log.SetLevel(level)
	}

	a.cfg, a.cfgPath = cfg, path
	return cfg, nil
}

// withStore runs fn against the configured store, opening it on demand.
func (a *app) withStore(fn func(ctx context.Context, store storage.Store) error) error {
	ctx := context.Background()

	cfg, err := a.config()
	if err != nil {
		return err
	}

	store := a.store
	if store == nil {
		dir, err := cfg.DataDir()
		if err != nil {
			return err
		}
		store, err = storage.Open(ctx, storage.Options{
			Backend:    cfg.Storage.Backend,
			Dir:        dir,
			CSVFile:    cfg.Storage.CSVFile,
			SQLiteFile: cfg.Storage.SQLiteFile,
		})
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
	}

	return fn(ctx, store)
}

// styler picks plain or ANSI output for a.out.
func (a *app) styler() style.Styler {
	mode := style.ModeAuto
	if a.cfg != nil {
		mode = a.cfg.Calendar.Color
	}
	if a.globals.NoColor {
		mode = style.ModeNever
	}
	return style.New(mode, a.out)
}

func (a *app) today() time.Time {
	return clock.Date(a.clock.Now())
}

// resolveDay turns a date argument into a concrete day. Recurring forms
// resolve to their next occurrence on or after today.
func (a *app) resolveDay(raw string) (time.Time, error) {
	today := a.today()
	spec, err := event.ParseDate(raw, today)
	if err != nil {
		return time.Time{}, err
	}
	if !spec.IsRecurring() {
		return time.Date(spec.Year, spec.Month, spec.Day, 0, 0, 0, 0, today.Location()), nil
	}
	day, ok := spec.Next(today)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s never occurs", event.ErrFormat, spec)
	}
	return day, nil
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
}
