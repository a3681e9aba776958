package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/runnerr0/ppcal/internal/calendar"
	"github.com/runnerr0/ppcal/internal/storage"
)

// calendar renders the view selected by args:
//
//	(none)      current month, then today's events
//	3           previous, current and next month
//	YYYY        the whole year
//	M YYYY      one month
func (a *app) calendar(args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	now := a.clock.Now()
	r := calendar.NewRenderer(a.styler(), now, calendar.Options{
		FirstWeekday: cfg.FirstWeekday(),
		WeekRows:     cfg.Calendar.WeekRows,
	})

	switch len(args) {
	case 0:
		if err := r.SingleMonth(a.out, now.Year(), now.Month()); err != nil {
			return err
		}
		return a.withStore(func(ctx context.Context, store storage.Store) error {
			entries, err := store.ListMatching(ctx, a.today())
			if err != nil {
				return err
			}
			a.presenter().today(entries)
			return nil
		})

	case 1:
		arg := args[0]
		if arg == "3" {
			return r.ThreeMonth(a.out, true)
		}
		if year, ok := number(arg); ok {
			if len(arg) == 4 {
				return r.Year(a.out, year)
			}
			return fmt.Errorf("%w: missing year, use: ppcal %s YEAR", ErrUsage, arg)
		}
		return fmt.Errorf("%w: invalid argument %q", ErrUsage, arg)

	case 2:
		month, okMonth := number(args[0])
		year, okYear := number(args[1])
		if okMonth && okYear && month >= 1 && month <= 12 && len(args[1]) == 4 {
			return r.SingleMonth(a.out, year, time.Month(month))
		}
	}

	return fmt.Errorf("%w: %q", ErrUsage, args)
}

// number parses a string made only of ASCII digits.
func number(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
