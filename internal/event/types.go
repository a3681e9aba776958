// Package event holds the stored event model: dates that may recur, optional
// clock times, and the rules that decide which events fall on a given day.
package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrFormat reports date or time input that cannot be parsed.
	ErrFormat = errors.New("invalid format")
	// ErrEmptyDescription is returned for records without a description.
	ErrEmptyDescription = errors.New("event description is empty")
)

// DateKind distinguishes exact dates from the recurring forms.
type DateKind int

const (
	Exact DateKind = iota
	EveryDay
	EveryMonth
	EveryYear
)

func (k DateKind) String() string {
	switch k {
	case EveryDay:
		return "daily"
	case EveryMonth:
		return "monthly"
	case EveryYear:
		return "yearly"
	default:
		return "exact"
	}
}

// wildcard stands for "any" in a stored date component.
const wildcard = "*"

// DateSpec is a stored date. Only the fields meaningful for Kind are set:
// Exact uses all three, EveryYear uses Month and Day, EveryMonth uses Day.
type DateSpec struct {
	Kind  DateKind
	Year  int
	Month time.Month
	Day   int
}

func ExactDate(year int, month time.Month, day int) DateSpec {
	return DateSpec{Kind: Exact, Year: year, Month: month, Day: day}
}

func Daily() DateSpec {
	return DateSpec{Kind: EveryDay}
}

func Monthly(day int) DateSpec {
	return DateSpec{Kind: EveryMonth, Day: day}
}

func Yearly(month time.Month, day int) DateSpec {
	return DateSpec{Kind: EveryYear, Month: month, Day: day}
}

// On returns the exact DateSpec for t's calendar day.
func On(t time.Time) DateSpec {
	y, m, d := t.Date()
	return ExactDate(y, m, d)
}

// IsRecurring reports whether d matches more than one date.
func (d DateSpec) IsRecurring() bool {
	return d.Kind != Exact
}

// String returns the canonical stored form, e.g. 2024-06-15, *-06-15,
// *-*-15 or *-*-*.
func (d DateSpec) String() string {
	switch d.Kind {
	case EveryDay:
		return "*-*-*"
	case EveryMonth:
		return fmt.Sprintf("*-*-%02d", d.Day)
	case EveryYear:
		return fmt.Sprintf("*-%02d-%02d", int(d.Month), d.Day)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
	}
}

// Validate checks that d names a date that can occur.
func (d DateSpec) Validate() error {
	switch d.Kind {
	case EveryDay:
		return nil
	case EveryMonth:
		if d.Day < 1 || d.Day > 31 {
			return fmt.Errorf("%w: day %d out of range", ErrFormat, d.Day)
		}
		return nil
	case EveryYear:
		// 2000 is a leap year, so 29 February is accepted.
		if !validDate(2000, d.Month, d.Day) {
			return fmt.Errorf("%w: no day %02d-%02d", ErrFormat, int(d.Month), d.Day)
		}
		return nil
	default:
		if !validDate(d.Year, d.Month, d.Day) {
			return fmt.Errorf("%w: no date %04d-%02d-%02d", ErrFormat, d.Year, int(d.Month), d.Day)
		}
		return nil
	}
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}

// ParseDateSpec parses the canonical stored form written by String.
func ParseDateSpec(s string) (DateSpec, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return DateSpec{}, fmt.Errorf("%w: stored date %q", ErrFormat, s)
	}

	var spec DateSpec
	switch {
	case parts[0] == wildcard && parts[1] == wildcard && parts[2] == wildcard:
		spec = Daily()
	case parts[0] == wildcard && parts[1] == wildcard:
		day, err := atoi(parts[2])
		if err != nil {
			return DateSpec{}, err
		}
		spec = Monthly(day)
	case parts[0] == wildcard:
		month, err := atoi(parts[1])
		if err != nil {
			return DateSpec{}, err
		}
		day, err := atoi(parts[2])
		if err != nil {
			return DateSpec{}, err
		}
		spec = Yearly(time.Month(month), day)
	default:
		nums := make([]int, 3)
		for i, p := range parts {
			n, err := atoi(p)
			if err != nil {
				return DateSpec{}, err
			}
			nums[i] = n
		}
		spec = ExactDate(nums[0], time.Month(nums[1]), nums[2])
	}

	if err := spec.Validate(); err != nil {
		return DateSpec{}, err
	}
	return spec, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrFormat, s)
	}
	return n, nil
}

// TimeSpec is either all-day (the zero value) or a wall-clock time.
type TimeSpec struct {
	set    bool
	Hour   int
	Minute int
}

func AllDay() TimeSpec {
	return TimeSpec{}
}

func At(hour, minute int) TimeSpec {
	return TimeSpec{set: true, Hour: hour, Minute: minute}
}

func (t TimeSpec) IsAllDay() bool {
	return !t.set
}

// Minutes returns minutes since midnight, or -1 for all-day.
func (t TimeSpec) Minutes() int {
	if !t.set {
		return -1
	}
	return t.Hour*60 + t.Minute
}

// String returns the stored form: empty for all-day, HH:MM otherwise.
func (t TimeSpec) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Label is the display form used in listings.
func (t TimeSpec) Label() string {
	if !t.set {
		return "All Day"
	}
	return t.String()
}

// ParseTimeSpec parses the stored HH:MM form; empty means all-day.
func ParseTimeSpec(s string) (TimeSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllDay(), nil
	}
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return TimeSpec{}, fmt.Errorf("%w: stored time %q", ErrFormat, s)
	}
	return clockTime(hh, mm)
}

func clockTime(hh, mm string) (TimeSpec, error) {
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeSpec{}, fmt.Errorf("%w: hour %q", ErrFormat, hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeSpec{}, fmt.Errorf("%w: minute %q", ErrFormat, mm)
	}
	if hour < 0 || hour > 23 {
		return TimeSpec{}, fmt.Errorf("%w: hour %d out of range", ErrFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeSpec{}, fmt.Errorf("%w: minute %d out of range", ErrFormat, minute)
	}
	return At(hour, minute), nil
}

// Record is one stored event.
type Record struct {
	Date        DateSpec
	Time        TimeSpec
	Description string
}

// Validate rejects records that must never be persisted.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	return r.Date.Validate()
}

// Entry is a record as shown in a day's listing.
type Entry struct {
	Time        TimeSpec
	Description string
}

func (r Record) Entry() Entry {
	return Entry{Time: r.Time, Description: r.Description}
}
