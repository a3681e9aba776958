package event

import (
	"fmt"
	"strings"
	"time"
)

// dailyKeywords are accepted, case-insensitively, as "every day".
var dailyKeywords = map[string]struct{}{
	"*-*-*":       {},
	"daily":       {},
	"every day":   {},
	"everyday":    {},
	"каждый день": {},
	"ежедневно":   {},
}

// ParseDate turns user input into a DateSpec, relative to now:
//
//	""            today
//	daily keyword every day
//	D             day D of the current month
//	M-D           every year on month M, day D
//	Y-M-D         that exact date
//	*-D, *-*-D    every month on day D
//	*-M-D         every year on month M, day D
//
// A slash may be used instead of a dash.
func ParseDate(raw string, now time.Time) (DateSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return On(now), nil
	}

	raw = strings.ReplaceAll(raw, "/", "-")
	if _, ok := dailyKeywords[strings.ToLower(raw)]; ok {
		return Daily(), nil
	}

	parts := strings.Split(raw, "-")
	var spec DateSpec
	switch len(parts) {
	case 1:
		day, err := atoi(parts[0])
		if err != nil {
			return DateSpec{}, err
		}
		spec = ExactDate(now.Year(), now.Month(), day)
	case 2:
		if parts[0] == wildcard {
			day, err := atoi(parts[1])
			if err != nil {
				return DateSpec{}, err
			}
			spec = Monthly(day)
			break
		}
		month, err := atoi(parts[0])
		if err != nil {
			return DateSpec{}, err
		}
		day, err := atoi(parts[1])
		if err != nil {
			return DateSpec{}, err
		}
		spec = Yearly(time.Month(month), day)
	case 3:
		return ParseDateSpec(raw)
	default:
		return DateSpec{}, fmt.Errorf("%w: date %q", ErrFormat, raw)
	}

	if err := spec.Validate(); err != nil {
		return DateSpec{}, err
	}
	return spec, nil
}

// ParseTime turns user input into a TimeSpec. Empty input means all-day;
// HHMM, HMM, H:MM and HH:MM are accepted. Anything else is ErrFormat.
func ParseTime(raw string) (TimeSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllDay(), nil
	}

	bad := fmt.Errorf("%w: time %q (use 13:00 or 1300)", ErrFormat, raw)
	for _, r := range raw {
		if (r < '0' || r > '9') && r != ':' {
			return TimeSpec{}, fmt.Errorf("%w: time %q", ErrFormat, raw)
		}
	}

	if hour, minute, found := strings.Cut(raw, ":"); found {
		if len(hour) < 1 || len(hour) > 2 || len(minute) != 2 || strings.Contains(minute, ":") {
			return TimeSpec{}, bad
		}
		return clockTime(hour, minute)
	}

	switch len(raw) {
	case 4:
		return clockTime(raw[:2], raw[2:])
	case 3:
		return clockTime(raw[:1], raw[1:])
	default:
		return TimeSpec{}, bad
	}
}
