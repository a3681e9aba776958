// Package calendar renders month, quarter, and year grids for the terminal.
package calendar

import (
	"time"

	"github.com/runnerr0/ppcal/internal/style"
)

// Season is the meteorological season a month belongs to.
type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	default:
		return "winter"
	}
}

// Tag returns the style tag used to color titles in this season.
func (s Season) Tag() style.Tag {
	switch s {
	case Spring:
		return style.Spring
	case Summer:
		return style.Summer
	case Autumn:
		return style.Autumn
	default:
		return style.Winter
	}
}

// SeasonOf maps Mar-May to spring, Jun-Aug to summer, Sep-Nov to autumn and
// everything else to winter.
func SeasonOf(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Autumn
	default:
		return Winter
	}
}

// DaysIn returns the number of days in the month, accounting for leap years.
func DaysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Week is one row of a month grid. Zero marks a day outside the month.
type Week [7]int

// MonthGrid lays the days of a month out in weeks starting on first.
func MonthGrid(year int, m time.Month, first time.Weekday) []Week {
	lead := (int(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Weekday()) - int(first) + 7) % 7
	days := DaysIn(year, m)

	var weeks []Week
	var w Week
	col := lead
	for day := 1; day <= days; day++ {
		w[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, w)
			w = Week{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, w)
	}
	return weeks
}

// ShiftMonth adds offset months to (year, m), carrying into the year in
// either direction.
func ShiftMonth(year int, m time.Month, offset int) (int, time.Month) {
	idx := int(m) - 1 + offset
	carry := idx / 12
	idx %= 12
	if idx < 0 {
		idx += 12
		carry--
	}
	return year + carry, time.Month(idx + 1)
}
