package event

import (
	"sort"
	"time"
)

// Matches reports whether d falls on day's calendar date.
func (d DateSpec) Matches(day time.Time) bool {
	y, m, dd := day.Date()
	switch d.Kind {
	case EveryDay:
		return true
	case EveryMonth:
		return d.Day == dd
	case EveryYear:
		return d.Month == m && d.Day == dd
	default:
		return d.Year == y && d.Month == m && d.Day == dd
	}
}

// Select returns the indexes of records that fall on day, in listing
// order: all-day records first in stored order, then timed records by time
// of day. Records with equal times keep their stored order.
func Select(records []Record, day time.Time) []int {
	idx := make([]int, 0)
	for i, r := range records {
		if r.Date.Matches(day) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return records[idx[a]].Time.Minutes() < records[idx[b]].Time.Minutes()
	})
	return idx
}

// Agenda returns the listing entries for day.
func Agenda(records []Record, day time.Time) []Entry {
	idx := Select(records, day)
	entries := make([]Entry, len(idx))
	for i, n := range idx {
		entries[i] = records[n].Entry()
	}
	return entries
}
