// Package ics converts stored events to and from iCalendar.
package ics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"

	"github.com/runnerr0/ppcal/internal/event"
)

// ErrNoEvents is returned when an import finds nothing usable.
var ErrNoEvents = errors.New("calendar contains no events")

// unescape undoes RFC 5545 text escaping; line breaks become spaces.
var unescape = strings.NewReplacer(`\,`, ",", `\;`, ";", `\n`, " ", `\N`, " ", `\\`, `\`)

// ProductID identifies exported calendars.
const ProductID = "-//ppcal//ppcal//EN"

// namespace seeds deterministic UIDs so repeated exports of the same
// record produce the same UID.
var namespace = uuid.MustParse("6f1b3c52-3a0e-4c1b-9a57-1f6d7d2c9e40")

// Export writes records as a VCALENDAR. Recurring records start at their
// first occurrence on or after January 1 of now's year; times are
// interpreted in now's location.
func Export(w io.Writer, records []event.Record, now time.Time) (int, error) {
	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)

	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	n := 0
	for i, r := range records {
		day, ok := time.Date(r.Date.Year, r.Date.Month, r.Date.Day, 0, 0, 0, 0, now.Location()), true
		if r.Date.IsRecurring() {
			day, ok = r.Date.Next(jan1)
		}
		if !ok {
			log.Warnf("export: record %d (%s) has no occurrence, skipping", i+1, r.Date)
			continue
		}

		ve := cal.AddEvent(uid(r, i))
		ve.SetDtStampTime(now)
		ve.SetSummary(r.Description)
		if r.Time.IsAllDay() {
			ve.SetAllDayStartAt(day)
		} else {
			ve.SetStartAt(day.Add(time.Duration(r.Time.Minutes()) * time.Minute))
		}
		if opt, ok := r.Date.ROption(); ok {
			ve.AddProperty(ical.ComponentPropertyRrule, opt.RRuleString())
		}
		n++
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return 0, fmt.Errorf("write calendar: %w", err)
	}
	return n, nil
}

func uid(r event.Record, i int) string {
	key := fmt.Sprintf("%d|%s|%s|%s", i, r.Date, r.Time, r.Description)
	return uuid.NewSHA1(namespace, []byte(key)).String() + "@ppcal"
}

// Import reads every VEVENT from r. Events that cannot be represented
// (empty summary, unsupported recurrence) are skipped with a warning and
// counted. A calendar with nothing usable is ErrNoEvents. Timed events take
// their wall clock in loc.
func Import(r io.Reader, loc *time.Location) ([]event.Record, int, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parse calendar: %w", err)
	}

	var (
		out     []event.Record
		skipped int
	)
	for i, ve := range cal.Events() {
		rec, err := convert(ve, loc)
		if err != nil {
			log.Warnf("import: skipping event %d: %v", i+1, err)
			skipped++
			continue
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, skipped, ErrNoEvents
	}
	log.Debugf("import: converted %d event(s), skipped %d", len(out), skipped)
	return out, skipped, nil
}

func convert(ve *ical.VEvent, loc *time.Location) (event.Record, error) {
	var rec event.Record

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		rec.Description = strings.Join(strings.Fields(unescape.Replace(p.Value)), " ")
	}
	if rec.Description == "" {
		return rec, event.ErrEmptyDescription
	}

	dtstart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtstart == nil {
		return rec, fmt.Errorf("%w: missing DTSTART", event.ErrFormat)
	}

	var (
		start time.Time
		err   error
	)
	if isAllDay(dtstart) {
		start, err = ve.GetAllDayStartAt()
		rec.Time = event.AllDay()
	} else {
		start, err = ve.GetStartAt()
		start = start.In(loc)
		rec.Time = event.At(start.Hour(), start.Minute())
	}
	if err != nil {
		return rec, fmt.Errorf("%w: DTSTART: %w", event.ErrFormat, err)
	}

	rec.Date = event.ExactDate(start.Year(), start.Month(), start.Day())
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		opt, err := rrule.StrToROption(p.Value)
		if err != nil {
			return rec, fmt.Errorf("%w: RRULE %q: %w", event.ErrFormat, p.Value, err)
		}
		if rec.Date, err = event.FromROption(opt, start); err != nil {
			return rec, err
		}
	}

	if err := rec.Validate(); err != nil {
		return rec, err
	}
	return rec, nil
}

// isAllDay reports VALUE=DATE or a date without a time part.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
