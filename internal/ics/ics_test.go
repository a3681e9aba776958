package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/ppcal/internal/event"
)

var now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestExport(t *testing.T) {
	recs := []event.Record{
		{Date: event.ExactDate(2024, time.July, 1), Time: event.At(9, 30), Description: "Dentist"},
		{Date: event.Yearly(time.March, 8), Description: "Holiday"},
		{Date: event.Daily(), Time: event.At(8, 0), Description: "Standup"},
	}

	var buf bytes.Buffer
	n, err := Export(&buf, recs, now)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, ProductID)
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Dentist")
	assert.Contains(t, out, "20240701T093000Z")
	assert.Contains(t, out, "20240308")
	assert.Contains(t, out, "FREQ=YEARLY")
	assert.Contains(t, out, "FREQ=DAILY")
}

func TestExportUIDsAreStable(t *testing.T) {
	recs := []event.Record{{Date: event.Monthly(1), Description: "Rent"}}

	var a, b bytes.Buffer
	_, err := Export(&a, recs, now)
	require.NoError(t, err)
	_, err = Export(&b, recs, now.Add(time.Hour))
	require.NoError(t, err)

	uidLine := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return strings.TrimSpace(line)
			}
		}
		return ""
	}
	assert.NotEmpty(t, uidLine(a.String()))
	assert.Equal(t, uidLine(a.String()), uidLine(b.String()))
}

func TestExportImportRoundTrip(t *testing.T) {
	recs := []event.Record{
		{Date: event.ExactDate(2024, time.July, 1), Time: event.At(9, 30), Description: "Dentist"},
		{Date: event.Yearly(time.March, 8), Description: "Holiday"},
		{Date: event.Monthly(15), Time: event.At(18, 0), Description: "Rent"},
		{Date: event.Daily(), Description: "Water plants"},
	}

	var buf bytes.Buffer
	_, err := Export(&buf, recs, now)
	require.NoError(t, err)

	got, skipped, err := Import(&buf, time.UTC)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, recs, got)
}

const sample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240229\r\n" +
	"SUMMARY:Leap  day\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:b@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART:20240105T140000Z\r\n" +
	"RRULE:FREQ=MONTHLY\r\n" +
	"SUMMARY:Review\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestImport(t *testing.T) {
	got, skipped, err := Import(strings.NewReader(sample), time.UTC)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, got, 2)

	assert.Equal(t, event.ExactDate(2024, time.February, 29), got[0].Date)
	assert.True(t, got[0].Time.IsAllDay())
	assert.Equal(t, "Leap day", got[0].Description)

	assert.Equal(t, event.Monthly(5), got[1].Date)
	assert.Equal(t, event.At(14, 0), got[1].Time)
}

func TestImportSkipsUnsupported(t *testing.T) {
	bad := strings.Replace(sample, "RRULE:FREQ=MONTHLY", "RRULE:FREQ=WEEKLY;BYDAY=MO", 1)

	got, skipped, err := Import(strings.NewReader(bad), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, got, 1)
	assert.Equal(t, "Leap day", got[0].Description)
}

func TestImportSkipsMissingSummary(t *testing.T) {
	bad := strings.Replace(sample, "SUMMARY:Review\r\n", "", 1)

	got, skipped, err := Import(strings.NewReader(bad), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Len(t, got, 1)
}

func TestConvertErrors(t *testing.T) {
	cal, err := ical.ParseCalendar(strings.NewReader(strings.Replace(sample, "RRULE:FREQ=MONTHLY", "RRULE:FREQ=MONTHLY;INTERVAL=2", 1)))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	_, err = convert(events[1], time.UTC)
	assert.ErrorIs(t, err, event.ErrFormat)
}

func TestImportEmptyCalendar(t *testing.T) {
	empty := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//t//t//EN\r\nEND:VCALENDAR\r\n"

	_, _, err := Import(strings.NewReader(empty), time.UTC)
	assert.ErrorIs(t, err, ErrNoEvents)
}
