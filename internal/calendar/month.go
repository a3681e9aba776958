package calendar

import (
	"strings"
	"time"

	"github.com/runnerr0/ppcal/internal/style"
)

// MinWeekRows is the most weeks any month can span.
const MinWeekRows = 6

// Options controls grid layout.
type Options struct {
	FirstWeekday time.Weekday
	// WeekRows is the fixed number of week lines per month block. Values
	// below MinWeekRows are raised to it.
	WeekRows int
}

// Renderer draws month blocks and composes them into larger views. today
// decides which cell is highlighted.
type Renderer struct {
	f        Formatter
	weekRows int
	today    time.Time
}

func NewRenderer(s style.Styler, today time.Time, opts Options) *Renderer {
	rows := opts.WeekRows
	if rows < MinWeekRows {
		rows = MinWeekRows
	}
	return &Renderer{
		f:        NewFormatter(s, opts.FirstWeekday),
		weekRows: rows,
		today:    today,
	}
}

// Height is the number of lines every month block has.
func (r *Renderer) Height() int {
	return r.weekRows + 2
}

// Month renders one month as a title line, a weekday header and exactly
// weekRows week lines.
func (r *Renderer) Month(year int, m time.Month, showYear bool) []string {
	lines := make([]string, 0, r.Height())
	lines = append(lines, r.f.MonthTitle(m, year, showYear), r.f.WeekdayHeader())

	ty, tm, td := r.today.Date()
	thisMonth := ty == year && tm == m

	for _, week := range MonthGrid(year, m, r.f.first) {
		cells := make([]string, 7)
		for col, day := range week {
			weekend := r.f.Weekday(col) == time.Sunday
			cells[col] = r.f.Day(day, weekend, thisMonth && day == td)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	blank := strings.Repeat(" ", MonthWidth)
	for len(lines) < r.Height() {
		lines = append(lines, blank)
	}
	return lines
}
