package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/runnerr0/ppcal/internal/style"
)

// MonthWidth is the visible width of one month block: seven two-character
// cells joined by single spaces.
const MonthWidth = 20

// Formatter styles the individual pieces of a month block.
type Formatter struct {
	styler style.Styler
	first  time.Weekday
}

func NewFormatter(s style.Styler, first time.Weekday) Formatter {
	if s == nil {
		s = style.Plain{}
	}
	return Formatter{styler: s, first: first}
}

// Weekday returns the weekday shown in grid column col.
func (f Formatter) Weekday(col int) time.Weekday {
	return time.Weekday((int(f.first) + col) % 7)
}

// Day formats a single cell. Day 0 renders as blank padding.
func (f Formatter) Day(day int, weekend, today bool) string {
	if day == 0 {
		return "  "
	}

	color := style.Weekday
	if weekend {
		color = style.Sunday
	}

	text := fmt.Sprintf("%2d", day)
	if today {
		return f.styler.Style(text, style.Today, color)
	}
	return f.styler.Style(text, color)
}

// WeekdayHeader returns the row of two-letter weekday names.
func (f Formatter) WeekdayHeader() string {
	cells := make([]string, 7)
	for col := range cells {
		wd := f.Weekday(col)
		tag := style.Header
		if wd == time.Sunday {
			tag = style.Sunday
		}
		cells[col] = f.styler.Style(wd.String()[:2], tag)
	}
	return strings.Join(cells, " ")
}

// MonthTitle returns the month name, optionally with the year, centered in
// MonthWidth and colored by season.
func (f Formatter) MonthTitle(m time.Month, year int, showYear bool) string {
	title := m.String()
	if showYear {
		title = fmt.Sprintf("%s %d", title, year)
	}
	return f.styler.Style(center(title, MonthWidth), SeasonOf(m).Tag())
}

// center pads s with spaces to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
