package calendar

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// separator sits between month blocks placed side by side.
const separator = "  "

// ErrUnevenBlocks is returned when blocks passed to Quarter differ in height.
var ErrUnevenBlocks = errors.New("month blocks have different heights")

// Quarter writes the blocks side by side, one output line per block line.
func (r *Renderer) Quarter(w io.Writer, blocks ...[]string) error {
	if len(blocks) == 0 {
		return nil
	}
	height := len(blocks[0])
	for _, b := range blocks[1:] {
		if len(b) != height {
			return fmt.Errorf("render quarter: %w", ErrUnevenBlocks)
		}
	}

	var sb strings.Builder
	row := make([]string, len(blocks))
	for i := 0; i < height; i++ {
		for j, b := range blocks {
			row[j] = b[i]
		}
		sb.WriteString(strings.Join(row, separator))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// yearHeader renders the year centered over a row of months blocks, with a
// blank line above and below.
func (r *Renderer) yearHeader(year, months int) string {
	width := months*MonthWidth + (months-1)*len(separator)
	title := r.f.styler.Style(center(strconv.Itoa(year), width), SeasonOf(time.January).Tag())
	return "\n" + title + "\n\n"
}

// Year writes a year header followed by the four quarters, each followed by
// a blank line.
func (r *Renderer) Year(w io.Writer, year int) error {
	if _, err := io.WriteString(w, r.yearHeader(year, 3)); err != nil {
		return err
	}
	for start := time.January; start <= time.October; start += 3 {
		blocks := make([][]string, 3)
		for i := range blocks {
			blocks[i] = r.Month(year, start+time.Month(i), false)
		}
		if err := r.Quarter(w, blocks...); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ThreeMonth writes the previous, current and next month around today. With
// yearAbove a single year header replaces the per-month year labels.
func (r *Renderer) ThreeMonth(w io.Writer, yearAbove bool) error {
	if yearAbove {
		if _, err := io.WriteString(w, r.yearHeader(r.today.Year(), 3)); err != nil {
			return err
		}
	}

	blocks := make([][]string, 0, 3)
	for _, offset := range []int{-1, 0, 1} {
		y, m := ShiftMonth(r.today.Year(), r.today.Month(), offset)
		blocks = append(blocks, r.Month(y, m, !yearAbove))
	}
	return r.Quarter(w, blocks...)
}

// SingleMonth writes one month block labeled with its year.
func (r *Renderer) SingleMonth(w io.Writer, year int, m time.Month) error {
	var sb strings.Builder
	for _, line := range r.Month(year, m, true) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
