package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/ppcal/internal/style"
)

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, Winter},
		{time.February, Winter},
		{time.March, Spring},
		{time.May, Spring},
		{time.June, Summer},
		{time.August, Summer},
		{time.September, Autumn},
		{time.November, Autumn},
		{time.December, Winter},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SeasonOf(tc.month), "season of %s", tc.month)
	}
}

func TestSeason_Tag(t *testing.T) {
	assert.Equal(t, style.Summer, SeasonOf(time.July).Tag())
	assert.Equal(t, style.Winter, SeasonOf(time.December).Tag())
	assert.Equal(t, "autumn", Autumn.String())
}

func TestDaysIn_LeapYears(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 28, DaysIn(1900, time.February))
	assert.Equal(t, 29, DaysIn(2000, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))
	assert.Equal(t, 30, DaysIn(2024, time.April))
}

func TestMonthGrid_ContainsEveryDayOnce(t *testing.T) {
	for _, year := range []int{1900, 2000, 2019, 2023, 2024, 2025, 2100} {
		for m := time.January; m <= time.December; m++ {
			grid := MonthGrid(year, m, time.Monday)

			var days []int
			for _, week := range grid {
				for _, d := range week {
					if d != 0 {
						days = append(days, d)
					}
				}
			}

			want := make([]int, DaysIn(year, m))
			for i := range want {
				want[i] = i + 1
			}
			require.Equal(t, want, days, "%s %d", m, year)
			assert.GreaterOrEqual(t, len(grid), 4)
			assert.LessOrEqual(t, len(grid), MinWeekRows)
		}
	}
}

func TestMonthGrid_MondayAlignment(t *testing.T) {
	// 1 June 2024 was a Saturday.
	grid := MonthGrid(2024, time.June, time.Monday)

	require.Len(t, grid, 5)
	assert.Equal(t, Week{0, 0, 0, 0, 0, 1, 2}, grid[0])
	assert.Equal(t, Week{24, 25, 26, 27, 28, 29, 30}, grid[4])
}

func TestMonthGrid_SundayAlignment(t *testing.T) {
	grid := MonthGrid(2024, time.June, time.Sunday)

	assert.Equal(t, Week{0, 0, 0, 0, 0, 0, 1}, grid[0])
	assert.Equal(t, Week{30, 0, 0, 0, 0, 0, 0}, grid[len(grid)-1])
}

func TestMonthGrid_WeekCounts(t *testing.T) {
	// February 2021 starts on a Monday and fills exactly four weeks.
	assert.Len(t, MonthGrid(2021, time.February, time.Monday), 4)
	// September 2024 starts on a Sunday and spills into a sixth week.
	assert.Len(t, MonthGrid(2024, time.September, time.Monday), 6)
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year   int
		month  time.Month
		offset int
		wantY  int
		wantM  time.Month
	}{
		{2024, time.January, -1, 2023, time.December},
		{2024, time.December, 1, 2025, time.January},
		{2024, time.June, 0, 2024, time.June},
		{2024, time.March, -15, 2022, time.December},
		{2024, time.January, 24, 2026, time.January},
		{2024, time.May, -4, 2024, time.January},
		{2024, time.January, -12, 2023, time.January},
	}
	for _, tc := range tests {
		y, m := ShiftMonth(tc.year, tc.month, tc.offset)
		assert.Equal(t, tc.wantY, y, "year for %d-%02d%+d", tc.year, tc.month, tc.offset)
		assert.Equal(t, tc.wantM, m, "month for %d-%02d%+d", tc.year, tc.month, tc.offset)
	}
}
