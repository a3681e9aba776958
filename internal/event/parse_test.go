package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june15 = time.Date(2024, time.June, 15, 10, 42, 0, 0, time.Local)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want DateSpec
	}{
		{"", ExactDate(2024, time.June, 15)},
		{"   ", ExactDate(2024, time.June, 15)},
		{"15", ExactDate(2024, time.June, 15)},
		{"3", ExactDate(2024, time.June, 3)},
		{"06-15", Yearly(time.June, 15)},
		{"6/15", Yearly(time.June, 15)},
		{"2024-06-15", ExactDate(2024, time.June, 15)},
		{"2025/1/2", ExactDate(2025, time.January, 2)},
		{"daily", Daily()},
		{"Every Day", Daily()},
		{"EVERYDAY", Daily()},
		{"*-*-*", Daily()},
		{"Каждый день", Daily()},
		{"ежедневно", Daily()},
		{"*-*-20", Monthly(20)},
		{"*-20", Monthly(20)},
		{"*-02-29", Yearly(time.February, 29)},
		{"02-29", Yearly(time.February, 29)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in, june15)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{
		"tomorrow",
		"31",           // June has 30 days
		"13-01",        // no month 13
		"2023-02-29",   // not a leap year
		"2024-06-15-1", // too many parts
		"2024-xx-01",
		"*-*-32",
		"-",
		"0",
	}
	for _, in := range inputs {
		_, err := ParseDate(in, june15)
		assert.ErrorIs(t, err, ErrFormat, "input %q", in)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want TimeSpec
	}{
		{"", AllDay()},
		{"  ", AllDay()},
		{"1300", At(13, 0)},
		{"13:00", At(13, 0)},
		{"0905", At(9, 5)},
		{"905", At(9, 5)},
		{"9:05", At(9, 5)},
		{"00:00", At(0, 0)},
		{"23:59", At(23, 59)},
	}
	for _, tc := range tests {
		got, err := ParseTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseTime_Strict(t *testing.T) {
	for _, in := range []string{
		"noon", "9", "95", "12345", "24:00", "12:60", "1:5", "9am", "-100",
		"1:234", "123:4", ":123", "12:3:4", "1:2:3:4", "12:", ":", "12::00",
	} {
		_, err := ParseTime(in)
		assert.ErrorIs(t, err, ErrFormat, "input %q", in)
	}
}
