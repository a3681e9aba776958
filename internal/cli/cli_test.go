package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	output := captureOutput(t, func() {
		err := RunWithArgs("1.2.3", []string{"--version"})
		assert.NoError(t, err)
	})

	assert.Equal(t, "ppcal 1.2.3", strings.TrimSpace(output))
}

func TestConfigWrittenToDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	a := newApp("test")
	cfg, err := a.config()
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Storage.Backend)

	want := filepath.Join(home, ".config", "ppcalendar", "config.yaml")
	assert.Equal(t, want, a.cfgPath)
	_, err = os.Stat(want)
	assert.NoError(t, err)
}

func TestVersionFlagAfterSubcommand(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	require.NoError(t, a.run([]string{"status", "--version"}))
	assert.Equal(t, "ppcal test\n", out.String())
}

func TestHelpFlag(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	require.NoError(t, a.run([]string{"--help"}))
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "prune")
}

func TestAllSubcommandsExist(t *testing.T) {
	expected := []string{"add", "del", "list", "export", "import", "prune", "status"}
	a, _, _ := newTestApp(t, "")
	parser, _ := buildParser(a)

	for _, name := range expected {
		cmd := parser.Find(name)
		assert.NotNil(t, cmd, "subcommand %q should exist", name)
	}
}

func TestGlobalFlags(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	parser, _ := buildParser(a)

	_, err := parser.ParseArgs([]string{"--verbose", "--no-color", "--config", "/tmp/test.yaml", "status"})
	require.NoError(t, err)
	assert.True(t, a.globals.Verbose)
	assert.True(t, a.globals.NoColor)
	assert.Equal(t, "/tmp/test.yaml", a.globals.Config)
}

func TestPruneFlagsDefaults(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	parser, cmds := buildParser(a)

	_, err := parser.ParseArgs([]string{"prune", "--dry-run"})
	require.NoError(t, err)
	assert.Equal(t, "30d", cmds.Prune.OlderThan)
	assert.True(t, cmds.Prune.DryRun)
}

func TestImportRequiresFile(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	err := a.run([]string{"import"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	err := a.run([]string{"--bogus"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCalendar_CurrentMonthWithEvents(t *testing.T) {
	a, out, store := newTestApp(t, "")
	seedRecords(t, store, agendaExample()...)

	require.NoError(t, a.run([]string{}))

	got := out.String()
	assert.Contains(t, got, "June 2024")
	assert.Contains(t, got, "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, got, "Events for today:")

	daily := strings.Index(got, " - All Day daily")
	holiday := strings.Index(got, " - All Day holiday")
	standup := strings.Index(got, " - 09:00 standup")
	require.True(t, daily >= 0 && holiday >= 0 && standup >= 0, got)
	assert.Less(t, daily, holiday)
	assert.Less(t, holiday, standup)
}

func TestCalendar_CurrentMonthEmptyShowsHint(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	require.NoError(t, a.run([]string{}))
	assert.Contains(t, out.String(), "ppcal add  # to add an event")
}

func TestCalendar_ThreeMonth(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	require.NoError(t, a.run([]string{"3"}))

	got := out.String()
	assert.Contains(t, got, "2024")
	for _, m := range []string{"May", "June", "July"} {
		assert.Contains(t, got, m)
	}
	assert.NotContains(t, got, "June 2024")
	assert.NotContains(t, got, "Events for today")
}

func TestCalendar_Year(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	require.NoError(t, a.run([]string{"2025"}))

	got := out.String()
	assert.Contains(t, got, "2025")
	assert.Contains(t, got, "January")
	assert.Contains(t, got, "December")
}

func TestCalendar_MonthYear(t *testing.T) {
	a, out, _ := newTestApp(t, "")

	require.NoError(t, a.run([]string{"2", "2024"}))

	got := out.String()
	assert.Contains(t, got, "February 2024")
	assert.Contains(t, got, "29")
}

func TestCalendar_SundayFirst(t *testing.T) {
	a, out, _ := newTestApp(t, "")
	a.cfg.Calendar.WeekStart = "sunday"

	require.NoError(t, a.run([]string{"6", "2024"}))
	assert.Contains(t, out.String(), "Su Mo Tu We Th Fr Sa")
}

func TestCalendar_InvalidShapes(t *testing.T) {
	cases := [][]string{
		{"foo"},
		{"6"},
		{"13", "2024"},
		{"6", "24"},
		{"june", "2024"},
		{"1", "2", "3"},
	}
	for _, args := range cases {
		a, out, _ := newTestApp(t, "")
		err := a.run(args)
		assert.ErrorIs(t, err, ErrUsage, "%q", args)
		assert.Empty(t, out.String(), "%q", args)
	}
}

func TestCalendar_MissingYearMessage(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	err := a.run([]string{"6"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ppcal 6 YEAR")
}

func TestNumber(t *testing.T) {
	n, ok := number("2024")
	assert.True(t, ok)
	assert.Equal(t, 2024, n)

	for _, s := range []string{"", "-1", "+3", "1a", "３"} {
		_, ok := number(s)
		assert.False(t, ok, s)
	}
}
