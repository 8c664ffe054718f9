package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/orgmode/ast"
)

func TestTimestampActive(t *testing.T) {
	ts, n := parseTimestampRaw("<2023-01-15 Sun> rest")
	assert.NotZero(t, ts)
	assert.Equal(t, len("<2023-01-15 Sun>"), n)
	assert.Equal(t, ast.TimestampActive, ts.Type)
	assert.Equal(t, "<2023-01-15 Sun>", ts.RawValue)
	assert.Equal(t, 2023, ts.YearStart)
	assert.Equal(t, 1, ts.MonthStart)
	assert.Equal(t, 15, ts.DayStart)
	assert.Equal(t, 2023, ts.YearEnd)
	assert.Equal(t, -1, ts.HourStart)
	assert.Equal(t, -1, ts.MinuteStart)
}

func TestTimestampInactive(t *testing.T) {
	ts, n := parseTimestampRaw("[2023-12-01]")
	assert.NotZero(t, ts)
	assert.Equal(t, 12, n)
	assert.Equal(t, ast.TimestampInactive, ts.Type)
	assert.Equal(t, 12, ts.MonthStart)
}

func TestTimestampTimeRange(t *testing.T) {
	ts, _ := parseTimestampRaw("<2023-01-15 Sun 10:30-11:45>")
	assert.NotZero(t, ts)
	assert.Equal(t, ast.TimestampActiveRange, ts.Type)
	assert.Equal(t, 10, ts.HourStart)
	assert.Equal(t, 30, ts.MinuteStart)
	assert.Equal(t, 11, ts.HourEnd)
	assert.Equal(t, 45, ts.MinuteEnd)
	assert.Equal(t, ts.DayStart, ts.DayEnd)
}

func TestTimestampDateRange(t *testing.T) {
	ts, n := parseTimestampRaw("<2023-01-15>--<2023-01-17>")
	assert.NotZero(t, ts)
	assert.Equal(t, 26, n)
	assert.Equal(t, ast.TimestampActiveRange, ts.Type)
	assert.Equal(t, 15, ts.DayStart)
	assert.Equal(t, 17, ts.DayEnd)
	assert.Equal(t, -1, ts.HourEnd)
}

func TestTimestampCookies(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		repeater ast.RepeaterType
		warning  ast.WarningType
	}{
		{"cumulate", "<2023-01-15 Sun +1w>", ast.RepeaterCumulate, ast.WarningNone},
		{"catch up", "<2023-01-15 Sun ++2d>", ast.RepeaterCatchUp, ast.WarningNone},
		{"restart", "<2023-01-15 Sun .+3m>", ast.RepeaterRestart, ast.WarningNone},
		{"warning", "<2023-01-15 Sun -2d>", ast.RepeaterNone, ast.WarningAll},
		{"first warning", "<2023-01-15 Sun --1d>", ast.RepeaterNone, ast.WarningFirst},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts, n := parseTimestampRaw(c.input)
			assert.NotZero(t, ts)
			assert.Equal(t, len(c.input), n)
			assert.Equal(t, c.repeater, ts.RepeaterType)
			assert.Equal(t, c.warning, ts.WarningType)
		})
	}

	ts, _ := parseTimestampRaw("<2023-01-15 Sun +1w -2d>")
	assert.NotZero(t, ts)
	assert.Equal(t, ast.RepeaterCumulate, ts.RepeaterType)
	assert.Equal(t, 1, ts.RepeaterValue)
	assert.Equal(t, ast.UnitWeek, ts.RepeaterUnit)
	assert.Equal(t, ast.WarningAll, ts.WarningType)
	assert.Equal(t, 2, ts.WarningValue)
	assert.Equal(t, ast.UnitDay, ts.WarningUnit)
}

func TestTimestampDiary(t *testing.T) {
	ts, n := parseTimestampRaw("<%%(diary-float t 4 2)>")
	assert.NotZero(t, ts)
	assert.Equal(t, 23, n)
	assert.Equal(t, ast.TimestampDiary, ts.Type)
	assert.Equal(t, "<%%(diary-float t 4 2)>", ts.RawValue)
}

func TestTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"<2023-1>", "no stamp", "<tomorrow>", ""} {
		ts, n := parseTimestampRaw(input)
		assert.Zero(t, ts)
		assert.Equal(t, 0, n)
	}
}
