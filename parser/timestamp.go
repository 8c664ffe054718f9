package parser

import (
	"regexp"
	"strconv"

	"github.com/robinvdvleuten/orgmode/ast"
)

// A single date/time stamp without its delimiters: date, optional day
// name, optional time or time range, then any repeater and warning
// cookies. Groups: 1-3 date, 4-5 start time, 6-7 end time, 8 cookies.
const tsInner = `(\d{4})-(\d{1,2})-(\d{1,2})(?:[ \t]+[^\d\s+\]>-]+)?(?:[ \t]+(\d{1,2}):(\d{2})(?:-(\d{1,2}):(\d{2}))?)?((?:[ \t]+(?:[.+]?\+|--?)\d+[hdwmy])*)`

var (
	reTimestampDiary    = regexp.MustCompile(`^<%%\((.*)\)>`)
	reTimestampActive   = regexp.MustCompile(`^<` + tsInner + `>(?:--<` + tsInner + `>)?`)
	reTimestampInactive = regexp.MustCompile(`^\[` + tsInner + `\](?:--\[` + tsInner + `\])?`)
	reTimestampCookie   = regexp.MustCompile(`([.+]?\+|--?)(\d+)([hdwmy])`)
)

// parseTimestampRaw reads the timestamp at the start of s. It returns
// the parsed stamp and the number of bytes it covers, or (nil, 0).
func parseTimestampRaw(s string) (*ast.TimestampData, int) {
	if m := reTimestampDiary.FindStringSubmatch(s); m != nil {
		d := emptyTimestamp(ast.TimestampDiary)
		d.RawValue = m[0]
		return d, len(m[0])
	}

	typ := ast.TimestampActive
	m := reTimestampActive.FindStringSubmatch(s)
	if m == nil {
		typ = ast.TimestampInactive
		m = reTimestampInactive.FindStringSubmatch(s)
	}
	if m == nil {
		return nil, 0
	}

	d := emptyTimestamp(typ)
	d.RawValue = m[0]
	d.YearStart = atoi(m[1])
	d.MonthStart = atoi(m[2])
	d.DayStart = atoi(m[3])
	d.YearEnd, d.MonthEnd, d.DayEnd = d.YearStart, d.MonthStart, d.DayStart

	ranged := false
	if m[4] != "" {
		d.HourStart = atoi(m[4])
		d.MinuteStart = atoi(m[5])
		d.HourEnd, d.MinuteEnd = d.HourStart, d.MinuteStart
	}
	if m[6] != "" {
		d.HourEnd = atoi(m[6])
		d.MinuteEnd = atoi(m[7])
		ranged = true
	}
	parseCookies(d, m[8])

	if m[9] != "" {
		ranged = true
		d.YearEnd = atoi(m[9])
		d.MonthEnd = atoi(m[10])
		d.DayEnd = atoi(m[11])
		d.HourEnd, d.MinuteEnd = -1, -1
		if m[12] != "" {
			d.HourEnd = atoi(m[12])
			d.MinuteEnd = atoi(m[13])
		}
		parseCookies(d, m[16])
	}

	if ranged {
		if typ == ast.TimestampActive {
			d.Type = ast.TimestampActiveRange
		} else {
			d.Type = ast.TimestampInactiveRange
		}
	}
	return d, len(m[0])
}

func emptyTimestamp(typ ast.TimestampType) *ast.TimestampData {
	return &ast.TimestampData{
		Type:        typ,
		HourStart:   -1,
		MinuteStart: -1,
		HourEnd:     -1,
		MinuteEnd:   -1,
	}
}

func parseCookies(d *ast.TimestampData, blob string) {
	for _, m := range reTimestampCookie.FindAllStringSubmatch(blob, -1) {
		value := atoi(m[2])
		unit := timeUnit(m[3])
		switch m[1] {
		case "+":
			d.RepeaterType = ast.RepeaterCumulate
			d.RepeaterValue, d.RepeaterUnit = value, unit
		case "++":
			d.RepeaterType = ast.RepeaterCatchUp
			d.RepeaterValue, d.RepeaterUnit = value, unit
		case ".+":
			d.RepeaterType = ast.RepeaterRestart
			d.RepeaterValue, d.RepeaterUnit = value, unit
		case "-":
			d.WarningType = ast.WarningAll
			d.WarningValue, d.WarningUnit = value, unit
		case "--":
			d.WarningType = ast.WarningFirst
			d.WarningValue, d.WarningUnit = value, unit
		}
	}
}

func timeUnit(s string) ast.TimeUnit {
	switch s {
	case "h":
		return ast.UnitHour
	case "d":
		return ast.UnitDay
	case "w":
		return ast.UnitWeek
	case "m":
		return ast.UnitMonth
	case "y":
		return ast.UnitYear
	}
	return ast.UnitNone
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
