package util

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// marketMIC maps feed market identifiers to the ISO 10383 MIC codes
// understood by scmhub/calendar.
var marketMIC = map[string]string{
	"usa":       "xnys",
	"london":    "xlon",
	"paris":     "xpar",
	"frankfurt": "xfra",
	"tokyo":     "xtks",
	"hongkong":  "xhkg",
	"sydney":    "xasx",
	"toronto":   "xtse",
}

// TradableDays enumerates the tradable calendar dates for market between
// start and end inclusive, at midnight in start's location. Markets without
// a known calendar fall back to plain weekdays.
func TradableDays(market string, start, end time.Time) []time.Time {
	cal := marketCalendar(market)

	var days []time.Time
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for !day.After(end) {
		if isTradable(cal, day) {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}

func marketCalendar(market string) *calendar.Calendar {
	mic, ok := marketMIC[strings.ToLower(market)]
	if !ok {
		return nil
	}
	return calendar.GetCalendar(mic)
}

func isTradable(cal *calendar.Calendar, day time.Time) bool {
	if cal == nil {
		// Mon-Fri fallback
		return day.Weekday() != time.Saturday && day.Weekday() != time.Sunday
	}
	return cal.IsBusinessDay(day)
}
