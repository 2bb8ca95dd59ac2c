package flight

import (
	"fmt"
	"strconv"
	"time"
)

// ResolveTime turns a schedule entry into an absolute timestamp in loc.
// clock is expected in "HH:MM" layout: the hour is read from the first two
// characters and the minute from index 3 onwards. There is no day rollover,
// an overnight arrival lands on the same day as its departure.
func ResolveTime(year, month, day int, clock string, loc *time.Location) (time.Time, error) {
	if len(clock) < 4 {
		return time.Time{}, malformed("invalid clock time %q", clock)
	}

	hour, err := strconv.Atoi(clock[:2])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, malformed("invalid hour in %q", clock)
	}

	minute, err := strconv.Atoi(clock[3:])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, malformed("invalid minute in %q", clock)
	}

	if month < 1 || month > 12 {
		return time.Time{}, malformed("invalid month %d", month)
	}

	if loc == nil {
		loc = time.UTC
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalises overflow, e.g. April 31 becomes May 1
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, malformed("invalid date %04d-%02d-%02d", year, month, day)
	}

	return t, nil
}

func malformed(format string, args ...any) error {
	return ErrMalformedSchedule.WithCause(fmt.Errorf(format, args...))
}
