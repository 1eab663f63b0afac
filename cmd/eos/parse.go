package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BeatButton/eos"
	"github.com/BeatButton/eos/zoneinfo"
)

// parseZone returns the zone named by s: an IANA name, "UTC", "local" (or
// empty) for the environment's zone, or a fixed offset such as "+03:00".
func parseZone(s string) (zoneinfo.Zone, error) {
	switch {
	case s == "" || strings.EqualFold(s, "local"):
		if _, set := os.LookupEnv(eos.EnvZoneVar); !set {
			return zoneinfo.FromLocation(time.Local), nil
		}
		return zoneinfo.LoadFromEnv()
	case strings.EqualFold(s, "UTC") || s == "Z":
		return zoneinfo.FromLocation(time.UTC), nil
	case s[0] == '+' || s[0] == '-':
		off, err := parseOffset(s)
		if err != nil {
			return zoneinfo.Zone{}, err
		}
		return zoneinfo.FromLocation(time.FixedZone(off.String(), off.TotalSeconds())), nil
	}
	return zoneinfo.Load(s)
}

// parseOffset parses "Z", "±HH", "±HH:MM" or "±HH:MM:SS".
func parseOffset(s string) (eos.UTCOffset, error) {
	if s == "Z" || s == "z" {
		return eos.UTCOffset{}, nil
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return eos.UTCOffset{}, fmt.Errorf("invalid offset %q: want ±HH:MM", s)
	}

	n, err := atoiAll(strings.Split(s[1:], ":"), 1, 3)
	if err != nil {
		return eos.UTCOffset{}, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	if s[0] == '-' {
		for i := range n {
			n[i] = -n[i]
		}
	}
	return eos.NewUTCOffset(n[0], n[1], n[2])
}

// parseDate parses "YYYY-MM-DD" or the ISO week date "YYYY-Www-D". The
// year may carry a leading sign.
func parseDate(s string) (eos.Date, error) {
	body, sign := s, 1
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}

	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return eos.Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	if week, ok := strings.CutPrefix(parts[1], "W"); ok {
		n, err := atoiAll([]string{parts[0], week, parts[2]}, 3, 3)
		if err != nil {
			return eos.Date{}, fmt.Errorf("invalid week date %q: %w", s, err)
		}
		return eos.DateFromIsoWeek(sign*n[0], n[1], eos.Weekday(n[2]))
	}

	n, err := atoiAll(parts, 3, 3)
	if err != nil {
		return eos.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return eos.NewDate(sign*n[0], eos.Month(n[1]), n[2])
}

// parseTime parses "HH:MM", "HH:MM:SS" or "HH:MM:SS.fffffffff".
func parseTime(s string) (eos.Time, error) {
	clock, frac, _ := strings.Cut(s, ".")

	n, err := atoiAll(strings.Split(clock, ":"), 2, 3)
	if err != nil {
		return eos.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}

	var nanos int
	if frac != "" {
		if len(frac) > 9 {
			return eos.Time{}, fmt.Errorf("invalid time %q: more than nine fractional digits", s)
		}
		if nanos, err = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac))); err != nil {
			return eos.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
	}
	return eos.NewTimeNanos(n[0], n[1], n[2], nanos)
}

// parseDateTime splits s into its date, its time (midnight when absent)
// and its explicit offset, if any.
func parseDateTime(s string) (d eos.Date, t eos.Time, off *eos.UTCOffset, err error) {
	ds, ts, hasTime := strings.Cut(s, "T")
	if d, err = parseDate(ds); err != nil || !hasTime {
		return
	}

	if i := strings.IndexAny(ts, "Zz+-"); i >= 0 {
		var o eos.UTCOffset
		if o, err = parseOffset(ts[i:]); err != nil {
			return
		}
		off, ts = &o, ts[:i]
	}
	t, err = parseTime(ts)
	return
}

// atoiAll converts between lo and hi fields, padding the result with
// zeros up to hi.
func atoiAll(fields []string, lo, hi int) ([]int, error) {
	if len(fields) < lo || len(fields) > hi {
		return nil, fmt.Errorf("want between %d and %d fields, got %d", lo, hi, len(fields))
	}
	n := make([]int, hi)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		n[i] = v
	}
	return n, nil
}

// parseInterval reads the interval flags shared by the arithmetic
// subcommands.
func parseInterval(flags interface {
	GetInt(string) (int, error)
	GetInt64(string) (int64, error)
	GetDuration(string) (time.Duration, error)
}) eos.Interval {
	years, _ := flags.GetInt("years")
	months, _ := flags.GetInt("months")
	weeks, _ := flags.GetInt("weeks")
	days, _ := flags.GetInt("days")
	hours, _ := flags.GetInt64("hours")
	minutes, _ := flags.GetInt64("minutes")
	seconds, _ := flags.GetInt64("seconds")
	millis, _ := flags.GetInt64("millis")
	d, _ := flags.GetDuration("duration")

	return eos.NewInterval(years, months, days).
		AddWeeks(weeks).
		AddHours(hours).
		AddMinutes(minutes).
		AddSeconds(seconds).
		AddMilliseconds(millis).
		Add(eos.FromDuration(d))
}
