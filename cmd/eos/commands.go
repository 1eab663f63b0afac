package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/BeatButton/eos"
	"github.com/BeatButton/eos/zoneinfo"
	"github.com/spf13/cobra"
)

// datetime reads s within the configured zone. An explicit offset within
// s denotes an instant, which is then expressed within the zone.
func (a *app) datetime(s string) (eos.DateTime[zoneinfo.Zone], error) {
	d, t, off, err := parseDateTime(s)
	if err != nil {
		return eos.DateTime[zoneinfo.Zone]{}, err
	}
	if off != nil {
		return eos.InTimezone(eos.FromDateAndTime(d, t, *off), a.zone), nil
	}

	dt, err := eos.Resolve(d, t, a.zone, a.policy)
	if err != nil {
		return dt, fmt.Errorf("cannot resolve %s in %s: %w", s, a.zone.Name(), err)
	}
	if res := a.zone.Resolve(d, t); res.Kind() != eos.Unambiguous {
		a.log.Debug("local time resolved",
			slog.String("input", s),
			slog.String("kind", res.Kind().String()),
			slog.String("policy", a.policy.String()),
			slog.String("result", dt.String()))
	}
	return dt, nil
}

func nowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt := eos.DatetimeAt(a.zone, eos.UTCNowFrom(a.clock))
			return a.emit(cmd, dateTimeReport{
				DateTime:  dt.String(),
				Zone:      a.zone.Name(),
				Offset:    dt.Offset().String(),
				Timestamp: dt.Timestamp(),
			}, dt.String())
		},
	}
}

func addIntervalFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("years", 0, "years to add")
	f.Int("months", 0, "months to add")
	f.Int("weeks", 0, "weeks to add")
	f.Int("days", 0, "days to add")
	f.Int64("hours", 0, "hours to add")
	f.Int64("minutes", 0, "minutes to add")
	f.Int64("seconds", 0, "seconds to add")
	f.Int64("millis", 0, "milliseconds to add")
	f.Duration("duration", 0, "fixed duration to add, e.g.: 1h30m")
}

func addCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <datetime>",
		Short: "Add an interval to a date-time",
		Long: `Add an interval to a date-time. The time component is applied first,
then months (clamping the day to the end of the month) and lastly days.

Example:
  eos add 2024-01-31 --months 1
  eos add 2024-03-10T01:30 --zone America/New_York --hours 1
  eos add 2023-02-28 --months 1 --sub`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.datetime(args[0])
			if err != nil {
				return err
			}

			iv := parseInterval(cmd.Flags())
			result := dt.AddInterval(iv)
			if sub, _ := cmd.Flags().GetBool("sub"); sub {
				result = dt.SubInterval(iv)
				iv = iv.Neg()
			}

			return a.emit(cmd, arithmeticReport{
				Start:    dt.String(),
				Interval: iv.String(),
				Result:   result.String(),
			}, result.String())
		},
	}
	addIntervalFlags(cmd)
	cmd.Flags().Bool("sub", false, "subtract the interval instead")
	return cmd
}

func diffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print the interval between two date-times",
		Long: `Print the calendar interval between two date-times, such that adding
it to <from> yields <to>, alongside the same difference in days.

Example:
  eos diff 2024-01-31 2024-03-01
  eos diff 2022-01-01T10:00Z 2022-03-02T12:30+02:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.datetime(args[0])
			if err != nil {
				return err
			}
			to, err := a.datetime(args[1])
			if err != nil {
				return err
			}

			iv := to.Sub(from)
			days := eos.DaysBetween(from, to)
			return a.emit(cmd, diffReport{
				From:         from.String(),
				To:           to.String(),
				Interval:     iv.String(),
				Days:         days.String(),
				TotalSeconds: days.TotalSecondsFromDays(),
			}, iv.String(), days.String())
		},
	}
}

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <datetime>",
		Short: "Express a date-time within another zone",
		Long: `Express a date-time within the zone named by --to. With --relabel, the
date and time are kept as is and only the zone is replaced.

Example:
  eos convert 2021-11-07T05:30Z --to America/New_York
  eos convert 2022-01-02T20:38:45 --zone UTC --to +09:00 --relabel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.datetime(args[0])
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("to")
			to, err := parseZone(name)
			if err != nil {
				return err
			}

			out := eos.InTimezone(dt, to)
			if relabel, _ := cmd.Flags().GetBool("relabel"); relabel {
				out = eos.WithTimezone(dt, to)
			}
			return a.emit(cmd, convertReport{
				Input:  dt.String(),
				Output: out.String(),
				UTC:    out.UTC().String(),
			}, out.String())
		},
	}
	cmd.Flags().String("to", "UTC", "target zone")
	cmd.Flags().Bool("relabel", false, "replace the zone without converting")
	return cmd
}

func cmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two date-times",
		Long: `Compare two date-times both by instant and by wall clock, printing -1,
0 or 1 for each.

Example:
  eos cmp 2022-01-01T13:00+03:00 2022-01-01T10:00Z`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// explicit offsets are kept as is so that wall clocks may differ
			x, xt, xo, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			y, yt, yo, err := parseDateTime(args[1])
			if err != nil {
				return err
			}
			l, err := a.offsetDateTime(args[0], x, xt, xo)
			if err != nil {
				return err
			}
			r, err := a.offsetDateTime(args[1], y, yt, yo)
			if err != nil {
				return err
			}

			rep := cmpReport{
				Instant:   l.CmpCrossTimezone(r),
				WallClock: l.CmpWithoutTz(r),
				Same:      l.SameInstant(r),
			}
			return a.emit(cmd, rep,
				"instant: "+strconv.Itoa(rep.Instant),
				"wall clock: "+strconv.Itoa(rep.WallClock))
		},
	}
}

// offsetDateTime pairs the date and time with its explicit offset, or
// with the offset resolved within the configured zone.
func (a *app) offsetDateTime(s string, d eos.Date, t eos.Time, off *eos.UTCOffset) (eos.DateTime[eos.UTCOffset], error) {
	if off != nil {
		return eos.FromDateAndTime(d, t, *off), nil
	}
	dt, err := a.datetime(s)
	if err != nil {
		return eos.DateTime[eos.UTCOffset]{}, err
	}
	return eos.WithTimezone(dt, dt.Offset()), nil
}

func weekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week [date]",
		Short: "Print calendar details of a date",
		Long: `Print the ISO 8601 week date, weekday and ordinal of a date, today
within --zone by default. Week dates such as 2024-W09-4 are accepted.

Example:
  eos week 1995-01-01
  eos week 2020-W53-7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := eos.DatetimeAt(a.zone, eos.UTCNowFrom(a.clock)).Date()
			if len(args) > 0 {
				var err error
				if d, err = parseDate(args[0]); err != nil {
					return err
				}
			}

			wk := d.IsoWeek()
			return a.emit(cmd, weekReport{
				Date:        d.String(),
				IsoWeek:     wk.String(),
				Weekday:     d.Weekday().String(),
				Ordinal:     d.Ordinal(),
				LeapYear:    d.IsLeapYear(),
				DaysInMonth: d.DaysInMonth(),
			}, wk.String())
		},
	}
}

func timestampCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timestamp [datetime|@seconds]",
		Short: "Convert between date-times and POSIX timestamps",
		Long: `Print the POSIX timestamp of a date-time, now by default. An argument
of the form @seconds is converted into a date-time within --zone instead.

Example:
  eos timestamp 2022-01-02T20:38:45-05:00
  eos timestamp @1641155925 --zone Asia/Tokyo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt := eos.DatetimeAt(a.zone, eos.UTCNowFrom(a.clock))
			switch {
			case len(args) == 0:
			case strings.HasPrefix(args[0], "@"):
				secs, err := strconv.ParseInt(args[0][1:], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
				}
				dt = eos.FromTimestamp(secs, 0, a.zone)
			default:
				var err error
				if dt, err = a.datetime(args[0]); err != nil {
					return err
				}
			}

			line := strconv.FormatInt(dt.Timestamp(), 10)
			if len(args) > 0 && strings.HasPrefix(args[0], "@") {
				line = dt.String()
			}
			return a.emit(cmd, timestampReport{
				DateTime: dt.String(),
				Seconds:  dt.Timestamp(),
				Millis:   dt.TimestampMillis(),
			}, line)
		},
	}
}

func rangeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "List the dates from start up to, but not including, end",
		Long: `List the dates from start up to, but not including, end. Dates may
be filtered through registered constraints, e.g.: weekday or weekend.

Example:
  eos range 2024-03-01 2024-03-15 --only weekday`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(args[0])
			if err != nil {
				return err
			}
			end, err := parseDate(args[1])
			if err != nil {
				return err
			}

			names, _ := cmd.Flags().GetStringSlice("only")
			group, err := eos.NamedConstraints[eos.Date](names...)
			if err != nil {
				return err
			}

			dates := []string{}
			for d := range eos.DateRange(start, end, group...) {
				dates = append(dates, d.String())
			}
			a.log.Debug("range", slog.Int("dates", len(dates)), slog.Any("constraints", names))

			return a.emit(cmd, dates, dates...)
		},
	}
	cmd.Flags().StringSlice("only", nil, "names of registered date constraints to satisfy")
	return cmd
}

func recurCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recur <datetime>",
		Short: "List recurrences of a date-time",
		Long: `List a date-time and its recurrences every interval. Each recurrence
is computed from the start, hence a clamped day of month does not carry
over to the next one.

Example:
  eos recur 2024-01-31 --months 1 --count 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.datetime(args[0])
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")

			out := []string{}
			for n, dt := range eos.Recur(start, parseInterval(cmd.Flags())) {
				if n >= count {
					break
				}
				out = append(out, dt.String())
			}
			return a.emit(cmd, out, out...)
		},
	}
	addIntervalFlags(cmd)
	cmd.Flags().Int("count", 5, "number of date-times to list")
	return cmd
}
