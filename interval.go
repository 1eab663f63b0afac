package eos

/*
interval.go implements the calendar-relative Interval type alongside
the Between and DaysBetween difference operations.
*/

import (
	"math"
	"strings"
	"time"
)

/*
Interval implements a signed, calendar-relative span of time. It is made
of three independent components:

  - a month count (years are folded in), whose length in days depends on
    the date to which the Interval is applied
  - a day count, whose length is one civil day regardless of any zone
  - a fixed sub-day time delta, which is signed independently of the
    other two components, e.g.: "1 month minus 3 hours"

Intervals are never ordered by magnitude, as the length of a month is
date-dependent. Two Intervals are equal only if every component is equal,
which may be tested with [Interval.Equal] or the == operator.

The zero value is an empty Interval.
*/
type Interval struct {
	months      int
	days        int
	seconds     int64
	nanoseconds int32 // shares the sign of seconds
}

/*
NewInterval returns an instance of [Interval] spanning the input years,
months and days.
*/
func NewInterval(years, months, days int) Interval {
	return Interval{months: years*12 + months, days: days}
}

/*
FromYears returns an [Interval] of n years.
*/
func FromYears(n int) Interval { return Interval{months: n * 12} }

/*
FromMonths returns an [Interval] of n months.
*/
func FromMonths(n int) Interval { return Interval{months: n} }

/*
FromWeeks returns an [Interval] of n weeks (7n days).
*/
func FromWeeks(n int) Interval { return Interval{days: n * 7} }

/*
FromDays returns an [Interval] of n days.
*/
func FromDays(n int) Interval { return Interval{days: n} }

/*
FromHours returns an [Interval] of n hours. Hours are fixed-length and
are never folded into days.
*/
func FromHours(n int64) Interval { return Interval{}.AddHours(n) }

/*
FromMinutes returns an [Interval] of n minutes.
*/
func FromMinutes(n int64) Interval { return Interval{}.AddMinutes(n) }

/*
FromSeconds returns an [Interval] of n seconds.
*/
func FromSeconds(n int64) Interval { return Interval{seconds: n} }

/*
FromMilliseconds returns an [Interval] of n milliseconds.
*/
func FromMilliseconds(n int64) Interval { return Interval{}.AddMilliseconds(n) }

/*
FromNanoseconds returns an [Interval] of n nanoseconds.
*/
func FromNanoseconds(n int64) Interval { return Interval{}.AddNanoseconds(n) }

/*
FromDuration returns an [Interval] holding d as its time component.
*/
func FromDuration(d time.Duration) Interval { return FromNanoseconds(int64(d)) }

// normalizeTime returns secs and nanos such that |nanos| < 1e9 and both
// share the same sign.
func normalizeTime(secs, nanos int64) (int64, int32) {
	secs += nanos / nanosPerSecond
	nanos %= nanosPerSecond
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return secs, int32(nanos)
}

/*
AddYears returns the receiver instance extended by n years.
*/
func (r Interval) AddYears(n int) Interval {
	r.months += n * 12
	return r
}

/*
AddMonths returns the receiver instance extended by n months.
*/
func (r Interval) AddMonths(n int) Interval {
	r.months += n
	return r
}

/*
AddWeeks returns the receiver instance extended by n weeks.
*/
func (r Interval) AddWeeks(n int) Interval {
	r.days += n * 7
	return r
}

/*
AddDays returns the receiver instance extended by n days.
*/
func (r Interval) AddDays(n int) Interval {
	r.days += n
	return r
}

/*
AddHours returns the receiver instance extended by n hours.
*/
func (r Interval) AddHours(n int64) Interval { return r.AddSeconds(n * secondsPerHour) }

/*
AddMinutes returns the receiver instance extended by n minutes.
*/
func (r Interval) AddMinutes(n int64) Interval { return r.AddSeconds(n * secondsPerMinute) }

/*
AddSeconds returns the receiver instance extended by n seconds.
*/
func (r Interval) AddSeconds(n int64) Interval {
	r.seconds, r.nanoseconds = normalizeTime(r.seconds+n, int64(r.nanoseconds))
	return r
}

/*
AddMilliseconds returns the receiver instance extended by n milliseconds.
*/
func (r Interval) AddMilliseconds(n int64) Interval {
	return r.AddSeconds(n / 1000).AddNanoseconds(n % 1000 * nanosPerMilli)
}

/*
AddNanoseconds returns the receiver instance extended by n nanoseconds.
*/
func (r Interval) AddNanoseconds(n int64) Interval {
	r.seconds, r.nanoseconds = normalizeTime(r.seconds+n/nanosPerSecond,
		int64(r.nanoseconds)+n%nanosPerSecond)
	return r
}

/*
Years returns the number of whole years within the month component.
*/
func (r Interval) Years() int { return r.months / 12 }

/*
Months returns the months remaining after whole years are removed, such
that Years()*12 + Months() == TotalMonths().
*/
func (r Interval) Months() int { return r.months % 12 }

/*
TotalMonths returns the month component, years included.
*/
func (r Interval) TotalMonths() int { return r.months }

/*
Days returns the day component.
*/
func (r Interval) Days() int { return r.days }

/*
Hours returns the number of whole hours within the time component.
*/
func (r Interval) Hours() int64 { return r.seconds / secondsPerHour }

/*
Minutes returns the minutes within the hour of the time component.
*/
func (r Interval) Minutes() int64 { return r.seconds % secondsPerHour / secondsPerMinute }

/*
Seconds returns the seconds within the minute of the time component.
*/
func (r Interval) Seconds() int64 { return r.seconds % secondsPerMinute }

/*
Nanoseconds returns the nanoseconds within the second of the time
component.
*/
func (r Interval) Nanoseconds() int { return int(r.nanoseconds) }

/*
TotalSeconds returns the whole seconds of the time component, excluding
days and months.
*/
func (r Interval) TotalSeconds() int64 { return r.seconds }

/*
TimeDuration returns the time component as a magnitude alongside a
Boolean value indicative of the time component being subtracted. The
magnitude saturates at the maximum [time.Duration].

	sub, d := FromMonths(1).AddHours(-3).TimeDuration() // true, 3h0m0s
*/
func (r Interval) TimeDuration() (subtracted bool, magnitude time.Duration) {
	secs, nanos := r.seconds, int64(r.nanoseconds)
	if subtracted = secs < 0 || nanos < 0; subtracted {
		secs, nanos = -secs, -nanos
	}

	if secs > (math.MaxInt64-nanos)/nanosPerSecond {
		magnitude = time.Duration(math.MaxInt64)
	} else {
		magnitude = time.Duration(secs*nanosPerSecond + nanos)
	}
	return
}

/*
TotalSecondsFromDays returns the day and time components expressed in
seconds, truncated toward zero. The month component is ignored.
*/
func (r Interval) TotalSecondsFromDays() int64 {
	return int64(r.days)*secondsPerDay + r.seconds
}

/*
TotalMillisecondsFromDays returns the day and time components expressed
in milliseconds, truncated toward zero. The month component is ignored.
*/
func (r Interval) TotalMillisecondsFromDays() int64 {
	return r.TotalSecondsFromDays()*1000 + int64(r.nanoseconds)/nanosPerMilli
}

/*
Add returns the component-wise sum of the receiver instance and other.
*/
func (r Interval) Add(other Interval) Interval {
	r.months += other.months
	r.days += other.days
	r.seconds, r.nanoseconds = normalizeTime(r.seconds+other.seconds,
		int64(r.nanoseconds)+int64(other.nanoseconds))
	return r
}

/*
Neg returns the receiver instance with every component negated.
*/
func (r Interval) Neg() Interval {
	return Interval{-r.months, -r.days, -r.seconds, -r.nanoseconds}
}

/*
Mul returns the receiver instance with every component multiplied by n.
*/
func (r Interval) Mul(n int) Interval {
	secs, nanos := normalizeTime(r.seconds*int64(n), int64(r.nanoseconds)*int64(n))
	return Interval{r.months * n, r.days * n, secs, nanos}
}

/*
IsZero returns a Boolean value indicative of every component being zero.
*/
func (r Interval) IsZero() bool { return r == Interval{} }

/*
Equal returns a Boolean value indicative of every component of the
receiver instance matching those of other. No normalization between
components takes place: one day does not equal 24 hours.
*/
func (r Interval) Equal(other Interval) bool { return r == other }

/*
String returns the ISO 8601 duration representation of the receiver
instance, e.g.: "P1Y2M3DT4H5M6.5S". Negative components are written
with a leading hyphen. The zero Interval is "PT0S".
*/
func (r Interval) String() string {
	if r.IsZero() {
		return "PT0S"
	}

	b := newStrBuilder()
	b.WriteByte('P')
	writeUnit(&b, int64(r.Years()), 'Y')
	writeUnit(&b, int64(r.Months()), 'M')
	writeUnit(&b, int64(r.days), 'D')

	if r.seconds != 0 || r.nanoseconds != 0 {
		b.WriteByte('T')
		writeUnit(&b, r.Hours(), 'H')
		writeUnit(&b, r.Minutes(), 'M')
		if secs, ns := r.Seconds(), r.nanoseconds; secs != 0 || ns != 0 {
			if secs == 0 && ns < 0 {
				b.WriteByte('-')
			}
			b.WriteString(fmtInt(secs, 10))
			fracNanos(&b, uint32(abs(ns)))
			b.WriteByte('S')
		}
	}

	return b.String()
}

func writeUnit(b *strings.Builder, n int64, unit byte) {
	if n != 0 {
		b.WriteString(fmtInt(n, 10))
		b.WriteByte(unit)
	}
}

/*
partsAt expresses t at the fixed offset off, folding any leap second.
*/
func partsAt(t Temporal, off UTCOffset) (Date, Time) {
	delta := int64(off.TotalSeconds()) - int64(t.Offset().TotalSeconds())
	days, tm := t.Time().addSeconds(delta, 0)
	return t.Date().AddDays(int(days)), tm
}

/*
Between returns the calendar-aware difference b - a as an [Interval].

The instant b is first expressed at the offset of a, so that the walk
takes place within the local frame of a. Whole months are then walked
from a toward b, as far as possible without passing b (the month-end
clamp of [Date.AddMonths] applies), and the remainder is split into
whole days and a time delta. Every component shares the sign of b - a,
such that a.AddInterval(Between(a, b)) denotes the same instant as b.

	a, _ := NewDateTime(2024, January, 31, UTC{})
	b, _ := NewDateTime(2024, March, 1, UTC{})
	iv := Between(a, b) // P1M1D (January 31st clamps to February 29th)
*/
func Between(a, b Temporal) (iv Interval) {
	defer debugPath(a, b)(&iv)

	ad, at := a.Date(), a.Time()
	bd, bt := partsAt(b, a.Offset())

	months := (bd.year*12 + int(bd.month)) - (ad.year*12 + int(ad.month))
	if months != 0 {
		cursor := ad.AddMonths(months)
		c := cursor.Compare(bd)
		if c == 0 {
			c = at.Compare(bt)
		}
		if months > 0 && c > 0 {
			months--
		} else if months < 0 && c < 0 {
			months++
		}
	}

	iv = daysBetween(ad.AddMonths(months), at, bd, bt)
	iv.months = months

	return
}

/*
DaysBetween returns the difference b - a as an [Interval] lacking any
month component. The day and time components do not depend upon the
frame, thus b is merely expressed at the offset of a.
*/
func DaysBetween(a, b Temporal) Interval {
	bd, bt := partsAt(b, a.Offset())
	return daysBetween(a.Date(), a.Time(), bd, bt)
}

func daysBetween(ad Date, at Time, bd Date, bt Time) Interval {
	days := bd.EpochDays() - ad.EpochDays()
	nanos := bt.TotalNanos() - at.TotalNanos()

	if days > 0 && nanos < 0 {
		days--
		nanos += nanosPerDay
	} else if days < 0 && nanos > 0 {
		days++
		nanos -= nanosPerDay
	}

	return Interval{
		days:        int(days),
		seconds:     nanos / nanosPerSecond,
		nanoseconds: int32(nanos % nanosPerSecond),
	}
}
