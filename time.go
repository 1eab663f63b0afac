package eos

/*
time.go implements the time-of-day component, independent of any date
or time zone, alongside its carry-producing arithmetic.
*/

import (
	"strings"
	"time"
)

/*
Time implements an ISO 8601 time of day with nanosecond precision.

The nanosecond component may reach up to 1_999_999_999, where the upper
half is reserved for the representation of a leap second. Arithmetic
always produces a normalized Time, folding any such leap nanoseconds into
the following second.

The zero value is midnight and is valid. Time instances are comparable
with the == operator.
*/
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

/*
Midnight is 00:00:00, the first instant of a day.
*/
var Midnight = Time{}

/*
NewTime returns an instance of [Time] alongside an error following an
attempt to construct a time of day from the input hour (0..24), minute
(0..60) and second (0..60). [ErrTimeOutOfRange] is returned otherwise.
*/
func NewTime(hour, minute, second int, constraints ...Constraint[Time]) (Time, error) {
	return NewTimeNanos(hour, minute, second, 0, constraints...)
}

/*
NewTimeNanos is the same as [NewTime], though it also accepts a
nanosecond component (0..2_000_000_000).
*/
func NewTimeNanos(hour, minute, second, nanosecond int, constraints ...Constraint[Time]) (t Time, err error) {
	switch {
	case hour < 0 || hour >= 24:
		err = errorBadHour
	case minute < 0 || minute >= 60:
		err = errorBadMinute
	case second < 0 || second >= 60:
		err = errorBadSecond
	case nanosecond < 0 || nanosecond >= 2*nanosPerSecond:
		err = errorBadNanosecond
	}

	if err == nil {
		t = Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}
		if len(constraints) > 0 {
			var group ConstraintGroup[Time] = constraints
			if err = group.Constrain(t); err != nil {
				t = Time{}
			}
		}
	}

	return
}

/*
AdjustFromNanos returns the signed number of days contained within nanos
alongside the [Time] of day described by the remainder. Floored division
is used, such that negative values yield a negative day count and a Time
counted forward from midnight, e.g.: -1ns is (-1, 23:59:59.999999999).
*/
func AdjustFromNanos(nanos int64) (days int, t Time) {
	d, rem := divmod(nanos, nanosPerDay)
	days = int(d)
	t = timeFromNanosOfDay(rem)
	return
}

// timeFromNanosOfDay expects n within [0, 86_400_000_000_000).
func timeFromNanosOfDay(n int64) Time {
	secs := n / nanosPerSecond
	return Time{
		hour:       uint8(secs / secondsPerHour),
		minute:     uint8(secs % secondsPerHour / secondsPerMinute),
		second:     uint8(secs % secondsPerMinute),
		nanosecond: uint32(n % nanosPerSecond),
	}
}

/*
adjustFromSeconds is the wide counterpart of [AdjustFromNanos]. It
accepts a signed second count and a signed sub-second count, and is
used wherever the total would not fit within an int64 of nanoseconds.
*/
func adjustFromSeconds(secs, nanos int64) (days int64, t Time) {
	carry, ns := divmod(nanos, nanosPerSecond)
	d, rem := divmod(secs+carry, secondsPerDay)
	days = d
	t = timeFromNanosOfDay(rem*nanosPerSecond + ns)
	return
}

/*
Hour returns the hour of the receiver instance, within 0..24.
*/
func (r Time) Hour() int { return int(r.hour) }

/*
Minute returns the minute within the hour, within 0..60.
*/
func (r Time) Minute() int { return int(r.minute) }

/*
Second returns the second within the minute, within 0..60.
*/
func (r Time) Second() int { return int(r.second) }

/*
Millisecond returns the millisecond within the second, within 0..2000.
*/
func (r Time) Millisecond() int { return int(r.nanosecond / nanosPerMilli) }

/*
Microsecond returns the microsecond within the second, within 0..2_000_000.
*/
func (r Time) Microsecond() int { return int(r.nanosecond / nanosPerMicro) }

/*
Nanosecond returns the nanosecond within the second, within
0..2_000_000_000.
*/
func (r Time) Nanosecond() int { return int(r.nanosecond) }

/*
TotalSeconds returns the number of whole seconds elapsed since midnight.
A leap second is counted as a full second.
*/
func (r Time) TotalSeconds() int64 {
	return int64(r.hour)*secondsPerHour + int64(r.minute)*secondsPerMinute +
		int64(r.second) + int64(r.nanosecond/nanosPerSecond)
}

/*
TotalNanos returns the number of nanoseconds elapsed since midnight.
*/
func (r Time) TotalNanos() int64 {
	return (int64(r.hour)*secondsPerHour+int64(r.minute)*secondsPerMinute+
		int64(r.second))*nanosPerSecond + int64(r.nanosecond)
}

// subsec returns the nanoseconds within the second, excluding any leap.
func (r Time) subsec() int64 { return int64(r.nanosecond % nanosPerSecond) }

/*
WithHour returns a new [Time] pointing to the given hour alongside an
error. No other component is modified.
*/
func (r Time) WithHour(hour int) (Time, error) {
	if hour < 0 || hour >= 24 {
		return r, errorBadHour
	}
	r.hour = uint8(hour)
	return r, nil
}

/*
WithMinute returns a new [Time] pointing to the given minute alongside an
error. No other component is modified.
*/
func (r Time) WithMinute(minute int) (Time, error) {
	if minute < 0 || minute >= 60 {
		return r, errorBadMinute
	}
	r.minute = uint8(minute)
	return r, nil
}

/*
WithSecond returns a new [Time] pointing to the given second alongside an
error. No other component is modified.
*/
func (r Time) WithSecond(second int) (Time, error) {
	if second < 0 || second >= 60 {
		return r, errorBadSecond
	}
	r.second = uint8(second)
	return r, nil
}

/*
WithMillisecond returns a new [Time] whose sub-second component is
replaced by millisecond (0..2000) alongside an error.
*/
func (r Time) WithMillisecond(millisecond int) (Time, error) {
	if millisecond < 0 || millisecond >= 2000 {
		return r, errorBadMillisecond
	}
	r.nanosecond = uint32(millisecond) * nanosPerMilli
	return r, nil
}

/*
WithMicrosecond returns a new [Time] whose sub-second component is
replaced by microsecond (0..2_000_000) alongside an error.
*/
func (r Time) WithMicrosecond(microsecond int) (Time, error) {
	if microsecond < 0 || microsecond >= 2_000_000 {
		return r, errorBadMicrosecond
	}
	r.nanosecond = uint32(microsecond) * nanosPerMicro
	return r, nil
}

/*
WithNanosecond returns a new [Time] whose sub-second component is
replaced by nanosecond (0..2_000_000_000) alongside an error.
*/
func (r Time) WithNanosecond(nanosecond int) (Time, error) {
	if nanosecond < 0 || nanosecond >= 2*nanosPerSecond {
		return r, errorBadNanosecond
	}
	r.nanosecond = uint32(nanosecond)
	return r, nil
}

/*
AddWithDuration returns the receiver instance advanced by d, alongside
the number of days by which the result wrapped around midnight.

	t, _ := NewTime(23, 0, 0)
	days, u := t.AddWithDuration(2 * time.Hour) // 1, 01:00:00
*/
func (r Time) AddWithDuration(d time.Duration) (days int, t Time) {
	secs, ns := int64(d/time.Second), int64(d%time.Second)
	var wrapped int64
	wrapped, t = r.addSeconds(secs, ns)
	days = int(wrapped)
	debugTime(newLItem(r, "add"), d, days)
	return
}

/*
SubWithDuration returns the receiver instance moved back by d, alongside
the number of days by which the result wrapped around midnight, which
is negative for a positive d.
*/
func (r Time) SubWithDuration(d time.Duration) (days int, t Time) {
	// d is split before negation; -d overflows for math.MinInt64.
	secs, ns := int64(d/time.Second), int64(d%time.Second)
	var wrapped int64
	wrapped, t = r.addSeconds(-secs, -ns)
	days = int(wrapped)
	debugTime(newLItem(r, "sub"), d, days)
	return
}

/*
addSeconds advances the receiver instance by a signed second and
sub-second count that may exceed the range of [time.Duration]. Any leap
second held by the receiver is folded into the following second.
*/
func (r Time) addSeconds(secs, nanos int64) (days int64, t Time) {
	return adjustFromSeconds(r.TotalSeconds()+secs, r.subsec()+nanos)
}

/*
Compare returns -1, 0 or 1 if the receiver instance is before, equal to
or after other respectively.
*/
func (r Time) Compare(other Time) int { return sign(r.TotalNanos() - other.TotalNanos()) }

/*
Before returns a Boolean value indicative of the receiver instance
preceding other.
*/
func (r Time) Before(other Time) bool { return r.Compare(other) < 0 }

/*
After returns a Boolean value indicative of the receiver instance
following other.
*/
func (r Time) After(other Time) bool { return r.Compare(other) > 0 }

/*
String returns the ISO 8601 extended representation of the receiver
instance, e.g.: "13:04:05" or "13:04:05.25". A leap second is rendered
as second 60.
*/
func (r Time) String() string {
	b := newStrBuilder()
	r.write(&b)
	return b.String()
}

func (r Time) write(b *strings.Builder) {
	sec, ns := int64(r.second), r.nanosecond
	if ns >= nanosPerSecond {
		sec++
		ns -= nanosPerSecond
	}
	padInt(b, int64(r.hour), 2)
	b.WriteByte(':')
	padInt(b, int64(r.minute), 2)
	b.WriteByte(':')
	padInt(b, sec, 2)
	fracNanos(b, ns)
}
