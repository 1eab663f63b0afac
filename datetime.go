package eos

/*
datetime.go implements DateTime, the composition of a Date, a Time and a
TimeZone, alongside its conversion, comparison and arithmetic.
*/

import (
	"strings"
	"time"
)

/*
Temporal is qualified through any value which denotes a local date and
time alongside the UTC offset in effect at that local date and time.
Every [DateTime] qualifies this interface, regardless of its zone type,
which permits comparison and subtraction across zone types.
*/
type Temporal interface {
	Date() Date
	Time() Time
	Offset() UTCOffset
}

/*
DateTime implements the composition of a [Date], a [Time] and a
[TimeZone] value of type Z, which is owned by (copied into) the
instance.

Instances are immutable: every method which appears to modify an
instance returns a new one. The three zone changing operations are
kept distinct:

  - [WithTimezone] replaces the zone only, leaving the date and time
    untouched (the instant denoted may change)
  - [InTimezone] expresses the same instant within another zone
  - [Shift] moves a UTC instance by a raw offset

Comparison of two instances of the same zone type through [DateTime.Compare]
and its derivatives orders by instant. See [DateTime.CmpCrossTimezone] for
differing zone types and [DateTime.CmpWithoutTz] for wall-clock order.
*/
type DateTime[Z TimeZone] struct {
	date Date
	time Time
	zone Z
}

/*
UnixEpoch is 1970-01-01T00:00:00Z.
*/
var UnixEpoch = DateTime[UTC]{date: UnixEpochDate}

/*
FromDateAndTime returns a [DateTime] composed of the input values.
*/
func FromDateAndTime[Z TimeZone](date Date, t Time, zone Z) DateTime[Z] {
	return DateTime[Z]{date: date, time: t, zone: zone}
}

/*
NewDateTime returns a [DateTime] at midnight of the input calendar date
alongside an error. See [NewDate] for validation.
*/
func NewDateTime[Z TimeZone](year int, month Month, day int, zone Z) (dt DateTime[Z], err error) {
	var d Date
	if d, err = NewDate(year, month, day); err == nil {
		dt = DateTime[Z]{date: d, zone: zone}
	}
	return
}

/*
FromOrdinal returns a [DateTime] at midnight of the input ordinal date
alongside an error. See [DateFromOrdinal] for validation.
*/
func FromOrdinal[Z TimeZone](year, ordinal int, zone Z) (dt DateTime[Z], err error) {
	var d Date
	if d, err = DateFromOrdinal(year, ordinal); err == nil {
		dt = DateTime[Z]{date: d, zone: zone}
	}
	return
}

/*
FromTimestamp returns the [DateTime] within zone denoting the POSIX
instant of secs seconds and nanos nanoseconds. Either may be negative.
*/
func FromTimestamp[Z TimeZone](secs, nanos int64, zone Z) DateTime[Z] {
	days, t := adjustFromSeconds(secs, nanos)
	utc := DateTime[UTC]{date: DateFromEpochDays(days), time: t}
	return DatetimeAt(zone, utc)
}

/*
FromTime returns the instant denoted by t within zone. The location of
t is not consulted. See [DateTime.ToTime] for the reverse conversion.
*/
func FromTime[Z TimeZone](t time.Time, zone Z) DateTime[Z] {
	ts := timestampOf(t)
	return FromTimestamp(ts.seconds, int64(ts.nanoseconds), zone)
}

/*
UTCNow returns the current instant within [UTC], as reported by the
[SystemClock].
*/
func UTCNow() DateTime[UTC] { return UTCNowFrom(SystemClock{}) }

/*
UTCNowFrom returns the current instant within [UTC], as reported by
clock.
*/
func UTCNowFrom(clock Clock) DateTime[UTC] {
	ts := clock.Now()
	debugIO(newLItem(ts, "clock"))
	return ts.ToUTC()
}

/*
Now returns the current instant within [Local] alongside an error, which
is [ErrEnvironment] should the local offset be unobtainable.
*/
func Now() (dt DateTime[Local], err error) {
	var loc Local
	if loc, err = NewLocal(); err == nil {
		dt = NowIn(loc)
	}
	return
}

/*
NowIn returns the current instant within zone.
*/
func NowIn[Z TimeZone](zone Z) DateTime[Z] { return DatetimeAt(zone, UTCNow()) }

/*
Today returns the current local date within zone.
*/
func Today[Z TimeZone](zone Z) Date { return NowIn(zone).date }

/*
WithTimezone returns dt relabeled with zone. The date and time are not
modified; the instant denoted changes unless both zones share an offset.
*/
func WithTimezone[Z, N TimeZone](dt DateTime[Z], zone N) DateTime[N] {
	return DateTime[N]{date: dt.date, time: dt.time, zone: zone}
}

/*
InTimezone returns the representation of the instant denoted by dt
within zone.

	dt := FromDateAndTime(date, t, MustUTCOffset(3, 0, 0)) // 03:04:05+03:00
	utc := InTimezone(dt, UTC{})                           // 00:04:05Z
*/
func InTimezone[Z, N TimeZone](dt DateTime[Z], zone N) (out DateTime[N]) {
	defer debugPath(dt, zone)(&out)
	return DatetimeAt(zone, dt.UTC())
}

/*
Shift returns utc moved by the raw offset off, carrying any overflow of
the time into the date. It is meant for UTC values only; use [InTimezone]
to convert between zones.
*/
func Shift(utc DateTime[UTC], off UTCOffset) DateTime[UTC] {
	days, t := utc.time.addSeconds(int64(off.seconds), 0)
	utc.date = utc.date.AddDays(int(days))
	utc.time = t
	return utc
}

/*
UTC returns the instant denoted by the receiver instance within [UTC].
*/
func (r DateTime[Z]) UTC() DateTime[UTC] {
	u := DateTime[UTC]{date: r.date, time: r.time}
	return Shift(u, r.Offset().Neg())
}

/*
Offset returns the offset of the receiver's zone at its local date and
time.
*/
func (r DateTime[Z]) Offset() UTCOffset { return r.zone.Offset(r.date, r.time) }

/*
Date returns the [Date] component of the receiver instance.
*/
func (r DateTime[Z]) Date() Date { return r.date }

/*
Time returns the [Time] component of the receiver instance.
*/
func (r DateTime[Z]) Time() Time { return r.time }

/*
Timezone returns the zone value of the receiver instance.
*/
func (r DateTime[Z]) Timezone() Z { return r.zone }

/*
Year returns the local year of the receiver instance.
*/
func (r DateTime[Z]) Year() int { return r.date.Year() }

/*
Month returns the local month of the receiver instance.
*/
func (r DateTime[Z]) Month() Month { return r.date.Month() }

/*
Day returns the local day of the month, within 1..31.
*/
func (r DateTime[Z]) Day() int { return r.date.Day() }

/*
Ordinal returns the local day of the year, within 1..366.
*/
func (r DateTime[Z]) Ordinal() int { return r.date.Ordinal() }

/*
Weekday returns the local [Weekday] of the receiver instance.
*/
func (r DateTime[Z]) Weekday() Weekday { return r.date.Weekday() }

/*
IsoWeek returns the [IsoWeekDate] of the local date.
*/
func (r DateTime[Z]) IsoWeek() IsoWeekDate { return r.date.IsoWeek() }

/*
Hour returns the local hour, within 0..23.
*/
func (r DateTime[Z]) Hour() int { return r.time.Hour() }

/*
Minute returns the local minute within the hour.
*/
func (r DateTime[Z]) Minute() int { return r.time.Minute() }

/*
Second returns the local second within the minute. A leap second
reads as 59, with the sub-second component carrying the extra second.
*/
func (r DateTime[Z]) Second() int { return r.time.Second() }

/*
Millisecond returns the sub-second component in whole milliseconds,
which exceeds 999 during a leap second.
*/
func (r DateTime[Z]) Millisecond() int { return r.time.Millisecond() }

/*
Microsecond returns the sub-second component in whole microseconds.
See [DateTime.Millisecond].
*/
func (r DateTime[Z]) Microsecond() int { return r.time.Microsecond() }

/*
Nanosecond returns the sub-second component in nanoseconds. See
[DateTime.Millisecond].
*/
func (r DateTime[Z]) Nanosecond() int { return r.time.Nanosecond() }

/*
WithDate returns the receiver instance with its date replaced by d.
*/
func (r DateTime[Z]) WithDate(d Date) DateTime[Z] {
	r.date = d
	return r
}

/*
WithTime returns the receiver instance with its time replaced by t.
*/
func (r DateTime[Z]) WithTime(t Time) DateTime[Z] {
	r.time = t
	return r
}

/*
WithYear returns the receiver instance pointing to year, clamping
February 29th to the 28th within common years. No zone conversion takes
place.
*/
func (r DateTime[Z]) WithYear(year int) DateTime[Z] {
	r.date = r.date.WithYear(year)
	return r
}

/*
WithMonth returns the receiver instance pointing to month alongside an
error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithMonth(month Month) (DateTime[Z], error) {
	return r.withDate(r.date.WithMonth(month))
}

/*
WithDay returns the receiver instance pointing to day alongside an
error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithDay(day int) (DateTime[Z], error) {
	return r.withDate(r.date.WithDay(day))
}

/*
WithOrdinal returns the receiver instance pointing to the ordinal day
of its year alongside an error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithOrdinal(ordinal int) (DateTime[Z], error) {
	return r.withDate(r.date.WithOrdinal(ordinal))
}

/*
WithHour returns the receiver instance pointing to hour alongside an
error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithHour(hour int) (DateTime[Z], error) {
	return r.withTime(r.time.WithHour(hour))
}

/*
WithMinute returns the receiver instance pointing to minute alongside an
error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithMinute(minute int) (DateTime[Z], error) {
	return r.withTime(r.time.WithMinute(minute))
}

/*
WithSecond returns the receiver instance pointing to second alongside an
error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithSecond(second int) (DateTime[Z], error) {
	return r.withTime(r.time.WithSecond(second))
}

/*
WithMillisecond returns the receiver instance with its sub-second component
set to millisecond alongside an error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithMillisecond(millisecond int) (DateTime[Z], error) {
	return r.withTime(r.time.WithMillisecond(millisecond))
}

/*
WithMicrosecond returns the receiver instance with its sub-second component
set to microsecond alongside an error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithMicrosecond(microsecond int) (DateTime[Z], error) {
	return r.withTime(r.time.WithMicrosecond(microsecond))
}

/*
WithNanosecond returns the receiver instance with its sub-second component
set to nanosecond alongside an error. No zone conversion takes place.
*/
func (r DateTime[Z]) WithNanosecond(nanosecond int) (DateTime[Z], error) {
	return r.withTime(r.time.WithNanosecond(nanosecond))
}

func (r DateTime[Z]) withDate(d Date, err error) (DateTime[Z], error) {
	if err == nil {
		r.date = d
	}
	return r, err
}

func (r DateTime[Z]) withTime(t Time, err error) (DateTime[Z], error) {
	if err == nil {
		r.time = t
	}
	return r, err
}

/*
NextWeekday returns the receiver instance moved to the next occurrence
of weekday, which is never the current date. The time is kept.
*/
func (r DateTime[Z]) NextWeekday(weekday Weekday) DateTime[Z] {
	r.date = r.date.NextWeekday(weekday)
	return r
}

/*
PrevWeekday returns the receiver instance moved to the previous
occurrence of weekday, which is never the current date. The time is
kept.
*/
func (r DateTime[Z]) PrevWeekday(weekday Weekday) DateTime[Z] {
	r.date = r.date.PrevWeekday(weekday)
	return r
}

/*
CmpWithoutTz returns -1, 0 or 1 if the local date and time of the
receiver instance is before, equal to or after that of other. Offsets
are ignored: this is wall-clock order, not instant order.
*/
func (r DateTime[Z]) CmpWithoutTz(other Temporal) (c int) {
	if c = r.date.Compare(other.Date()); c == 0 {
		c = r.time.Compare(other.Time())
	}
	return
}

/*
CmpCrossTimezone returns -1, 0 or 1 if the instant denoted by the
receiver instance is before, equal to or after the one denoted by other,
whatever the zone of either. A leap second compares as the first second
of the following minute, thus 23:59:60.5Z equals 00:00:00.5Z of the next
day.

No UTC value is materialized: the difference in epoch days is corrected
by the floored day count of the difference in seconds, offset delta
included. Since both offsets are strictly within one day, a single fold
suffices.
*/
func (r DateTime[Z]) CmpCrossTimezone(other Temporal) (c int) {
	o1, o2 := r.Offset(), other.Offset()
	od, ot := other.Date(), other.Time()

	days := r.date.EpochDays() - od.EpochDays()
	secs := r.time.TotalSeconds() - ot.TotalSeconds() +
		int64(o2.seconds) - int64(o1.seconds)

	extra, rem := divmod(secs, int64(secondsPerDay))
	days += extra

	switch {
	case days != 0:
		c = sign(days)
	case rem != 0:
		c = 1
	default:
		c = sign(r.time.subsec() - ot.subsec())
	}

	debugCompare(newLItem(c, "cmp"), r, other)
	return
}

/*
Compare returns -1, 0 or 1 if the receiver instance denotes an instant
before, equal to or after other.
*/
func (r DateTime[Z]) Compare(other DateTime[Z]) int { return r.CmpCrossTimezone(other) }

/*
Equal returns a Boolean value indicative of the receiver instance and
other denoting the same instant. Note that this differs from == whenever
the zone offset varies.
*/
func (r DateTime[Z]) Equal(other DateTime[Z]) bool { return r.Compare(other) == 0 }

/*
Before returns a Boolean value indicative of the receiver instance
denoting an earlier instant than other.
*/
func (r DateTime[Z]) Before(other DateTime[Z]) bool { return r.Compare(other) < 0 }

/*
After returns a Boolean value indicative of the receiver instance
denoting a later instant than other.
*/
func (r DateTime[Z]) After(other DateTime[Z]) bool { return r.Compare(other) > 0 }

/*
SameInstant returns a Boolean value indicative of the receiver instance
and other denoting the same instant, whatever the zone of either.

	dt := FromDateAndTime(d, t, MustUTCOffset(3, 0, 0)) // 2000-01-02T03:04:05+03:00
	u := FromDateAndTime(d, t2, UTC{})                  // 2000-01-02T00:04:05Z
	dt.SameInstant(u)                                   // true
*/
func (r DateTime[Z]) SameInstant(other Temporal) bool { return r.CmpCrossTimezone(other) == 0 }

/*
Add returns the receiver instance moved by the fixed duration d within
its local frame, carrying any overflow of the time into the date. The
zone is kept as is and its offset is not resolved again.
*/
func (r DateTime[Z]) Add(d time.Duration) DateTime[Z] {
	days, t := r.time.AddWithDuration(d)
	r.date, r.time = r.date.AddDays(days), t
	return r
}

/*
SubDuration returns the receiver instance moved back by the fixed
duration d. See [DateTime.Add].
*/
func (r DateTime[Z]) SubDuration(d time.Duration) DateTime[Z] {
	days, t := r.time.SubWithDuration(d)
	r.date, r.time = r.date.AddDays(days), t
	return r
}

/*
AddInterval returns the receiver instance moved by iv. The time
component of iv is applied first, then the month component (subject to
the month-end clamp of [Date.AddMonths]) and lastly the day component
plus any carry from the time. The zone is kept as is.

	dt, _ := NewDateTime(2024, January, 31, UTC{})
	dt.AddInterval(FromMonths(1)) // 2024-02-29T00:00:00Z
*/
func (r DateTime[Z]) AddInterval(iv Interval) DateTime[Z] {
	carry, t := r.time.addSeconds(iv.seconds, int64(iv.nanoseconds))
	r.date = r.date.AddMonths(iv.months).AddDays(iv.days + int(carry))
	r.time = t
	debugInterval(newLItem(iv, "add"), r)
	return r
}

/*
SubInterval returns the receiver instance moved back by iv: months and
days are negated and the direction of the time component is flipped.

Subtraction is not always the inverse of [DateTime.AddInterval]. When
the month component clamped the day of month, the clamped day is kept,
e.g.: 2023-01-31 plus one month is 2023-02-28, minus one month is
2023-01-28.
*/
func (r DateTime[Z]) SubInterval(iv Interval) DateTime[Z] {
	carry, t := r.time.addSeconds(-iv.seconds, -int64(iv.nanoseconds))
	r.date = r.date.AddMonths(-iv.months).AddDays(-iv.days + int(carry))
	r.time = t
	debugInterval(newLItem(iv, "sub"), r)
	return r
}

/*
Sub returns the calendar-aware difference between the receiver instance
and other as an [Interval]. It is equivalent to Between(other, r).
*/
func (r DateTime[Z]) Sub(other Temporal) Interval { return Between(other, r) }

/*
Timestamp returns the POSIX timestamp of the receiver instance in whole
seconds, floored.
*/
func (r DateTime[Z]) Timestamp() (secs int64) {
	iv := DaysBetween(UnixEpoch, r)
	if secs = iv.TotalSecondsFromDays(); iv.nanoseconds < 0 {
		secs--
	}
	return
}

/*
TimestampMillis returns the POSIX timestamp of the receiver instance in
milliseconds, floored.
*/
func (r DateTime[Z]) TimestampMillis() int64 {
	iv := DaysBetween(UnixEpoch, r)
	return iv.TotalSecondsFromDays()*1000 + floordiv(int64(iv.nanoseconds), nanosPerMilli)
}

/*
ToTimestamp returns the receiver instance as a [Timestamp].
*/
func (r DateTime[Z]) ToTimestamp() Timestamp {
	iv := DaysBetween(UnixEpoch, r)
	return NewTimestamp(iv.TotalSecondsFromDays(), int64(iv.nanoseconds))
}

/*
ToTime returns the instant denoted by the receiver instance as a
[time.Time] within [time.UTC], or within a fixed [time.Location] named
after the offset. A leap second is folded into the following second,
which [time.Time] is unable to represent.
*/
func (r DateTime[Z]) ToTime() time.Time {
	ts := r.ToTimestamp()
	loc := time.UTC
	if off := r.Offset(); !off.IsUTC() {
		loc = time.FixedZone(off.String(), off.TotalSeconds())
	}
	return time.Unix(ts.seconds, int64(ts.nanoseconds)).In(loc)
}

/*
String returns the ISO 8601 representation of the receiver instance,
e.g.: "2000-01-02T03:04:05+03:00". A receiver within [UTC] is suffixed
with "Z".
*/
func (r DateTime[Z]) String() string {
	b := newStrBuilder()
	r.write(&b)
	return b.String()
}

func (r DateTime[Z]) write(b *strings.Builder) {
	r.date.write(b)
	b.WriteByte('T')
	r.time.write(b)
	if _, utc := any(r.zone).(UTC); utc {
		b.WriteByte('Z')
	} else {
		b.WriteString(r.Offset().String())
	}
}
