package eos

/*
timestamp.go contains the POSIX Timestamp type and the Clock through
which the current instant is read.
*/

import "time"

/*
Timestamp implements a POSIX instant: the number of seconds elapsed
since 1970-01-01T00:00:00Z, excluding leap seconds, alongside a
nanosecond component within 0..1_000_000_000.

Instants preceding the epoch carry negative seconds and a positive
nanosecond component, e.g.: -0.5s is (-1, 500_000_000).
*/
type Timestamp struct {
	seconds     int64
	nanoseconds uint32
}

/*
NewTimestamp returns a normalized [Timestamp] of secs seconds plus nanos
nanoseconds. Either component may be negative.
*/
func NewTimestamp(secs, nanos int64) Timestamp {
	carry, ns := divmod(nanos, nanosPerSecond)
	return Timestamp{seconds: secs + carry, nanoseconds: uint32(ns)}
}

/*
TimestampFromMillis returns a [Timestamp] of millis milliseconds.
*/
func TimestampFromMillis(millis int64) Timestamp {
	secs, ms := divmod(millis, 1000)
	return Timestamp{seconds: secs, nanoseconds: uint32(ms * nanosPerMilli)}
}

/*
Seconds returns the whole seconds of the receiver instance, floored.
*/
func (r Timestamp) Seconds() int64 { return r.seconds }

/*
Nanoseconds returns the nanoseconds within the second.
*/
func (r Timestamp) Nanoseconds() int { return int(r.nanoseconds) }

/*
Millis returns the receiver instance in milliseconds, floored.
*/
func (r Timestamp) Millis() int64 {
	return r.seconds*1000 + int64(r.nanoseconds/nanosPerMilli)
}

/*
Compare returns -1, 0 or 1 if the receiver instance is before, equal to
or after other respectively.
*/
func (r Timestamp) Compare(other Timestamp) (c int) {
	if c = sign(r.seconds - other.seconds); c == 0 {
		c = sign(int64(r.nanoseconds) - int64(other.nanoseconds))
	}
	return
}

/*
ToUTC returns the receiver instance as a [DateTime] within [UTC].
*/
func (r Timestamp) ToUTC() DateTime[UTC] {
	return FromTimestamp(r.seconds, int64(r.nanoseconds), UTC{})
}

/*
String returns the decimal representation of the receiver instance,
e.g.: "1641155925" or "-0.5".
*/
func (r Timestamp) String() string {
	b := newStrBuilder()
	secs, ns := r.seconds, r.nanoseconds
	if secs < 0 && ns > 0 {
		secs++
		ns = nanosPerSecond - ns
		if secs == 0 {
			b.WriteByte('-')
		}
	}
	b.WriteString(fmtInt(secs, 10))
	fracNanos(&b, ns)
	return b.String()
}

/*
Clock is qualified through any type which is able to report the current
instant. Constructors reading the current instant accept a Clock where
determinism is desirable, such as within tests.
*/
type Clock interface {
	Now() Timestamp
}

/*
ClockFunc adapts an ordinary function to the [Clock] interface.
*/
type ClockFunc func() Timestamp

/*
Now returns the result of calling the receiver instance.
*/
func (r ClockFunc) Now() Timestamp { return r() }

/*
FixedClock returns a [Clock] which always reports ts.
*/
func FixedClock(ts Timestamp) Clock {
	return ClockFunc(func() Timestamp { return ts })
}

/*
SystemClock implements the [Clock] of the operating system.
*/
type SystemClock struct{}

/*
Now returns the current [Timestamp] as reported by [time.Now].
*/
func (SystemClock) Now() Timestamp { return timestampOf(time.Now()) }

func timestampOf(t time.Time) Timestamp {
	return Timestamp{seconds: t.Unix(), nanoseconds: uint32(t.Nanosecond())}
}
