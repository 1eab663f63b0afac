package eos

/*
timezone.go implements the TimeZone capability, its built-in fixed
implementations and the resolution contract for rule-based zones.
*/

import "time"

/*
TimeZone is qualified through any type which is able to supply a UTC
offset. It is consulted by [DateTime] whenever an offset-aware operation
is requested, and is otherwise inert data.

Offset is queried with a local (not yet adjusted) date and time, such
that implementations whose offset depends upon the local calendar, such
as daylight saving rules, may resolve it. OffsetFromUTC is queried with
a UTC date and time, and is used by [DatetimeAt] to convert an instant
into the local frame.

Fixed-offset implementations return the same value from both.
*/
type TimeZone interface {
	Offset(date Date, time Time) UTCOffset
	OffsetFromUTC(date Date, time Time) UTCOffset
}

/*
UTC implements the [TimeZone] whose offset is always zero.
*/
type UTC struct{}

/*
Offset returns the zero [UTCOffset], whatever the local date and time.
*/
func (UTC) Offset(Date, Time) UTCOffset { return UTCOffset{} }

/*
OffsetFromUTC returns the zero [UTCOffset], whatever the UTC date and
time.
*/
func (UTC) OffsetFromUTC(Date, Time) UTCOffset { return UTCOffset{} }

/*
String returns "UTC".
*/
func (UTC) String() string { return "UTC" }

/*
UTCOffset implements a fixed, signed offset from UTC with a granularity
of one second. The magnitude of an offset is always strictly less than
24 hours.

UTCOffset qualifies the [TimeZone] interface, returning itself for any
date and time. The zero value is an offset of zero.
*/
type UTCOffset struct {
	seconds int32
}

/*
NewUTCOffset returns an instance of [UTCOffset] alongside an error
following an attempt to construct an offset from the input components.
Components must share the same sign (zero is compatible with either),
e.g.: (-5, -30, 0) for "-05:30".
*/
func NewUTCOffset(hours, minutes, seconds int) (UTCOffset, error) {
	if hours < 0 && (minutes > 0 || seconds > 0) ||
		minutes < 0 && (hours > 0 || seconds > 0) ||
		seconds < 0 && (hours > 0 || minutes > 0) {
		return UTCOffset{}, errorMixedSigns
	}

	if abs(minutes) >= 60 {
		return UTCOffset{}, errorBadMinute
	} else if abs(seconds) >= 60 {
		return UTCOffset{}, errorBadSecond
	}

	return UTCOffsetFromSeconds(hours*secondsPerHour + minutes*secondsPerMinute + seconds)
}

/*
UTCOffsetFromSeconds returns an instance of [UTCOffset] alongside an
error following an attempt to construct an offset of the input number
of seconds, which must be strictly within ±86400.
*/
func UTCOffsetFromSeconds(seconds int) (UTCOffset, error) {
	if abs(seconds) >= secondsPerDay {
		return UTCOffset{}, errorBadOffset
	}
	return UTCOffset{int32(seconds)}, nil
}

/*
MustUTCOffset is the same as [NewUTCOffset], though it panics on error.
It is meant for package level variables and tests.
*/
func MustUTCOffset(hours, minutes, seconds int) UTCOffset {
	o, err := NewUTCOffset(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return o
}

/*
Offset returns the receiver instance, which is a [TimeZone] of its own
with a single fixed offset.
*/
func (r UTCOffset) Offset(Date, Time) UTCOffset { return r }

/*
OffsetFromUTC returns the receiver instance. See [UTCOffset.Offset].
*/
func (r UTCOffset) OffsetFromUTC(Date, Time) UTCOffset { return r }

/*
Hours returns the signed number of whole hours of the receiver instance.
*/
func (r UTCOffset) Hours() int { return int(r.seconds) / secondsPerHour }

/*
Minutes returns the signed minutes within the hour.
*/
func (r UTCOffset) Minutes() int { return int(r.seconds) % secondsPerHour / secondsPerMinute }

/*
Seconds returns the signed seconds within the minute.
*/
func (r UTCOffset) Seconds() int { return int(r.seconds) % secondsPerMinute }

/*
TotalSeconds returns the signed length of the offset in seconds.
*/
func (r UTCOffset) TotalSeconds() int { return int(r.seconds) }

/*
Duration returns the offset as a [time.Duration].
*/
func (r UTCOffset) Duration() time.Duration { return time.Duration(r.seconds) * time.Second }

/*
Neg returns the receiver instance with its sign flipped.
*/
func (r UTCOffset) Neg() UTCOffset { return UTCOffset{-r.seconds} }

/*
IsUTC returns a Boolean value indicative of the receiver instance being
an offset of zero.
*/
func (r UTCOffset) IsUTC() bool { return r.seconds == 0 }

/*
String returns the string representation of the receiver instance,
e.g.: "+03:00", "-05:30" or "+00:00:15".
*/
func (r UTCOffset) String() string {
	b := newStrBuilder()
	secs := int64(r.seconds)
	if secs < 0 {
		b.WriteByte('-')
		secs = -secs
	} else {
		b.WriteByte('+')
	}

	padInt(&b, secs/secondsPerHour, 2)
	b.WriteByte(':')
	padInt(&b, secs%secondsPerHour/secondsPerMinute, 2)
	if s := secs % secondsPerMinute; s != 0 {
		b.WriteByte(':')
		padInt(&b, s, 2)
	}

	return b.String()
}

/*
DatetimeAt returns the local representation of the UTC instant utc
within zone. The offset is taken from [TimeZone.OffsetFromUTC].

If zone is able to pin a resolved offset, that is if it bears the
"Pinned(UTCOffset) Z" method, the returned value carries the pinned zone
so that a local time which is ambiguous within zone keeps denoting the
instant from which it was derived.
*/
func DatetimeAt[Z TimeZone](zone Z, utc DateTime[UTC]) DateTime[Z] {
	off := zone.OffsetFromUTC(utc.date, utc.time)
	if p, ok := any(zone).(interface{ Pinned(UTCOffset) Z }); ok {
		zone = p.Pinned(off)
	}

	local := Shift(utc, off)
	debugZone(newLItem(off, "datetime at"), utc, local)

	return DateTime[Z]{date: local.date, time: local.time, zone: zone}
}

/*
ResolutionKind describes how many instants a local date and time
denote within a rule-based zone.
*/
type ResolutionKind uint8

const (
	Unambiguous ResolutionKind = iota // exactly one instant
	Ambiguous                         // two instants, e.g.: a fall-back transition
	Skipped                           // no instant, e.g.: a spring-forward transition
)

/*
String returns the string representation of the receiver instance.
*/
func (r ResolutionKind) String() (s string) {
	switch r {
	case Ambiguous:
		s = "ambiguous"
	case Skipped:
		s = "skipped"
	default:
		s = "unambiguous"
	}
	return
}

/*
Disambiguation is the policy applied when a local date and time is
[Ambiguous] or [Skipped].
*/
type Disambiguation uint8

const (
	Compatible Disambiguation = iota // Earlier when ambiguous, Later when skipped
	Earlier                          // the earlier of the candidate instants
	Later                            // the later of the candidate instants
	Reject                           // fail with ErrAmbiguousTime or ErrSkippedTime
)

/*
String returns the string representation of the receiver instance.
*/
func (r Disambiguation) String() (s string) {
	switch r {
	case Earlier:
		s = "earlier"
	case Later:
		s = "later"
	case Reject:
		s = "reject"
	default:
		s = "compatible"
	}
	return
}

/*
ParseDisambiguation returns the [Disambiguation] named by s alongside
an error. Case is not significant.
*/
func ParseDisambiguation(s string) (d Disambiguation, err error) {
	switch lc(s) {
	case "", "compatible":
		d = Compatible
	case "earlier":
		d = Earlier
	case "later":
		d = Later
	case "reject":
		d = Reject
	default:
		err = mkerrf("unknown disambiguation policy ", s)
	}
	return
}

/*
Resolution implements the outcome of resolving a local date and time
within a rule-based zone. It carries the offset of the earlier and of
the later candidate instant, which are the same when the outcome is
[Unambiguous].

Note that the earlier instant is always produced by the greater offset.
*/
type Resolution struct {
	kind    ResolutionKind
	earlier UTCOffset
	later   UTCOffset
}

/*
UnambiguousResolution returns an [Unambiguous] [Resolution] of off.
*/
func UnambiguousResolution(off UTCOffset) Resolution {
	return Resolution{kind: Unambiguous, earlier: off, later: off}
}

/*
NewResolution returns a [Resolution] of kind from two candidate offsets,
which may be supplied in any order.
*/
func NewResolution(kind ResolutionKind, a, b UTCOffset) Resolution {
	if a.seconds < b.seconds {
		a, b = b, a
	}
	if kind == Unambiguous {
		b = a
	}
	return Resolution{kind: kind, earlier: a, later: b}
}

/*
Kind returns the [ResolutionKind] of the receiver instance.
*/
func (r Resolution) Kind() ResolutionKind { return r.kind }

/*
Candidates returns the offsets of the earlier and later candidate
instants.
*/
func (r Resolution) Candidates() (earlier, later UTCOffset) { return r.earlier, r.later }

/*
Offset returns the single offset selected by policy alongside an error.
[ErrAmbiguousTime] or [ErrSkippedTime] is returned only under [Reject].
*/
func (r Resolution) Offset(policy Disambiguation) (off UTCOffset, err error) {
	switch {
	case r.kind == Unambiguous:
		off = r.earlier
	case policy == Earlier:
		off = r.earlier
	case policy == Later:
		off = r.later
	case policy == Reject && r.kind == Ambiguous:
		err = ErrAmbiguousTime
	case policy == Reject:
		err = ErrSkippedTime
	case r.kind == Ambiguous:
		off = r.earlier
	default:
		off = r.later
	}
	return
}

/*
Resolver is qualified through any [TimeZone] which is able to report the
ambiguity of a local date and time. External rule-based zones, such as
those of the IANA database, are expected to implement it.
*/
type Resolver interface {
	TimeZone
	Resolve(date Date, time Time) Resolution
}

/*
Resolve returns the [DateTime] denoted by the local date and time within
zone alongside an error, applying policy when the local time is
ambiguous or was skipped. A skipped local time resolves to an instant
whose local representation differs from the input, e.g.: 02:30 resolves
to 03:30 under [Compatible] across a one hour spring-forward transition.
*/
func Resolve[Z Resolver](date Date, t Time, zone Z, policy Disambiguation) (dt DateTime[Z], err error) {
	exit := debugPath(date, t, zone, policy)
	defer func() { exit(dt, err) }()

	res := zone.Resolve(date, t)
	var off UTCOffset
	if off, err = res.Offset(policy); err == nil {
		local := DateTime[UTC]{date: date, time: t}
		dt = DatetimeAt(zone, Shift(local, off.Neg()))
		debugZone(newLItem(res.kind, "resolve"), policy, dt)
	}
	return
}
