package eos

/*
sys.go contains the zones backed by the operating environment: Local,
whose offset is resolved once, and System, whose offset is resolved on
every query.
*/

import (
	"os"
	"strings"
	"time"
)

/*
EnvZoneVar is the environment variable consulted for the local zone.
When set and non-empty, its value names an IANA location (an optional
leading colon is ignored). Otherwise the runtime's local zone is used.
*/
const EnvZoneVar = "TZ"

/*
Local implements a [TimeZone] whose offset was read from the operating
environment when the instance was created. The offset does not follow
later changes to the environment nor daylight saving transitions; see
[System] for that.
*/
type Local struct {
	offset UTCOffset
	name   string
}

/*
NewLocal returns an instance of [Local] alongside an error following an
attempt to read the current local offset. Failures are reported as
[ErrEnvironment] and are never defaulted to UTC.
*/
func NewLocal() (Local, error) {
	return localAt(SystemClock{})
}

func localAt(clock Clock) (l Local, err error) {
	var loc *time.Location
	if loc, err = localLocation(); err == nil {
		ts := clock.Now()
		name, secs := time.Unix(ts.Seconds(), int64(ts.Nanoseconds())).In(loc).Zone()
		if l.offset, err = UTCOffsetFromSeconds(secs); err != nil {
			err = envErrorf(err, "offset of ", name, " is out of range")
		} else {
			l.name = name
		}
	}

	debugZone(newLItem(l.offset, "local"), l.name, err)
	return
}

/*
localLocation returns the location named by [EnvZoneVar], or the
runtime's local location when unset.
*/
func localLocation() (loc *time.Location, err error) {
	loc = time.Local
	name, set := os.LookupEnv(EnvZoneVar)
	debugIO(newLItem(name, EnvZoneVar), set)
	if set && name != "" {
		name = strings.TrimPrefix(name, ":")
		if loc, err = time.LoadLocation(name); err != nil {
			err = envErrorf(err, "unable to load location ", name)
		}
	}
	return
}

/*
Offset returns the offset read upon creation of the receiver instance,
whatever the local date and time.
*/
func (r Local) Offset(Date, Time) UTCOffset { return r.offset }

/*
OffsetFromUTC returns the offset read upon creation of the receiver
instance, whatever the UTC date and time.
*/
func (r Local) OffsetFromUTC(Date, Time) UTCOffset { return r.offset }

/*
Name returns the abbreviated zone name reported by the environment,
e.g.: "JST".
*/
func (r Local) Name() string { return r.name }

/*
String returns the name and offset of the receiver instance.
*/
func (r Local) String() string { return r.name + " (" + r.offset.String() + ")" }

/*
System implements a [TimeZone] whose offset is looked up within the
runtime's view of the operating system zone every time it is queried.
As such, it follows daylight saving transitions. Since its methods
cannot fail, an offset of a whole day or more is clamped to ±23:59:59.
*/
type System struct{}

/*
Offset returns the offset in effect at the local date and time. When the
local time is ambiguous or was skipped, the runtime's choice applies.
*/
func (System) Offset(date Date, t Time) UTCOffset {
	_, secs := time.Date(date.year, time.Month(date.month), int(date.day),
		int(t.hour), int(t.minute), int(t.second), int(t.subsec()), time.Local).Zone()
	return systemOffset(secs)
}

/*
OffsetFromUTC returns the offset in effect at the UTC date and time.
*/
func (System) OffsetFromUTC(date Date, t Time) UTCOffset {
	_, secs := time.Date(date.year, time.Month(date.month), int(date.day),
		int(t.hour), int(t.minute), int(t.second), int(t.subsec()), time.UTC).In(time.Local).Zone()
	return systemOffset(secs)
}

/*
String returns "System".
*/
func (System) String() string { return "System" }

/*
systemOffset converts an offset reported by the runtime. An offset of a
whole day or more cannot be held by [UTCOffset]: it is clamped to the
nearest valid offset, i.e.: ±23:59:59, and never defaulted to UTC.
*/
func systemOffset(secs int) UTCOffset {
	off, err := UTCOffsetFromSeconds(secs)
	if err != nil {
		off = UTCOffset{seconds: int32(sign(secs) * (secondsPerDay - 1))}
		debugZone(newLItem(off, "system offset clamped"), secs, err)
	}
	return off
}
