/*
Package zoneinfo implements an [eos.Resolver] over the IANA time zone
database, as made available by the Go runtime.

Local times which are ambiguous (a fall-back transition) or which were
skipped (a spring-forward transition) are reported through
[eos.Resolution], and resolved to a single offset as per the
[eos.Disambiguation] policy of the [Zone].
*/
package zoneinfo

import (
	"os"
	"time"

	"github.com/BeatButton/eos"
	"golang.org/x/xerrors"
)

var errNoEnvSet = xerrors.New("no env set")

/*
Zone implements a rule-based [eos.TimeZone] backed by a *[time.Location].

A Zone may carry a pinned offset, which takes precedence over its policy
whenever the pinned offset is one of the valid candidates of the local
time being queried. Pinning is performed by [eos.DatetimeAt], such that
a [eos.DateTime] converted into a Zone keeps denoting the same instant
even when its local time is ambiguous.

The zero value is not usable; see [Load], [LoadFromEnv] and
[FromLocation].
*/
type Zone struct {
	loc    *time.Location
	policy eos.Disambiguation
	pin    eos.UTCOffset
	pinned bool
}

/*
Load returns an instance of [Zone] alongside an error following an
attempt to load the named IANA location, e.g.: "America/New_York".
Failures satisfy [errors.Is] against [eos.ErrEnvironment].
*/
func Load(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, xerrors.Errorf("load location %q (%v): %w", name, err, eos.ErrEnvironment)
	}

	return FromLocation(loc), nil
}

/*
LoadFromEnv returns the [Zone] named by the TZ environment variable. A
TZ variable which is set but empty denotes UTC.
*/
func LoadFromEnv() (Zone, error) {
	name, found := os.LookupEnv(eos.EnvZoneVar)
	if !found {
		return Zone{}, xerrors.Errorf("load location from TZ env (%v): %w", errNoEnvSet, eos.ErrEnvironment)
	}

	// TZ set but empty means UTC.
	if name == "" {
		return FromLocation(time.UTC), nil
	}

	return Load(name)
}

/*
FromLocation returns a [Zone] wrapping loc, with the [eos.Compatible]
policy. A nil loc denotes UTC.
*/
func FromLocation(loc *time.Location) Zone {
	if loc == nil {
		loc = time.UTC
	}
	return Zone{loc: loc}
}

/*
WithPolicy returns the receiver instance bearing policy.
*/
func (r Zone) WithPolicy(policy eos.Disambiguation) Zone {
	r.policy = policy
	return r
}

/*
Policy returns the [eos.Disambiguation] policy of the receiver instance.
*/
func (r Zone) Policy() eos.Disambiguation { return r.policy }

/*
Location returns the *[time.Location] of the receiver instance.
*/
func (r Zone) Location() *time.Location { return r.location() }

/*
Name returns the IANA name of the receiver instance.
*/
func (r Zone) Name() string { return r.location().String() }

/*
String returns the IANA name of the receiver instance. See [Zone.Name].
*/
func (r Zone) String() string { return r.Name() }

func (r Zone) location() *time.Location {
	if r.loc == nil {
		return time.UTC
	}
	return r.loc
}

/*
Pinned returns the receiver instance with off pinned. See [Zone].
*/
func (r Zone) Pinned(off eos.UTCOffset) Zone {
	r.pin, r.pinned = off, true
	return r
}

/*
Offset returns the offset in effect at the local date and time. Ambiguous
and skipped local times are resolved through the pinned offset when
valid, else through the policy of the receiver. Since Offset cannot fail,
the [eos.Reject] policy falls back to [eos.Compatible].
*/
func (r Zone) Offset(date eos.Date, t eos.Time) eos.UTCOffset {
	res := r.Resolve(date, t)
	if r.pinned && res.Kind() == eos.Ambiguous {
		if earlier, later := res.Candidates(); r.pin == earlier || r.pin == later {
			return r.pin
		}
	}

	off, err := res.Offset(r.policy)
	if err != nil {
		off, _ = res.Offset(eos.Compatible)
	}
	return off
}

/*
OffsetFromUTC returns the offset in effect at the UTC date and time.
*/
func (r Zone) OffsetFromUTC(date eos.Date, t eos.Time) eos.UTCOffset {
	return r.offsetAt(epochSeconds(date, t))
}

/*
Resolve returns the [eos.Resolution] of the local date and time.

The candidate offsets are those in effect one day before and one day
after the local time read as if it were UTC. A candidate o is valid
when the offset in effect at the instant (local - o) is o itself.
*/
func (r Zone) Resolve(date eos.Date, t eos.Time) eos.Resolution {
	local := epochSeconds(date, t)
	before := r.offsetAt(local - 86400)
	after := r.offsetAt(local + 86400)

	if before == after {
		return eos.UnambiguousResolution(before)
	}

	validBefore := r.offsetAt(local-int64(before.TotalSeconds())) == before
	validAfter := r.offsetAt(local-int64(after.TotalSeconds())) == after

	switch {
	case validBefore && validAfter:
		return eos.NewResolution(eos.Ambiguous, before, after)
	case validBefore:
		return eos.UnambiguousResolution(before)
	case validAfter:
		return eos.UnambiguousResolution(after)
	}

	return eos.NewResolution(eos.Skipped, before, after)
}

func (r Zone) offsetAt(unix int64) eos.UTCOffset {
	_, secs := time.Unix(unix, 0).In(r.location()).Zone()
	off, _ := eos.UTCOffsetFromSeconds(secs)
	return off
}

// epochSeconds reads date and t as a UTC instant, ignoring sub-seconds.
func epochSeconds(date eos.Date, t eos.Time) int64 {
	return date.EpochDays()*86400 + t.TotalSeconds()
}
