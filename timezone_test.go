package eos

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleUTCOffset_String() {
	for _, o := range []UTCOffset{
		MustUTCOffset(3, 0, 0),
		MustUTCOffset(-5, -30, 0),
		MustUTCOffset(0, 0, 15),
		{},
	} {
		fmt.Println(o)
	}
	// Output:
	// +03:00
	// -05:30
	// +00:00:15
	// +00:00
}

func TestNewUTCOffset(t *testing.T) {
	for idx, tst := range []struct {
		h, m, s int
		secs    int
		err     error
	}{
		{3, 0, 0, 10800, nil},
		{-5, -30, 0, -19800, nil},
		{0, -30, 0, -1800, nil},
		{23, 59, 59, 86399, nil},
		{-23, -59, -59, -86399, nil},
		{24, 0, 0, 0, errorBadOffset},
		{-5, 30, 0, 0, errorMixedSigns},
		{5, -30, 0, 0, errorMixedSigns},
		{0, 5, -1, 0, errorMixedSigns},
		{0, 60, 0, 0, errorBadMinute},
		{0, 0, -60, 0, errorBadSecond},
	} {
		o, err := NewUTCOffset(tst.h, tst.m, tst.s)
		if err != tst.err {
			t.Errorf("%s[%d] failed: want error %v, got %v", t.Name(), idx, tst.err, err)
		} else if err == nil && o.TotalSeconds() != tst.secs {
			t.Errorf("%s[%d] failed: want %d seconds, got %d", t.Name(), idx, tst.secs, o.TotalSeconds())
		} else if err != nil && !errors.Is(err, ErrTimeOutOfRange) {
			t.Errorf("%s[%d] failed: unexpected error kind for %v", t.Name(), idx, err)
		}
	}

	if _, err := UTCOffsetFromSeconds(-86400); err == nil {
		t.Errorf("%s failed: expected error for -86400 seconds", t.Name())
	}

	o := MustUTCOffset(-5, -30, -15)
	if o.Hours() != -5 || o.Minutes() != -30 || o.Seconds() != -15 {
		t.Errorf("%s failed: bad components of %s", t.Name(), o)
	}
	if o.Neg().String() != "+05:30:15" || o.IsUTC() || !(UTCOffset{}).IsUTC() {
		t.Errorf("%s failed: bad Neg/IsUTC", t.Name())
	}
	if o.Duration().Seconds() != -19815 {
		t.Errorf("%s failed: bad duration %s", t.Name(), o.Duration())
	}
}

func TestResolution_Offset(t *testing.T) {
	std := MustUTCOffset(-5, 0, 0)
	dst := MustUTCOffset(-4, 0, 0)

	amb := NewResolution(Ambiguous, std, dst)
	skip := NewResolution(Skipped, std, dst)
	one := UnambiguousResolution(std)

	for idx, tst := range []struct {
		res    Resolution
		policy Disambiguation
		want   UTCOffset
		err    error
	}{
		{one, Compatible, std, nil},
		{one, Reject, std, nil},
		{amb, Compatible, dst, nil},
		{amb, Earlier, dst, nil},
		{amb, Later, std, nil},
		{amb, Reject, UTCOffset{}, ErrAmbiguousTime},
		{skip, Compatible, std, nil},
		{skip, Earlier, dst, nil},
		{skip, Later, std, nil},
		{skip, Reject, UTCOffset{}, ErrSkippedTime},
	} {
		got, err := tst.res.Offset(tst.policy)
		if !errors.Is(err, tst.err) || (tst.err == nil && err != nil) {
			t.Errorf("%s[%d] failed [%s/%s]: want error %v, got %v",
				t.Name(), idx, tst.res.Kind(), tst.policy, tst.err, err)
		} else if got != tst.want {
			t.Errorf("%s[%d] failed [%s/%s]: want %s, got %s",
				t.Name(), idx, tst.res.Kind(), tst.policy, tst.want, got)
		}
	}

	if errors.Is(ErrAmbiguousTime, ErrSkippedTime) {
		t.Errorf("%s failed: resolution errors of distinct kinds must not match", t.Name())
	}
	if KindOf(ErrSkippedTime) != KindSkippedTime {
		t.Errorf("%s failed: bad kind %s", t.Name(), KindOf(ErrSkippedTime))
	}
}

func TestParseDisambiguation(t *testing.T) {
	for _, d := range []Disambiguation{Compatible, Earlier, Later, Reject} {
		if got, err := ParseDisambiguation(d.String()); err != nil || got != d {
			t.Errorf("%s failed [%s]: got %s (%v)", t.Name(), d, got, err)
		}
	}
	if _, err := ParseDisambiguation("sooner"); err == nil {
		t.Errorf("%s failed: expected error", t.Name())
	}
}

// ruleZone is a two-rule zone whose offset moves from -05:00 to -04:00 at
// 2021-03-14T07:00:00Z and back at 2021-11-07T06:00:00Z.
type ruleZone struct {
	pin    UTCOffset
	pinned bool
}

var (
	ruleStd      = MustUTCOffset(-5, 0, 0)
	ruleDst      = MustUTCOffset(-4, 0, 0)
	ruleSpring   = int64(18700*86400 + 7*3600) // 2021-03-14T07:00:00Z
	ruleFallBack = int64(18938*86400 + 6*3600) // 2021-11-07T06:00:00Z
)

func (r ruleZone) offsetAt(unix int64) UTCOffset {
	if unix >= ruleSpring && unix < ruleFallBack {
		return ruleDst
	}
	return ruleStd
}

func (r ruleZone) Resolve(date Date, t Time) Resolution {
	local := date.EpochDays()*86400 + t.TotalSeconds()
	validStd := r.offsetAt(local-int64(ruleStd.TotalSeconds())) == ruleStd
	validDst := r.offsetAt(local-int64(ruleDst.TotalSeconds())) == ruleDst
	switch {
	case validStd && validDst:
		return NewResolution(Ambiguous, ruleStd, ruleDst)
	case validStd:
		return UnambiguousResolution(ruleStd)
	case validDst:
		return UnambiguousResolution(ruleDst)
	}
	return NewResolution(Skipped, ruleStd, ruleDst)
}

func (r ruleZone) Offset(date Date, t Time) UTCOffset {
	res := r.Resolve(date, t)
	if earlier, later := res.Candidates(); r.pinned && (r.pin == earlier || r.pin == later) {
		return r.pin
	}
	off, _ := res.Offset(Compatible)
	return off
}

func (r ruleZone) OffsetFromUTC(date Date, t Time) UTCOffset {
	return r.offsetAt(date.EpochDays()*86400 + t.TotalSeconds())
}

func (r ruleZone) Pinned(off UTCOffset) ruleZone { return ruleZone{pin: off, pinned: true} }

func TestDatetimeAt_pinning(t *testing.T) {
	// 05:30Z and 06:30Z both read 01:30 within ruleZone
	first := mustDateTime(t, 2021, November, 7, 5, 30, 0, UTC{})
	second := mustDateTime(t, 2021, November, 7, 6, 30, 0, UTC{})

	a := DatetimeAt(ruleZone{}, first)
	b := DatetimeAt(ruleZone{}, second)
	if a.CmpWithoutTz(b) != 0 {
		t.Fatalf("%s failed: want equal wall clocks, got %s and %s", t.Name(), a, b)
	}
	if !a.SameInstant(first) || !b.SameInstant(second) {
		t.Fatalf("%s failed: pinned zones lost their instant: %s, %s", t.Name(), a, b)
	}
	if a.String() != "2021-11-07T01:30:00-04:00" || b.String() != "2021-11-07T01:30:00-05:00" {
		t.Fatalf("%s failed: got %s and %s", t.Name(), a, b)
	}
}

func TestResolve(t *testing.T) {
	skipped := mustDate(t, 2021, March, 14)
	ambiguous := mustDate(t, 2021, November, 7)
	half := mustTime(t, 2, 30, 0)
	early := mustTime(t, 1, 30, 0)

	for idx, tst := range []struct {
		date   Date
		time   Time
		policy Disambiguation
		want   string
		err    error
	}{
		{skipped, half, Compatible, "2021-03-14T03:30:00-04:00", nil},
		{skipped, half, Later, "2021-03-14T03:30:00-04:00", nil},
		{skipped, half, Earlier, "2021-03-14T01:30:00-05:00", nil},
		{skipped, half, Reject, "", ErrSkippedTime},
		{ambiguous, early, Compatible, "2021-11-07T01:30:00-04:00", nil},
		{ambiguous, early, Later, "2021-11-07T01:30:00-05:00", nil},
		{ambiguous, early, Reject, "", ErrAmbiguousTime},
		{ambiguous, half, Reject, "2021-11-07T02:30:00-05:00", nil},
	} {
		dt, err := Resolve(tst.date, tst.time, ruleZone{}, tst.policy)
		if !errors.Is(err, tst.err) || (tst.err == nil && err != nil) {
			t.Errorf("%s[%d] failed: want error %v, got %v", t.Name(), idx, tst.err, err)
		} else if err == nil && dt.String() != tst.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tst.want, dt)
		}
	}
}

func TestLocal(t *testing.T) {
	t.Setenv(EnvZoneVar, "UTC")
	loc, err := NewLocal()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !loc.Offset(UnixEpochDate, Midnight).IsUTC() || loc.Name() != "UTC" {
		t.Fatalf("%s failed: want UTC, got %s", t.Name(), loc)
	}

	t.Setenv(EnvZoneVar, "Not/A_Zone")
	if _, err = NewLocal(); !errors.Is(err, ErrEnvironment) {
		t.Fatalf("%s failed: want environment error, got %v", t.Name(), err)
	} else if errors.Unwrap(err) == nil {
		t.Fatalf("%s failed: cause was not retained", t.Name())
	}
	if _, err = Now(); KindOf(err) != KindEnvironment {
		t.Fatalf("%s failed: want %s, got %s", t.Name(), KindEnvironment, KindOf(err))
	}
}

func TestSystem(t *testing.T) {
	var sys System
	d := mustDate(t, 2021, June, 1)
	off := sys.OffsetFromUTC(d, Midnight)
	local := DatetimeAt(sys, FromDateAndTime(d, Midnight, UTC{}))
	if local.Offset() != off {
		t.Fatalf("%s failed: want %s, got %s", t.Name(), off, local.Offset())
	}
	if !local.SameInstant(FromDateAndTime(d, Midnight, UTC{})) {
		t.Fatalf("%s failed: %s is not midnight UTC", t.Name(), local)
	}
}

func TestSystem_clampedOffset(t *testing.T) {
	for idx, tst := range []struct {
		secs int
		want string
	}{
		{32400, "+09:00"},
		{-86400, "-23:59:59"},
		{90000, "+23:59:59"},
		{-100000, "-23:59:59"},
	} {
		if got := systemOffset(tst.secs); got.String() != tst.want || got.IsUTC() {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, tst.want, got)
		}
	}
}

func TestFixedZones(t *testing.T) {
	d := mustDate(t, 2021, March, 14)
	tm := mustTime(t, 2, 30, 0)
	plus545 := MustUTCOffset(5, 45, 0)
	for idx, tst := range []struct {
		zone TimeZone
		want UTCOffset
	}{
		{UTC{}, UTCOffset{}},
		{plus545, plus545},
		{Local{offset: plus545, name: "NPT"}, plus545},
	} {
		if got := tst.zone.Offset(d, tm); got != tst.want {
			t.Errorf("%s[%d] failed: local offset want %s, got %s", t.Name(), idx, tst.want, got)
		}
		if got := tst.zone.OffsetFromUTC(d, tm); got != tst.want {
			t.Errorf("%s[%d] failed: UTC offset want %s, got %s", t.Name(), idx, tst.want, got)
		}
	}
}
