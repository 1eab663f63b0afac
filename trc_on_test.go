//go:build eos_debug

package eos

import (
	"errors"
	"strings"
	"testing"
)

func TestLoglevels_codecov(t *testing.T) {
	var bits loglevels
	bits.Shift(-1)
	bits.Unshift(-1)
	bits.Unshift(40000000000)
	if bits.Positive(-1) || bits.Positive(EventAll) {
		t.Errorf("%s failed: bogus value set where none should be", t.Name())
	}

	bits = newLoglevels()
	bits.SetNamesMap(map[int]string{int(EventZone): "zone", int(EventDate): "date"})
	bits.Shift("ZONE", EventDate)
	if !bits.Positive(EventZone) || !bits.Positive("date") {
		t.Fatalf("%s failed: named levels were not enabled", t.Name())
	}
	if got := join(bits.enabled(), ","); got != "date,zone" {
		t.Fatalf("%s failed: want %q, got %q", t.Name(), "date,zone", got)
	}
	bits.Unshift("zone")
	if bits.Positive(EventZone) {
		t.Fatalf("%s failed: zone level still enabled", t.Name())
	}
	bits.Shift(int(EventAll))
	if got := bits.enabled(); len(got) != 1 || got[0] != "all" {
		t.Fatalf("%s failed: want [all], got %v", t.Name(), got)
	}
}

// recordTracer admits every event, lacking an Enabled method.
type recordTracer struct{ recs []TraceRecord }

func (r *recordTracer) Trace(rec TraceRecord) { r.recs = append(r.recs, rec) }

func TestDefaultTracer(t *testing.T) {
	var bld strings.Builder
	dt := NewDefaultTracer(&bld)
	for _, ev := range []EventType{EventEnter, EventExit, EventPerf, EventZone, EventIO} {
		dt.EnableLevel(ev)
	}

	EnableDebug(dt)
	defer DisableDebug()

	plus3 := MustUTCOffset(3, 0, 0)
	a := FromDateAndTime(mustDate(t, 2022, March, 1), mustTime(t, 1, 0, 0), plus3)
	b := FromDateAndTime(mustDate(t, 2022, March, 31), mustTime(t, 1, 0, 0), plus3)
	_ = Between(a, b)
	_ = InTimezone(a, UTC{})
	_ = UTCNowFrom(FixedClock(NewTimestamp(0, 0)))

	out := bld.String()
	for _, want := range []string{
		" > Between(2022-03-01T01:00:00+03:00, 2022-03-31T01:00:00+03:00)\n",
		"   perf Between: elapsed:",
		" < Between: P30D\n",
		" > InTimezone(2022-03-01T01:00:00+03:00, UTC)\n",
		"   zone DatetimeAt: datetime at:+00:00",
		" < InTimezone: 2022-02-28T22:00:00Z\n",
		" io UTCNowFrom: clock:0\n",
	} {
		if !cntns(out, want) {
			t.Errorf("%s failed: %q not traced within:\n%s", t.Name(), want, out)
		}
	}

	// without exit events, entries are not indented
	bld.Reset()
	dt.DisableLevel(EventExit)
	_ = InTimezone(a, UTC{})
	if out = bld.String(); !cntns(out, " zone DatetimeAt:") || cntns(out, "   zone") {
		t.Errorf("%s failed: unexpected indentation within:\n%s", t.Name(), out)
	}

	bld.Reset()
	dt.DisableLevel(EventEnter)
	dt.DisableLevel(EventPerf)
	_ = Between(a, b)
	if out = bld.String(); out != "" {
		t.Errorf("%s failed: want no output, got %q", t.Name(), out)
	}
}

func TestTracer_unfiltered(t *testing.T) {
	rec := new(recordTracer)
	EnableDebug(rec)
	defer DisableDebug()

	// 01:30 occurs twice within ruleZone on that date
	_, err := Resolve(mustDate(t, 2021, November, 7), mustTime(t, 1, 30, 0), ruleZone{}, Reject)
	if !errors.Is(err, ErrAmbiguousTime) {
		t.Fatalf("%s failed: want ambiguity, got %v", t.Name(), err)
	}

	var enter, exit *TraceRecord
	for i := range rec.recs {
		switch r := &rec.recs[i]; r.Type {
		case EventEnter:
			enter = r
		case EventExit:
			exit = r
		}
	}
	if enter == nil || enter.Func != "Resolve" || len(enter.Args) != 4 {
		t.Fatalf("%s failed: bad entry record %+v", t.Name(), enter)
	}
	if exit == nil || exit.Func != "Resolve" || len(exit.Args) != 2 || exit.Args[1] != err {
		t.Fatalf("%s failed: bad exit record %+v", t.Name(), exit)
	}
	if got := fmtArg(exit.Args[1]); got != "error: "+err.Error() {
		t.Fatalf("%s failed: got %q", t.Name(), got)
	}
}

func TestFmtArg(t *testing.T) {
	for idx, tst := range []struct {
		val  any
		want string
	}{
		{"x", "x"},
		{1, "1"},
		{int64(-2), "-2"},
		{true, "true"},
		{nil, "<nil>"},
		{mkerr("boom"), "error: boom"},
		{newLItem(nil), "?:<nil>"},
		{newLItem(UnixEpochDate, "epoch", January), "epoch January:1970-01-01"},
		{struct{}{}, "struct {}"},
		{Midnight, "00:00:00"},
		{Interval{}, "PT0S"},
	} {
		if got := fmtArg(tst.val); got != tst.want {
			t.Errorf("%s[%d] failed: want %q, got %q", t.Name(), idx, tst.want, got)
		}
	}

	var disc discardTracer
	disc.Trace(TraceRecord{})
	if disc.Enabled(EventAll) {
		t.Errorf("%s failed: discard tracer admits events", t.Name())
	}
}
