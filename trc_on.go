//go:build eos_debug

package eos

/*
trc_on.go implements the event tracer compiled in through the eos_debug
build tag. Events are admitted per [EventType] and written one per line
to the writer of a [DefaultTracer].
*/

import (
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar is the environment variable read at startup to enable the
[DefaultTracer] on [os.Stderr]. Its value is a comma-separated list of
level names (e.g.: "zone,interval") or integer masks, where any negative
integer enables every level.
*/
const EnvDebugVar = "EOS_DEBUG"

var eventNames = map[int]string{
	int(EventAll):        "all",
	int(EventNone):       "none",
	int(EventEnter):      "enter",
	int(EventInfo):       "info",
	int(EventExit):       "exit",
	int(EventIO):         "io",
	int(EventDate):       "date",
	int(EventTime):       "time",
	int(EventInterval):   "interval",
	int(EventZone):       "zone",
	int(EventCompare):    "compare",
	int(EventConstraint): "constraint",
	int(EventPerf):       "perf",
}

/*
DefaultTracer writes every admitted [TraceRecord] as a line of text.
When both [EventEnter] and [EventExit] are enabled, the lines written
between a call's entry and exit are indented by the nesting depth, e.g.:

	09:30:00.000001 > Between(2022-03-01T01:00:00+03:00, 2022-03-31T01:00:00+03:00)
	09:30:00.000004   perf Between: elapsed:3µs
	09:30:00.000005 < Between: P30D
*/
type DefaultTracer struct {
	mu    sync.Mutex
	w     io.Writer
	ll    loglevels
	depth int
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer] writing to w
with no level enabled.
*/
func NewDefaultTracer(w io.Writer) *DefaultTracer {
	return &DefaultTracer{w: w, ll: newLoglevels()}
}

/*
EnableLevel enables ev within the receiver instance, overriding what
was read from [EnvDebugVar].
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel disables ev within the receiver instance.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Enabled returns a Boolean value indicative of ev being enabled within
the receiver instance.
*/
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.ll.Positive(int(ev)) }

/*
Trace writes rec to the writer of the receiver instance.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	nested := r.Enabled(EventEnter) && r.Enabled(EventExit)
	if rec.Type == EventExit && nested && r.depth > 0 {
		r.depth--
	}

	b := newStrBuilder()
	b.WriteString(rec.Time.Format("15:04:05.000000"))
	b.WriteByte(' ')
	if nested {
		b.WriteString(strings.Repeat("  ", r.depth))
	}

	switch rec.Type {
	case EventEnter:
		b.WriteString("> " + rec.Func + "(")
		writeArgs(&b, rec.Args)
		b.WriteByte(')')
		if nested {
			r.depth++
		}
	case EventExit:
		b.WriteString("< " + rec.Func + ": ")
		writeArgs(&b, rec.Args)
	default:
		b.WriteString(eventNames[int(rec.Type)] + " " + rec.Func + ": ")
		writeArgs(&b, rec.Args)
	}

	b.WriteByte('\n')
	io.WriteString(r.w, b.String())
}

func writeArgs(b *strings.Builder, args []any) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
}

/*
TraceRecord describes a single traced event.
*/
type TraceRecord struct {
	Time time.Time // when the event was observed
	Type EventType // a single EventType bit
	Func string    // the traced function, e.g.: "Between" or "Date.AddMonths"
	Args []any     // arguments on entry, results on exit, values otherwise
}

/*
Tracer is qualified by any type able to receive a [TraceRecord], such as
[DefaultTracer]. A Tracer which also implements Enabled(EventType) bool
is only handed the events it has enabled.
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug installs t as the package tracer.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug discards all further events.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

type discardTracer struct{}

func (discardTracer) Trace(TraceRecord)      {}
func (discardTracer) Enabled(EventType) bool { return false }

func activeTracer(level EventType) (t Tracer, ok bool) {
	tmu.RLock()
	t = tracer
	tmu.RUnlock()

	if lt, is := t.(levelTracer); is {
		ok = lt.Enabled(level)
	} else {
		ok = true
	}
	return
}

func debugEvent(level EventType, args ...any) {
	if t, ok := activeTracer(level); ok {
		t.Trace(TraceRecord{
			Time: time.Now(),
			Type: level,
			Func: callerName(),
			Args: args,
		})
	}
}

/*
callerName returns the name of the first function on the stack which is
neither a debug helper nor a runtime frame, relative to this package.
Type parameters and closure suffixes are dropped, such that a method of
DateTime[UTC] reads as "DateTime.Compare".
*/
func callerName() string {
	pcs := make([]uintptr, 16)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])
	for {
		fr, more := frames.Next()
		name := fr.Function
		if i := lidx(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		name = strings.TrimPrefix(replaceAll(name, "[...]", ""), "eos.")
		if i := strings.Index(name, ".func"); i > 0 {
			name = name[:i]
		}
		if name != "" && !hasPfx(name, "debug") && !hasPfx(name, "runtime.") &&
			name != "callerName" && name != "activeTracer" {
			return name
		}
		if !more {
			return "unknown"
		}
	}
}

/*
debugPath traces the entry of the calling function with args. The
returned function is meant to be deferred: it traces the exit with the
results handed to it, preceded by the elapsed time as an [EventPerf]
record. Results are best handed as pointers to named return values,
which are read upon exit.

	defer debugPath(a, b)(&iv)
*/
func debugPath(args ...any) func(rets ...any) {
	if _, ok := activeTracer(EventEnter | EventExit | EventPerf); !ok {
		return func(...any) {}
	}

	debugEvent(EventEnter, args...)
	start := time.Now()
	return func(rets ...any) {
		debugPerf(newLItem(time.Since(start), "elapsed"))
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugIO(args ...any)         { debugEvent(EventIO, args...) }
func debugDate(args ...any)       { debugEvent(EventDate, args...) }
func debugTime(args ...any)       { debugEvent(EventTime, args...) }
func debugInterval(args ...any)   { debugEvent(EventInterval, args...) }
func debugZone(args ...any)       { debugEvent(EventZone, args...) }
func debugCompare(args ...any)    { debugEvent(EventCompare, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugPerf(args ...any)       { debugEvent(EventPerf, args...) }

/*
labeledItem renders as "label:value" within a trace line.
*/
type labeledItem struct {
	label string
	value any
}

func newLItem(value any, labels ...any) labeledItem {
	var parts []string
	for _, l := range labels {
		switch tv := l.(type) {
		case string:
			parts = append(parts, tv)
		case interface{ String() string }:
			parts = append(parts, tv.String())
		}
	}
	return labeledItem{label: join(parts, " "), value: value}
}

func (r labeledItem) String() string {
	label := r.label
	if label == "" {
		label = "?"
	}
	return label + ":" + fmtArg(r.value)
}

func fmtArg(x any) string {
	switch v := x.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case int:
		return itoa(v)
	case int64:
		return fmtInt(v, 10)
	case bool:
		return bool2str(v)
	case error:
		return "error: " + v.Error()
	case interface{ String() string }:
		// Dates, times, intervals, zones and durations.
		return v.String()
	}
	return reflect.TypeOf(x).String()
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}

	var levels []any
	for _, field := range split(evar, ",") {
		field = strings.TrimSpace(field)
		n, err := atoi(field)
		switch {
		case err != nil:
			levels = append(levels, lc(field))
		case n < 0:
			levels = append(levels, int(EventAll))
		default:
			levels = append(levels, n)
		}
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.ll.SetNamesMap(eventNames)
	dt.ll.Shift(levels...)
	EnableDebug(dt)
	debugInfo(newLItem(join(dt.ll.enabled(), ","), "levels"))
}
