package eos

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

/*
ErrorKind classifies every error returned by this package. See
[KindOf] for extracting the kind from an arbitrary error value.
*/
type ErrorKind uint8

const (
	KindUnknown             ErrorKind = iota // not produced by this package
	KindDateOutOfRange                       // date does not exist in the proleptic Gregorian calendar
	KindTimeOutOfRange                       // time-of-day or offset field is outside its bound
	KindEnvironment                          // clock or local offset could not be resolved
	KindConstraintViolation                  // a user supplied Constraint failed
	KindAmbiguousTime                        // local time denotes two instants
	KindSkippedTime                          // local time denotes no instant
)

/*
String returns the string representation of the receiver instance.
*/
func (r ErrorKind) String() (s string) {
	switch r {
	case KindDateOutOfRange:
		s = "DateOutOfRange"
	case KindTimeOutOfRange:
		s = "TimeOutOfRange"
	case KindEnvironment:
		s = "Environment"
	case KindConstraintViolation:
		s = "ConstraintViolation"
	case KindAmbiguousTime:
		s = "AmbiguousTime"
	case KindSkippedTime:
		s = "SkippedTime"
	default:
		s = "Unknown"
	}
	return
}

/*
Sentinel errors, one per [ErrorKind]. Every error returned by this
package satisfies [errors.Is] against the sentinel of its kind, no
matter the message it carries, e.g.:

	if _, err := NewDate(2013, February, 29); errors.Is(err, ErrDateOutOfRange) {
	    ...
	}
*/
var (
	ErrDateOutOfRange      error = dateErr{mkerr("date does not exist in the proleptic Gregorian calendar")}
	ErrTimeOutOfRange      error = timeErr{mkerr("time component is out of range")}
	ErrEnvironment         error = envErr{e: mkerr("unable to resolve environment")}
	ErrConstraintViolation error = constraintErr{mkerr("constraint failed")}
	ErrAmbiguousTime       error = resolutionErr{KindAmbiguousTime, mkerr("local time is ambiguous")}
	ErrSkippedTime         error = resolutionErr{KindSkippedTime, mkerr("local time was skipped")}
)

/*
date errors.
*/
var (
	errorBadMonth   = dateErr{mkerr("month must be within 1..=12")}
	errorBadOrdinal = dateErr{mkerr("ordinal exceeds the number of days in the year")}
	errorBadIsoWeek = dateErr{mkerr("ISO week exceeds the number of weeks in the ISO year")}
	errorBadWeekday = dateErr{mkerr("weekday must be within 1..=7")}
)

/*
time errors.
*/
var (
	errorBadHour        = timeErr{mkerr("hour must be within 0..24")}
	errorBadMinute      = timeErr{mkerr("minute must be within 0..60")}
	errorBadSecond      = timeErr{mkerr("second must be within 0..60")}
	errorBadMillisecond = timeErr{mkerr("millisecond must be within 0..2000")}
	errorBadMicrosecond = timeErr{mkerr("microsecond must be within 0..2_000_000")}
	errorBadNanosecond  = timeErr{mkerr("nanosecond must be within 0..2_000_000_000")}
	errorBadOffset      = timeErr{mkerr("UTC offset must be strictly within 24 hours")}
	errorMixedSigns     = timeErr{mkerr("UTC offset components must share the same sign")}
)

/*
types which implement the error interface.
*/
type (
	dateErr       struct{ e error }
	timeErr       struct{ e error }
	constraintErr struct{ e error }
	envErr        struct {
		e     error
		cause error
	}
	resolutionErr struct {
		k ErrorKind
		e error
	}
)

func dateErrorf(m ...any) error           { return dateErr{mkerrf(m...)} }
func timeErrorf(m ...any) error           { return timeErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }

func envErrorf(cause error, m ...any) error {
	return envErr{e: mkerrf(m...), cause: cause}
}

func (r dateErr) Error() string       { return `DATE OUT OF RANGE: ` + r.e.Error() }
func (r timeErr) Error() string       { return `TIME OUT OF RANGE: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r resolutionErr) Error() string { return `RESOLUTION ERROR: ` + r.e.Error() }

func (r envErr) Error() (s string) {
	s = `ENVIRONMENT ERROR: ` + r.e.Error()
	if r.cause != nil {
		s += `: ` + r.cause.Error()
	}
	return
}

func (r envErr) Unwrap() error { return r.cause }

func (r dateErr) Is(target error) bool {
	_, is := target.(dateErr)
	return is
}

func (r timeErr) Is(target error) bool {
	_, is := target.(timeErr)
	return is
}

func (r envErr) Is(target error) bool {
	_, is := target.(envErr)
	return is
}

func (r constraintErr) Is(target error) bool {
	_, is := target.(constraintErr)
	return is
}

func (r resolutionErr) Is(target error) bool {
	t, is := target.(resolutionErr)
	return is && t.k == r.k
}

/*
KindOf returns the [ErrorKind] of err, or [KindUnknown] if err was
not produced by this package (or is nil).

Wrapped errors are unwrapped as per [errors.As].
*/
func KindOf(err error) (k ErrorKind) {
	var (
		de dateErr
		te timeErr
		ee envErr
		ce constraintErr
		re resolutionErr
	)

	switch {
	case err == nil:
	case errors.As(err, &de):
		k = KindDateOutOfRange
	case errors.As(err, &te):
		k = KindTimeOutOfRange
	case errors.As(err, &ee):
		k = KindEnvironment
	case errors.As(err, &ce):
		k = KindConstraintViolation
	case errors.As(err, &re):
		k = re.k
	}

	return
}

func errorDayOutOfRange(year int, month Month, day int) error {
	return dateErrorf("day ", day, " is not valid for ", month.String(),
		" of year ", year, " (max: ", DaysInMonth(year, month), ")")
}

/*
errCache holds the errors built from a lone string, i.e.: a fixed
message, such that repeated failures share one instance. Messages
assembled from several parts carry input values and are never cached.
*/
var errCache sync.Map

func mkerrf(parts ...any) error {
	switch len(parts) {
	case 0:
		return nil
	case 1:
		switch v := parts[0].(type) {
		case nil:
			return nil
		case string:
			if e, hit := errCache.Load(v); hit {
				return e.(error)
			}
			e, _ := errCache.LoadOrStore(v, mkerr(v))
			return e.(error)
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case interface{ String() string }:
			b.WriteString(v.String())
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}

	return mkerr(b.String())
}
