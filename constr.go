package eos

/*
constr.go contains constraint and constraint group components which
serve to narrow the values accepted by the constructors of this package.
*/

import (
	"errors"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance. Evaluation stops at the
first failure, which is returned as an [ErrConstraintViolation].
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	if err != nil && !errors.Is(err, ErrConstraintViolation) {
		err = constraintViolationf(err)
	}
	debugConstraint(newLItem(len(r), "constraints"), x, err)

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.

	leapOnly := LiftConstraint(Date.IsLeapYear, PropertyConstraint(func(b bool) error {
	    ...
	}))
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined check
function. That function should return nil if the property is satisfied or an
error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum, both
inclusive.
*/
func RangeConstraint[T constraints.Ordered](lo, hi T) Constraint[T] {
	return func(val T) (err error) {
		if val < lo || val > hi {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
YearRangeConstraint returns a [Constraint] that checks if the year of a
[Date] is within lo and hi, both inclusive.
*/
func YearRangeConstraint(lo, hi int) Constraint[Date] {
	return LiftConstraint(Date.Year, RangeConstraint(lo, hi))
}

/*
DateRangeConstraint returns a [Constraint] that checks if a [Date] is
not before lo and not after hi.
*/
func DateRangeConstraint(lo, hi Date) Constraint[Date] {
	return func(val Date) (err error) {
		if val.Before(lo) || val.After(hi) {
			err = constraintViolationf("date ", val.String(), " is not in the allowed range [",
				lo.String(), ", ", hi.String(), "]")
		}
		return
	}
}

/*
TimeRangeConstraint returns a [Constraint] that checks if a [Time] is
not before lo and not after hi.
*/
func TimeRangeConstraint(lo, hi Time) Constraint[Time] {
	return func(val Time) (err error) {
		if val.Before(lo) || val.After(hi) {
			err = constraintViolationf("time ", val.String(), " is not in the allowed range [",
				lo.String(), ", ", hi.String(), "]")
		}
		return
	}
}

/*
WeekdayConstraint returns a [Constraint] that checks if a [Date] falls
on one of the specified weekdays.
*/
func WeekdayConstraint(days ...Weekday) Constraint[Date] {
	var mask uint8
	for _, d := range days {
		mask |= 1 << d
	}
	return func(val Date) (err error) {
		if wd := val.Weekday(); mask&(1<<wd) == 0 {
			err = constraintViolationf("date ", val.String(), " falls on a ", wd.String())
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = constraintViolationf("union failed all ", len(constraints), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

/*
constraintEntry implements a private constraint registration type. Instances
of this type are used wherever constraints are referenced by name, such as
the command line arguments of the eos utility.
*/
type constraintEntry struct {
	typ reflect.Type
	fn  any
}

var (
	constraintMu  sync.RWMutex
	constraintReg = map[string]constraintEntry{}
)

/*
RegisterConstraint assigns the provided [Constraint] function instance to
the package-level [Constraint] registry under name, such that it may later
be retrieved through [NamedConstraints].

This function will panic if a [Constraint] is registered under a name already
present within the registry. Case is not significant in the name registration
or matching processes.

The registry is pre-populated with the [Date] constraints "weekday" (Monday
through Friday) and "weekend".
*/
func RegisterConstraint[T any](name string, c Constraint[T]) {
	putConstraint(name, c)
}

/*
RegisterConstraintGroup assigns the provided [ConstraintGroup] instance
to the package-level [Constraint] registry under name. See
[RegisterConstraint].
*/
func RegisterConstraintGroup[T any](name string, g ConstraintGroup[T]) {
	wrapped := Constraint[T](func(x T) error { return g.Constrain(x) })
	putConstraint(name, wrapped)
}

func putConstraint[T any](name string, fn Constraint[T]) {
	constraintMu.Lock()
	defer constraintMu.Unlock()

	key := lc(name)
	if _, dup := constraintReg[key]; dup {
		panic("eos: duplicate constraint name " + name)
	}
	constraintReg[key] = constraintEntry{
		typ: reflect.TypeOf((*T)(nil)).Elem(),
		fn:  fn,
	}
}

/*
NamedConstraints returns the registered [Constraint] instances of type T
bearing the input names alongside an error, which is non-nil should a
name be unknown or registered for another type.
*/
func NamedConstraints[T any](names ...string) (ConstraintGroup[T], error) {
	constraintMu.RLock()
	defer constraintMu.RUnlock()

	var out ConstraintGroup[T]
	want := reflect.TypeOf((*T)(nil)).Elem()

	for _, n := range names {
		e, ok := constraintReg[lc(n)]
		if !ok {
			return nil, mkerrf("unknown constraint ", n)
		}
		if e.typ != want {
			return nil, mkerrf("constraint ", n, " not applicable to ", want.String())
		}
		out = append(out, e.fn.(Constraint[T]))
	}
	return out, nil
}

func init() {
	RegisterConstraint("weekday", WeekdayConstraint(Monday, Tuesday, Wednesday, Thursday, Friday))
	RegisterConstraint("weekend", WeekdayConstraint(Saturday, Sunday))
}
