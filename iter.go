package eos

/*
iter.go contains sequences of dates and date-times.
*/

import "iter"

/*
DateRange returns the sequence of every [Date] from start up to, but not
including, end. The sequence is empty when end does not follow start.

	for d := range DateRange(start, end) {
	    ...
	}
*/
func DateRange(start, end Date, constraints ...Constraint[Date]) iter.Seq[Date] {
	group := ConstraintGroup[Date](constraints)
	return func(yield func(Date) bool) {
		for d := start; d.Before(end); d = d.AddDays(1) {
			if group.Constrain(d) != nil {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

/*
Recur returns the unbounded sequence start, start+step, start+2*step and
so on. Each element is computed from start directly through
[Interval.Mul], such that a clamped day of month does not propagate into
the elements that follow it:

	2024-01-31, 2024-02-29, 2024-03-31, 2024-04-30, ...

Only start is yielded when step is the zero [Interval].
*/
func Recur[Z TimeZone](start DateTime[Z], step Interval) iter.Seq2[int, DateTime[Z]] {
	return func(yield func(int, DateTime[Z]) bool) {
		if !yield(0, start) || step.IsZero() {
			return
		}
		for n := 1; ; n++ {
			if !yield(n, start.AddInterval(step.Mul(n))) {
				return
			}
		}
	}
}
