package eos

import (
	"errors"
	"fmt"
	"testing"
)

/*
This example demonstrates the use of a [Union] of constraints, which
accepts a [Date] satisfying either of them.
*/
func ExampleUnion() {
	firstOfMonth := PropertyConstraint(func(d Date) error {
		if d.Day() != 1 {
			return errors.New("not the first day of the month")
		}
		return nil
	})
	payday := Union(firstOfMonth, LiftConstraint(Date.Day, RangeConstraint(15, 15)))

	for _, day := range []int{1, 14, 15} {
		_, err := NewDate(2024, March, day, payday)
		fmt.Println(day, err == nil)
	}
	// Output:
	// 1 true
	// 14 false
	// 15 true
}

func ExampleNamedConstraints() {
	group, err := NamedConstraints[Date]("weekday")
	if err != nil {
		fmt.Println(err)
		return
	}

	start, _ := NewDate(2024, March, 1)
	end, _ := NewDate(2024, March, 8)
	for d := range DateRange(start, end, group...) {
		fmt.Println(d, d.Weekday())
	}
	// Output:
	// 2024-03-01 Friday
	// 2024-03-04 Monday
	// 2024-03-05 Tuesday
	// 2024-03-06 Wednesday
	// 2024-03-07 Thursday
}

func TestConstraintGroup(t *testing.T) {
	var calls int
	counting := func(err error) Constraint[Date] {
		return func(Date) error {
			calls++
			return err
		}
	}

	d := mustDate(t, 2024, March, 2)
	group := ConstraintGroup[Date]{counting(nil), nil, counting(errors.New("nope")), counting(nil)}

	err := group.Constrain(d)
	if !errors.Is(err, ErrConstraintViolation) || KindOf(err) != KindConstraintViolation {
		t.Fatalf("%s failed: want a constraint violation, got %v", t.Name(), err)
	}
	if calls != 2 {
		t.Fatalf("%s failed: evaluation should stop at the first failure, got %d calls", t.Name(), calls)
	}

	if err = (ConstraintGroup[Date]{}).Constrain(d); err != nil {
		t.Fatalf("%s failed: empty group, got %v", t.Name(), err)
	}
}

func TestConstraints(t *testing.T) {
	sat := mustDate(t, 2024, January, 6)
	mon := mustDate(t, 2024, January, 8)
	lo, hi := mustDate(t, 2024, January, 1), mustDate(t, 2024, January, 7)

	weekday := WeekdayConstraint(Monday, Tuesday, Wednesday, Thursday, Friday)
	inWeek := DateRangeConstraint(lo, hi)
	years := YearRangeConstraint(2000, 2099)

	for idx, tst := range []struct {
		c    Constraint[Date]
		d    Date
		pass bool
	}{
		{weekday, sat, false},
		{weekday, mon, true},
		{inWeek, sat, true},
		{inWeek, mon, false},
		{inWeek, lo, true},
		{inWeek, hi, true},
		{years, sat, true},
		{years, mustDate(t, 1999, December, 31), false},
		{Union(weekday, inWeek), sat, true},
		{Union(weekday, inWeek), mustDate(t, 2024, January, 13), false},
		{Intersection(weekday, inWeek), sat, false},
		{Intersection(weekday, inWeek), mustDate(t, 2024, January, 2), true},
		{Intersection[Date](), sat, true},
	} {
		if err := tst.c(tst.d); (err == nil) != tst.pass {
			t.Errorf("%s[%d] failed [%s]: want pass=%t, got %v", t.Name(), idx, tst.d, tst.pass, err)
		}
	}

	if err := weekday(sat); err.Error() != "CONSTRAINT VIOLATION: date 2024-01-06 falls on a Saturday" {
		t.Errorf("%s failed: got %q", t.Name(), err)
	}

	noon, dusk := mustTime(t, 12, 0, 0), mustTime(t, 18, 0, 0)
	office := TimeRangeConstraint(mustTime(t, 9, 0, 0), mustTime(t, 17, 0, 0))
	if office(noon) != nil || office(dusk) == nil {
		t.Errorf("%s failed: bad time range", t.Name())
	}
	if _, err := NewTime(18, 0, 0, office); KindOf(err) != KindConstraintViolation {
		t.Errorf("%s failed: want %s, got %v", t.Name(), KindConstraintViolation, err)
	}
}

func TestNamedConstraints(t *testing.T) {
	RegisterConstraint("test.morning", TimeRangeConstraint(Midnight, mustTime(t, 11, 59, 59)))
	RegisterConstraintGroup("test.leap", ConstraintGroup[Date]{
		PropertyConstraint(func(d Date) error {
			if !d.IsLeapYear() {
				return errors.New("not a leap year")
			}
			return nil
		}),
	})

	if g, err := NamedConstraints[Time]("TEST.Morning"); err != nil || len(g) != 1 {
		t.Fatalf("%s failed: got %d constraints (%v)", t.Name(), len(g), err)
	} else if g.Constrain(mustTime(t, 13, 0, 0)) == nil {
		t.Fatalf("%s failed: afternoon should not pass", t.Name())
	}

	g, err := NamedConstraints[Date]("weekend", "test.leap")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if g.Constrain(mustDate(t, 2024, March, 2)) != nil || g.Constrain(mustDate(t, 2023, March, 4)) == nil {
		t.Fatalf("%s failed: bad group evaluation", t.Name())
	}

	if _, err = NamedConstraints[Date]("no-such-thing"); err == nil {
		t.Fatalf("%s failed: expected error for unknown name", t.Name())
	}
	if _, err = NamedConstraints[Time]("weekday"); err == nil {
		t.Fatalf("%s failed: expected error for mismatched type", t.Name())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("%s failed: expected panic on duplicate registration", t.Name())
		}
	}()
	RegisterConstraint("Weekday", WeekdayConstraint(Monday))
}
