package eos

/*
date.go implements the proleptic Gregorian calendar date, alongside
its Month, Weekday and ISO week date companion types.
*/

import "strings"

/*
Month describes a month of the year, where January is 1 and December
is 12.
*/
type Month uint8

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [13]string{"", "January", "February", "March", "April",
	"May", "June", "July", "August", "September", "October", "November",
	"December"}

/*
String returns the English name of the receiver instance.
*/
func (r Month) String() (s string) {
	s = "Month(" + itoa(int(r)) + ")"
	if r.valid() {
		s = monthNames[r]
	}
	return
}

func (r Month) valid() bool { return January <= r && r <= December }

/*
Weekday describes a day of the week using ISO 8601 numbering, where
Monday is 1 and Sunday is 7.
*/
type Weekday uint8

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [8]string{"", "Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday", "Sunday"}

/*
String returns the English name of the receiver instance.
*/
func (r Weekday) String() (s string) {
	s = "Weekday(" + itoa(int(r)) + ")"
	if r.valid() {
		s = weekdayNames[r]
	}
	return
}

func (r Weekday) valid() bool { return Monday <= r && r <= Sunday }

/*
Next returns the weekday following the receiver instance. Sunday wraps
around to Monday.
*/
func (r Weekday) Next() Weekday { return r%7 + 1 }

/*
Prev returns the weekday preceding the receiver instance. Monday wraps
around to Sunday.
*/
func (r Weekday) Prev() Weekday { return (r+5)%7 + 1 }

/*
DaysUntil returns the number of days, within 0..=6, from the receiver
instance until the next occurrence of other.
*/
func (r Weekday) DaysUntil(other Weekday) int {
	return floormod(int(other)-int(r), 7)
}

/*
DaysSince returns the number of days, within 0..=6, since the last
occurrence of other before the receiver instance.
*/
func (r Weekday) DaysSince(other Weekday) int {
	return floormod(int(r)-int(other), 7)
}

/*
Date implements an ISO 8601 calendar date within the proleptic Gregorian
calendar.

Year 0 is equivalent to 1 BCE, and negative years extend further back.
Instances of this type are always valid; the only ways of obtaining a
Date are through the validated constructors ([NewDate], [DateFromOrdinal],
[DateFromIsoWeek]) or the total constructor [DateFromEpochDays].

The zero value is not a valid Date and should not be used. Arithmetic
upon it behaves as if it were 0000-01-01.

Date instances are comparable with the == operator.
*/
type Date struct {
	year  int
	month Month
	day   uint8
}

/*
UnixEpochDate is January 1st, 1970.
*/
var UnixEpochDate = Date{year: 1970, month: January, day: 1}

/*
NewDate returns an instance of [Date] alongside an error following an
attempt to construct a date from the input year, month and day.

The month must be within 1..=12 and the day must be valid for the month
within the given year, i.e.: February 29th is only valid on a leap year.
[ErrDateOutOfRange] is returned otherwise.

Any [Constraint] instances are evaluated against the otherwise valid
date, in the order in which they were provided.
*/
func NewDate(year int, month Month, day int, constraints ...Constraint[Date]) (d Date, err error) {
	if !month.valid() {
		err = errorBadMonth
	} else if day < 1 || day > DaysInMonth(year, month) {
		err = errorDayOutOfRange(year, month, day)
	}

	if err == nil {
		d, err = constrainDate(Date{year: year, month: month, day: uint8(day)}, constraints)
	}

	return
}

func constrainDate(d Date, constraints []Constraint[Date]) (Date, error) {
	if len(constraints) > 0 {
		var group ConstraintGroup[Date] = constraints
		if err := group.Constrain(d); err != nil {
			return Date{}, err
		}
	}
	return d, nil
}

/*
DateFromOrdinal returns an instance of [Date] alongside an error following
an attempt to construct a date from the input year and ordinal (day of the
year). The ordinal must be within 1..=365, or 1..=366 in leap years.
*/
func DateFromOrdinal(year, ordinal int, constraints ...Constraint[Date]) (d Date, err error) {
	if ordinal < 1 || ordinal > DaysInYear(year) {
		err = errorBadOrdinal
		return
	}

	month, day := monthDayOf(year, ordinal)
	return constrainDate(Date{year: year, month: month, day: uint8(day)}, constraints)
}

/*
DateFromEpochDays returns the [Date] which lies days away from January
1st, 1970. Negative values reach into the past. This function is total.
*/
func DateFromEpochDays(days int64) Date {
	y, m, d := daysToCivil(days)
	return Date{year: y, month: m, day: uint8(d)}
}

/*
DateFromIsoWeek returns an instance of [Date] alongside an error following
an attempt to construct a date from an ISO 8601 week date. The week must
be within 1..=52, or 1..=53 for ISO years that carry 53 weeks.
*/
func DateFromIsoWeek(year, week int, weekday Weekday) (d Date, err error) {
	if !weekday.valid() {
		err = errorBadWeekday
	} else if week < 1 || week > isoWeeksInYear(year) {
		err = errorBadIsoWeek
	}

	if err == nil {
		// January 4th always falls within the first ISO week.
		jan4 := civilToDays(year, January, 4)
		monday := jan4 - int64(weekdayOf(jan4)-Monday)
		d = DateFromEpochDays(monday + int64(week-1)*7 + int64(weekday-Monday))
	}

	return
}

/*
Year returns the year of the receiver instance.
*/
func (r Date) Year() int { return r.year }

/*
Month returns the month of the receiver instance, which is always within
1..=12.
*/
func (r Date) Month() Month { return r.month }

/*
Day returns the day of the month of the receiver instance, which is always
within 1..=31.
*/
func (r Date) Day() int { return int(r.day) }

/*
Ordinal returns the ISO ordinal date of the receiver instance: January
1st is 1 and December 31st is either 365 or 366.
*/
func (r Date) Ordinal() int { return ordinalOf(r.year, r.month, int(r.day)) }

/*
EpochDays returns the number of days between January 1st, 1970 and the
receiver instance. Dates prior to the epoch return negative values.
*/
func (r Date) EpochDays() int64 {
	r = r.norm()
	return civilToDays(r.year, r.month, int(r.day))
}

/*
norm returns the receiver instance, or January 1st of its year should
the month or day be unset, as within the zero Date.
*/
func (r Date) norm() Date {
	if r.month == 0 || r.day == 0 {
		r.month, r.day = January, 1
	}
	return r
}

/*
IsLeapYear returns a Boolean value indicative of the receiver's year
being a leap year.
*/
func (r Date) IsLeapYear() bool { return IsLeapYear(r.year) }

/*
DaysInMonth returns the number of days within the receiver's month.
*/
func (r Date) DaysInMonth() int { return DaysInMonth(r.year, r.month) }

/*
Weekday returns the [Weekday] upon which the receiver instance falls.
*/
func (r Date) Weekday() Weekday { return weekdayOf(r.EpochDays()) }

/*
AddDays returns the [Date] which lies days away from the receiver instance.
Negative values move backwards in time.
*/
func (r Date) AddDays(days int) Date {
	if days == 0 {
		return r
	}
	return DateFromEpochDays(r.EpochDays() + int64(days))
}

/*
AddMonths returns the [Date] which lies months away from the receiver
instance. Negative values move backwards in time.

Should the resulting month be shorter than the receiver's day of month,
the day is clamped to the last day of the resulting month rather than
rolling over into the following month:

	2021-01-31 + 1 month = 2021-02-28
	2020-01-31 + 1 month = 2020-02-29
	2021-03-31 - 1 month = 2021-02-28
*/
func (r Date) AddMonths(months int) Date {
	if months == 0 {
		return r
	}

	r = r.norm()
	y, m := divmod(r.year*12+int(r.month)-1+months, 12)
	month := Month(m + 1)
	day := int(r.day)
	if last := DaysInMonth(y, month); day > last {
		debugDate(newLItem(r, "clamped"), day, last)
		day = last
	}

	return Date{year: y, month: month, day: uint8(day)}
}

/*
AddYears returns the [Date] which lies years away from the receiver
instance. February 29th is clamped to February 28th when the resulting
year is not a leap year.
*/
func (r Date) AddYears(years int) Date { return r.AddMonths(years * 12) }

/*
WithYear returns a new [Date] pointing to the given year. February 29th
is clamped to February 28th when year is not a leap year.
*/
func (r Date) WithYear(year int) Date {
	day := int(r.day)
	if last := DaysInMonth(year, r.month); day > last {
		day = last
	}
	return Date{year: year, month: r.month, day: uint8(day)}
}

/*
WithMonth returns a new [Date] pointing to the given month alongside an
error. An error is returned if month is out of bounds (1..=12) or if the
month does not have as many days as the receiver's day of month.
*/
func (r Date) WithMonth(month Month) (Date, error) {
	return NewDate(r.year, month, int(r.day))
}

/*
WithDay returns a new [Date] pointing to the given day of month alongside
an error. The actual maximum day depends upon the receiver's month.
*/
func (r Date) WithDay(day int) (Date, error) {
	return NewDate(r.year, r.month, day)
}

/*
WithOrdinal returns a new [Date] pointing to the given ordinal day of the
receiver's year alongside an error.
*/
func (r Date) WithOrdinal(ordinal int) (Date, error) {
	return DateFromOrdinal(r.year, ordinal)
}

/*
NextWeekday returns the nearest [Date] strictly after the receiver
instance which falls upon weekday. Should the receiver already fall upon
weekday, the date one week later is returned.
*/
func (r Date) NextWeekday(weekday Weekday) Date {
	diff := r.Weekday().DaysUntil(weekday)
	if diff == 0 {
		diff = 7
	}
	return r.AddDays(diff)
}

/*
PrevWeekday returns the nearest [Date] strictly before the receiver
instance which falls upon weekday. Should the receiver already fall upon
weekday, the date one week earlier is returned.
*/
func (r Date) PrevWeekday(weekday Weekday) Date {
	diff := r.Weekday().DaysSince(weekday)
	if diff == 0 {
		diff = 7
	}
	return r.AddDays(-diff)
}

/*
IsoWeek returns the [IsoWeekDate] of the receiver instance.

Note that the ISO week-numbering year may differ from the Gregorian year
for dates near the start or end of a year, e.g.: 1995-01-01 is a Sunday
within the 52nd week of ISO year 1994.
*/
func (r Date) IsoWeek() IsoWeekDate {
	wd := r.Weekday()
	year := r.year
	week := (r.Ordinal() - int(wd) + 10) / 7

	if week < 1 {
		year--
		week = isoWeeksInYear(year)
	} else if week > isoWeeksInYear(year) {
		year++
		week = 1
	}

	return IsoWeekDate{year: year, week: uint8(week), weekday: wd}
}

/*
Compare returns -1, 0 or 1 if the receiver instance is before, equal to
or after other respectively.
*/
func (r Date) Compare(other Date) (c int) {
	switch {
	case r.year != other.year:
		c = sign(r.year - other.year)
	case r.month != other.month:
		c = sign(int(r.month) - int(other.month))
	default:
		c = sign(int(r.day) - int(other.day))
	}
	return
}

/*
Before returns a Boolean value indicative of the receiver instance
preceding other.
*/
func (r Date) Before(other Date) bool { return r.Compare(other) < 0 }

/*
After returns a Boolean value indicative of the receiver instance
following other.
*/
func (r Date) After(other Date) bool { return r.Compare(other) > 0 }

/*
DaysUntil returns the signed number of days from the receiver instance
until other.
*/
func (r Date) DaysUntil(other Date) int64 { return other.EpochDays() - r.EpochDays() }

/*
String returns the ISO 8601 extended representation of the receiver
instance, e.g.: "2021-03-17". Years are zero-padded to four digits and
negative years carry a leading hyphen.
*/
func (r Date) String() string {
	b := newStrBuilder()
	r.write(&b)
	return b.String()
}

func (r Date) write(b *strings.Builder) {
	padInt(b, int64(r.year), 4)
	b.WriteByte('-')
	padInt(b, int64(r.month), 2)
	b.WriteByte('-')
	padInt(b, int64(r.day), 2)
}

/*
IsoWeekDate implements the ISO 8601 week date representation of a [Date],
comprised of the ISO week-numbering year, the week (1..=53) and the
[Weekday].
*/
type IsoWeekDate struct {
	year    int
	week    uint8
	weekday Weekday
}

/*
Year returns the ISO week-numbering year, which may differ from the
Gregorian year of the originating [Date].
*/
func (r IsoWeekDate) Year() int { return r.year }

/*
Week returns the ISO week number, within 1..=53.
*/
func (r IsoWeekDate) Week() int { return int(r.week) }

/*
Weekday returns the [Weekday] of the ISO week date.
*/
func (r IsoWeekDate) Weekday() Weekday { return r.weekday }

/*
Date returns the Gregorian [Date] of the receiver instance.
*/
func (r IsoWeekDate) Date() Date {
	d, _ := DateFromIsoWeek(r.year, int(r.week), r.weekday)
	return d
}

/*
String returns the ISO 8601 week date representation of the receiver
instance, e.g.: "1997-W01-2".
*/
func (r IsoWeekDate) String() string {
	b := newStrBuilder()
	padInt(&b, int64(r.year), 4)
	b.WriteString("-W")
	padInt(&b, int64(r.week), 2)
	b.WriteByte('-')
	b.WriteString(itoa(int(r.weekday)))
	return b.String()
}
