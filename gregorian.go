package eos

/*
gregorian.go implements the arithmetic of the proleptic Gregorian
calendar: leap years, month lengths and the conversion between civil
dates and epoch days (days relative to 1970-01-01).
*/

/*
daysBeforeMonth holds the number of days preceding each month of a
common (non-leap) year. Index 0 is unused.
*/
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
IsLeapYear returns a Boolean value indicative of year being a leap year
in the proleptic Gregorian calendar: years divisible by 4, except those
divisible by 100 but not by 400. Year 0 is a leap year.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInYear returns 366 if year is a leap year, else 365.
*/
func DaysInYear(year int) (days int) {
	if days = 365; IsLeapYear(year) {
		days++
	}
	return
}

/*
DaysInMonth returns the number of days of month within year. Zero is
returned if month is outside of 1..=12.
*/
func DaysInMonth(year int, month Month) (days int) {
	if month.valid() {
		days = daysInMonth[month]
		if month == February && IsLeapYear(year) {
			days++
		}
	}
	return
}

// ordinalOf assumes a valid date.
func ordinalOf(year int, month Month, day int) (ord int) {
	ord = daysBeforeMonth[month] + day
	if month > February && IsLeapYear(year) {
		ord++
	}
	return
}

/*
monthDayOf converts a valid ordinal within year into its month and
day of month.
*/
func monthDayOf(year, ordinal int) (month Month, day int) {
	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}

	month = December
	for m := February; m <= December; m++ {
		before := daysBeforeMonth[m]
		if m > February {
			before += leap
		}
		if ordinal <= before {
			month = m - 1
			break
		}
	}

	before := daysBeforeMonth[month]
	if month > February {
		before += leap
	}
	day = ordinal - before
	return
}

/*
civilToDays returns the number of days between 1970-01-01 and the
specified civil date. The algorithm shifts the year to begin in March
so that the leap day falls at the end of the (shifted) year, and then
counts whole 400-year eras.
*/
func civilToDays(year int, month Month, day int) int64 {
	y := int64(year)
	if month <= February {
		y--
	}
	era := floordiv(y, 400)
	yoe := y - era*400                     // [0, 399]
	mp := (int64(month) + 9) % 12          // March=0 .. February=11
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

/*
daysToCivil is the inverse of civilToDays.
*/
func daysToCivil(days int64) (year int, month Month, day int) {
	z := days + 719468
	era := floordiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11]

	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = Month(mp + 3)
	} else {
		month = Month(mp - 9)
	}

	y := yoe + era*400
	if month <= February {
		y++
	}
	year = int(y)
	return
}

/*
isoWeeksInYear returns the number of ISO weeks (52 or 53) within the
ISO week-numbering year. A year has 53 weeks when January 1st falls on
a Thursday, or on a Wednesday within a leap year.
*/
func isoWeeksInYear(year int) (weeks int) {
	weeks = 52
	jan1 := weekdayOf(civilToDays(year, January, 1))
	if jan1 == Thursday || (jan1 == Wednesday && IsLeapYear(year)) {
		weeks = 53
	}
	return
}

/*
weekdayOf derives the ISO weekday of an epoch day. 1970-01-01 was a
Thursday (ISO weekday 4).
*/
func weekdayOf(days int64) Weekday {
	return Weekday(floormod(days+3, 7) + 1)
}
