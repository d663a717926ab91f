package calendar

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/couchcryptid/bank-status-service/internal/domain"
)

// Region tags served by the built-in tables.
const (
	RegionUS   domain.RegionTag = "us"
	RegionUSDC domain.RegionTag = "us_dc"
)

// Federal holidays per 5 U.S.C. 6103, under the names used by the Federal
// Reserve Bank schedule. The dates here are the actual dates; weekend
// observation shifting is the status engine's job, not the calendar's.
var (
	newYearsDay = &cal.Holiday{
		Name:  "New Year's Day",
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	mlkDay = &cal.Holiday{
		Name:      "Martin Luther King, Jr. Day",
		Month:     time.January,
		Weekday:   time.Monday,
		Offset:    3,
		StartYear: 1986,
		Func:      cal.CalcWeekdayOffset,
	}
	presidentsDay = &cal.Holiday{
		Name:    "Presidents' Day",
		Month:   time.February,
		Weekday: time.Monday,
		Offset:  3,
		Func:    cal.CalcWeekdayOffset,
	}
	memorialDay = &cal.Holiday{
		Name:    "Memorial Day",
		Month:   time.May,
		Weekday: time.Monday,
		Offset:  -1,
		Func:    cal.CalcWeekdayOffset,
	}
	juneteenth = &cal.Holiday{
		Name:      "Juneteenth National Independence Day",
		Month:     time.June,
		Day:       19,
		StartYear: 2021,
		Func:      cal.CalcDayOfMonth,
	}
	independenceDay = &cal.Holiday{
		Name:  "Independence Day",
		Month: time.July,
		Day:   4,
		Func:  cal.CalcDayOfMonth,
	}
	laborDay = &cal.Holiday{
		Name:    "Labor Day",
		Month:   time.September,
		Weekday: time.Monday,
		Offset:  1,
		Func:    cal.CalcWeekdayOffset,
	}
	columbusDay = &cal.Holiday{
		Name:    "Columbus Day",
		Month:   time.October,
		Weekday: time.Monday,
		Offset:  2,
		Func:    cal.CalcWeekdayOffset,
	}
	veteransDay = &cal.Holiday{
		Name:  "Veterans Day",
		Month: time.November,
		Day:   11,
		Func:  cal.CalcDayOfMonth,
	}
	thanksgiving = &cal.Holiday{
		Name:    "Thanksgiving",
		Month:   time.November,
		Weekday: time.Thursday,
		Offset:  4,
		Func:    cal.CalcWeekdayOffset,
	}
	christmasDay = &cal.Holiday{
		Name:  "Christmas Day",
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	// Inauguration Day falls on January 20 of the year after each
	// presidential election and is a legal holiday in the DC area only.
	inaugurationDay = &cal.Holiday{
		Name:      "Inauguration Day",
		StartYear: 1937,
		Func:      calcInaugurationDay,
	}
	emancipationDay = &cal.Holiday{
		Name:      "Emancipation Day",
		Month:     time.April,
		Day:       16,
		StartYear: 2005,
		Func:      cal.CalcDayOfMonth,
	}
)

func calcInaugurationDay(_ *cal.Holiday, year int) time.Time {
	if year%4 != 1 {
		return time.Time{}
	}
	return time.Date(year, time.January, 20, 0, 0, 0, 0, time.UTC)
}

var usHolidays = []*cal.Holiday{
	newYearsDay,
	mlkDay,
	presidentsDay,
	memorialDay,
	juneteenth,
	independenceDay,
	laborDay,
	columbusDay,
	veteransDay,
	thanksgiving,
	christmasDay,
}

// usDCHolidays extends the federal table with District of Columbia
// observances, mirroring the upstream holiday data where the DC region
// inherits the national one. Queries spanning both regions rely on
// HolidaysOn de-duplicating the shared names.
var usDCHolidays = append(append([]*cal.Holiday{}, usHolidays...),
	inaugurationDay,
	emancipationDay,
)
