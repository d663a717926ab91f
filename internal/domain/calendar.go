package domain

import "time"

// Holiday is a single named holiday on a calendar date.
type Holiday struct {
	Name string
	Date time.Time
}

// HolidayCalendar answers which holidays fall on a given date in a set of
// regions. Implementations are pure lookups over static data: an empty result
// is the normal no-holiday case, and names within one query are already
// de-duplicated.
type HolidayCalendar interface {
	HolidaysOn(date time.Time, regions []RegionTag) []Holiday
}
