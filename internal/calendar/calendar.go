// Package calendar provides the static holiday data consulted by the bank
// status engine. Holiday rules are declared as rickar/cal definitions,
// grouped into region tables keyed by the region tags the country registry
// references.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/couchcryptid/bank-status-service/internal/domain"
)

// Calendar answers single-date holiday queries against the built-in region
// tables. It implements domain.HolidayCalendar and is safe for concurrent
// use; the tables are never mutated after New.
type Calendar struct {
	regions map[domain.RegionTag][]*cal.Holiday
}

// New returns a Calendar loaded with the built-in region tables.
func New() *Calendar {
	return &Calendar{
		regions: map[domain.RegionTag][]*cal.Holiday{
			RegionUS:   usHolidays,
			RegionUSDC: usDCHolidays,
		},
	}
}

// HolidaysOn returns the holidays observed on date in the given regions, in
// table order, de-duplicated by name. Unknown regions contribute nothing.
// Dates are compared by calendar day; the time-of-day and zone of date are
// ignored.
func (c *Calendar) HolidaysOn(date time.Time, regions []domain.RegionTag) []domain.Holiday {
	seen := make(map[string]bool)

	var out []domain.Holiday
	for _, region := range regions {
		for _, h := range c.regions[region] {
			actual, _ := h.Calc(date.Year())
			if actual.IsZero() {
				continue
			}
			if actual.Month() != date.Month() || actual.Day() != date.Day() {
				continue
			}
			if seen[h.Name] {
				continue
			}
			seen[h.Name] = true
			out = append(out, domain.Holiday{
				Name: h.Name,
				Date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			})
		}
	}
	return out
}
