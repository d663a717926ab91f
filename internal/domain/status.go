package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekendReason is the closure reason reported for Saturdays and Sundays.
const WeekendReason = "the weekend"

// BankStatus is the engine's sole output. Reason is empty exactly when the
// banks are open.
type BankStatus struct {
	Closed bool
	Reason string
}

// BankStatusNow evaluates the current status of a country's banks. The
// current instant is converted into the country's configured time zone
// before any weekday or date comparison. An error here means the registry
// entry is misconfigured, not that the request can be degraded.
func BankStatusNow(country Country, cal HolidayCalendar) (BankStatus, error) {
	loc, err := time.LoadLocation(country.Bank.TimeZone)
	if err != nil {
		return BankStatus{}, fmt.Errorf("load %s time zone %q: %w", country.Code, country.Bank.TimeZone, err)
	}
	return bankStatusOn(clock.Now().In(loc), country.Bank, cal), nil
}

// bankStatusOn computes the status for one local time. The weekend check
// short-circuits before any holiday lookup: a holiday that falls on a
// weekend does not change the reported reason.
func bankStatusOn(today time.Time, bank BankDescriptor, cal HolidayCalendar) BankStatus {
	switch today.Weekday() {
	case time.Saturday, time.Sunday:
		return BankStatus{Closed: true, Reason: WeekendReason}
	}

	names := observedHolidayNames(today, bank, cal)

	// A holiday falling on a weekend is observed the adjacent business day,
	// so Fridays also look at Saturday and Mondays at Sunday.
	switch today.Weekday() {
	case time.Friday:
		names = append(names, observedHolidayNames(today.AddDate(0, 0, 1), bank, cal)...)
	case time.Monday:
		names = append(names, observedHolidayNames(today.AddDate(0, 0, -1), bank, cal)...)
	}

	names = dedupeNames(names)
	if len(names) == 0 {
		return BankStatus{}
	}
	return BankStatus{Closed: true, Reason: toSentence(names)}
}

// observedHolidayNames returns the holiday names on day that the bank's
// schedule observes, in calendar order.
func observedHolidayNames(day time.Time, bank BankDescriptor, cal HolidayCalendar) []string {
	observed := make(map[string]bool, len(bank.ObservedHolidays))
	for _, name := range bank.ObservedHolidays {
		observed[name] = true
	}

	var names []string
	for _, h := range cal.HolidaysOn(day, bank.HolidayRegions) {
		if observed[h.Name] {
			names = append(names, h.Name)
		}
	}
	return names
}

// dedupeNames drops repeated names while keeping first-seen order.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// toSentence joins names the way a human would write them: "A", "A and B",
// "A, B, and C".
func toSentence(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
