// Command schedule prints the bank closure schedule for a country and year:
// every weekday the banks are closed and why, including holidays shifted off
// weekends onto the adjacent business day. Useful for eyeballing the holiday
// tables against the published Federal Reserve schedule.
//
// Usage:
//
//	go run ./cmd/schedule -country US -year 2026
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/bank-status-service/internal/calendar"
	"github.com/couchcryptid/bank-status-service/internal/domain"
)

func main() {
	countryCode := flag.String("country", "US", "two-letter country code")
	year := flag.Int("year", time.Now().Year(), "calendar year to print")
	flag.Parse()

	country, err := domain.CountryFor(domain.NormalizeCountryCode(*countryCode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "unsupported country %q\n", *countryCode)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(country.Bank.TimeZone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load time zone: %v\n", err)
		os.Exit(1)
	}

	cal := calendar.New()
	defer domain.SetClock(nil)

	fmt.Printf("%s bank closures for %d (%s)\n", country.DisplayName, *year, country.Bank.ScheduleName)

	day := time.Date(*year, time.January, 1, 12, 0, 0, 0, loc)
	for day.Year() == *year {
		domain.SetClock(clockwork.NewFakeClockAt(day))

		status, err := domain.BankStatusNow(country, cal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "status for %s: %v\n", day.Format("2006-01-02"), err)
			os.Exit(1)
		}
		if status.Closed && status.Reason != domain.WeekendReason {
			fmt.Printf("  %s (%s): %s\n", day.Format("2006-01-02"), day.Weekday(), status.Reason)
		}

		day = day.AddDate(0, 0, 1)
	}
}
