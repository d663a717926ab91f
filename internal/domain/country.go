package domain

import (
	"errors"
	"strings"
)

// CountryCode is a normalized upper-case two-letter country code. It is not
// validated against ISO 3166 beyond normalization; unsupported codes simply
// miss the registry.
type CountryCode string

// NormalizeCountryCode trims and upper-cases a raw code so that "us", " US "
// and "US" compare equal.
func NormalizeCountryCode(raw string) CountryCode {
	return CountryCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// RegionTag identifies a holiday region in the calendar data, e.g. "us" or
// "us_dc".
type RegionTag string

// BankDescriptor defines everything needed to compute a bank status for one
// country.
type BankDescriptor struct {
	ScheduleName     string
	ScheduleLink     string
	TimeZone         string // IANA zone id, e.g. "America/New_York"
	HolidayRegions   []RegionTag
	ObservedHolidays []string
}

// Country is one supported-country entry in the registry.
type Country struct {
	Code        CountryCode
	DisplayName string
	Bank        BankDescriptor
}

// ErrNoSuchCountry is returned by CountryFor when the code is not registered.
var ErrNoSuchCountry = errors.New("no such country")

// countries is the fixed registry, in the order supported-country listings
// are presented. Codes must be unique.
var countries = []Country{
	{
		Code:        "US",
		DisplayName: "United States",
		Bank: BankDescriptor{
			ScheduleName:   "Federal Reserve Bank",
			ScheduleLink:   "https://www.federalreserve.gov/aboutthefed/k8.htm",
			TimeZone:       "America/New_York",
			HolidayRegions: []RegionTag{"us", "us_dc"},
			ObservedHolidays: []string{
				"New Year's Day",
				"Martin Luther King, Jr. Day",
				"Presidents' Day",
				"Memorial Day",
				"Independence Day",
				"Labor Day",
				"Columbus Day",
				"Veterans Day",
				"Thanksgiving",
				"Christmas Day",
				"Inauguration Day",
			},
		},
	},
}

// CountryFor returns the Country registered under code, or ErrNoSuchCountry.
func CountryFor(code CountryCode) (Country, error) {
	for _, c := range countries {
		if c.Code == code {
			return c, nil
		}
	}
	return Country{}, ErrNoSuchCountry
}

// SupportedCountries returns the registered countries in registry order.
func SupportedCountries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}
