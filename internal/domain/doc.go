// Package domain models the bank-status decision: given a visitor's country,
// are that country's banks open today?
//
// # Country registry
//
// Supported countries are a fixed table declared in this package. Each entry
// carries a [BankDescriptor] with everything needed to compute a status:
// the schedule the answer is based on (for the US, the Federal Reserve Bank
// holiday schedule), the IANA time zone that defines "today", the holiday
// regions consulted in the calendar data, and the allow-list of holiday names
// the schedule actually observes. Adding a country means adding one table
// entry; nothing treats the supported set as open-ended at run time.
//
// # Status rules
//
// Saturday and Sunday are always closed with reason "the weekend", even when
// the day is also a holiday. On weekdays, holidays are collected for the day
// itself plus, on Fridays, the following Saturday and, on Mondays, the
// preceding Sunday. This mirrors the Federal Reserve convention that a
// holiday falling on a weekend is observed on the nearest business day:
// July 4 2015 was a Saturday, so banks closed Friday July 3; July 4 2021 was
// a Sunday, so banks closed Monday July 5. Collected names are filtered
// through the descriptor's observed-holiday allow-list, because the raw
// calendar data lists regional holidays (DC Emancipation Day, for example)
// that do not close banks.
//
// All weekday and date arithmetic happens after converting the current
// instant into the country's own time zone. Friday 23:00 in New York is
// Saturday in UTC; doing the comparison in UTC would report the weekend a
// night early.
//
// # Location resolution
//
// A request's country comes from an explicit visitor-supplied code when one
// is present, and from an IP geolocation lookup otherwise. Lookup failures
// are classified into [ErrorKind] values; every kind collapses to "no
// country resolved" for the caller and differs only in what gets logged and
// alerted. Routine absence of signal (reserved or unresolvable IPs) is not
// worth paging anyone for, while transport faults and malformed provider
// responses are.
package domain
