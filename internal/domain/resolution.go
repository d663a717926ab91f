package domain

import (
	"context"
	"fmt"
)

// ErrorKind classifies geolocation lookup failures. All kinds collapse to
// "no country resolved" for the caller; they differ only in what gets logged
// and alerted.
type ErrorKind string

const (
	ErrorKindTimeout               ErrorKind = "Timeout"
	ErrorKindConnectionFailed      ErrorKind = "ConnectionFailed"
	ErrorKindUnknownResponseFormat ErrorKind = "UnknownResponseFormat"
	ErrorKindUnsupportedIP         ErrorKind = "UnsupportedIp"
	ErrorKindUnknownResponseError  ErrorKind = "UnknownResponseError"
	ErrorKindReceivedBadCountry    ErrorKind = "ReceivedBadCountry"
)

// Expected reports whether the failure is a routine absence of geolocation
// signal rather than a fault worth paging on. Reserved and unresolvable IPs
// are normal traffic; everything else goes to the error tracker.
func (k ErrorKind) Expected() bool {
	return k == ErrorKindUnsupportedIP
}

// LookupError is the typed failure returned by CountryLocator
// implementations. Code carries the provider's country answer when one was
// received (the bad-country sentinel, for example).
type LookupError struct {
	Kind ErrorKind
	Code string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("country lookup %s: %v", e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// CountryLocator resolves an IP address to a raw provider country code.
// Failures are reported as *LookupError.
type CountryLocator interface {
	CountryForIP(ctx context.Context, remoteIP string) (string, error)
}

// LocationResolution is the outcome of resolving a request's country.
// CountryCode is set exactly when Success is true; ErrorKind is set exactly
// when it is false.
type LocationResolution struct {
	Success     bool
	CountryCode CountryCode
	ErrorKind   ErrorKind
}
