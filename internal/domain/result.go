package domain

// RequestError names the expected degradations of a bank-status request.
// These are ordinary result values, not raised errors: "we don't know your
// country" and "your country isn't supported" are routine branches of
// normal traffic.
type RequestError string

const (
	RequestErrorNone               RequestError = ""
	RequestErrorNoCountry          RequestError = "no_country"
	RequestErrorUnsupportedCountry RequestError = "unsupported_country"
)

// CheckResult is the end-to-end decision handed to the presentation layer.
// Country and Status are set exactly when Error is empty.
type CheckResult struct {
	Country *Country
	Status  *BankStatus
	Error   RequestError
}
