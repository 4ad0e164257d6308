// Centralized error taxonomy for the earnings engine.
//
// Every failure the engine can produce is deterministic given its
// inputs: there is no I/O and no transient condition, so nothing here
// is retryable. Errors split into two families: bad reference data or
// bad request input (client errors) and missing lookups (not found).
// Packages wrap these sentinels with context via fmt.Errorf and %w;
// callers classify with errors.Is or the helpers below.
package domain

import "errors"

var (
	// ErrInvalidProfile is returned for malformed or out-of-range
	// reference data, e.g. a non-positive cost-of-living index.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidSchedule is returned when shift-mix hours do not
	// reconcile with the declared weekly hours, or hours are negative.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrUnknownJurisdiction is returned when a jurisdiction id has no
	// table entry. The engine never substitutes a default jurisdiction.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrUnknownCity is returned when a city slug has no profile or no
	// city-to-state mapping.
	ErrUnknownCity = errors.New("unknown city")

	// ErrUnknownRole is returned when a role id has no wage profile.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUnknownDifferential is returned when a shift-mix entry
	// references a differential rule that is not in the table.
	ErrUnknownDifferential = errors.New("unknown differential rule")

	// ErrUnknownTool is returned when a tool id has no preset entry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrValidation is returned by the preset resolver when a tool's
	// declared parameter constraints are violated.
	ErrValidation = errors.New("validation failed")
)

// IsNotFound reports whether the error indicates a missing lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownJurisdiction) ||
		errors.Is(err, ErrUnknownCity) ||
		errors.Is(err, ErrUnknownRole) ||
		errors.Is(err, ErrUnknownDifferential) ||
		errors.Is(err, ErrUnknownTool)
}

// IsClientError reports whether the error is caused by bad input
// rather than system failure. These surface directly to end users.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidSchedule) ||
		errors.Is(err, ErrInvalidProfile)
}
