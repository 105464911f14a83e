package verstamp

import "fmt"

// InvalidComponentError is the single failure kind of the resolver: a
// required component is unbound, or a numeric component is negative or
// not a number. No descriptor is produced when it is returned.
type InvalidComponentError struct {
	// Component names the offending input ("major", "rc_ordinal", ...).
	Component string

	// Value is the rejected input as supplied, empty when the component
	// was absent entirely.
	Value string

	Reason string
}

func (e *InvalidComponentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid component %s: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("invalid component %s (%q): %s", e.Component, e.Value, e.Reason)
}
