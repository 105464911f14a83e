package verstamp

import (
	"fmt"
	"strconv"
)

// Descriptor is the resolved version metadata for one build. All
// fields are derived from the supplied Components; the string forms are
// computed from the numeric tuples plus the opaque revision and tag, so
// the two representations always agree.
type Descriptor struct {
	// FileVersion is (major, minor, patch, rcOrdinal), most significant
	// first. The consuming metadata format reads the tuple positionally.
	FileVersion [4]int

	// ProductVersion is (major, minor, patch).
	ProductVersion [3]int

	// FileVersionString is "major.minor.patch.revision". Note the
	// fourth segment is the revision, not the rc ordinal.
	FileVersionString string

	// ProductVersionString is "major.minor.patch" with the rc tag
	// appended directly, e.g. "7.4.0rc1".
	ProductVersionString string

	CompanyName     string
	ProductName     string
	FileDescription string

	// LegalCopyright is the company literal prefixed with the
	// license-years span, e.g. "Copyright (C) 2001-2025 Carl Kittelberger".
	LegalCopyright string
}

// Resolve composes a Descriptor from the supplied components after
// merging in the built-in defaults for any unbound optional field. The
// supplied binding always wins over the default.
//
// It fails with *InvalidComponentError when major, minor or patch is
// unbound, or when any numeric component is negative. No partial
// descriptor is returned on failure.
func Resolve(c Components) (Descriptor, error) {
	c = Merge(defaults(), c)

	major, err := requireNonNegative("major", c.Major)
	if err != nil {
		return Descriptor{}, err
	}
	minor, err := requireNonNegative("minor", c.Minor)
	if err != nil {
		return Descriptor{}, err
	}
	patch, err := requireNonNegative("patch", c.Patch)
	if err != nil {
		return Descriptor{}, err
	}
	revision, err := requireNonNegative("revision", c.Revision)
	if err != nil {
		return Descriptor{}, err
	}
	rcOrdinal, err := requireNonNegative("rc_ordinal", c.RCOrdinal)
	if err != nil {
		return Descriptor{}, err
	}

	d := Descriptor{
		FileVersion:     [4]int{major, minor, patch, rcOrdinal},
		ProductVersion:  [3]int{major, minor, patch},
		CompanyName:     *c.CompanyName,
		ProductName:     *c.ProductName,
		FileDescription: *c.FileDescription,
		LegalCopyright:  fmt.Sprintf("Copyright (C) %s %s", *c.LicenseYears, *c.CompanyName),
	}
	d.FileVersionString = fmt.Sprintf("%d.%d.%d.%d",
		d.FileVersion[0], d.FileVersion[1], d.FileVersion[2], revision)
	d.ProductVersionString = fmt.Sprintf("%d.%d.%d%s",
		d.ProductVersion[0], d.ProductVersion[1], d.ProductVersion[2], *c.RCTag)
	return d, nil
}

func requireNonNegative(name string, v *int) (int, error) {
	if v == nil {
		return 0, &InvalidComponentError{Component: name, Reason: "not bound"}
	}
	if *v < 0 {
		return 0, &InvalidComponentError{
			Component: name,
			Value:     strconv.Itoa(*v),
			Reason:    "must not be negative",
		}
	}
	return *v, nil
}
