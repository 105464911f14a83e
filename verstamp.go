// Package verstamp resolves build-time version components into the
// strings and numeric tuples embedded in a binary's VERSIONINFO
// metadata block.
//
// Components are bound independently by the build (flags, an overrides
// file, or code) and merged with define-once-if-absent semantics: a
// component already bound by the build is never overridden by a
// built-in default. Resolve then derives every output string from the
// numeric tuples, so the string and tuple forms of a version cannot
// drift apart.
package verstamp

// Built-in defaults for the optional components. Major, minor and
// patch have no defaults; leaving them unbound is a resolution error.
const (
	DefaultCompanyName     = "Carl Kittelberger"
	DefaultProductName     = "verstamp"
	DefaultFileDescription = "verstamp"
	DefaultLicenseYears    = "2025"
)

// Components carries the independently supplied version inputs for a
// single build. A nil field means "not bound by the build"; Resolve
// substitutes the built-in default for optional fields and fails for
// unbound major/minor/patch.
//
// The struct tags make an overrides file (YAML or JSON) unmarshal
// directly into Components.
type Components struct {
	Major *int `yaml:"major,omitempty" json:"major,omitempty"`
	Minor *int `yaml:"minor,omitempty" json:"minor,omitempty"`
	Patch *int `yaml:"patch,omitempty" json:"patch,omitempty"`

	// Revision is the fourth segment of the file version string. It is
	// independent of RCOrdinal, which is the fourth element of the
	// numeric file version tuple.
	Revision *int `yaml:"revision,omitempty" json:"revision,omitempty"`

	// RCTag is appended verbatim to the product version string, with no
	// separator inserted; a tag that wants one must carry it (e.g.
	// "-rc1"). RCOrdinal is the sortable integer form of the same
	// pre-release qualifier.
	RCTag     *string `yaml:"rc_tag,omitempty" json:"rc_tag,omitempty"`
	RCOrdinal *int    `yaml:"rc_ordinal,omitempty" json:"rc_ordinal,omitempty"`

	// LicenseYears is an opaque span like "2001-2025"; it is
	// interpolated into the copyright string without validation.
	LicenseYears *string `yaml:"license_years,omitempty" json:"license_years,omitempty"`

	CompanyName     *string `yaml:"company_name,omitempty" json:"company_name,omitempty"`
	ProductName     *string `yaml:"product_name,omitempty" json:"product_name,omitempty"`
	FileDescription *string `yaml:"file_description,omitempty" json:"file_description,omitempty"`
}

// Int returns a pointer to v, for binding a numeric component inline.
func Int(v int) *int { return &v }

// String returns a pointer to v, for binding a string component inline.
func String(v string) *string { return &v }

// Merge returns base with every component that is bound in override
// taking precedence. A component bound only in base keeps its binding;
// a component bound in neither stays unbound. Neither argument is
// modified.
func Merge(base, override Components) Components {
	merged := base
	if override.Major != nil {
		merged.Major = override.Major
	}
	if override.Minor != nil {
		merged.Minor = override.Minor
	}
	if override.Patch != nil {
		merged.Patch = override.Patch
	}
	if override.Revision != nil {
		merged.Revision = override.Revision
	}
	if override.RCTag != nil {
		merged.RCTag = override.RCTag
	}
	if override.RCOrdinal != nil {
		merged.RCOrdinal = override.RCOrdinal
	}
	if override.LicenseYears != nil {
		merged.LicenseYears = override.LicenseYears
	}
	if override.CompanyName != nil {
		merged.CompanyName = override.CompanyName
	}
	if override.ProductName != nil {
		merged.ProductName = override.ProductName
	}
	if override.FileDescription != nil {
		merged.FileDescription = override.FileDescription
	}
	return merged
}

// defaults binds the optional components to their built-in literals.
// Major, minor and patch are deliberately left unbound.
func defaults() Components {
	return Components{
		Revision:        Int(0),
		RCTag:           String(""),
		RCOrdinal:       Int(0),
		LicenseYears:    String(DefaultLicenseYears),
		CompanyName:     String(DefaultCompanyName),
		ProductName:     String(DefaultProductName),
		FileDescription: String(DefaultFileDescription),
	}
}
