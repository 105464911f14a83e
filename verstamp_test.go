package verstamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icedream/verstamp"
)

func TestMerge(t *testing.T) {
	base := verstamp.Components{
		Major:        verstamp.Int(1),
		Minor:        verstamp.Int(2),
		LicenseYears: verstamp.String("2001-2025"),
	}
	override := verstamp.Components{
		Minor: verstamp.Int(9),
		Patch: verstamp.Int(4),
	}

	merged := verstamp.Merge(base, override)

	// Bound in override: override wins.
	assert.Equal(t, 9, *merged.Minor)
	// Bound only in base: base binding stays.
	assert.Equal(t, 1, *merged.Major)
	assert.Equal(t, "2001-2025", *merged.LicenseYears)
	// Bound only in override.
	assert.Equal(t, 4, *merged.Patch)
	// Bound in neither.
	assert.Nil(t, merged.RCTag)

	// Neither argument is modified.
	assert.Equal(t, 2, *base.Minor)
	assert.Nil(t, override.Major)
}

func TestMerge_EmptyOverride(t *testing.T) {
	base := verstamp.Components{Major: verstamp.Int(5)}
	merged := verstamp.Merge(base, verstamp.Components{})
	assert.Equal(t, base, merged)
}
