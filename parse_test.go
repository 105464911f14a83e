package verstamp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/verstamp"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		version string
		want    verstamp.Components
	}{
		{
			version: "7.2.5.3",
			want: verstamp.Components{
				Major:    verstamp.Int(7),
				Minor:    verstamp.Int(2),
				Patch:    verstamp.Int(5),
				Revision: verstamp.Int(3),
			},
		},
		{
			version: "7.4.0rc1",
			want: verstamp.Components{
				Major:     verstamp.Int(7),
				Minor:     verstamp.Int(4),
				Patch:     verstamp.Int(0),
				RCTag:     verstamp.String("rc1"),
				RCOrdinal: verstamp.Int(1),
			},
		},
		{
			version: "1.2.3",
			want: verstamp.Components{
				Major: verstamp.Int(1),
				Minor: verstamp.Int(2),
				Patch: verstamp.Int(3),
			},
		},
		{
			// Two-segment shorthand binds patch to zero.
			version: "1.2",
			want: verstamp.Components{
				Major: verstamp.Int(1),
				Minor: verstamp.Int(2),
				Patch: verstamp.Int(0),
			},
		},
		{
			// Semver pre-release keeps its leading hyphen in the tag.
			version: "v1.2.3-rc.1",
			want: verstamp.Components{
				Major:     verstamp.Int(1),
				Minor:     verstamp.Int(2),
				Patch:     verstamp.Int(3),
				RCTag:     verstamp.String("-rc.1"),
				RCOrdinal: verstamp.Int(1),
			},
		},
		{
			// Numeric semver build metadata binds the revision.
			version: "1.2.3+45",
			want: verstamp.Components{
				Major:    verstamp.Int(1),
				Minor:    verstamp.Int(2),
				Patch:    verstamp.Int(3),
				Revision: verstamp.Int(45),
			},
		},
		{
			// Non-numeric build metadata is ignored.
			version: "1.2.3+gabc123",
			want: verstamp.Components{
				Major: verstamp.Int(1),
				Minor: verstamp.Int(2),
				Patch: verstamp.Int(3),
			},
		},
		{
			version: "0.3.0.0",
			want: verstamp.Components{
				Major:    verstamp.Int(0),
				Minor:    verstamp.Int(3),
				Patch:    verstamp.Int(0),
				Revision: verstamp.Int(0),
			},
		},
		{
			version: "7.2.5.3beta2",
			want: verstamp.Components{
				Major:     verstamp.Int(7),
				Minor:     verstamp.Int(2),
				Patch:     verstamp.Int(5),
				Revision:  verstamp.Int(3),
				RCTag:     verstamp.String("beta2"),
				RCOrdinal: verstamp.Int(2),
			},
		},
	} {
		t.Run(tt.version, func(t *testing.T) {
			got, err := verstamp.Parse(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, version := range []string{
		"",
		"v",
		"abc",
		"1.2.3.4.5",
		"-1.2.3",
		"1..3",
		"1.2.x",
	} {
		t.Run(version, func(t *testing.T) {
			_, err := verstamp.Parse(version)
			var invalid *verstamp.InvalidComponentError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParse_ResolvesToSameProductVersion(t *testing.T) {
	components, err := verstamp.Parse("7.4.0rc1")
	require.NoError(t, err)

	d, err := verstamp.Resolve(components)
	require.NoError(t, err)
	assert.Equal(t, "7.4.0rc1", d.ProductVersionString)
}
