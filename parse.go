package verstamp

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Regexp for matching dotted versions that are not semver, such as the
// four-segment file version form or versions with an attached
// pre-release qualifier. The groups are:
// 1  the major version
// 2  the minor version
// 3  the patch version, or empty if none
// 4  the revision, or empty if none
// 5  the entire pre-release qualifier, if present
// 6  the pre-release type ("alpha", "beta" or "rc")
// 7  the pre-release number
var dottedRegexp = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:\.(\d+))?((alpha|beta|rc)(\d+))?$`)

var ordinalRegexp = regexp.MustCompile(`(\d+)$`)

// Parse binds version components from a version string. It accepts
// semver ("1.2.3", "v1.2.3-rc.1+5") and the dotted forms used by
// binary metadata ("7.2.5.3", "7.4.0rc1", "1.2"). Examples:
//
//	"7.2.5.3"       => major 7, minor 2, patch 5, revision 3
//	"7.4.0rc1"      => major 7, minor 4, patch 0, rc tag "rc1", rc ordinal 1
//	"v1.2.3-rc.1"   => major 1, minor 2, patch 3, rc tag "-rc.1", rc ordinal 1
//	"1.2"           => major 1, minor 2, patch 0
//
// Only the components present in the input are bound; semver build
// metadata binds the revision when it is numeric and is ignored
// otherwise. A malformed or negative segment fails with
// *InvalidComponentError.
func Parse(version string) (Components, error) {
	raw := strings.TrimPrefix(version, "v")
	if raw == "" {
		return Components{}, &InvalidComponentError{
			Component: "version",
			Value:     version,
			Reason:    "empty version string",
		}
	}
	if semver.IsValid("v" + raw) {
		return parseSemver(raw), nil
	}
	return parseDotted(version, raw)
}

// parseSemver splits a known-valid semver string. The pre-release
// qualifier keeps its leading hyphen so that appending it to the dotted
// product version reproduces the input form.
func parseSemver(raw string) Components {
	v := "v" + raw
	pre := semver.Prerelease(v)
	build := semver.Build(v)

	base := strings.TrimSuffix(v, build)
	base = strings.TrimSuffix(base, pre)
	// Canonical fills in segments omitted by shorthand like "v1.2".
	segments := strings.Split(strings.TrimPrefix(semver.Canonical(base), "v"), ".")

	// Segments of a valid semver string always parse.
	major, _ := strconv.Atoi(segments[0])
	minor, _ := strconv.Atoi(segments[1])
	patch, _ := strconv.Atoi(segments[2])

	c := Components{Major: Int(major), Minor: Int(minor), Patch: Int(patch)}
	if pre != "" {
		c.RCTag = String(pre)
		if m := ordinalRegexp.FindString(pre); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				c.RCOrdinal = Int(n)
			}
		}
	}
	if build != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(build, "+")); err == nil {
			c.Revision = Int(n)
		}
	}
	return c
}

func parseDotted(version, raw string) (Components, error) {
	m := dottedRegexp.FindStringSubmatch(raw)
	if m == nil {
		return Components{}, &InvalidComponentError{
			Component: "version",
			Value:     version,
			Reason:    "unrecognized version syntax",
		}
	}

	major, err := parseSegment("major", m[1])
	if err != nil {
		return Components{}, err
	}
	minor, err := parseSegment("minor", m[2])
	if err != nil {
		return Components{}, err
	}
	c := Components{Major: Int(major), Minor: Int(minor), Patch: Int(0)}
	if m[3] != "" {
		patch, err := parseSegment("patch", m[3])
		if err != nil {
			return Components{}, err
		}
		c.Patch = Int(patch)
	}
	if m[4] != "" {
		revision, err := parseSegment("revision", m[4])
		if err != nil {
			return Components{}, err
		}
		c.Revision = Int(revision)
	}
	if m[5] != "" {
		c.RCTag = String(m[5])
		ordinal, err := parseSegment("rc_ordinal", m[7])
		if err != nil {
			return Components{}, err
		}
		c.RCOrdinal = Int(ordinal)
	}
	return c, nil
}

func parseSegment(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidComponentError{Component: name, Value: s, Reason: "not a valid number"}
	}
	return n, nil
}
