// Package main is the build-step CLI. It binds version components from
// flags and an optional overrides file, resolves them, and emits the
// goversioninfo-compatible VERSIONINFO document consumed by the
// resource-embedding step.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/icedream/verstamp"
)

// Build information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	showVersion   bool
	overridesPath string
	outputPath    string
	versionString string

	majorFlag        int
	minorFlag        int
	patchFlag        int
	revisionFlag     int
	rcTagFlag        string
	rcOrdinalFlag    int
	licenseYearsFlag string
	companyFlag      string
	productFlag      string
	descriptionFlag  string
)

func init() {
	pflag.BoolVarP(&showVersion, "version", "V", false, "print the tool version and exit")
	pflag.StringVarP(&overridesPath, "overrides", "f", "", "overrides file binding components (YAML or JSON)")
	pflag.StringVarP(&outputPath, "output", "o", "-", "write the VERSIONINFO document to this file ('-' for stdout)")
	pflag.StringVar(&versionString, "version-string", "", "bind numeric components and rc tag from a dotted or semver string")

	pflag.IntVar(&majorFlag, "major", 0, "major version")
	pflag.IntVar(&minorFlag, "minor", 0, "minor version")
	pflag.IntVar(&patchFlag, "patch", 0, "patch version")
	pflag.IntVar(&revisionFlag, "revision", 0, "revision (fourth file version string segment)")
	pflag.StringVar(&rcTagFlag, "rc-tag", "", "release candidate tag, appended verbatim to the product version")
	pflag.IntVar(&rcOrdinalFlag, "rc-num", 0, "release candidate ordinal (fourth file version tuple element)")
	pflag.StringVar(&licenseYearsFlag, "license-years", "", "copyright year span, e.g. 2001-2025")
	pflag.StringVar(&companyFlag, "company", "", "company name")
	pflag.StringVar(&productFlag, "product-name", "", "product name")
	pflag.StringVar(&descriptionFlag, "description", "", "file description")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	pflag.Parse()

	if showVersion {
		fmt.Printf("verstamp version %s, commit %s, built at %s\n", version, commit, date)
		return
	}

	components, err := bindComponents()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to bind version components")
	}

	descriptor, err := verstamp.Resolve(components)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve version descriptor")
	}

	document, err := json.MarshalIndent(descriptor.VersionInfo(), "", "\t")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode VERSIONINFO document")
	}
	document = append(document, '\n')

	if outputPath == "-" {
		if _, err := os.Stdout.Write(document); err != nil {
			log.Fatal().Err(err).Msg("Failed to write VERSIONINFO document")
		}
		return
	}
	if err := os.WriteFile(outputPath, document, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Failed to write VERSIONINFO document")
	}
	log.Info().
		Str("file_version", descriptor.FileVersionString).
		Str("product_version", descriptor.ProductVersionString).
		Str("output", outputPath).
		Msg("Resolved version descriptor")
}

// bindComponents gathers component bindings in define-once precedence
// order: individual flags win over --version-string, which wins over
// the overrides file. Components bound nowhere fall back to the
// resolver's built-in defaults.
func bindComponents() (verstamp.Components, error) {
	var components verstamp.Components

	if overridesPath != "" {
		fromFile, err := loadOverrides(overridesPath)
		if err != nil {
			return verstamp.Components{}, err
		}
		components = fromFile
	}

	if versionString != "" {
		parsed, err := verstamp.Parse(versionString)
		if err != nil {
			return verstamp.Components{}, err
		}
		components = verstamp.Merge(components, parsed)
	}

	return verstamp.Merge(components, componentsFromFlags()), nil
}

// componentsFromFlags binds only the components whose flags were
// actually set, so an untouched flag never shadows a file or
// version-string binding.
func componentsFromFlags() verstamp.Components {
	var c verstamp.Components
	if pflag.CommandLine.Changed("major") {
		c.Major = verstamp.Int(majorFlag)
	}
	if pflag.CommandLine.Changed("minor") {
		c.Minor = verstamp.Int(minorFlag)
	}
	if pflag.CommandLine.Changed("patch") {
		c.Patch = verstamp.Int(patchFlag)
	}
	if pflag.CommandLine.Changed("revision") {
		c.Revision = verstamp.Int(revisionFlag)
	}
	if pflag.CommandLine.Changed("rc-tag") {
		c.RCTag = verstamp.String(rcTagFlag)
	}
	if pflag.CommandLine.Changed("rc-num") {
		c.RCOrdinal = verstamp.Int(rcOrdinalFlag)
	}
	if pflag.CommandLine.Changed("license-years") {
		c.LicenseYears = verstamp.String(licenseYearsFlag)
	}
	if pflag.CommandLine.Changed("company") {
		c.CompanyName = verstamp.String(companyFlag)
	}
	if pflag.CommandLine.Changed("product-name") {
		c.ProductName = verstamp.String(productFlag)
	}
	if pflag.CommandLine.Changed("description") {
		c.FileDescription = verstamp.String(descriptionFlag)
	}
	return c
}
