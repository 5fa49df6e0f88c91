package rules

import (
	"path/filepath"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/types"
)

// NPMRule checks publishing conventions for non-private packages.
//
// Packages must not commit package-lock.json; that is house policy for
// published libraries, not an inverted check.
type NPMRule struct{}

// Name implements Rule.
func (NPMRule) Name() string { return "npm" }

// Evaluate implements Rule.
func (NPMRule) Evaluate(dir string, m *manifest.Manifest) ([]types.Finding, error) {
	if m.IsPrivate() {
		return nil, nil
	}

	var findings []types.Finding
	exists := func(name string) bool {
		return fsprobe.FileExists(filepath.Join(dir, name))
	}

	if exists("package-lock.json") {
		findings = append(findings, types.Finding{
			Kind:      types.KindUnexpectedFile,
			Subsystem: types.SubsystemNPMPackage,
			Subject:   "package-lock.json",
			Message:   "should not have a lockfile (`package-lock.json`)",
		})
	}

	if !exists(".npmrc") {
		findings = append(findings, types.Finding{
			Kind:      types.KindMissingFile,
			Subsystem: types.SubsystemNPMPackage,
			Subject:   ".npmrc",
			Message:   "should have a `.npmrc` file",
		})
	}

	// TypeScript packages generate their own declarations.
	if m.HasDevDependency("typescript") || !exists("index.js") {
		return findings, nil
	}

	if !exists("index.d.ts") {
		findings = append(findings, types.Finding{
			Kind:      types.KindMissingFile,
			Subsystem: types.SubsystemNPMPackage,
			Subject:   "index.d.ts",
			Message:   "should have type definitions (`index.d.ts`)",
		})
	}
	if !exists("index.test-d.ts") {
		findings = append(findings, types.Finding{
			Kind:      types.KindMissingFile,
			Subsystem: types.SubsystemNPMPackage,
			Subject:   "index.test-d.ts",
			Message:   "should have type definition tests (`index.test-d.ts`)",
		})
	}
	return findings, nil
}
