// Package rules implements the independent checks run against a directory.
//
// Every rule takes the directory and its already-parsed manifest and returns
// findings in a fixed, declared order. Rules never share state, so any one of
// them can be evaluated on its own.
package rules

import (
	"fmt"

	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/types"
)

// Rule is a single check over a directory.
type Rule interface {
	// Name identifies the rule in logs.
	Name() string

	// Evaluate returns the findings for dir. An error means the directory
	// could not be understood (e.g. a malformed config), not a violation.
	Evaluate(dir string, m *manifest.Manifest) ([]types.Finding, error)
}

// JavaScriptRules returns the rules for JS packages in evaluation order.
func JavaScriptRules() []Rule {
	return []Rule{NPMRule{}, ESLintRule{}, PrettierRule{}}
}

func missingDevDependency(name string) types.Finding {
	return types.Finding{
		Kind:      types.KindMissingDependency,
		Subsystem: types.SubsystemPackageJSON,
		Subject:   name,
		Message:   fmt.Sprintf("missing `%s` in `devDependencies`", name),
	}
}

// checkDevDependencies reports each name absent from devDependencies, in order.
func checkDevDependencies(m *manifest.Manifest, names []string) []types.Finding {
	var findings []types.Finding
	for _, name := range names {
		if !m.HasDevDependency(name) {
			findings = append(findings, missingDevDependency(name))
		}
	}
	return findings
}
