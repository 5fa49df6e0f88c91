// Package types provides shared types used across the sofic codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Kind classifies a finding.
type Kind string

// Finding kinds.
const (
	KindMissingFile       Kind = "missing-file"
	KindMissingConfig     Kind = "missing-config"
	KindMissingDependency Kind = "missing-dependency"
	KindPluginNotEnabled  Kind = "plugin-not-enabled"
	KindUnexpectedFile    Kind = "unexpected-file"
	KindMissingWorkflow   Kind = "missing-workflow"
)

// Subsystem constants. These prefix the rendered finding.
const (
	SubsystemFiles         = "files"
	SubsystemPackageJSON   = "package.json"
	SubsystemLegacyESLint  = ".eslintrc.json"
	SubsystemESLint        = "ESLint"
	SubsystemPrettier      = "Prettier"
	SubsystemNPMPackage    = "npm package"
	SubsystemGitHubActions = "GitHub Actions"
	SubsystemGitLabCI      = "GitLab CI"
)

// Finding is a single reportable violation. Findings are data, not errors:
// evaluation always continues after one is produced.
type Finding struct {
	Kind      Kind   `json:"kind"`
	Subsystem string `json:"subsystem"`
	Subject   string `json:"subject"` // file, dependency or plugin the finding is about
	Message   string `json:"message"`
}

// String renders the finding as "<subsystem>: <message>".
func (f Finding) String() string {
	return f.Subsystem + ": " + f.Message
}

// Strings renders a slice of findings, preserving order.
func Strings(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.String()
	}
	return out
}
