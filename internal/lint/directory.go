package lint

import (
	"fmt"
	"path/filepath"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/project"
	"github.com/sofic/sofic/internal/rules"
	"github.com/sofic/sofic/internal/types"
)

// defaultFilesToCheck must exist in every checked directory.
var defaultFilesToCheck = []string{".editorconfig"}

// gitFilesToCheck must additionally exist in git repositories.
var gitFilesToCheck = []string{".gitignore", ".gitattributes"}

// ConfigPattern is a config file matched by name pattern against the
// directory listing rather than by fixed file name.
type ConfigPattern struct {
	Pattern   string
	Subsystem string
	Message   string
}

// jsConfigPatterns are required in JS packages, in report order.
var jsConfigPatterns = []ConfigPattern{
	{
		Pattern:   "eslint.config.{js,mjs,ts}",
		Subsystem: types.SubsystemESLint,
		Message:   "missing config (`eslint.config.js`, `eslint.config.mjs`, or `eslint.config.ts`)",
	},
	{
		Pattern:   "prettier.config.{js,mjs,ts}",
		Subsystem: types.SubsystemPrettier,
		Message:   "missing config (`prettier.config.js`, `prettier.config.mjs`, or `prettier.config.ts`)",
	},
}

// EvaluateDirectory classifies dir and runs every applicable check.
//
// Findings come out in a fixed order: required files, pattern-matched
// configs, npm, eslint, prettier, then CI workflow. An error means dir could
// not be understood (malformed package.json, unreadable listing, ...).
func EvaluateDirectory(dir string) (*project.Info, []types.Finding, error) {
	info, err := project.Detect(dir)
	if err != nil {
		return nil, nil, err
	}

	var findings []types.Finding

	filesToCheck := append([]string(nil), defaultFilesToCheck...)
	if info.IsGitRepo {
		filesToCheck = append(filesToCheck, gitFilesToCheck...)
	}
	for _, name := range filesToCheck {
		if !fsprobe.FileExists(filepath.Join(dir, name)) {
			findings = append(findings, types.Finding{
				Kind:      types.KindMissingFile,
				Subsystem: types.SubsystemFiles,
				Subject:   name,
				Message:   fmt.Sprintf("missing `%s`", name),
			})
		}
	}

	if info.IsJSPackage {
		for _, cp := range jsConfigPatterns {
			found, err := fsprobe.MatchAny(dir, cp.Pattern)
			if err != nil {
				return info, nil, err
			}
			if !found {
				findings = append(findings, types.Finding{
					Kind:      types.KindMissingConfig,
					Subsystem: cp.Subsystem,
					Subject:   cp.Pattern,
					Message:   cp.Message,
				})
			}
		}

		m, err := manifest.Read(dir)
		if err != nil {
			return info, nil, err
		}

		for _, rule := range rules.JavaScriptRules() {
			ruleFindings, err := rule.Evaluate(dir, m)
			if err != nil {
				return info, nil, fmt.Errorf("%s rule: %w", rule.Name(), err)
			}
			findings = append(findings, ruleFindings...)
		}
	}

	if info.IsGitRepo {
		ciFindings, err := rules.CIRule{Host: info.Host}.Evaluate(dir, nil)
		if err != nil {
			return info, nil, fmt.Errorf("ci rule: %w", err)
		}
		findings = append(findings, ciFindings...)
	}

	return info, findings, nil
}
