package rules

import (
	"fmt"

	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/types"
)

// ESLintRule checks that ESLint and the expected plugins are installed and,
// when a legacy .eslintrc.json exists, enabled.
type ESLintRule struct{}

// Name implements Rule.
func (ESLintRule) Name() string { return "eslint" }

// Evaluate implements Rule.
func (ESLintRule) Evaluate(dir string, m *manifest.Manifest) ([]types.Finding, error) {
	if !m.HasDevDependency("eslint") {
		return []types.Finding{missingDevDependency("eslint")}, nil
	}

	cfg, err := manifest.ReadLintConfig(dir)
	if err != nil {
		return nil, err
	}

	var findings []types.Finding
	if m.HasDevDependency("ava") {
		if f, ok := checkESLintPlugin(m, cfg, "ava"); ok {
			findings = append(findings, f)
		}
	}
	if f, ok := checkESLintPlugin(m, cfg, "unicorn"); ok {
		findings = append(findings, f)
	}
	return findings, nil
}

// checkESLintPlugin returns at most one finding: the plugin is not installed,
// or it is installed but not extended by an existing legacy config.
func checkESLintPlugin(m *manifest.Manifest, cfg *manifest.LintConfig, plugin string) (types.Finding, bool) {
	pkg := "eslint-plugin-" + plugin
	if !m.HasDevDependency(pkg) {
		return missingDevDependency(pkg), true
	}

	preset := fmt.Sprintf("plugin:%s/recommended", plugin)
	if cfg.Exists && !cfg.Extends.Contains(preset) {
		return types.Finding{
			Kind:      types.KindPluginNotEnabled,
			Subsystem: types.SubsystemLegacyESLint,
			Subject:   preset,
			Message:   fmt.Sprintf("missing `%s` in `extends`", preset),
		}, true
	}
	return types.Finding{}, false
}
