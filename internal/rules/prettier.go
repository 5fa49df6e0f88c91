package rules

import (
	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/types"
)

var prettierDevDependencies = []string{
	"prettier",
	"eslint-config-prettier",
	"@ianvs/prettier-plugin-sort-imports",
}

// PrettierRule checks the Prettier toolchain dev dependencies.
type PrettierRule struct{}

// Name implements Rule.
func (PrettierRule) Name() string { return "prettier" }

// Evaluate implements Rule. tailwindcss is only a trigger for the tailwind
// plugin and is never reported missing itself.
func (PrettierRule) Evaluate(_ string, m *manifest.Manifest) ([]types.Finding, error) {
	deps := append([]string(nil), prettierDevDependencies...)
	if m.HasDevDependency("tailwindcss") {
		deps = append(deps, "prettier-plugin-tailwindcss")
	}
	return checkDevDependencies(m, deps), nil
}
