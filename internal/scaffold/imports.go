package scaffold

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)^\s*//.*$`)

	// static import/export declarations, including side-effect imports and
	// clauses spanning several lines
	importDecl = regexp.MustCompile(`(?m)(?:^|[;\s])(?:import|export)\s*(?:[\w$*{}\s,]+?\s*from\s*)?['"]([^'"\n]+)['"]`)

	pluginsArray  = regexp.MustCompile(`(?s)plugins\s*:\s*\[(.*?)\]`)
	stringLiteral = regexp.MustCompile(`['"]([^'"\n]+)['"]`)
)

// ReadESLintImports returns the packages imported by an ESLint flat config,
// in first-seen order. Relative, absolute, URL and node: specifiers are
// dropped, and deep imports are reduced to their package name.
func ReadESLintImports(source string) []string {
	source = stripComments(source)

	var specifiers []string
	for _, m := range importDecl.FindAllStringSubmatch(source, -1) {
		specifiers = append(specifiers, m[1])
	}
	return packageNames(specifiers)
}

// ReadPrettierPlugins returns the packages listed in a Prettier config's
// plugins array, reduced the same way as ESLint imports.
func ReadPrettierPlugins(source string) []string {
	source = stripComments(source)

	m := pluginsArray.FindStringSubmatch(source)
	if m == nil {
		return nil
	}

	var specifiers []string
	for _, lit := range stringLiteral.FindAllStringSubmatch(m[1], -1) {
		specifiers = append(specifiers, lit[1])
	}
	return packageNames(specifiers)
}

func stripComments(source string) string {
	source = blockComment.ReplaceAllString(source, "")
	return lineComment.ReplaceAllString(source, "")
}

// packageNames filters specifiers to installable packages and dedupes them.
func packageNames(specifiers []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, spec := range specifiers {
		name, ok := packageName(spec)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// packageName maps a bare specifier to its package:
// eslint/config -> eslint, @eslint/js -> @eslint/js, @a/b/c -> @a/b.
func packageName(spec string) (string, bool) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "",
		strings.HasPrefix(spec, "."),
		strings.HasPrefix(spec, "/"),
		strings.HasPrefix(spec, "#"),
		strings.Contains(spec, ":"):
		return "", false
	}

	parts := strings.Split(spec, "/")
	if strings.HasPrefix(spec, "@") {
		if len(parts) < 2 || parts[1] == "" {
			return "", false
		}
		return parts[0] + "/" + parts[1], true
	}
	return parts[0], true
}
