package lint

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func makeGitRepo(t *testing.T, dir, originURL string) {
	t.Helper()
	config := "[core]\n\tbare = false\n"
	if originURL != "" {
		config += "[remote \"origin\"]\n\turl = " + originURL + "\n"
	}
	writeTree(t, dir, map[string]string{".git/config": config})
}

// completeJSPackage has every file and dependency the rules ask for.
var completeJSPackage = map[string]string{
	"package.json": `{
	"name": "complete",
	"devDependencies": {
		"eslint": "^9.0.0",
		"eslint-plugin-unicorn": "^56.0.0",
		"prettier": "^3.0.0",
		"eslint-config-prettier": "^9.0.0",
		"@ianvs/prettier-plugin-sort-imports": "^4.0.0"
	}
}`,
	".editorconfig":      "root = true\n",
	".npmrc":             "package-lock=false\n",
	"eslint.config.mjs":  "export default [];\n",
	"prettier.config.js": "export default {};\n",
}
