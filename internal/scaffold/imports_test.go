package scaffold

import (
	"reflect"
	"testing"
)

func TestReadESLintImports(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name: "default flat config",
			source: `import js from '@eslint/js';
import eslintConfigPrettier from 'eslint-config-prettier';
import eslintPluginUnicorn from 'eslint-plugin-unicorn';
import {defineConfig} from 'eslint/config';
import globals from 'globals';

export default defineConfig([js.configs.recommended]);
`,
			want: []string{"@eslint/js", "eslint-config-prettier", "eslint-plugin-unicorn", "eslint", "globals"},
		},
		{
			name: "node builtins and relative files dropped",
			source: `import path from 'node:path';
import local from './rules.js';
import parent from "../shared.mjs";
import ava from "eslint-plugin-ava";
`,
			want: []string{"eslint-plugin-ava"},
		},
		{
			name: "multi-line clause and side-effect import",
			source: `import {
	foo,
	bar as baz,
} from 'typescript-eslint';
import 'dotenv/config';
`,
			want: []string{"typescript-eslint", "dotenv"},
		},
		{
			name: "re-export and namespace import",
			source: `import * as tseslint from "typescript-eslint";
export {default} from "@company/eslint-config/base";
`,
			want: []string{"typescript-eslint", "@company/eslint-config"},
		},
		{
			name: "duplicates collapse",
			source: `import a from 'eslint/config';
import b from 'eslint/use-at-your-own-risk';
`,
			want: []string{"eslint"},
		},
		{
			name: "commented imports ignored",
			source: `// import old from 'eslint-plugin-old';
/* import gone from 'eslint-plugin-gone'; */
import js from '@eslint/js';
`,
			want: []string{"@eslint/js"},
		},
		{
			name:   "no imports",
			source: "export default [];\n",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadESLintImports(tt.source); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadESLintImports() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadPrettierPlugins(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name: "single scoped plugin",
			source: `export default {
	useTabs: true,
	plugins: ['@ianvs/prettier-plugin-sort-imports'],
};`,
			want: []string{"@ianvs/prettier-plugin-sort-imports"},
		},
		{
			name: "several plugins across lines",
			source: `module.exports = {
  plugins: [
    "prettier-plugin-tailwindcss",
    "prettier-plugin-packagejson/lib",
    "./local-plugin.js",
  ],
};`,
			want: []string{"prettier-plugin-tailwindcss", "prettier-plugin-packagejson"},
		},
		{
			name:   "no plugins",
			source: `export default {semi: false};`,
			want:   nil,
		},
		{
			name:   "empty plugins",
			source: `export default {plugins: []};`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadPrettierPlugins(tt.source); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadPrettierPlugins() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		spec   string
		want   string
		wantOK bool
	}{
		{"eslint", "eslint", true},
		{"eslint/config", "eslint", true},
		{"@eslint/js", "@eslint/js", true},
		{"@scope/pkg/deep", "@scope/pkg", true},
		{"@scope", "", false},
		{"node:fs", "", false},
		{"https://esm.sh/x", "", false},
		{"./x", "", false},
		{"/abs/x", "", false},
		{"#internal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := packageName(tt.spec)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("packageName(%q) = %q, %v; want %q, %v", tt.spec, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
