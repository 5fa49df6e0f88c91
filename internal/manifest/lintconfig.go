package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/sofic/sofic/internal/fsprobe"
)

// LegacyLintConfigName is the legacy ESLint config file.
const LegacyLintConfigName = ".eslintrc.json"

// StringList decodes either a single JSON string or an array of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("extends must be a string or a list of strings: %w", err)
	}
	*s = list
	return nil
}

// Contains reports whether v is in the list.
func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// LintConfig is a parsed legacy ESLint config. Exists is false when the file
// is absent, in which case every other field is empty.
type LintConfig struct {
	Exists  bool       `json:"-"`
	Extends StringList `json:"extends,omitempty"`
}

// ReadLintConfig reads <dir>/.eslintrc.json. Comments and trailing commas are
// allowed. A missing file yields an empty config, not an error.
func ReadLintConfig(dir string) (*LintConfig, error) {
	path := filepath.Join(dir, LegacyLintConfigName)
	if !fsprobe.FileExists(path) {
		return &LintConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := LintConfig{Exists: true}
	if err := json.Unmarshal(standard, &cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &cfg, nil
}
