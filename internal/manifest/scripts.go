package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/sofic/sofic/internal/fsprobe"
)

// AddScript adds scripts[name] = command to <dir>/package.json unless a script
// with that name already exists. The document is patched in place so key order
// and formatting of untouched fields survive.
//
// It returns false without error when there is no package.json.
func AddScript(dir, name, command string) (bool, error) {
	path := filepath.Join(dir, FileName)
	if !fsprobe.FileExists(path) {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	m, err := Parse(path, data)
	if err != nil {
		return false, err
	}
	if m.HasScript(name) {
		return false, nil
	}

	op := map[string]any{"op": "add"}
	if m.Scripts == nil {
		op["path"] = "/scripts"
		op["value"] = map[string]string{name: command}
	} else {
		op["path"] = "/scripts/" + escapePointer(name)
		op["value"] = command
	}
	patch, err := json.Marshal([]any{op})
	if err != nil {
		return false, fmt.Errorf("building patch: %w", err)
	}

	value, err := hujson.Parse(data)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := value.Patch(patch); err != nil {
		return false, fmt.Errorf("patching %s: %w", path, err)
	}
	value.Format()

	out := value.Pack()
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// escapePointer escapes a JSON Pointer reference token (RFC 6901).
func escapePointer(token string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(token)
}
