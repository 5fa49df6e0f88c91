// Package cue validates decoded JSON documents against embedded CUE schemas.
package cue

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Schema names map the file base name to the definition it declares.
const (
	SchemaManifest   = "manifest"
	SchemaUserConfig = "userconfig"
)

var definitions = map[string]string{
	SchemaManifest:   "#Manifest",
	SchemaUserConfig: "#UserConfig",
}

// ErrSchemaMismatch is wrapped by every validation failure.
var ErrSchemaMismatch = errors.New("schema validation failed")

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// Default returns a shared validator with all embedded schemas loaded.
// cue.Context is not safe for concurrent use, so callers go through Validate
// which serializes access.
func Default() (*Validator, error) {
	defaultOnce.Do(func() {
		defaultValidator = NewValidator()
		defaultErr = defaultValidator.LoadSchemas()
	})
	return defaultValidator, defaultErr
}

// LoadSchemas compiles all CUE schema files from the embedded filesystem.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}

		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return errors.New("no CUE schemas loaded")
	}

	return nil
}

var mu sync.Mutex

// Validate checks data (as produced by encoding/json) against the named schema.
// A nil return means the data conforms.
func (v *Validator) Validate(schemaName string, data any) error {
	mu.Lock()
	defer mu.Unlock()

	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("unknown schema %q", schemaName)
	}

	def := schema.LookupPath(cue.ParsePath(definitions[schemaName]))
	if !def.Exists() {
		return fmt.Errorf("schema %q has no definition %s", schemaName, definitions[schemaName])
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("error encoding data: %w", encErr)
	}

	unified := def.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	return nil
}
