package metadata

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/kaptinlin/jsonschema"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// SchemaJSON returns the embedded configuration schema.
func SchemaJSON() []byte {
	out := make([]byte, len(schemaJSON))
	copy(out, schemaJSON)
	return out
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.NewCompiler().Compile(schemaJSON)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile metadata schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateSchema checks meta against the embedded schema and returns the
// violations sorted for stable output. Unknown keys are allowed.
func ValidateSchema(meta monkeyscript.Metadata) ([]string, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	result := schema.Validate(map[string]any(meta))
	if result.Valid {
		return nil, nil
	}

	problems := make([]string, 0, len(result.Errors))
	for key, evalErr := range result.Errors {
		problems = append(problems, fmt.Sprintf("%s: %s", key, evalErr.Error()))
	}
	if len(problems) == 0 {
		problems = append(problems, "metadata does not match the schema")
	}
	sort.Strings(problems)
	return problems, nil
}
