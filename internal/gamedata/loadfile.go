package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// areasSchema constrains the on-disk dataset shape: an array of acts,
// each an array of zone objects with a required id and name.
const areasSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "array",
    "items": {
      "type": "object",
      "required": ["id", "name"],
      "properties": {
        "id": {"type": "string", "pattern": "^[0-9a-z_]+$"},
        "name": {"type": "string", "minLength": 1},
        "map_name": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func areasSchemaCompiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(areasSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse areas schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("areas.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add areas schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("areas.schema.json")
	})
	return compiledSchema, schemaErr
}

// LoadFile reads an areas JSON file and returns a Directory over it.
// The file is validated against the dataset schema before decoding so
// a malformed export fails loudly instead of producing half-indexed
// lookups.
func LoadFile(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read areas file: %w", err)
	}

	sch, err := areasSchemaCompiled()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	var acts [][]ZoneRecord
	if err := json.Unmarshal(raw, &acts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return New(acts), nil
}
