package state

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": ["array", "null"],
  "items": {
    "type": "object",
    "required": ["date", "time", "priority", "overdue", "details"],
    "properties": {
      "date":     {"type": "string", "pattern": "^[0-9]+-[0-9]+-[0-9]+$"},
      "time":     {"type": "string", "pattern": "^[0-9]+:[0-9]+$"},
      "priority": {"type": "string"},
      "overdue":  {"type": "string"},
      "details":  {"type": "array", "minItems": 1, "items": {"type": "string"}}
    }
  }
}`

var taskFileSchema = jsonschema.MustCompileString("tasklist.schema.json", fileSchema)

// checkShape validates the structure of a task file before it is decoded.
func checkShape(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := taskFileSchema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			leaf := firstLeaf(ve)
			loc := leaf.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			return fmt.Errorf("%s: %s", loc, leaf.Message)
		}
		return err
	}
	return nil
}

// firstLeaf follows the first cause down to the error that names the
// offending field rather than the whole document.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
