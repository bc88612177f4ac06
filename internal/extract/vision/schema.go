package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// transcriptionSchema constrains the model output: an object with a lines
// array of {text, confidence} entries, confidence bounded to [0,1].
const transcriptionSchema = `{
  "type": "object",
  "required": ["lines"],
  "additionalProperties": false,
  "properties": {
    "lines": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text", "confidence"],
        "additionalProperties": false,
        "properties": {
          "text": {"type": "string"},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`

var compiledSchema = mustCompile(transcriptionSchema)

func mustCompile(raw string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("transcription.json", bytes.NewReader([]byte(raw))); err != nil {
		panic(fmt.Sprintf("vision: add schema resource: %v", err))
	}
	s, err := c.Compile("transcription.json")
	if err != nil {
		panic(fmt.Sprintf("vision: compile schema: %v", err))
	}
	return s
}

// validateTranscription checks the raw model output against the line schema.
func validateTranscription(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return err
	}
	return nil
}
