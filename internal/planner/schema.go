package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const planSchemaTemplate = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "minItems": %d,
      "maxItems": %d,
      "items": {
        "type": "object",
        "required": ["id", "name", "description", "estimated_duration", "priority", "dependencies"],
        "properties": {
          "id": { "type": "integer", "minimum": 1 },
          "name": { "type": "string", "minLength": 1 },
          "description": { "type": "string" },
          "estimated_duration": {
            "type": "object",
            "required": ["value", "unit"],
            "properties": {
              "value": { "type": "number", "exclusiveMinimum": 0 },
              "unit": { "enum": %s }
            }
          },
          "priority": { "enum": %s },
          "dependencies": {
            "type": "array",
            "items": { "type": "integer", "minimum": 1 }
          }
        }
      }
    }
  }
}`

var planSchemaLoader = gojsonschema.NewStringLoader(planSchema())

// planSchema fills the template from the same vocabularies the prompt lists.
func planSchema() string {
	return fmt.Sprintf(planSchemaTemplate, MinTasks, MaxTasks,
		enumJSON(unitNames()), enumJSON(priorityNames()))
}

func enumJSON(values []string) string {
	out, _ := json.Marshal(values)
	return string(out)
}

func validateSchema(payload string) error {
	result, err := gojsonschema.Validate(planSchemaLoader, gojsonschema.NewStringLoader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedPlan, strings.Join(issues, "; "))
}

// extractJSONPayload strips code fences and any prose around the outermost
// JSON object.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end <= start {
		return clean
	}
	return clean[start : end+1]
}
