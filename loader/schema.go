package loader

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema for API description documents.
// Only the shape the generator depends on is constrained; documents carry
// many more fields (summaries, examples, notes) which are allowed through.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://luastubs.dev/schemas/api-document/v1",
  "title": "luastubs API Document",
  "description": "Schema for API description documents consumed by luastubs.",
  "type": "object",
  "required": ["modules", "callbacks"],
  "properties": {
    "modules": {
      "type": "array",
      "items": { "$ref": "#/$defs/module" }
    },
    "callbacks": {
      "type": "array",
      "items": { "$ref": "#/$defs/function" }
    }
  },
  "$defs": {
    "text": { "type": "string" },
    "module": {
      "type": "object",
      "properties": {
        "key": { "$ref": "#/$defs/text" },
        "name": { "$ref": "#/$defs/text" },
        "description": { "$ref": "#/$defs/text" },
        "external": { "type": "boolean" },
        "enums": { "type": "array", "items": { "$ref": "#/$defs/enum" } },
        "functions": { "type": "array", "items": { "$ref": "#/$defs/function" } },
        "objects": { "type": "array", "items": { "$ref": "#/$defs/object" } }
      }
    },
    "enum": {
      "type": "object",
      "properties": {
        "name": { "$ref": "#/$defs/text" },
        "description": { "$ref": "#/$defs/text" },
        "values": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": { "$ref": "#/$defs/text" },
              "description": { "$ref": "#/$defs/text" }
            }
          }
        }
      }
    },
    "object": {
      "type": "object",
      "properties": {
        "key": { "$ref": "#/$defs/text" },
        "name": { "$ref": "#/$defs/text" },
        "methods": { "type": "array", "items": { "$ref": "#/$defs/function" } },
        "constructors": { "type": "array", "items": { "$ref": "#/$defs/text" } }
      }
    },
    "function": {
      "type": "object",
      "properties": {
        "key": { "$ref": "#/$defs/text" },
        "name": { "$ref": "#/$defs/text" },
        "description": { "$ref": "#/$defs/text" },
        "related": { "type": "array", "items": { "$ref": "#/$defs/text" } },
        "deprecated": { "type": "boolean" },
        "variants": { "type": "array", "items": { "$ref": "#/$defs/variant" } }
      }
    },
    "variant": {
      "type": "object",
      "properties": {
        "arguments": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": { "$ref": "#/$defs/text" },
              "type": { "$ref": "#/$defs/text" },
              "description": { "$ref": "#/$defs/text" },
              "default": { "type": ["string", "number", "boolean"] }
            }
          }
        },
        "returns": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": { "$ref": "#/$defs/text" },
              "type": { "$ref": "#/$defs/text" },
              "description": { "$ref": "#/$defs/text" }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// SchemaJSON returns the embedded JSON Schema text.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateSchemaJSON validates raw JSON bytes against the document schema.
func ValidateSchemaJSON(jsonData []byte) error {
	var raw interface{}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return errors.Wrap(err, "parsing JSON")
	}
	return validateValue(raw)
}

// ValidateSchemaYAML validates raw YAML bytes against the document schema.
func ValidateSchemaYAML(yamlData []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return errors.Wrap(err, "parsing YAML")
	}
	return validateValue(convertYAMLToJSON(raw))
}

func validateValue(v interface{}) error {
	if err := compiledSchema.Validate(v); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to JSON-compatible types.
// yaml.v3 yields map[string]interface{} for mappings with string keys, but
// integers need widening and nested values need the same treatment.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[fmt.Sprint(k)] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}
