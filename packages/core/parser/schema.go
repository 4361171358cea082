package parser

import (
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

const questFileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["quests"],
  "additionalProperties": false,
  "properties": {
    "headers": { "$ref": "#/definitions/layer" },
    "vars":    { "$ref": "#/definitions/layer" },
    "params":  { "$ref": "#/definitions/layer" },
    "quests": {
      "type": "array",
      "items": { "$ref": "#/definitions/quest" }
    }
  },
  "definitions": {
    "layer": {
      "type": ["array", "null"],
      "items": { "$ref": "#/definitions/entry" }
    },
    "entry": {
      "type": "object",
      "required": ["key"],
      "additionalProperties": false,
      "properties": {
        "key": { "type": "string", "minLength": 1 },
        "value": { "type": ["string", "number", "boolean"] },
        "valueFrom": {
          "type": "object",
          "required": ["env"],
          "additionalProperties": false,
          "properties": {
            "env": { "type": "string", "minLength": 1 }
          }
        }
      },
      "oneOf": [
        { "required": ["value"] },
        { "required": ["valueFrom"] }
      ]
    },
    "quest": {
      "type": "object",
      "required": ["name", "method", "url"],
      "additionalProperties": false,
      "properties": {
        "name":    { "type": "string", "minLength": 1 },
        "method":  { "type": "string", "minLength": 1 },
        "url":     { "type": "string", "minLength": 1 },
        "headers": { "$ref": "#/definitions/layer" },
        "vars":    { "$ref": "#/definitions/layer" },
        "params":  { "$ref": "#/definitions/layer" },
        "body":    { "type": "string" },
        "json":    {}
      },
      "not": { "required": ["body", "json"] }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(questFileSchema)

// validateSchema checks a decoded YAML tree against the quest file schema
// and returns one line per violation, sorted for stable output.
func validateSchema(doc any) ([]string, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	sort.Strings(problems)
	return problems, nil
}
