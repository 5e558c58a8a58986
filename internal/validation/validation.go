// Package validation checks request bodies against JSON Schemas before they are
// decoded into domain types. Failures surface as *domain.ErrValidation (HTTP 400).
package validation

import (
	"fmt"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled request schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

var (
	Login = mustCompile("login", `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 2, "maxLength": 120}
		}
	}`)

	Post = mustCompile("post", `{
		"type": "object",
		"required": ["user_id", "text"],
		"properties": {
			"user_id": {"type": "string", "minLength": 2},
			"text":    {"type": "string", "minLength": 2, "maxLength": 1600}
		}
	}`)

	Achievement = mustCompile("achievement", `{
		"type": "object",
		"required": ["title", "year"],
		"properties": {
			"title": {"type": "string", "minLength": 2, "maxLength": 160},
			"year":  {"type": "integer", "minimum": 1900, "maximum": 2100}
		}
	}`)

	Chat = mustCompile("chat", `{
		"type": "object",
		"required": ["message"],
		"properties": {
			"message": {"type": "string", "minLength": 1, "maxLength": 2000}
		}
	}`)
)

func mustCompile(name, schema string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("validation: compile %s schema: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// ValidateBytes validates a raw JSON body.
func (s *Schema) ValidateBytes(body []byte) error {
	return s.validate(gojsonschema.NewBytesLoader(body))
}

// ValidateGo validates an already decoded document (map or struct).
func (s *Schema) ValidateGo(doc any) error {
	return s.validate(gojsonschema.NewGoLoader(doc))
}

func (s *Schema) validate(doc gojsonschema.JSONLoader) error {
	result, err := s.schema.Validate(doc)
	if err != nil {
		return &domain.ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	return &domain.ErrValidation{Field: fieldOf(first), Message: first.Description()}
}

// fieldOf names the offending property. "required" errors are reported on the
// root object, with the missing property in the details.
func fieldOf(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok {
			return p
		}
	}
	if f := e.Field(); f != "" && f != gojsonschema.STRING_CONTEXT_ROOT {
		return f
	}
	return "body"
}
