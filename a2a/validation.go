package a2a

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaValidationError reports a JSON-Schema validation failure
// against an AgentCard or other A2A document, grounded on the
// teacher's SchemaValidationError shape (schema_validation.go).
type SchemaValidationError struct {
	Context string
	Details []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("a2a: schema validation failed for %s: %v", e.Context, e.Details)
}

// ValidateAgentCardSchema validates card's JSON encoding against an
// arbitrary JSON-Schema document (draft-7 or compatible). This is an
// enrichment on top of the core model, never required for AgentCard
// construction or bridging — spec §4.4/§6.5 describe the shape but
// don't mandate schema enforcement.
func ValidateAgentCardSchema(card AgentCard, schemaJSON []byte) error {
	data, err := ToJSON(card)
	if err != nil {
		return err
	}
	return validateAgainstSchema(schemaJSON, data, "AgentCard")
}

func validateAgainstSchema(schemaJSON, documentJSON []byte, context string) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(documentJSON)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("a2a: schema load/validate error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return &SchemaValidationError{Context: context, Details: details}
}
