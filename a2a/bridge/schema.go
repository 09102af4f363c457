package bridge

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

func validateJSONAgainstSchema(schemaJSON, documentJSON []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(documentJSON)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("bridge: schema load/validate error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return fmt.Errorf("bridge: envelope message failed schema validation: %v", details)
}
