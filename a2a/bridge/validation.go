package bridge

import "github.com/Zameneing/mxp-go/a2a"

// Validator applies an optional schema check to the message of a
// Result returned by FromMXP, grounded on the same JSON-Schema validation
// path the a2a package exposes for AgentCard (see a2a.ValidateAgentCardSchema).
// The core bridge never requires a schema to operate — schema
// validation is an enrichment, not a correctness requirement (spec
// §4.5 bridge errors are limited to malformed envelope / unknown
// method).
type Validator struct {
	messageSchema []byte
}

// Option configures a Validator.
type Option func(*Validator)

// WithSchemaValidation enables JSON-Schema validation of the
// envelope's "message" field against schemaJSON.
func WithSchemaValidation(schemaJSON []byte) Option {
	return func(v *Validator) {
		v.messageSchema = schemaJSON
	}
}

// NewValidator builds a Validator from the given options.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks r.Message against the configured schema, if any.
// A Validator with no schema configured always succeeds.
func (v *Validator) Validate(r *Result) error {
	if v.messageSchema == nil || r.Message == nil {
		return nil
	}
	data, err := a2a.ToJSON(*r.Message)
	if err != nil {
		return err
	}
	return validateJSONAgainstSchema(v.messageSchema, data)
}
