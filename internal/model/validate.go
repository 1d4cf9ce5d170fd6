package model

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// ErrSchema is returned when a stored record does not match the resume shape.
var ErrSchema = errors.New("schema validation failed")

//go:embed resume.schema.json
var resumeSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// ValidateRecord validates a raw storage record against resume.schema.json.
func ValidateRecord(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.Wrap(err, "validate resume record")
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Wrap(ErrSchema, strings.Join(msgs, "; "))
}
