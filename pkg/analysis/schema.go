package analysis

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ReportSchema is the embedded JSON schema for the serialized Analysis.
//
//go:embed analysis-schema.json
var ReportSchema []byte

// ErrReportInvalid is returned when a serialized analysis result does not
// conform to the report schema.
var ErrReportInvalid = errors.New("analysis result does not match schema")

// ValidateReport checks a serialized JSON analysis result against the
// embedded schema. Validation failures list every violated constraint.
func ValidateReport(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(ReportSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate report: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrReportInvalid, strings.Join(violations, "; "))
}
