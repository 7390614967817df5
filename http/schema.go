package http

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// inputsSchemaJSON requires a complete CalculatorInputs record. The engine
// itself clamps out-of-range values; the API rejects them instead.
const inputsSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": [
    "numEmployees", "avgSalary", "annualWorkload", "utilizationRate", "errorRate",
    "avgErrorCost", "processingTime", "monthlyLicensePerBot", "numBots",
    "developmentCost", "consultingCost", "automationRate", "errorReductionRate"
  ],
  "definitions": {
    "amount":  { "type": "number", "minimum": 0, "maximum": 1e12 },
    "percent": { "type": "number", "minimum": 0, "maximum": 100 }
  },
  "properties": {
    "numEmployees":         { "$ref": "#/definitions/amount" },
    "avgSalary":            { "$ref": "#/definitions/amount" },
    "annualWorkload":       { "$ref": "#/definitions/amount" },
    "utilizationRate":      { "$ref": "#/definitions/percent" },
    "errorRate":            { "$ref": "#/definitions/percent" },
    "avgErrorCost":         { "$ref": "#/definitions/amount" },
    "processingTime":       { "$ref": "#/definitions/amount" },
    "monthlyLicensePerBot": { "$ref": "#/definitions/amount" },
    "numBots":              { "$ref": "#/definitions/amount" },
    "developmentCost":      { "$ref": "#/definitions/amount" },
    "consultingCost":       { "$ref": "#/definitions/amount" },
    "automationRate":       { "$ref": "#/definitions/percent" },
    "errorReductionRate":   { "$ref": "#/definitions/percent" }
  }
}`

var inputsSchema = mustSchema(inputsSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid inputs schema: %v", err))
	}
	return schema
}

// validateInputs checks body against the inputs schema and returns a single
// readable message listing every violation.
func validateInputs(body []byte) error {
	result, err := inputsSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("invalid inputs: %s", strings.Join(issues, "; "))
}
