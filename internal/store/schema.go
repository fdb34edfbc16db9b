package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fretemap/fretemap-cli/internal/discovery"
)

// mappingConfigSchema is the wire contract for persisted field-mapping
// configuration files. optionsPath may be empty (the document root is the
// array) but must be present.
const mappingConfigSchema = `{
  "type": "object",
  "properties": {
    "optionsPath": {"type": "string"},
    "carrierName": {"type": "string"},
    "price": {"type": "string"},
    "deliveryDays": {"type": "string"},
    "carrierId": {"type": "string"},
    "errorField": {"type": "string"}
  },
  "required": ["optionsPath"],
  "additionalProperties": false
}`

var compiledMappingSchema = mustCompile(mappingConfigSchema)

func mustCompile(src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("mapping.json", strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("add mapping schema: %v", err))
	}
	schema, err := compiler.Compile("mapping.json")
	if err != nil {
		panic(fmt.Sprintf("compile mapping schema: %v", err))
	}
	return schema
}

// ValidateMappingConfig checks raw JSON against the mapping-config schema and
// decodes it on success.
func ValidateMappingConfig(data []byte) (discovery.FieldMapping, error) {
	var m discovery.FieldMapping
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return m, fmt.Errorf("parse mapping config: %w", err)
	}
	if err := compiledMappingSchema.Validate(v); err != nil {
		return m, fmt.Errorf("mapping config does not match schema: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode mapping config: %w", err)
	}
	return m, nil
}
