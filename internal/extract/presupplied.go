package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFieldSetJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map describing the closed field set. It is used to validate
// pre-supplied field maps from callers that ran extraction client-side
// before force-applying the result.
func BuildFieldSetJSONSchema() map[string]any {
	props := map[string]any{
		"accountHolderTaxId":                 stringOrNull(),
		"consumptionQuantity":                decimalOrNull(),
		"totalAmount":                        decimalOrNull(),
		"remainingBalanceQuantity":           decimalOrNull(),
		"customerName":                       map[string]any{"type": "string"},
		"customerAddress":                    map[string]any{"type": "string"},
		"unitIdentifier":                     stringOrNull(),
		"previousReadingDate":                dateOrNull(),
		"currentReadingDate":                 dateOrNull(),
		"elapsedDays":                        map[string]any{"type": []string{"integer", "null"}, "minimum": 0},
		"referencePeriod":                    periodOrNull(),
		"dueDate":                            dateOrNull(),
		"publicLightingContribution":         decimalOrNull(),
		"injectedEnergyQuantity":             decimalOrNull(),
		"injectedEnergyUnitPrice":            decimalOrNull(),
		"compensatedConsumptionQuantity":     decimalOrNull(),
		"compensatedConsumptionUnitPrice":    decimalOrNull(),
		"wireUsageCharge":                    decimalOrNull(),
		"nonCompensatedConsumptionQuantity":  decimalOrNull(),
		"nonCompensatedConsumptionUnitPrice": decimalOrNull(),
		"flagSurchargeCharge":                decimalOrNull(),
		"generationCycle":                    periodOrNull(),
		"generatingUnitIdentifier":           stringOrNull(),
		"lastCycleGeneration":                decimalOrNull(),
		"distributorName":                    map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func stringOrNull() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func decimalOrNull() map[string]any {
	return map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}

func dateOrNull() map[string]any {
	return map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^\d{4}-\d{2}-\d{2}`,
	}
}

func periodOrNull() map[string]any {
	return map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"Year":  map[string]any{"type": "integer"},
			"Month": map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
		},
		"required": []string{"Year", "Month"},
	}
}

// ValidatePreSupplied checks raw (a JSON object of field-set shape)
// against the schema and decodes it. Unknown keys and malformed values
// are rejected up front so the workflow never sees a half-valid set.
func ValidatePreSupplied(raw []byte) (*FieldSet, error) {
	if err := validateAgainstSchema(BuildFieldSetJSONSchema(), raw); err != nil {
		return nil, err
	}
	var fs FieldSet
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	fs.applyDefaults()
	return &fs, nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("fields do not match schema: %w", err)
	}
	return nil
}
