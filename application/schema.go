package application

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FieldType enumerates the parameter types a schema can declare.
type FieldType string

// Parameter types supported by operation schemas.
const (
	FieldString     FieldType = "string"
	FieldInt        FieldType = "integer"
	FieldBool       FieldType = "boolean"
	FieldStringList FieldType = "string list"
)

// FieldSpec declares the contract of a single parameter field.
type FieldSpec struct {
	Type     FieldType
	Required bool
	Enum     []string // when non-empty, string values must be one of these
}

// Schema is the declarative input contract of one operation: field name to
// spec. It replaces per-call ad hoc validation with one reusable routine so
// violations are enumerable and testable.
type Schema map[string]FieldSpec

// Violation describes a single way a parameter payload failed validation.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate checks a raw parameter payload against the schema. It returns
// one violation per failing field: required-but-missing, wrong-type,
// enum-mismatch, or unexpected-extra. The result is sorted by field name so
// callers get a stable enumeration.
func (s Schema) Validate(params map[string]any) []Violation {
	var violations []Violation

	for field, spec := range s {
		value, present := params[field]
		if !present {
			if spec.Required {
				violations = append(violations, Violation{
					Field:  field,
					Reason: "required field is missing",
				})
			}
			continue
		}
		if reason := checkType(value, spec); reason != "" {
			violations = append(violations, Violation{Field: field, Reason: reason})
		}
	}

	for field := range params {
		if _, known := s[field]; !known {
			violations = append(violations, Violation{
				Field:  field,
				Reason: "unexpected field",
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations
}

// checkType verifies a present value against its spec, returning an empty
// string when it conforms. JSON decoding yields float64 for every number,
// so integers are accepted as integral float64 values too.
func checkType(value any, spec FieldSpec) string {
	switch spec.Type {
	case FieldString:
		str, ok := value.(string)
		if !ok {
			return "expected a string"
		}
		if len(spec.Enum) > 0 && !contains(spec.Enum, str) {
			return fmt.Sprintf("must be one of: %s", strings.Join(spec.Enum, ", "))
		}
	case FieldInt:
		switch number := value.(type) {
		case int:
		case float64:
			if number != math.Trunc(number) {
				return "expected an integer"
			}
		default:
			return "expected an integer"
		}
	case FieldBool:
		if _, ok := value.(bool); !ok {
			return "expected a boolean"
		}
	case FieldStringList:
		switch list := value.(type) {
		case []string:
		case []any:
			for _, item := range list {
				if _, ok := item.(string); !ok {
					return "expected a list of strings"
				}
			}
		default:
			return "expected a list of strings"
		}
	}
	return ""
}

func contains(values []string, candidate string) bool {
	for _, v := range values {
		if v == candidate {
			return true
		}
	}
	return false
}
