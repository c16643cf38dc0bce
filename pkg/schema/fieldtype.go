package schema

import (
	"fmt"
	"slices"
	"strings"
)

// FieldType is the semantic type of a primitive value. It selects the
// generation strategy and the format a generated value must satisfy.
type FieldType string

// Field types.
const (
	TypeString      FieldType = "string"
	TypeNumber      FieldType = "number"
	TypeBoolean     FieldType = "boolean"
	TypeEmail       FieldType = "email"
	TypeURL         FieldType = "url"
	TypeDate        FieldType = "date"
	TypeUUID        FieldType = "uuid"
	TypePhoneNumber FieldType = "phoneNumber"
)

var fieldTypes = []FieldType{
	TypeString,
	TypeNumber,
	TypeBoolean,
	TypeEmail,
	TypeURL,
	TypeDate,
	TypeUUID,
	TypePhoneNumber,
}

// FieldTypes returns the closed set of field types in declaration order.
func FieldTypes() []FieldType {
	return slices.Clone(fieldTypes)
}

// ParseFieldType resolves a field type name. Matching is exact first and
// then case-insensitive, so "phonenumber" resolves to TypePhoneNumber.
func ParseFieldType(s string) (FieldType, error) {
	for _, t := range fieldTypes {
		if string(t) == s {
			return t, nil
		}
	}
	for _, t := range fieldTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	return slices.Contains(fieldTypes, t)
}

func (t FieldType) String() string { return string(t) }

// JSONType is the JSON type generated values of t have.
func (t FieldType) JSONType() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// Example returns a fixed, human-meaningful value of type t.
func (t FieldType) Example() any {
	switch t {
	case TypeNumber:
		return float64(42)
	case TypeBoolean:
		return true
	case TypeEmail:
		return "jane.doe@example.com"
	case TypeURL:
		return "https://example.com/docs"
	case TypeDate:
		return "2024-01-15"
	case TypeUUID:
		return "123e4567-e89b-42d3-a456-426614174000"
	case TypePhoneNumber:
		return "+1-555-010-0199"
	default:
		return "lorem ipsum"
	}
}

// Description is a short human-readable explanation of the type.
func (t FieldType) Description() string {
	switch t {
	case TypeString:
		return "free text; refined by field name (names, cities, companies)"
	case TypeNumber:
		return "integer in [0, 1000), or a price with two decimals"
	case TypeBoolean:
		return "true or false"
	case TypeEmail:
		return "local@domain address"
	case TypeURL:
		return "https URL"
	case TypeDate:
		return "ISO-8601 calendar date within the last two years"
	case TypeUUID:
		return "RFC 4122 version 4 UUID"
	case TypePhoneNumber:
		return "formatted North American phone number"
	default:
		return ""
	}
}
