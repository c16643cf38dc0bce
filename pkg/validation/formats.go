package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/getmockd/mockshape/pkg/schema"
)

// FormatValidator reports whether a generated string has a format.
type FormatValidator func(value string) bool

// PhonePattern is the shape a phone number must have: an optional country
// code, then a 3-3-4 digit grouping with optional separators.
const PhonePattern = `^(\+[0-9]{1,3}[-. ]?)?\(?[0-9]{3}\)?[-. ]?[0-9]{3}[-. ]?[0-9]{4}$`

var (
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	phonePattern = regexp.MustCompile(PhonePattern)
)

// formatValidators holds the string-shaped field types.
var formatValidators = map[schema.FieldType]FormatValidator{
	schema.TypeEmail:       validateEmail,
	schema.TypeURL:         validateURL,
	schema.TypeDate:        validateDate,
	schema.TypeUUID:        validateUUID,
	schema.TypePhoneNumber: validatePhone,
}

// ValidateFormat reports whether v is a valid value of type t. Numbers and
// booleans are checked by JSON type; other types must be strings in the
// type's format.
func ValidateFormat(t schema.FieldType, v any) bool {
	switch t {
	case schema.TypeNumber:
		switch v.(type) {
		case float64, float32, int, int64, int32:
			return true
		}
		return false
	case schema.TypeBoolean:
		_, ok := v.(bool)
		return ok
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	if validate, known := formatValidators[t]; known {
		return validate(s)
	}
	return true
}

// Email must parse as an RFC 5322 address and have a dotted domain.
func validateEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	parts := strings.Split(value, "@")
	if len(parts) != 2 {
		return false
	}
	return strings.Contains(parts[1], ".")
}

func validateURL(value string) bool {
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}

func validateDate(value string) bool {
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}

func validateDateTime(value string) bool {
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05", time.DateTime} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func validateUUID(value string) bool {
	return uuidPattern.MatchString(value)
}

func validatePhone(value string) bool {
	return phonePattern.MatchString(value)
}

// DetectFormat guesses the field type of a sample string from its content.
// Date-times count as dates. Anything unrecognised is a string.
func DetectFormat(value string) schema.FieldType {
	switch {
	case validateUUID(value):
		return schema.TypeUUID
	case validateEmail(value):
		return schema.TypeEmail
	case validateDate(value), validateDateTime(value):
		return schema.TypeDate
	case validateURL(value):
		return schema.TypeURL
	case validatePhone(value):
		return schema.TypePhoneNumber
	default:
		return schema.TypeString
	}
}
