// Package detect guesses the semantic type of a field from its name.
//
// Names are split into words on camelCase, underscore, hyphen, dot, space and
// digit boundaries and case-folded. An ordered list of rules is then tried and
// the first match wins; a name no rule matches is a plain string.
package detect

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/getmockd/mockshape/pkg/schema"
)

// Rule is one step of the detection order.
type Rule struct {
	Type schema.FieldType

	// Description says in words what the rule looks for.
	Description string

	match func(n name) bool
}

// Matches reports whether the rule applies to a field name.
func (r Rule) Matches(fieldName string) bool {
	return r.match(parse(fieldName))
}

// name is a field name prepared for matching.
type name struct {
	joined string   // folded words without separators
	words  []string // folded words in order
}

func (n name) contains(subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(n.joined, s) {
			return true
		}
	}
	return false
}

func (n name) hasWord(words ...string) bool {
	for _, w := range n.words {
		if slices.Contains(words, w) {
			return true
		}
	}
	return false
}

func (n name) endsWith(suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(n.joined, s) {
			return true
		}
	}
	return false
}

func (n name) first() string {
	if len(n.words) == 0 {
		return ""
	}
	return n.words[0]
}

func (n name) last() string {
	if len(n.words) == 0 {
		return ""
	}
	return n.words[len(n.words)-1]
}

var rules = []Rule{
	{
		Type:        schema.TypeEmail,
		Description: `contains "email"`,
		match:       func(n name) bool { return n.contains("email") },
	},
	{
		Type:        schema.TypeURL,
		Description: `contains "url", "link", "website" or "homepage"`,
		match:       func(n name) bool { return n.contains("url", "link", "website", "homepage") },
	},
	{
		Type:        schema.TypePhoneNumber,
		Description: `contains "phone" or "mobile", or has the word "tel" or "fax"`,
		match:       func(n name) bool { return n.contains("phone", "mobile") || n.hasWord("tel", "fax") },
	},
	{
		Type:        schema.TypeUUID,
		Description: `has the word "id", "uuid" or "guid", or ends with "uuid" or "guid"`,
		match:       func(n name) bool { return n.hasWord("id", "uuid", "guid") || n.endsWith("uuid", "guid") },
	},
	{
		Type:        schema.TypeDate,
		Description: `contains "date", "time", "created", "updated", "expires" or "birthday", or ends with the word "at" or "on"`,
		match: func(n name) bool {
			if n.contains("date", "time", "created", "updated", "expires", "birthday") {
				return true
			}
			last := n.last()
			return len(n.words) > 1 && (last == "at" || last == "on")
		},
	},
	{
		Type:        schema.TypeBoolean,
		Description: `starts with the word "is", "has", "can" or "should" followed by more words`,
		match: func(n name) bool {
			switch n.first() {
			case "is", "has", "can", "should":
				return len(n.words) > 1
			}
			return false
		},
	},
	{
		Type:        schema.TypeNumber,
		Description: `has the word "count", "age", "amount", "price", "qty", "num", "number", "quantity" or "total", or ends with "count", "amount" or "price"`,
		match: func(n name) bool {
			return n.hasWord("count", "age", "amount", "price", "qty", "num", "number", "quantity", "total") ||
				n.endsWith("count", "amount", "price")
		},
	},
}

// Rules returns the detection rules in the order they are tried.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Type returns the semantic type for a field. An explicit type always wins;
// otherwise the first matching rule decides and the fallback is a string.
func Type(fieldName string, explicit *schema.FieldType) schema.FieldType {
	if explicit != nil {
		return *explicit
	}
	if r, ok := Match(fieldName); ok {
		return r.Type
	}
	return schema.TypeString
}

// Match returns the first rule matching fieldName.
func Match(fieldName string) (Rule, bool) {
	n := parse(fieldName)
	for _, r := range rules {
		if r.match(n) {
			return r, true
		}
	}
	return Rule{}, false
}

// HasWord reports whether fieldName contains one of words as a whole word.
func HasWord(fieldName string, words ...string) bool {
	return parse(fieldName).hasWord(words...)
}

// Words splits a field name into folded words.
func Words(fieldName string) []string {
	return parse(fieldName).words
}

func parse(fieldName string) name {
	// A Caser keeps state between calls and is not safe for concurrent use.
	fold := cases.Fold()
	words := split(fieldName)
	for i, w := range words {
		words[i] = fold.String(w)
	}
	return name{joined: strings.Join(words, ""), words: words}
}

// split breaks a name into words. "userID2FA_code" becomes
// ["user", "ID", "2", "FA", "code"].
func split(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
			continue
		case len(cur) > 0:
			prev := runes[i-1]
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsLower(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// "HTTPServer": the S starts a new word.
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
