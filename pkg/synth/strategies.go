package synth

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/getmockd/mockshape/pkg/detect"
	"github.com/getmockd/mockshape/pkg/schema"
)

// strategy produces one value of a field type. key is the name of the
// nearest enclosing field, or "" at the root.
type strategy func(g *Synthesizer, key string) any

var strategies = map[schema.FieldType]strategy{
	schema.TypeString:      genString,
	schema.TypeNumber:      genNumber,
	schema.TypeBoolean:     genBoolean,
	schema.TypeEmail:       func(g *Synthesizer, _ string) any { return g.email() },
	schema.TypeURL:         func(g *Synthesizer, _ string) any { return g.url() },
	schema.TypeDate:        func(g *Synthesizer, _ string) any { return g.date() },
	schema.TypeUUID:        func(g *Synthesizer, _ string) any { return g.src.uuid() },
	schema.TypePhoneNumber: func(g *Synthesizer, _ string) any { return g.phone() },
}

// genString generates free text, refined by the field name: a "website"
// string looks like a URL, a "city" string names a city.
func genString(g *Synthesizer, key string) any {
	switch detect.Type(key, nil) {
	case schema.TypeEmail:
		return g.email()
	case schema.TypeURL:
		return g.url()
	case schema.TypeUUID:
		return g.src.uuid()
	case schema.TypeDate:
		return g.date()
	case schema.TypePhoneNumber:
		return g.phone()
	}
	if s, ok := g.stringByName(key); ok {
		return s
	}
	return g.words(2 + g.src.intN(3))
}

// stringByName maps common field names to realistic values.
func (g *Synthesizer) stringByName(key string) (string, bool) {
	words := detect.Words(key)
	if len(words) == 0 {
		return "", false
	}
	last := words[len(words)-1]
	has := func(w ...string) bool { return detect.HasWord(key, w...) }

	switch {
	case has("first", "given") && last == "name":
		return pick(g.src, firstNames), true
	case has("last", "family", "sur") && last == "name", last == "surname":
		return pick(g.src, lastNames), true
	case has("company", "organization", "org", "employer"):
		return pick(g.src, companyNames) + " " + pick(g.src, companySuffixes), true
	case has("product") && last == "name":
		return pick(g.src, productAdjectives) + " " + pick(g.src, productNouns), true
	case has("user", "login") && last == "name", last == "username", last == "handle":
		return strings.ToLower(pick(g.src, firstNames)) + g.src.digits(2), true
	case last == "name", last == "author", last == "owner", last == "fullname":
		return pick(g.src, firstNames) + " " + pick(g.src, lastNames), true
	case last == "city", last == "town":
		return pick(g.src, cities), true
	case last == "country":
		return pick(g.src, countries), true
	case last == "street", last == "address":
		return g.src.digits(4) + " " + pick(g.src, streets) + ", " + pick(g.src, cities), true
	case last == "color", last == "colour":
		return pick(g.src, colors), true
	case last == "currency":
		return pick(g.src, currencyCodes), true
	case last == "title" && has("job"), last == "role", last == "position":
		return pick(g.src, jobLevels) + " " + pick(g.src, jobFields) + " " + pick(g.src, jobRoles), true
	case last == "description", last == "bio", last == "summary", last == "about", last == "comment":
		return g.sentence(), true
	case last == "slug":
		return g.slug(), true
	}
	return "", false
}

// genNumber draws an integer in [0, 1000), or a price with two decimals in
// [1, 1000) for money-like names.
func genNumber(g *Synthesizer, key string) any {
	if isMoney(key) {
		return math.Round((1+g.src.float64()*999)*100) / 100
	}
	return float64(g.src.intN(1000))
}

func isMoney(key string) bool {
	if detect.HasWord(key, "price", "amount", "cost", "total", "balance", "fee") {
		return true
	}
	words := detect.Words(key)
	if len(words) == 0 {
		return false
	}
	last := words[len(words)-1]
	return strings.HasSuffix(last, "price") || strings.HasSuffix(last, "amount")
}

func genBoolean(g *Synthesizer, _ string) any {
	return g.src.intN(2) == 1
}

func (g *Synthesizer) email() string {
	first := strings.ToLower(pick(g.src, firstNames))
	last := strings.ToLower(pick(g.src, lastNames))
	return fmt.Sprintf("%s.%s%s@%s", first, last, g.src.digits(2), pick(g.src, emailDomains))
}

func (g *Synthesizer) url() string {
	return "https://" + pick(g.src, hosts) + "/" + g.slug()
}

// date returns a calendar date within the two years before now.
func (g *Synthesizer) date() string {
	now := g.clock().UTC()
	return now.AddDate(0, 0, -g.src.intN(730)).Format(time.DateOnly)
}

func (g *Synthesizer) phone() string {
	return "+1-555-" + g.src.digits(3) + "-" + g.src.digits(4)
}

func (g *Synthesizer) slug() string {
	n := 2 + g.src.intN(2)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = pick(g.src, slugWords)
	}
	return strings.Join(parts, "-")
}

func (g *Synthesizer) words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = pick(g.src, loremWords)
	}
	return strings.Join(parts, " ")
}

func (g *Synthesizer) sentence() string {
	s := g.words(5 + g.src.intN(6))
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
