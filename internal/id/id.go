package id

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// Length is the number of characters in an identifier.
const Length = 26

// alphabet is Crockford's Base32 in lower case: no i, l, o or u, so
// identifiers survive being read aloud or retyped.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// New returns a random identifier: 128 bits from crypto/rand encoded as 26
// lowercase base32 characters. Identifiers are URL-safe and need no escaping
// in paths or query strings.
func New() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return encoding.EncodeToString(b[:])
}

// Valid reports whether s has the shape New produces.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := range len(s) {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	// 128 bits fill 25 characters and 3 bits of the last; the 2 spare bits
	// are always zero.
	return strings.IndexByte(alphabet, s[Length-1])%4 == 0
}
