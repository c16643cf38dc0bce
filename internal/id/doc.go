// Package id generates short random identifiers for schemas and generated
// endpoints.
//
// Identifiers carry 128 bits from crypto/rand, so collisions are negligible
// for any realistic number of schemas, and are encoded in lowercase
// Crockford Base32 to stay URL-safe and unambiguous.
package id
