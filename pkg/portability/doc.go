// Package portability brings schemas in from other formats.
//
// Two sources are supported:
//   - OpenAPI 3 component schemas, via FromOpenAPI and LoadOpenAPI
//   - example JSON documents, via InferJSON
//
// # OpenAPI
//
//	n, err := portability.LoadOpenAPI("openapi.yaml", "Pet")
//
// Object properties are imported in key order. String formats (email, uri,
// date, date-time, uuid, tel) select the field type; plain strings fall back
// to the property name. A scalar example or the first enum value becomes the
// literal. Recursive references end in an empty object.
//
// # Samples
//
//	n, err := portability.InferJSON(sample)
//
// Inference keeps the sample's key order and types strings by content first
// and key second. Arrays are typed from their first element.
package portability
