// Package cli implements the mockshape command.
//
// Commands:
//   - generate: synthesize data from a schema
//   - validate: check schema files
//   - edit: apply an edit script to a schema
//   - infer: build a schema from a sample JSON document
//   - import openapi: build a schema from an OpenAPI component
//   - jsonschema: print the JSON Schema that generated data satisfies
//   - types: list field types
//   - detect: show the field type a name suggests
//   - id: print random identifiers
//   - config: show the effective configuration and where each value came from
//   - version: show build information
//
// Schema arguments are files (.json, .yaml, .yml) or "-" for stdin.
package cli
