package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a schema document from disk. Files ending in .yaml or .yml
// are read as YAML; anything else as JSON.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// ParseYAML decodes a schema written as YAML. The document has the same
// shape as the JSON form.
func ParseYAML(data []byte) (Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, Errorf(ErrInvalidSchema, "/", "%s", strings.Join(typeErr.Errors, "; "))
		}
		return nil, &Error{Kind: ErrInvalidSchema, Path: "/", Message: "not a YAML document", Err: err}
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidSchema, Path: "/", Message: "YAML document has no JSON form", Err: err}
	}
	return Parse(jsonData)
}
