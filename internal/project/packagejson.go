package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Package represents the relevant parts of a package.json file.
type Package struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Scripts     map[string]string `json:"scripts"`
	Exports     json.RawMessage   `json:"exports"`
	TSP         json.RawMessage   `json:"tsp"`
}

// ParsePackage decodes package.json content.
func ParsePackage(data []byte) (*Package, error) {
	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("invalid package.json: %w", err)
	}
	return &pkg, nil
}

// ExportPaths returns the declared export paths in document order.
// A string (or absent) exports field declares only the root ".". An object
// whose keys are conditions ("import", "require", ...) also maps to ".".
func (p *Package) ExportPaths() ([]string, error) {
	raw := bytes.TrimSpace(p.Exports)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{"."}, nil
	}

	switch raw[0] {
	case '"':
		return []string{"."}, nil
	case '{':
		keys, err := objectKeys(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exports field: %w", err)
		}
		return subpaths(keys)
	default:
		return nil, fmt.Errorf("exports must be a string or an object")
	}
}

func subpaths(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("exports object is empty")
	}
	paths, conditions := 0, 0
	for _, k := range keys {
		if strings.HasPrefix(k, ".") {
			paths++
		} else {
			conditions++
		}
	}
	switch {
	case conditions == 0:
		return keys, nil
	case paths == 0:
		return []string{"."}, nil
	default:
		return nil, fmt.Errorf("exports mixes subpaths and conditions")
	}
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		// Skip the value, whatever its shape.
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}
	return keys, nil
}
