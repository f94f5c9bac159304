package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/slidegrid/pkg/errors"
)

// Syntax is a document serialization format.
type Syntax string

const (
	SyntaxTOML Syntax = "toml"
	SyntaxYAML Syntax = "yaml"
	SyntaxJSON Syntax = "json"
)

// ParseSyntax validates a syntax name. "yml" is accepted for YAML.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return SyntaxTOML, nil
	case "yaml", "yml":
		return SyntaxYAML, nil
	case "json":
		return SyntaxJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown document syntax %q (want toml, yaml or json)", s)
}

// SyntaxFromPath infers the syntax from a file extension.
func SyntaxFromPath(path string) (Syntax, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document syntax of %q", path)
	}
	return ParseSyntax(ext)
}

// Decode parses a document. Unknown keys are rejected in every syntax.
func Decode(data []byte, syntax Syntax) (*Document, error) {
	var doc Document
	switch syntax {
	case SyntaxTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undecoded[0].String())
		}
	case SyntaxYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode yaml")
		}
	case SyntaxJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document syntax %q", syntax)
	}
	return &doc, nil
}

// ReadFile reads the document at path and infers its syntax from the file
// extension. The bytes are returned undecoded.
func ReadFile(path string) ([]byte, Syntax, error) {
	syntax, err := SyntaxFromPath(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, syntax, nil
}
