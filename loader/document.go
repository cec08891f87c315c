package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/benn-herrera/luastubs/model"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInputUnavailable marks every failure to obtain a usable document:
// the file cannot be opened or read, it does not parse, or it lacks the
// top-level modules/callbacks collections.
var ErrInputUnavailable = errors.New("input document unavailable")

// Format identifies the encoding of a document on disk.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatForPath picks the document format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadDocument reads and parses an API description document.
// The document is checked against the JSON Schema before decoding.
func LoadDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading API document %s", path), ErrInputUnavailable)
	}
	doc, err := ParseDocument(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return doc, nil
}

// ParseDocument validates and decodes document bytes in the given format.
func ParseDocument(data []byte, format Format) (*model.Document, error) {
	var err error
	switch format {
	case FormatYAML:
		err = ValidateSchemaYAML(data)
	default:
		err = ValidateSchemaJSON(data)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "schema validation"), ErrInputUnavailable)
	}

	var doc model.Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "parsing API document"), ErrInputUnavailable)
	}
	return &doc, nil
}
