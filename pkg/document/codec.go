package document

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes JSON text into a document. oj accepts some malformed
// input such as a key without a value, so the text is checked against the
// strict grammar first.
func ParseJSON(data []byte) (any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New(errors.ErrParse, "invalid JSON: empty document")
	}
	if !json.Valid(data) {
		return nil, errors.New(errors.ErrParse, "invalid JSON")
	}
	v, err := oj.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid JSON")
	}
	return Normalize(v), nil
}

// EncodeJSON renders a document as indented JSON with sorted keys and a
// trailing newline. Sorting keeps repeated runs byte-identical.
func EncodeJSON(v any) ([]byte, error) {
	opts := oj.DefaultOptions
	opts.Indent = 2
	opts.Sort = true
	return []byte(oj.JSON(v, &opts) + "\n"), nil
}

// ParseYAML decodes YAML text into a document. An empty file decodes to nil.
// Streams with more than one document are rejected: re-encoding a single
// document would drop the others.
func ParseYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrParse, "invalid YAML")
	}

	var next any
	switch err := dec.Decode(&next); {
	case err == io.EOF:
	case err != nil:
		return nil, errors.Wrap(err, errors.ErrParse, "invalid YAML")
	default:
		return nil, errors.New(errors.ErrParse, "invalid YAML: multiple documents are not supported")
	}
	return Normalize(v), nil
}

// EncodeYAML renders a document as YAML with two-space indentation.
// Comments, anchors and quoting of the original file are not preserved.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
	}
	return buf.Bytes(), nil
}
