package loader

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cmmoran/srcgen/internal/model"
	"github.com/cmmoran/srcgen/pkg/errors"
)

// LoadYAML reads a schema document from path.
func LoadYAML(path string, opts ...Option) (*model.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read schema")
	}
	s, err := ParseYAML(data, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %s", path)
	}
	return s, nil
}

// ParseYAML decodes a schema document. Unknown keys are errors.
func ParseYAML(data []byte, opts ...Option) (*model.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s model.Schema
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, errors.IllegalArgumentf("empty schema document")
		}
		return nil, errors.Wrap(err, "unmarshal schema")
	}
	return finish(&s, newOptions(opts))
}

// MarshalYAML encodes s as a schema document.
func MarshalYAML(s *model.Schema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	return buf.Bytes(), nil
}
