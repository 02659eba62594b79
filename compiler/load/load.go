package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/orientschema/schema"
)

// Format is the encoding of a blueprint file.
type Format string

// Supported blueprint file formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf returns the format of a blueprint file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("load: unsupported blueprint file %q: expect .yaml, .yml or .json", path)
}

// Error reports a blueprint document that could not be decoded.
type Error struct {
	Pos Position
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("load: %s: %v", e.Pos, e.Err)
}

// Unwrap returns the decoding error.
func (e *Error) Unwrap() error { return e.Err }

// File loads all schema documents of a blueprint file.
func File(path string) ([]*Schema, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return Decode(buf, path, f)
}

// Blueprints loads the blueprints of a blueprint file in document order.
func Blueprints(path string) ([]*schema.Blueprint, error) {
	docs, err := File(path)
	if err != nil {
		return nil, err
	}
	bps := make([]*schema.Blueprint, len(docs))
	for i, s := range docs {
		if bps[i], err = s.Blueprint(); err != nil {
			return nil, err
		}
	}
	return bps, nil
}

// Decode decodes schema documents from buf. name is used in positions and
// errors. YAML input may hold several documents. JSON input holds one
// object or an array of objects.
func Decode(buf []byte, name string, f Format) ([]*Schema, error) {
	switch f {
	case YAML:
		return decodeYAML(buf, name)
	case JSON:
		return decodeJSON(buf, name)
	}
	return nil, fmt.Errorf("load: unknown format %q", f)
}

// decodeYAML reads documents twice in lockstep: as nodes for their line,
// and strictly into Schema so unknown keys are rejected.
func decodeYAML(buf []byte, name string) ([]*Schema, error) {
	var (
		docs   []*Schema
		nodes  = yaml.NewDecoder(bytes.NewReader(buf))
		strict = yaml.NewDecoder(bytes.NewReader(buf))
	)
	strict.KnownFields(true)
	for i := 0; ; i++ {
		var n yaml.Node
		err := nodes.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		pos := Position{File: name, Index: i}
		if err != nil {
			return nil, &Error{Pos: pos, Err: err}
		}
		pos.Line = n.Line
		s := &Schema{}
		if err := strict.Decode(s); err != nil {
			return nil, &Error{Pos: pos, Err: err}
		}
		if s.empty() {
			continue
		}
		s.Pos = pos
		docs = append(docs, s)
	}
	return docs, nil
}

func decodeJSON(buf []byte, name string) ([]*Schema, error) {
	buf = bytes.TrimSpace(buf)
	if len(buf) > 0 && buf[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(buf, &raw); err != nil {
			return nil, &Error{Pos: Position{File: name}, Err: err}
		}
		docs := make([]*Schema, 0, len(raw))
		for i, r := range raw {
			s, err := decodeJSONDoc(r, Position{File: name, Index: i})
			if err != nil {
				return nil, err
			}
			docs = append(docs, s)
		}
		return docs, nil
	}
	s, err := decodeJSONDoc(buf, Position{File: name})
	if err != nil {
		return nil, err
	}
	return []*Schema{s}, nil
}

func decodeJSONDoc(buf []byte, pos Position) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	s := &Schema{}
	if err := dec.Decode(s); err != nil {
		return nil, &Error{Pos: pos, Err: err}
	}
	s.Pos = pos
	return s, nil
}
