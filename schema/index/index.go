// Package index provides fluent builders for class indexes.
//
//	index.Columns("email").Unique().Name("user_email_idx")
//	index.Columns("first", "last")
//	index.Columns("id").Primary()
package index

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/orientschema"
)

// Type is the index kind, rendered verbatim at the end of CREATE INDEX.
type Type string

// Index kinds.
const (
	Primary Type = "primary key"
	Unique  Type = "unique"
	Plain   Type = "index"
)

// Valid reports if the index type is known.
func (t Type) Valid() bool {
	switch t {
	case Primary, Unique, Plain:
		return true
	}
	return false
}

// suffix returns the short form used in generated index names.
func (t Type) suffix() string {
	if t == Primary {
		return "primary"
	}
	return string(t)
}

// ParseType returns the index type for the given name. Besides the
// rendered forms, "primary", "primaryKey" and "plain" are accepted.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "primary key", "primarykey", "primary_key":
		return Primary, nil
	case "unique":
		return Unique, nil
	case "index", "plain", "":
		return Plain, nil
	}
	return "", orientschema.NewValidationError("", "", fmt.Sprintf("unknown index type %q", s))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// A Descriptor for index configuration.
type Descriptor struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []string `yaml:"columns" json:"columns"`
	Type    Type     `yaml:"type" json:"type"`
}

// Builder for indexes on class properties.
type Builder struct {
	desc *Descriptor
}

// Columns creates a plain index on the given columns.
func Columns(columns ...string) *Builder {
	return &Builder{desc: &Descriptor{Columns: columns, Type: Plain}}
}

// Unique sets the index to be a unique index.
func (b *Builder) Unique() *Builder {
	b.desc.Type = Unique
	return b
}

// Primary sets the index to be a primary key index.
func (b *Builder) Primary() *Builder {
	b.desc.Type = Primary
	return b
}

// Name sets the index name. Unnamed indexes get DefaultName when they are
// added to a blueprint.
func (b *Builder) Name(name string) *Builder {
	b.desc.Name = name
	return b
}

// Descriptor returns the index descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}

// DefaultName returns the conventional index name for the given class,
// columns and index type, e.g. "user_profile_email_unique".
func DefaultName(class string, columns []string, t Type) string {
	parts := make([]string, 0, len(columns)+2)
	parts = append(parts, class)
	parts = append(parts, columns...)
	parts = append(parts, t.suffix())
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(inflect.Underscore(p), ".", "_")
	}
	return strings.Join(parts, "_")
}
