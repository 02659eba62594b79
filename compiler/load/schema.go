package load

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema"
	"github.com/syssam/orientschema/schema/field"
	"github.com/syssam/orientschema/schema/index"
	"github.com/syssam/orientschema/schema/mixin"
)

// Schema represents a blueprint document that was loaded from a file.
type Schema struct {
	Class    string              `yaml:"class" json:"class"`
	Extends  string              `yaml:"extends,omitempty" json:"extends,omitempty"`
	Mixins   []string            `yaml:"mixins,omitempty" json:"mixins,omitempty"`
	Columns  []*field.Descriptor `yaml:"columns,omitempty" json:"columns,omitempty"`
	Commands []*Command          `yaml:"commands,omitempty" json:"commands,omitempty"`
	// Pos is the file and document the schema was loaded from.
	Pos Position `yaml:"-" json:"-"`
}

// Position describes where a schema document was found.
type Position struct {
	File  string // Path of the blueprint file.
	Index int    // Document index in the file, starting at 0.
	Line  int    // Line of the document, if known.
}

// String returns the position in "file#doc" or "file:line" form.
func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
	return fmt.Sprintf("%s#%d", p.File, p.Index)
}

// Command represents a command entry of a blueprint document. In files,
// a command is either a bare kind ("create") or a mapping with a kind and
// its parameters.
type Command struct {
	Kind    schema.CommandKind `yaml:"kind" json:"kind"`
	Name    string             `yaml:"name,omitempty" json:"name,omitempty"`
	Columns []string           `yaml:"columns,omitempty" json:"columns,omitempty"`
	Type    index.Type         `yaml:"type,omitempty" json:"type,omitempty"`
	To      string             `yaml:"to,omitempty" json:"to,omitempty"`
}

// commandKeys are the keys a command mapping may carry. Custom
// unmarshalers do not inherit the decoder's strict field checking.
var commandKeys = map[string]bool{"kind": true, "name": true, "columns": true, "type": true, "to": true}

// command is the mapping form of Command, decoded without the custom
// unmarshalers.
type command Command

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Command) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var kind schema.CommandKind
		if err := kind.UnmarshalText([]byte(n.Value)); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = Command{Kind: kind}
		return nil
	}
	if n.Kind == yaml.MappingNode {
		for i := 0; i < len(n.Content); i += 2 {
			if k := n.Content[i]; !commandKeys[k.Value] {
				return fmt.Errorf("line %d: %w", k.Line, orientschema.NewValidationError("", "", fmt.Sprintf("unknown command key %q", k.Value)))
			}
		}
	}
	var raw command
	if err := n.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	if !raw.Kind.Valid() {
		return fmt.Errorf("line %d: %w", n.Line, orientschema.NewValidationError("", "", "command has no kind"))
	}
	*c = Command(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Command) UnmarshalJSON(b []byte) error {
	if b = bytes.TrimSpace(b); len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		var kind schema.CommandKind
		if err := kind.UnmarshalText([]byte(s)); err != nil {
			return err
		}
		*c = Command{Kind: kind}
		return nil
	}
	var raw command
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if !raw.Kind.Valid() {
		return orientschema.NewValidationError("", "", "command has no kind")
	}
	*c = Command(raw)
	return nil
}

// NewCommand converts a loaded command into a blueprint command. Unnamed
// indexes get index.DefaultName.
func NewCommand(class string, c *Command) *schema.Command {
	cmd := &schema.Command{Kind: c.Kind, To: c.To}
	switch c.Kind {
	case schema.CreateIndex:
		t := c.Type
		if t == "" {
			t = index.Plain
		}
		name := c.Name
		if name == "" {
			name = index.DefaultName(class, c.Columns, t)
		}
		cmd.Index = &index.Descriptor{Name: name, Columns: c.Columns, Type: t}
	case schema.DropUnique:
		cmd.Index = &index.Descriptor{Name: c.Name, Type: index.Unique}
	case schema.DropIndex:
		cmd.Index = &index.Descriptor{Name: c.Name, Type: index.Plain}
	case schema.DropForeign, schema.DropPrimary:
		if c.Name != "" {
			cmd.Index = &index.Descriptor{Name: c.Name, Type: c.Type}
		}
	case schema.DropProperty:
		cmd.Columns = c.Columns
	}
	return cmd
}

// Blueprint returns the blueprint described by the schema document.
// Named mixins are resolved with mixin.Lookup.
func (s *Schema) Blueprint() (*schema.Blueprint, error) {
	bp := schema.New(s.Class).Extends(s.Extends)
	bp.Columns = append(bp.Columns, s.Columns...)
	for _, c := range s.Commands {
		if c == nil {
			bp.AddCommand(nil)
			continue
		}
		bp.AddCommand(NewCommand(s.Class, c))
	}
	ms := make([]schema.Mixin, len(s.Mixins))
	for i, name := range s.Mixins {
		m, err := mixin.Lookup(name)
		if err != nil {
			return nil, &Error{Pos: s.Pos, Err: err}
		}
		ms[i] = m
	}
	return bp.Mixins(ms...), nil
}

// empty reports whether the document carried no content, as an empty
// YAML document between separators does.
func (s *Schema) empty() bool {
	return s.Class == "" && s.Extends == "" && len(s.Mixins) == 0 && len(s.Columns) == 0 && len(s.Commands) == 0
}
