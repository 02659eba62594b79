package schema

import (
	"slices"

	"github.com/syssam/orientschema/schema/field"
	"github.com/syssam/orientschema/schema/index"
)

// Field is implemented by column builders.
type Field interface {
	Descriptor() *field.Descriptor
}

// Index is implemented by index builders.
type Index interface {
	Descriptor() *index.Descriptor
}

// Blueprint describes the changes applied to one class. Columns keep their
// declaration order, and commands are compiled in the order they were added.
type Blueprint struct {
	Class    string
	Parent   string
	Columns  []*field.Descriptor
	Commands []*Command
}

// New returns an empty blueprint for the given class.
func New(class string) *Blueprint {
	return &Blueprint{Class: class}
}

// Extends sets the parent class.
func (b *Blueprint) Extends(parent string) *Blueprint {
	b.Parent = parent
	return b
}

// Fields appends columns in declaration order.
func (b *Blueprint) Fields(fields ...Field) *Blueprint {
	for _, f := range fields {
		b.Columns = append(b.Columns, f.Descriptor())
	}
	return b
}

// AddCommand appends a command.
func (b *Blueprint) AddCommand(c *Command) *Blueprint {
	b.Commands = append(b.Commands, c)
	return b
}

// Create adds a CreateClass command.
func (b *Blueprint) Create() *Blueprint {
	return b.AddCommand(&Command{Kind: CreateClass})
}

// Add adds an AddProperty command for the blueprint columns.
func (b *Blueprint) Add() *Blueprint {
	return b.AddCommand(&Command{Kind: AddProperty})
}

// Indexes adds a CreateIndex command per index. Unnamed indexes get
// index.DefaultName.
func (b *Blueprint) Indexes(idxs ...Index) *Blueprint {
	for _, idx := range idxs {
		d := idx.Descriptor()
		if d.Name == "" {
			d.Name = index.DefaultName(b.Class, d.Columns, d.Type)
		}
		b.AddCommand(&Command{Kind: CreateIndex, Index: d})
	}
	return b
}

// Index adds a plain index on the given columns.
func (b *Blueprint) Index(columns ...string) *Blueprint {
	return b.Indexes(index.Columns(columns...))
}

// Unique adds a unique index on the given columns.
func (b *Blueprint) Unique(columns ...string) *Blueprint {
	return b.Indexes(index.Columns(columns...).Unique())
}

// Primary adds a primary key index on the given columns.
func (b *Blueprint) Primary(columns ...string) *Blueprint {
	return b.Indexes(index.Columns(columns...).Primary())
}

// Drop adds a DropClass command.
func (b *Blueprint) Drop() *Blueprint {
	return b.AddCommand(&Command{Kind: DropClass})
}

// DropIfExists adds a DropClassIfExists command.
func (b *Blueprint) DropIfExists() *Blueprint {
	return b.AddCommand(&Command{Kind: DropClassIfExists})
}

// DropColumn adds one DropProperty command per column.
func (b *Blueprint) DropColumn(columns ...string) *Blueprint {
	for _, c := range columns {
		b.AddCommand(&Command{Kind: DropProperty, Columns: []string{c}})
	}
	return b
}

// RenameClass adds a RenameClass command.
func (b *Blueprint) RenameClass(to string) *Blueprint {
	return b.AddCommand(&Command{Kind: RenameClass, To: to})
}

// Rename adds a relational rename command.
func (b *Blueprint) Rename(to string) *Blueprint {
	return b.AddCommand(&Command{Kind: Rename, To: to})
}

// DropPrimary adds a DropPrimary command.
func (b *Blueprint) DropPrimary() *Blueprint {
	return b.AddCommand(&Command{Kind: DropPrimary})
}

// DropUnique adds a DropUnique command for the named index.
func (b *Blueprint) DropUnique(name string) *Blueprint {
	return b.AddCommand(&Command{Kind: DropUnique, Index: &index.Descriptor{Name: name, Type: index.Unique}})
}

// DropIndex adds a DropIndex command for the named index.
func (b *Blueprint) DropIndex(name string) *Blueprint {
	return b.AddCommand(&Command{Kind: DropIndex, Index: &index.Descriptor{Name: name, Type: index.Plain}})
}

// DropForeign adds a DropForeign command for the named key.
func (b *Blueprint) DropForeign(name string) *Blueprint {
	return b.AddCommand(&Command{Kind: DropForeign, Index: &index.Descriptor{Name: name}})
}

// DeleteVertices adds a DeleteVertices command.
func (b *Blueprint) DeleteVertices() *Blueprint {
	return b.AddCommand(&Command{Kind: DeleteVertices})
}

// Creating reports whether the blueprint creates its class.
func (b *Blueprint) Creating() bool {
	return slices.ContainsFunc(b.Commands, func(c *Command) bool {
		return c != nil && c.Kind == CreateClass
	})
}

// Plan returns the commands to compile. When the blueprint declares
// columns but neither creates the class nor adds properties, an
// AddProperty command is implied and placed first.
func (b *Blueprint) Plan() []*Command {
	if len(b.Columns) == 0 {
		return b.Commands
	}
	for _, c := range b.Commands {
		if c != nil && (c.Kind == CreateClass || c.Kind == AddProperty) {
			return b.Commands
		}
	}
	return append([]*Command{{Kind: AddProperty}}, b.Commands...)
}

// Mixin is a reusable set of columns and indexes shared by classes.
type Mixin interface {
	Fields() []Field
	Indexes() []Index
}

// Mixins appends the columns of each mixin ahead of the columns declared
// so far, and adds their indexes.
func (b *Blueprint) Mixins(ms ...Mixin) *Blueprint {
	var cols []*field.Descriptor
	for _, m := range ms {
		for _, f := range m.Fields() {
			cols = append(cols, f.Descriptor())
		}
	}
	b.Columns = append(cols, b.Columns...)
	for _, m := range ms {
		b.Indexes(m.Indexes()...)
	}
	return b
}
