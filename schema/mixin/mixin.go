package mixin

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema"
	"github.com/syssam/orientschema/schema/field"
)

// Schema is the default implementation for the schema.Mixin interface.
// Custom mixins embed it and override what they need.
type Schema struct{}

// Fields returns the columns of the mixin.
func (Schema) Fields() []schema.Field { return nil }

// Indexes returns the indexes of the mixin.
func (Schema) Indexes() []schema.Index { return nil }

var _ schema.Mixin = (*Schema)(nil)

// Time adds created_at and updated_at columns. created_at is readonly.
type Time struct {
	Schema
}

// Fields returns the time tracking columns.
func (Time) Fields() []schema.Field {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// CreateTime adds only the created_at column.
type CreateTime struct {
	Schema
}

// Fields returns the created_at column.
func (CreateTime) Fields() []schema.Field {
	return []schema.Field{
		field.DateTime("created_at").Readonly(true),
	}
}

// UpdateTime adds only the updated_at column.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at column.
func (UpdateTime) Fields() []schema.Field {
	return []schema.Field{
		field.DateTime("updated_at"),
	}
}

// SoftDelete adds a nullable deleted_at column. A record with deleted_at
// set is considered deleted.
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete column.
func (SoftDelete) Fields() []schema.Field {
	return []schema.Field{
		field.DateTime("deleted_at").Nullable(true),
	}
}

// TimeSoftDelete combines Time and SoftDelete.
type TimeSoftDelete struct {
	Schema
}

// Fields returns created_at, updated_at and deleted_at.
func (TimeSoftDelete) Fields() []schema.Field {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// ModifyFields wraps a mixin and applies fn to every column it returns.
//
//	mixin.ModifyFields(mixin.Time{}, func(d *field.Descriptor) {
//	    d.Mandatory = field.Some(true)
//	})
func ModifyFields(m schema.Mixin, fn func(*field.Descriptor)) schema.Mixin {
	return fieldModifier{Mixin: m, fn: fn}
}

type fieldModifier struct {
	schema.Mixin
	fn func(*field.Descriptor)
}

func (m fieldModifier) Fields() []schema.Field {
	fields := m.Mixin.Fields()
	for _, f := range fields {
		m.fn(f.Descriptor())
	}
	return fields
}

// named holds the mixins blueprint files refer to by name.
var named = map[string]schema.Mixin{
	"time":           Time{},
	"createTime":     CreateTime{},
	"updateTime":     UpdateTime{},
	"softDelete":     SoftDelete{},
	"timeSoftDelete": TimeSoftDelete{},
}

// Names returns the names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built-in mixin with the given name, matched
// case-insensitively.
func Lookup(name string) (schema.Mixin, error) {
	fold := cases.Fold()
	want := fold.String(name)
	for n, m := range named {
		if fold.String(n) == want {
			return m, nil
		}
	}
	return nil, orientschema.NewValidationError("", "", fmt.Sprintf("unknown mixin %q", name))
}
