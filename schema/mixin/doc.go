// Package mixin provides reusable column sets for blueprints.
//
// A mixin contributes columns and indexes to every class that uses it.
// Its columns are placed ahead of the class's own columns:
//
//	bp := schema.New("User").
//	    Create().
//	    Fields(field.String("name")).
//	    Mixins(mixin.Time{})
//	// columns: created_at, updated_at, name
//
// Custom mixins embed Schema and override Fields or Indexes:
//
//	type Audit struct {
//	    mixin.Schema
//	}
//
//	func (Audit) Fields() []schema.Field {
//	    return []schema.Field{
//	        field.String("created_by"),
//	        field.String("updated_by").Nullable(true),
//	    }
//	}
//
//	func (Audit) Indexes() []schema.Index {
//	    return []schema.Index{
//	        index.Columns("created_by"),
//	    }
//	}
//
// Blueprint files refer to the built-in mixins by name (see Lookup).
package mixin
