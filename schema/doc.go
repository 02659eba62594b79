// Package schema describes dialect-neutral schema changes.
//
// A Blueprint names one class, its optional parent, its columns in
// declaration order, and the commands to apply:
//
//	bp := schema.New("Employee").
//	    Extends("User").
//	    Fields(
//	        field.String("name").Mandatory(true).Min(5).Max(25),
//	        field.Integer("age"),
//	    ).
//	    Create().
//	    Unique("name")
//
// Columns come from the [field] builders and indexes from the [index]
// builders. Blueprints carry no dialect knowledge; a dialect grammar such
// as dialect/orientdb turns them into statements.
//
// Validate reports caller contract violations (an empty class name, an
// unknown type tag, a DropProperty without exactly one column) before any
// statement is generated.
package schema
