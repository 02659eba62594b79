// Package orientschema compiles dialect-neutral schema blueprints into
// class/property DDL statements.
//
// Blueprints are built with the schema, schema/field and schema/index
// packages, or loaded from YAML and JSON files with compiler/load, and
// compiled with a dialect/orientdb Grammar:
//
//	g, err := orientdb.New()
//	if err != nil {
//	    return err
//	}
//	ddl, err := g.Compile(
//	    schema.New("User").Extends("V").Create().Fields(
//	        field.String("name").Mandatory(true),
//	    ),
//	)
//	// create class User extends V;CREATE PROPERTY User.name STRING (MANDATORY TRUE, NOTNULL TRUE)
//
// This package holds the error types shared by the compiler packages.
// Errors are matched with errors.Is against ErrUnsupported,
// ErrInvalidBlueprint and ErrInvalidConfig.
package orientschema
