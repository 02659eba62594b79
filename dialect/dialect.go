package dialect

import "github.com/syssam/orientschema/schema"

// OrientDB is the name of the class/property DDL dialect.
const OrientDB = "orientdb"

// Grammar compiles blueprints into dialect statements.
type Grammar interface {
	// Dialect returns the dialect name.
	Dialect() string
	// Statements returns the ordered statements for the blueprint.
	Statements(*schema.Blueprint) ([]string, error)
	// Compile returns the statements joined by the dialect separator.
	Compile(*schema.Blueprint) (string, error)
}
