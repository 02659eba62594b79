// Package dialect provides the dialect abstraction for schema compilation.
//
// A dialect grammar turns a dialect-neutral schema.Blueprint into literal
// DDL statements. Grammars are pure: they perform no I/O, keep no state
// between calls, and are safe for concurrent use once constructed.
//
// # Supported Dialects
//
//   - OrientDB: CREATE CLASS / CREATE PROPERTY / DROP ... syntax
//
// # Dialect Constants
//
//	dialect.OrientDB = "orientdb"
//
// # Grammar Interface
//
//	type Grammar interface {
//	    Dialect() string
//	    Statements(*schema.Blueprint) ([]string, error)
//	    Compile(*schema.Blueprint) (string, error)
//	}
//
// # Usage
//
//	g, err := orientdb.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ddl, err := g.Compile(bp)
//
// # Sub-packages
//
//   - dialect/orientdb: the class/property grammar
package dialect
