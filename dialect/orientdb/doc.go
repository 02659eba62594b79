// Package orientdb compiles blueprints into the class/property DDL
// dialect: create class, CREATE PROPERTY, CREATE INDEX and the drop
// statements.
//
//	g, err := orientdb.New()
//	if err != nil {
//	    return err
//	}
//	bp := schema.New("User").Fields(
//	    field.String("name").Mandatory(true).Min(5).Max(25),
//	)
//	ddl, err := g.Compile(bp)
//	// CREATE PROPERTY User.name STRING (MIN 5, MANDATORY TRUE, MAX 25, NOTNULL TRUE)
//
// Modifier clauses are emitted in a fixed priority order, independent of
// the order constraints were set. Every property carries a NOTNULL clause.
//
// Commands without a dialect equivalent (renames, primary/unique/foreign
// key drops) fail with an error matching orientschema.ErrUnsupported.
package orientdb
