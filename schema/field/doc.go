// Package field provides fluent builders for defining class properties
// (columns) in a dialect-neutral way.
//
// # Column Types
//
// One constructor exists per type tag:
//
//	// String-like columns
//	field.Char("code")
//	field.String("name")
//	field.Text("bio")
//	field.Enum("status")
//
//	// Numeric columns
//	field.Integer("age")
//	field.BigInteger("views")
//	field.SmallInteger("rank")
//	field.Decimal("price")
//
//	// Temporal columns
//	field.Date("birthday")
//	field.Timestamp("created_at")
//
//	// Others
//	field.Boolean("active")
//	field.Binary("avatar")
//	field.Any("payload")
//
// # Constraints
//
// Constraints are optional and independent of each other. An unset
// constraint is distinct from one set to false, zero or "":
//
//	field.String("name").
//	    Mandatory(true).   // MANDATORY TRUE
//	    Min(5).            // MIN 5
//	    Max(25).           // MAX 25
//	    Regex("[A-Z].*").  // REGEX "[A-Z].*"
//	    Default("anon")    // DEFAULT "anon"
//
// Nullability follows a default-deny policy in the class dialect: a
// property is NOT NULL unless Nullable or NotNull is set explicitly.
//
// # Blueprint Files
//
// Descriptors decode from YAML and JSON. A key present in the document
// marks its constraint as set, even when the value is false:
//
//	- name: nickname
//	  type: string
//	  notnull: false
package field
