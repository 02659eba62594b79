// Package load reads blueprint documents from YAML and JSON files.
//
// A document describes one class and the commands applied to it:
//
//	class: User
//	extends: V
//	columns:
//	  - name: name
//	    type: string
//	    mandatory: true
//	commands:
//	  - create
//	  - kind: index
//	    columns: [name]
//	    type: unique
//
// Column keys follow the property attributes of the dialect, except that
// the name and type attributes live under "rename" and "retype" since
// "name" and "type" already identify the column itself:
//
//	columns:
//	  - name: age
//	    type: integer
//	    rename: years
//	    retype: LONG
//
// The default grammar reports both attributes as unsupported.
//
// Unknown keys in a class, column or command mapping are rejected with
// the offending line.
//
// YAML files may hold several documents separated by "---".
package load
