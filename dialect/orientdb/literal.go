package orientdb

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// FormatLiteral renders a constraint value in dialect literal syntax:
//
//	true, false         -> TRUE, FALSE
//	nil, "null", "NULL" -> NULL
//	anything else       -> "value"
//
// Strings are matched against null case-insensitively with Unicode
// folding (cases.Fold).
//
// Embedded double quotes are not escaped, so a value such as `say "hi"`
// yields a malformed literal. Use EscapedLiteral (WithEscapedLiterals) to
// escape them.
func FormatLiteral(v any) string {
	s, ok := bareLiteral(v)
	if ok {
		return s
	}
	return `"` + s + `"`
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapedLiteral is FormatLiteral with backslashes and double quotes
// escaped inside quoted values.
func EscapedLiteral(v any) string {
	s, ok := bareLiteral(v)
	if ok {
		return s
	}
	return `"` + literalEscaper.Replace(s) + `"`
}

// bareLiteral returns the unquoted form of v and whether it is a keyword
// literal that must not be quoted. The null match uses full Unicode case
// folding rather than ASCII lowering, so "NULL" and "Null" qualify but so
// does any spelling that folds to "null".
func bareLiteral(v any) (string, bool) {
	var s string
	switch v := v.(type) {
	case nil:
		return "NULL", true
	case bool:
		if v {
			return "TRUE", true
		}
		return "FALSE", true
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	if cases.Fold().String(s) == "null" {
		return "NULL", true
	}
	return s, false
}
