package orientdb

import "strings"

// WrapIdentifier returns a class or property name as written in
// statements. Names are emitted verbatim; a bare "*" always passes through.
func WrapIdentifier(name string) string {
	return name
}

// BacktickIdentifier quotes a name with backticks, doubling embedded
// backticks. Install it with WithIdentifierWrapper.
func BacktickIdentifier(name string) string {
	if name == "*" {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
