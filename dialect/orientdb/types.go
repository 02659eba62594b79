package orientdb

import (
	"fmt"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/field"
)

// TypeMap maps column type tags to dialect type keywords.
type TypeMap map[field.Type]string

// DefaultTypeMap returns a fresh copy of the default type table. String
// and decimal types never carry length or precision parameters.
func DefaultTypeMap() TypeMap {
	return TypeMap{
		field.TypeAny:           "ANY",
		field.TypeChar:          "STRING",
		field.TypeString:        "STRING",
		field.TypeText:          "STRING",
		field.TypeMediumText:    "STRING",
		field.TypeLongText:      "STRING",
		field.TypeEnum:          "STRING",
		field.TypeBigInteger:    "LONG",
		field.TypeMediumInteger: "LONG",
		field.TypeInteger:       "INTEGER",
		field.TypeTinyInteger:   "SHORT",
		field.TypeSmallInteger:  "SHORT",
		field.TypeFloat:         "FLOAT",
		field.TypeDouble:        "DOUBLE",
		field.TypeDecimal:       "DECIMAL",
		field.TypeBoolean:       "BOOLEAN",
		field.TypeDate:          "DATE",
		field.TypeDateTime:      "DATETIME",
		field.TypeTime:          "DATETIME",
		field.TypeTimestamp:     "DATETIME",
		field.TypeBinary:        "BINARY",
	}
}

// MapType returns the dialect keyword for the given type tag.
func (g *Grammar) MapType(t field.Type) (string, error) {
	if kw, ok := g.cfg.TypeMap[t]; ok {
		return kw, nil
	}
	return "", orientschema.NewValidationError("", "", fmt.Sprintf("no %s type for column type %q", g.Dialect(), t))
}
