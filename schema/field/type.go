package field

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"

	"github.com/syssam/orientschema"
)

// A Type represents a dialect-neutral column type tag.
type Type uint8

// List of column type tags accepted by schema builders.
const (
	TypeInvalid Type = iota
	TypeAny
	TypeChar
	TypeString
	TypeText
	TypeMediumText
	TypeLongText
	TypeBigInteger
	TypeInteger
	TypeMediumInteger
	TypeTinyInteger
	TypeSmallInteger
	TypeFloat
	TypeDouble
	TypeDecimal
	TypeBoolean
	TypeEnum
	TypeDate
	TypeDateTime
	TypeTime
	TypeTimestamp
	TypeBinary
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:       "invalid",
	TypeAny:           "any",
	TypeChar:          "char",
	TypeString:        "string",
	TypeText:          "text",
	TypeMediumText:    "mediumText",
	TypeLongText:      "longText",
	TypeBigInteger:    "bigInteger",
	TypeInteger:       "integer",
	TypeMediumInteger: "mediumInteger",
	TypeTinyInteger:   "tinyInteger",
	TypeSmallInteger:  "smallInteger",
	TypeFloat:         "float",
	TypeDouble:        "double",
	TypeDecimal:       "decimal",
	TypeBoolean:       "boolean",
	TypeEnum:          "enum",
	TypeDate:          "date",
	TypeDateTime:      "dateTime",
	TypeTime:          "time",
	TypeTimestamp:     "timestamp",
	TypeBinary:        "binary",
}

// foldedTypes indexes the tag names by their case-folded form.
var foldedTypes = func() map[string]Type {
	fold := cases.Fold()
	m := make(map[string]Type, len(typeNames))
	for t := TypeAny; t < endTypes; t++ {
		m[fold.String(typeNames[t])] = t
	}
	return m
}()

// Types returns all valid type tags in declaration order.
func Types() []Type {
	ts := make([]Type, 0, int(endTypes)-1)
	for t := TypeAny; t < endTypes; t++ {
		ts = append(ts, t)
	}
	return ts
}

// String returns the tag name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a known type tag.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeBigInteger && t <= TypeDecimal
}

// Bound truncates a min or max constraint toward zero. It reports false
// for NaN, infinities and values outside the int64 range. Values beyond
// 2^53 are already rounded by float64.
func Bound(v float64) (int64, bool) {
	if math.IsNaN(v) || v < -(1<<63) || v >= 1<<63 {
		return 0, false
	}
	return int64(v), true
}

// ParseType returns the type tag for the given name. Names are matched
// case-insensitively, so "mediumText" and "MEDIUMTEXT" are equivalent.
func ParseType(name string) (Type, error) {
	if t, ok := foldedTypes[cases.Fold().String(name)]; ok {
		return t, nil
	}
	return TypeInvalid, orientschema.NewValidationError("", "", fmt.Sprintf("unknown column type %q", name))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("field: cannot marshal invalid type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
