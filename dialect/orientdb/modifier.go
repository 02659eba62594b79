package orientdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/field"
)

// Modifier names a property modifier clause.
type Modifier string

// Modifiers of the class/property dialect, and the relational modifiers a
// schema builder may still set on a column.
const (
	Linkedclass Modifier = "Linkedclass"
	Linkedtype  Modifier = "Linkedtype"
	Min         Modifier = "Min"
	Mandatory   Modifier = "Mandatory"
	Max         Modifier = "Max"
	Name        Modifier = "Name"
	Notnull     Modifier = "Notnull"
	Regex       Modifier = "Regex"
	Type        Modifier = "Type"
	Collate     Modifier = "Collate"
	Readonly    Modifier = "Readonly"
	Custom      Modifier = "Custom"
	Default     Modifier = "Default"

	Unsigned  Modifier = "Unsigned"
	Increment Modifier = "Increment"
	After     Modifier = "After"
	Comment   Modifier = "Comment"
)

// ModifierFunc renders one modifier clause for a column. An empty clause
// means the modifier does not apply.
type ModifierFunc func(g *Grammar, c *field.Descriptor) (string, error)

// DefaultModifierOrder returns the fixed priority in which modifier
// clauses are emitted, independent of the order constraints were set.
func DefaultModifierOrder() []Modifier {
	return []Modifier{
		Linkedclass, Linkedtype, Min, Mandatory, Max, Name, Notnull,
		Regex, Type, Collate, Readonly, Custom, Default,
	}
}

// legacyModifiers are checked ahead of the priority list. They never emit
// a clause, and fail when their constraint is set.
var legacyModifiers = []Modifier{Unsigned, Increment, After, Comment}

// defaultModifiers returns the static modifier dispatch table.
func defaultModifiers() map[Modifier]ModifierFunc {
	return map[Modifier]ModifierFunc{
		Linkedclass: unsupported(Linkedclass, func(c *field.Descriptor) bool { return c.LinkedClass.IsSet() }),
		Linkedtype:  unsupported(Linkedtype, func(c *field.Descriptor) bool { return c.LinkedType.IsSet() }),
		Min:         modifyMin,
		Mandatory:   modifyMandatory,
		Max:         modifyMax,
		Name:        unsupported(Name, func(c *field.Descriptor) bool { return c.Rename.IsSet() }),
		Notnull:     modifyNotnull,
		Regex:       modifyRegex,
		Type:        unsupported(Type, func(c *field.Descriptor) bool { return c.Retype.IsSet() }),
		Collate:     unsupported(Collate, func(c *field.Descriptor) bool { return c.Collate.IsSet() }),
		Readonly:    modifyReadonly,
		Custom:      unsupported(Custom, func(c *field.Descriptor) bool { return c.Custom.IsSet() }),
		Default:     modifyDefault,
		Unsigned:    unsupported(Unsigned, func(c *field.Descriptor) bool { return c.Unsigned.IsSet() }),
		Increment:   unsupported(Increment, func(c *field.Descriptor) bool { return c.AutoIncrement.IsSet() }),
		After:       unsupported(After, func(c *field.Descriptor) bool { return c.After.IsSet() }),
		Comment:     unsupported(Comment, func(c *field.Descriptor) bool { return c.Comment.IsSet() }),
	}
}

// unsupported returns a placeholder handler. It emits nothing while the
// constraint is absent and rejects the column once it is set.
func unsupported(m Modifier, set func(*field.Descriptor) bool) ModifierFunc {
	return func(g *Grammar, c *field.Descriptor) (string, error) {
		if set(c) {
			return "", orientschema.NewUnsupportedModifier(g.Dialect(), string(m))
		}
		return "", nil
	}
}

func modifyMin(_ *Grammar, c *field.Descriptor) (string, error) {
	return bound("MIN", c.Name, c.Min)
}

func modifyMandatory(g *Grammar, c *field.Descriptor) (string, error) {
	if v, ok := c.Mandatory.Get(); ok {
		return "MANDATORY " + g.Literal(v), nil
	}
	return "", nil
}

func modifyMax(_ *Grammar, c *field.Descriptor) (string, error) {
	return bound("MAX", c.Name, c.Max)
}

// bound renders a MIN or MAX clause with the value truncated to an integer.
func bound(kw, column string, o field.Optional[float64]) (string, error) {
	v, ok := o.Get()
	if !ok {
		return "", nil
	}
	n, ok := field.Bound(v)
	if !ok {
		return "", orientschema.NewValidationError("", column, fmt.Sprintf("%s %v is not a finite integer bound", strings.ToLower(kw), v))
	}
	return kw + " " + strconv.FormatInt(n, 10), nil
}

// modifyNotnull always emits a clause: properties are NOT NULL unless
// nullable or notnull says otherwise, and nullable wins when both are set.
func modifyNotnull(g *Grammar, c *field.Descriptor) (string, error) {
	if v, ok := c.Nullable.Get(); ok {
		return "NOTNULL " + g.Literal(v), nil
	}
	if v, ok := c.NotNull.Get(); ok {
		return "NOTNULL " + g.Literal(v), nil
	}
	return "NOTNULL TRUE", nil
}

func modifyRegex(g *Grammar, c *field.Descriptor) (string, error) {
	if v, ok := c.Regex.Get(); ok {
		return "REGEX " + g.Literal(v), nil
	}
	return "", nil
}

func modifyReadonly(g *Grammar, c *field.Descriptor) (string, error) {
	if v, ok := c.Readonly.Get(); ok {
		return "READONLY " + g.Literal(v), nil
	}
	return "", nil
}

func modifyDefault(g *Grammar, c *field.Descriptor) (string, error) {
	if v, ok := c.Default.Get(); ok && v != nil {
		return "DEFAULT " + g.Literal(v), nil
	}
	return "", nil
}

// CompileModifiers returns the modifier clauses of a column in priority
// order. Empty clauses are skipped.
func (g *Grammar) CompileModifiers(c *field.Descriptor) ([]string, error) {
	var clauses []string
	for _, list := range [][]Modifier{legacyModifiers, g.cfg.ModifierOrder} {
		for _, m := range list {
			fn, ok := g.cfg.Modifiers[m]
			if !ok {
				continue
			}
			clause, err := fn(g, c)
			if err != nil {
				return nil, err
			}
			if clause != "" {
				clauses = append(clauses, clause)
			}
		}
	}
	return clauses, nil
}

// modifierSuffix renders clauses as the " (A, B, C)" property suffix.
func modifierSuffix(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " (" + strings.Join(clauses, ", ") + ")"
}
