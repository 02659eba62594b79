package orientdb

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/field"
)

// Config holds the tables and functions a Grammar compiles with. It is
// assembled by New from the defaults and the given options.
type Config struct {
	// TypeMap maps column type tags to type keywords.
	TypeMap TypeMap
	// ModifierOrder is the priority in which modifier clauses are emitted.
	ModifierOrder []Modifier
	// Modifiers is the modifier dispatch table.
	Modifiers map[Modifier]ModifierFunc
	// Literal formats constraint values.
	Literal func(any) string
	// Wrap normalizes class and property names.
	Wrap func(string) string
	// Logger receives validation warnings and compiled statements.
	Logger *slog.Logger
}

// Option configures a Grammar.
type Option func(*Config) error

func defaultConfig() *Config {
	return &Config{
		TypeMap:       DefaultTypeMap(),
		ModifierOrder: DefaultModifierOrder(),
		Modifiers:     defaultModifiers(),
		Literal:       FormatLiteral,
		Wrap:          WrapIdentifier,
		Logger:        slog.Default(),
	}
}

// WithTypeMapping overrides the keywords of the given type tags. Tags not
// present in m keep their default keyword.
func WithTypeMapping(m TypeMap) Option {
	return func(c *Config) error {
		for t, kw := range m {
			if !t.Valid() {
				return orientschema.NewConfigError("TypeMap", t, "unknown column type")
			}
			if kw == "" {
				return orientschema.NewConfigError("TypeMap", t, "type keyword cannot be empty")
			}
			c.TypeMap[t] = kw
		}
		return nil
	}
}

// WithModifier registers or replaces the handler of a modifier. A new
// modifier only emits once it is listed in the modifier order.
func WithModifier(m Modifier, fn ModifierFunc) Option {
	return func(c *Config) error {
		if m == "" {
			return orientschema.NewConfigError("Modifier", nil, "modifier name cannot be empty")
		}
		if fn == nil {
			return orientschema.NewConfigError("Modifier", m, "handler cannot be nil")
		}
		c.Modifiers[m] = fn
		return nil
	}
}

// WithModifierOrder replaces the modifier priority list.
func WithModifierOrder(order ...Modifier) Option {
	return func(c *Config) error {
		if len(order) == 0 {
			return orientschema.NewConfigError("ModifierOrder", nil, "order cannot be empty")
		}
		c.ModifierOrder = slices.Clone(order)
		return nil
	}
}

// WithLiteralFormatter replaces the constraint value formatter.
func WithLiteralFormatter(fn func(any) string) Option {
	return func(c *Config) error {
		if fn == nil {
			return orientschema.NewConfigError("Literal", nil, "formatter cannot be nil")
		}
		c.Literal = fn
		return nil
	}
}

// WithEscapedLiterals escapes double quotes and backslashes inside quoted
// literals. Without it, quotes pass through unescaped.
func WithEscapedLiterals() Option {
	return WithLiteralFormatter(EscapedLiteral)
}

// WithIdentifierWrapper replaces the class and property name wrapper.
func WithIdentifierWrapper(fn func(string) string) Option {
	return func(c *Config) error {
		if fn == nil {
			return orientschema.NewConfigError("Wrap", nil, "wrapper cannot be nil")
		}
		c.Wrap = fn
		return nil
	}
}

// WithLogger sets the logger for validation warnings and compiled
// statements.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return orientschema.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// check verifies the assembled configuration.
func (c *Config) check() error {
	for _, t := range field.Types() {
		if c.TypeMap[t] == "" {
			return orientschema.NewConfigError("TypeMap", t, "missing type keyword")
		}
	}
	for _, m := range c.ModifierOrder {
		if _, ok := c.Modifiers[m]; !ok {
			return orientschema.NewConfigError("ModifierOrder", m, "modifier has no handler")
		}
	}
	return nil
}

// clone returns a copy whose tables are not shared with c.
func (c *Config) clone() Config {
	cc := *c
	cc.TypeMap = maps.Clone(c.TypeMap)
	cc.ModifierOrder = slices.Clone(c.ModifierOrder)
	cc.Modifiers = maps.Clone(c.Modifiers)
	return cc
}
