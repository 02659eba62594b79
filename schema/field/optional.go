package field

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional holds a constraint value that is either present or absent.
// The zero value is absent. A present value may be falsy (false, "", 0);
// only absence means "not specified".
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// Value returns the value, or the zero value of T if absent.
func (o Optional[T]) Value() T { return o.value }

// UnmarshalYAML implements yaml.Unmarshaler. A key that appears in the
// document is present even if its value is falsy.
func (o *Optional[T]) UnmarshalYAML(n *yaml.Node) error {
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. An explicit null stays absent.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
