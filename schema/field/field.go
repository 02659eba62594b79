package field

// Constraints is the optional constraint set of a column. Every member is
// independently optional; absence is distinct from an explicit falsy value.
type Constraints struct {
	Length      Optional[int]     `yaml:"length" json:"length"`
	Nullable    Optional[bool]    `yaml:"nullable" json:"nullable"`
	NotNull     Optional[bool]    `yaml:"notnull" json:"notnull"`
	Mandatory   Optional[bool]    `yaml:"mandatory" json:"mandatory"`
	Min         Optional[float64] `yaml:"min" json:"min"`
	Max         Optional[float64] `yaml:"max" json:"max"`
	Regex       Optional[string]  `yaml:"regex" json:"regex"`
	Default     Optional[any]     `yaml:"default" json:"default"`
	Readonly    Optional[bool]    `yaml:"readonly" json:"readonly"`
	Collate     Optional[string]  `yaml:"collate" json:"collate"`
	Custom      Optional[string]  `yaml:"custom" json:"custom"`
	LinkedClass Optional[string]  `yaml:"linkedClass" json:"linkedClass"`
	LinkedType  Optional[string]  `yaml:"linkedType" json:"linkedType"`
	// Rename and Retype carry the property "name" and "type" attributes.
	Rename Optional[string] `yaml:"rename" json:"rename"`
	Retype Optional[string] `yaml:"retype" json:"retype"`

	// Relational modifiers some schema builders emit. They have no
	// equivalent in the class/property dialect.
	Unsigned      Optional[bool]   `yaml:"unsigned" json:"unsigned"`
	AutoIncrement Optional[bool]   `yaml:"autoIncrement" json:"autoIncrement"`
	After         Optional[string] `yaml:"after" json:"after"`
	Comment       Optional[string] `yaml:"comment" json:"comment"`
}

// A Descriptor for column configuration.
type Descriptor struct {
	Name        string `yaml:"name" json:"name"`
	Type        Type   `yaml:"type" json:"type"`
	Constraints `yaml:",inline"`
}

// Builder is the fluent builder for column descriptors.
type Builder struct {
	desc *Descriptor
}

// New returns a builder for a column with the given name and type tag.
func New(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t}}
}

// Any returns a new column builder of type any.
func Any(name string) *Builder { return New(name, TypeAny) }

// Char returns a new column builder of type char.
func Char(name string) *Builder { return New(name, TypeChar) }

// String returns a new column builder of type string.
func String(name string) *Builder { return New(name, TypeString) }

// Text returns a new column builder of type text.
func Text(name string) *Builder { return New(name, TypeText) }

// MediumText returns a new column builder of type mediumText.
func MediumText(name string) *Builder { return New(name, TypeMediumText) }

// LongText returns a new column builder of type longText.
func LongText(name string) *Builder { return New(name, TypeLongText) }

// BigInteger returns a new column builder of type bigInteger.
func BigInteger(name string) *Builder { return New(name, TypeBigInteger) }

// Integer returns a new column builder of type integer.
func Integer(name string) *Builder { return New(name, TypeInteger) }

// MediumInteger returns a new column builder of type mediumInteger.
func MediumInteger(name string) *Builder { return New(name, TypeMediumInteger) }

// TinyInteger returns a new column builder of type tinyInteger.
func TinyInteger(name string) *Builder { return New(name, TypeTinyInteger) }

// SmallInteger returns a new column builder of type smallInteger.
func SmallInteger(name string) *Builder { return New(name, TypeSmallInteger) }

// Float returns a new column builder of type float.
func Float(name string) *Builder { return New(name, TypeFloat) }

// Double returns a new column builder of type double.
func Double(name string) *Builder { return New(name, TypeDouble) }

// Decimal returns a new column builder of type decimal.
func Decimal(name string) *Builder { return New(name, TypeDecimal) }

// Boolean returns a new column builder of type boolean.
func Boolean(name string) *Builder { return New(name, TypeBoolean) }

// Enum returns a new column builder of type enum.
func Enum(name string) *Builder { return New(name, TypeEnum) }

// Date returns a new column builder of type date.
func Date(name string) *Builder { return New(name, TypeDate) }

// DateTime returns a new column builder of type dateTime.
func DateTime(name string) *Builder { return New(name, TypeDateTime) }

// Time returns a new column builder of type time.
func Time(name string) *Builder { return New(name, TypeTime) }

// Timestamp returns a new column builder of type timestamp.
func Timestamp(name string) *Builder { return New(name, TypeTimestamp) }

// Binary returns a new column builder of type binary.
func Binary(name string) *Builder { return New(name, TypeBinary) }

// Length sets the declared length. The class/property dialect accepts it
// but never emits it.
func (b *Builder) Length(n int) *Builder {
	b.desc.Length = Some(n)
	return b
}

// Nullable sets the nullable constraint.
func (b *Builder) Nullable(v bool) *Builder {
	b.desc.Nullable = Some(v)
	return b
}

// NotNull sets the notnull constraint.
func (b *Builder) NotNull(v bool) *Builder {
	b.desc.NotNull = Some(v)
	return b
}

// Mandatory sets the mandatory constraint.
func (b *Builder) Mandatory(v bool) *Builder {
	b.desc.Mandatory = Some(v)
	return b
}

// Min sets the minimum value (or length, for strings).
func (b *Builder) Min(v float64) *Builder {
	b.desc.Min = Some(v)
	return b
}

// Max sets the maximum value (or length, for strings).
func (b *Builder) Max(v float64) *Builder {
	b.desc.Max = Some(v)
	return b
}

// Range sets both the minimum and the maximum.
func (b *Builder) Range(lo, hi float64) *Builder {
	return b.Min(lo).Max(hi)
}

// Regex sets the pattern values must match.
func (b *Builder) Regex(pattern string) *Builder {
	b.desc.Regex = Some(pattern)
	return b
}

// Default sets the default value. A nil value is treated as no default.
func (b *Builder) Default(v any) *Builder {
	b.desc.Default = Some(v)
	return b
}

// Readonly sets the readonly constraint.
func (b *Builder) Readonly(v bool) *Builder {
	b.desc.Readonly = Some(v)
	return b
}

// Collate sets the collation.
func (b *Builder) Collate(name string) *Builder {
	b.desc.Collate = Some(name)
	return b
}

// Custom sets a custom property attribute.
func (b *Builder) Custom(v string) *Builder {
	b.desc.Custom = Some(v)
	return b
}

// LinkedClass sets the class of linked records.
func (b *Builder) LinkedClass(class string) *Builder {
	b.desc.LinkedClass = Some(class)
	return b
}

// LinkedType sets the type of embedded collection items.
func (b *Builder) LinkedType(t string) *Builder {
	b.desc.LinkedType = Some(t)
	return b
}

// Rename sets the name-change attribute of the property.
func (b *Builder) Rename(name string) *Builder {
	b.desc.Rename = Some(name)
	return b
}

// Retype sets the type-change attribute of the property.
func (b *Builder) Retype(t string) *Builder {
	b.desc.Retype = Some(t)
	return b
}

// Unsigned marks the column as unsigned.
func (b *Builder) Unsigned() *Builder {
	b.desc.Unsigned = Some(true)
	return b
}

// AutoIncrement marks the column as auto-incrementing.
func (b *Builder) AutoIncrement() *Builder {
	b.desc.AutoIncrement = Some(true)
	return b
}

// After places the column after another one.
func (b *Builder) After(column string) *Builder {
	b.desc.After = Some(column)
	return b
}

// Comment sets the column comment.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = Some(c)
	return b
}

// Descriptor returns the column descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
