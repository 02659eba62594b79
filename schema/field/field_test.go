package field_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/field"
)

func TestString(t *testing.T) {
	fd := field.String("name").
		Mandatory(true).
		Min(5).
		Max(25).
		Descriptor()
	assert.Equal(t, "name", fd.Name)
	assert.Equal(t, field.TypeString, fd.Type)

	v, ok := fd.Mandatory.Get()
	assert.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, 5.0, fd.Min.Value())
	assert.Equal(t, 25.0, fd.Max.Value())
	assert.False(t, fd.Nullable.IsSet())
	assert.False(t, fd.NotNull.IsSet())
	assert.False(t, fd.Default.IsSet())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		b    *field.Builder
		want field.Type
	}{
		{field.Any("f"), field.TypeAny},
		{field.Char("f"), field.TypeChar},
		{field.String("f"), field.TypeString},
		{field.Text("f"), field.TypeText},
		{field.MediumText("f"), field.TypeMediumText},
		{field.LongText("f"), field.TypeLongText},
		{field.BigInteger("f"), field.TypeBigInteger},
		{field.Integer("f"), field.TypeInteger},
		{field.MediumInteger("f"), field.TypeMediumInteger},
		{field.TinyInteger("f"), field.TypeTinyInteger},
		{field.SmallInteger("f"), field.TypeSmallInteger},
		{field.Float("f"), field.TypeFloat},
		{field.Double("f"), field.TypeDouble},
		{field.Decimal("f"), field.TypeDecimal},
		{field.Boolean("f"), field.TypeBoolean},
		{field.Enum("f"), field.TypeEnum},
		{field.Date("f"), field.TypeDate},
		{field.DateTime("f"), field.TypeDateTime},
		{field.Time("f"), field.TypeTime},
		{field.Timestamp("f"), field.TypeTimestamp},
		{field.Binary("f"), field.TypeBinary},
	}
	require.Len(t, tests, len(field.Types()))
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.Descriptor().Type)
			assert.True(t, tt.want.Valid())
		})
	}
}

func TestFalsyValuesArePresent(t *testing.T) {
	fd := field.Boolean("active").
		Nullable(false).
		Readonly(false).
		Min(0).
		Regex("").
		Descriptor()

	assert.True(t, fd.Nullable.IsSet())
	assert.False(t, fd.Nullable.Value())
	assert.True(t, fd.Readonly.IsSet())
	assert.True(t, fd.Min.IsSet())
	assert.True(t, fd.Regex.IsSet())
	assert.False(t, fd.Max.IsSet())
}

func TestLegacyModifiers(t *testing.T) {
	fd := field.Integer("id").
		Unsigned().
		AutoIncrement().
		After("name").
		Comment("primary id").
		Descriptor()
	assert.True(t, fd.Unsigned.Value())
	assert.True(t, fd.AutoIncrement.Value())
	assert.Equal(t, "name", fd.After.Value())
	assert.Equal(t, "primary id", fd.Comment.Value())
}

func TestParseType(t *testing.T) {
	for _, typ := range field.Types() {
		got, err := field.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := field.ParseType("MEDIUMTEXT")
	require.NoError(t, err)
	assert.Equal(t, field.TypeMediumText, got)

	got, err = field.ParseType("datetime")
	require.NoError(t, err)
	assert.Equal(t, field.TypeDateTime, got)

	_, err = field.ParseType("uuid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, orientschema.ErrInvalidBlueprint))
	assert.Contains(t, err.Error(), `unknown column type "uuid"`)
}

func TestType(t *testing.T) {
	assert.False(t, field.TypeInvalid.Valid())
	assert.Equal(t, "invalid", field.TypeInvalid.String())
	assert.Equal(t, "invalid", field.Type(200).String())
	assert.True(t, field.TypeDecimal.Numeric())
	assert.True(t, field.TypeBigInteger.Numeric())
	assert.False(t, field.TypeString.Numeric())

	b, err := field.TypeLongText.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "longText", string(b))
	_, err = field.TypeInvalid.MarshalText()
	assert.Error(t, err)
}

func TestDescriptor_YAML(t *testing.T) {
	const doc = `
name: nickname
type: string
notnull: false
min: 3
default: null
regex: "[a-z]+"
`
	var fd field.Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(doc), &fd))
	assert.Equal(t, "nickname", fd.Name)
	assert.Equal(t, field.TypeString, fd.Type)

	v, ok := fd.NotNull.Get()
	assert.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, 3.0, fd.Min.Value())
	assert.Equal(t, "[a-z]+", fd.Regex.Value())
	assert.False(t, fd.Default.IsSet())
	assert.False(t, fd.Mandatory.IsSet())

	err := yaml.Unmarshal([]byte("name: x\ntype: jsonb\n"), &fd)
	assert.Error(t, err)
}

func TestDescriptor_JSON(t *testing.T) {
	const doc = `{"name":"age","type":"integer","mandatory":false,"default":18,"readonly":null}`
	var fd field.Descriptor
	require.NoError(t, json.Unmarshal([]byte(doc), &fd))
	assert.Equal(t, field.TypeInteger, fd.Type)
	assert.True(t, fd.Mandatory.IsSet())
	assert.False(t, fd.Mandatory.Value())
	assert.Equal(t, 18.0, fd.Default.Value())
	assert.False(t, fd.Readonly.IsSet())
}

func TestBound(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
		ok   bool
	}{
		{5, 5, true},
		{1.9, 1, true},
		{-2.5, -2, true},
		{0, 0, true},
		{-9223372036854775808, math.MinInt64, true},
		{9223372036854775808, 0, false},
		{-9223372036854777856, 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
		{math.NaN(), 0, false},
		// float64 keeps 53 bits of mantissa.
		{9007199254740993, 9007199254740992, true},
	}
	for _, tt := range tests {
		got, ok := field.Bound(tt.in)
		assert.Equal(t, tt.ok, ok, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}
}
