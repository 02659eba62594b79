package index_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/index"
)

// TestIndexColumns tests creating indexes on columns.
func TestIndexColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func() *index.Descriptor
		validate func(t *testing.T, desc *index.Descriptor)
	}{
		{
			name: "single_column",
			build: func() *index.Descriptor {
				return index.Columns("name").Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, []string{"name"}, desc.Columns)
				assert.Equal(t, index.Plain, desc.Type)
				assert.Empty(t, desc.Name)
			},
		},
		{
			name: "multiple_columns",
			build: func() *index.Descriptor {
				return index.Columns("first", "last").Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, []string{"first", "last"}, desc.Columns)
			},
		},
		{
			name: "unique_index",
			build: func() *index.Descriptor {
				return index.Columns("email").Unique().Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, index.Unique, desc.Type)
			},
		},
		{
			name: "primary_with_name",
			build: func() *index.Descriptor {
				return index.Columns("id").Primary().Name("user_pk").Descriptor()
			},
			validate: func(t *testing.T, desc *index.Descriptor) {
				assert.Equal(t, index.Primary, desc.Type)
				assert.Equal(t, "user_pk", desc.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.validate(t, tt.build())
		})
	}
}

func TestParseType(t *testing.T) {
	tests := map[string]index.Type{
		"primary":     index.Primary,
		"primary key": index.Primary,
		"primaryKey":  index.Primary,
		"UNIQUE":      index.Unique,
		"index":       index.Plain,
		"plain":       index.Plain,
		"":            index.Plain,
	}
	for in, want := range tests {
		got, err := index.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}

	_, err := index.ParseType("fulltext")
	require.Error(t, err)
	assert.True(t, errors.Is(err, orientschema.ErrInvalidBlueprint))
	assert.False(t, index.Type("fulltext").Valid())
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "user_email_unique", index.DefaultName("User", []string{"email"}, index.Unique))
	assert.Equal(t, "user_profile_first_name_unique", index.DefaultName("UserProfile", []string{"first name"}, index.Unique))
	assert.Equal(t, "user_id_primary", index.DefaultName("User", []string{"id"}, index.Primary))
	assert.Equal(t, "user_first_last_index", index.DefaultName("User", []string{"first", "last"}, index.Plain))
}
