package load_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/compiler/load"
	"github.com/syssam/orientschema/dialect/orientdb"
	"github.com/syssam/orientschema/schema"
	"github.com/syssam/orientschema/schema/field"
	"github.com/syssam/orientschema/schema/index"
)

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]load.Format{
		"a.yaml":     load.YAML,
		"a.yml":      load.YAML,
		"dir/a.YAML": load.YAML,
		"a.json":     load.JSON,
	} {
		got, err := load.FormatOf(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := load.FormatOf("a.toml")
	assert.Error(t, err)
}

func TestFile_YAML(t *testing.T) {
	docs, err := load.File("testdata/user.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	user := docs[0]
	assert.Equal(t, "User", user.Class)
	assert.Equal(t, "testdata/user.yaml", user.Pos.File)
	assert.Equal(t, 0, user.Pos.Index)
	require.Len(t, user.Columns, 1)
	assert.Equal(t, field.TypeString, user.Columns[0].Type)
	assert.True(t, user.Columns[0].Mandatory.Value())
	assert.Empty(t, user.Commands)

	employee := docs[1]
	assert.Equal(t, "User", employee.Extends)
	assert.Equal(t, 1, employee.Pos.Index)
	assert.True(t, employee.Columns[0].NotNull.IsSet())
	assert.False(t, employee.Columns[0].NotNull.Value())
	require.Len(t, employee.Commands, 2)
	assert.Equal(t, schema.CreateClass, employee.Commands[0].Kind)
	assert.Equal(t, schema.CreateIndex, employee.Commands[1].Kind)
	assert.Equal(t, index.Unique, employee.Commands[1].Type)

	drops := docs[2]
	require.Len(t, drops.Commands, 2)
	assert.Equal(t, schema.DropProperty, drops.Commands[0].Kind)
	assert.Equal(t, []string{"age"}, drops.Commands[0].Columns)
	assert.Equal(t, schema.DropClassIfExists, drops.Commands[1].Kind)
}

func TestBlueprints_Compile(t *testing.T) {
	g, err := orientdb.New()
	require.NoError(t, err)

	bps, err := load.Blueprints("testdata/user.yaml")
	require.NoError(t, err)
	require.Len(t, bps, 3)

	var got []string
	for _, bp := range bps {
		ddl, err := g.Compile(bp)
		require.NoError(t, err)
		got = append(got, ddl)
	}
	assert.Equal(t, []string{
		"CREATE PROPERTY User.name STRING (MIN 5, MANDATORY TRUE, MAX 25, NOTNULL TRUE)",
		"create class Employee extends User;" +
			`CREATE PROPERTY Employee.badge INTEGER (NOTNULL FALSE, DEFAULT "100")` + ";" +
			"CREATE INDEX employee_badge_unique ON Employee (badge) unique",
		"DROP PROPERTY User.age IF EXISTS;drop class User if exists unsafe",
	}, got)
}

func TestBlueprints_JSON(t *testing.T) {
	g, err := orientdb.New()
	require.NoError(t, err)

	bps, err := load.Blueprints("testdata/user.json")
	require.NoError(t, err)
	require.Len(t, bps, 2)

	ddl, err := g.Compile(bps[0])
	require.NoError(t, err)
	assert.Equal(t, "create class User extends V;"+
		`CREATE PROPERTY User.email STRING (NOTNULL TRUE, REGEX "[^@]+@[^@]+", READONLY FALSE)`+";"+
		"CREATE INDEX idx_email ON User (email) unique", ddl)

	ddl, err = g.Compile(bps[1])
	require.NoError(t, err)
	assert.Equal(t, "DELETE VERTEX Session;drop class Session unsafe", ddl)
}

func TestFile_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		_, err := load.File("testdata/badtype.yaml")
		require.Error(t, err)
		var le *load.Error
		require.True(t, errors.As(err, &le))
		assert.Equal(t, "testdata/badtype.yaml", le.Pos.File)
		assert.Equal(t, 1, le.Pos.Index)
		assert.True(t, errors.Is(err, orientschema.ErrInvalidBlueprint))
		assert.Contains(t, err.Error(), "testdata/badtype.yaml")
	})
	t.Run("unknown command", func(t *testing.T) {
		_, err := load.File("testdata/badcommand.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown command "truncate"`)
		assert.Contains(t, err.Error(), "line 4")
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := load.File("testdata/missing.yaml")
		assert.Error(t, err)
	})
	t.Run("unknown json key", func(t *testing.T) {
		_, err := load.Decode([]byte(`{"class":"User","colums":[]}`), "inline.json", load.JSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inline.json#0")
	})
	t.Run("mapping without kind", func(t *testing.T) {
		_, err := load.Decode([]byte("class: User\ncommands:\n  - columns: [a]\n"), "inline.yaml", load.YAML)
		assert.True(t, errors.Is(err, orientschema.ErrInvalidBlueprint))
	})
}

func TestDecode_SkipsEmptyDocuments(t *testing.T) {
	docs, err := load.Decode([]byte("---\nclass: A\n---\n---\nclass: B\n"), "x.yaml", load.YAML)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "A", docs[0].Class)
	assert.Equal(t, "B", docs[1].Class)
}

func TestNewCommand(t *testing.T) {
	cmd := load.NewCommand("UserProfile", &load.Command{Kind: schema.CreateIndex, Columns: []string{"first name"}, Type: index.Unique})
	require.NotNil(t, cmd.Index)
	assert.Equal(t, "user_profile_first_name_unique", cmd.Index.Name)

	cmd = load.NewCommand("User", &load.Command{Kind: schema.CreateIndex, Columns: []string{"a"}})
	assert.Equal(t, index.Plain, cmd.Index.Type)

	cmd = load.NewCommand("User", &load.Command{Kind: schema.RenameClass, To: "Person"})
	assert.Equal(t, "Person", cmd.To)

	cmd = load.NewCommand("User", &load.Command{Kind: schema.DropUnique, Name: "u"})
	assert.Equal(t, "u", cmd.Index.Name)
	assert.Equal(t, index.Unique, cmd.Index.Type)
}

func TestBlueprints_Mixins(t *testing.T) {
	docs, err := load.File("testdata/mixins.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	bp, err := docs[0].Blueprint()
	require.NoError(t, err)
	g, err := orientdb.New()
	require.NoError(t, err)
	stmts, err := g.Statements(bp)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"create class Post",
		"CREATE PROPERTY Post.created_at DATETIME (NOTNULL TRUE, READONLY TRUE)",
		"CREATE PROPERTY Post.updated_at DATETIME (NOTNULL TRUE)",
		"CREATE PROPERTY Post.deleted_at DATETIME (NOTNULL TRUE)",
		"CREATE PROPERTY Post.title STRING (NOTNULL TRUE)",
	}, stmts)

	_, err = docs[1].Blueprint()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mixin "audit"`)
	assert.Contains(t, err.Error(), "testdata/mixins.yaml")

	_, err = load.Blueprints("testdata/mixins.yaml")
	assert.True(t, errors.Is(err, orientschema.ErrInvalidBlueprint))
}

func TestDecode_UnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		f    load.Format
		key  string
	}{
		{
			name: "yaml column",
			doc:  "class: User\ncolumns:\n  - name: n\n    type: string\n    readOnly: true\n",
			f:    load.YAML,
			key:  "readOnly",
		},
		{
			name: "yaml class",
			doc:  "class: User\nparent: V\n",
			f:    load.YAML,
			key:  "parent",
		},
		{
			name: "yaml command",
			doc:  "class: User\ncommands:\n  - kind: index\n    colums: [a]\n",
			f:    load.YAML,
			key:  "colums",
		},
		{
			name: "json column",
			doc:  `{"class":"User","columns":[{"name":"n","type":"string","readOnly":true}]}`,
			f:    load.JSON,
			key:  "readOnly",
		},
		{
			name: "json command",
			doc:  `{"class":"User","commands":[{"kind":"index","colums":["a"]}]}`,
			f:    load.JSON,
			key:  "colums",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.Decode([]byte(tt.doc), "doc", tt.f)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
			var le *load.Error
			assert.True(t, errors.As(err, &le))
		})
	}
}

func TestDecode_UnsupportedConstraintReachesGrammar(t *testing.T) {
	doc := "class: User\ncolumns:\n  - name: n\n    type: string\n    readonly: true\n    linkedClass: Address\n"
	docs, err := load.Decode([]byte(doc), "doc.yaml", load.YAML)
	require.NoError(t, err)
	bp, err := docs[0].Blueprint()
	require.NoError(t, err)
	g, err := orientdb.New()
	require.NoError(t, err)
	_, err = g.Compile(bp)
	assert.True(t, errors.Is(err, orientschema.ErrUnsupported))

	docs[0].Columns[0].LinkedClass = field.Optional[string]{}
	ddl, err := g.Compile(bp)
	require.NoError(t, err)
	assert.Equal(t, "CREATE PROPERTY User.n STRING (NOTNULL TRUE, READONLY TRUE)", ddl)
}

func TestDecode_RenameRetypeKeys(t *testing.T) {
	doc := "class: User\ncolumns:\n  - name: age\n    type: integer\n    rename: years\n    retype: LONG\n"
	docs, err := load.Decode([]byte(doc), "doc.yaml", load.YAML)
	require.NoError(t, err)
	c := docs[0].Columns[0]
	assert.Equal(t, "age", c.Name)
	assert.Equal(t, field.TypeInteger, c.Type)
	assert.Equal(t, "years", c.Rename.Value())
	assert.Equal(t, "LONG", c.Retype.Value())

	bp, err := docs[0].Blueprint()
	require.NoError(t, err)
	g, err := orientdb.New()
	require.NoError(t, err)
	_, err = g.Compile(bp)
	assert.True(t, errors.Is(err, orientschema.ErrUnsupported))
}
