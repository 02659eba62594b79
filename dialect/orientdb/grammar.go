package orientdb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/dialect"
	"github.com/syssam/orientschema/schema"
	"github.com/syssam/orientschema/schema/field"
)

// Separator joins the statements of one compile call.
const Separator = ";"

// Grammar compiles blueprints into class/property statements. A Grammar
// is immutable after New and safe for concurrent use.
type Grammar struct {
	cfg Config
}

var _ dialect.Grammar = (*Grammar)(nil)

// New returns a Grammar configured with the default tables and the given
// options.
//
// Example:
//
//	g, err := orientdb.New(
//	    orientdb.WithEscapedLiterals(),
//	    orientdb.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	ddl, err := g.Compile(bp)
func New(opts ...Option) (*Grammar, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &Grammar{cfg: cfg.clone()}, nil
}

// Dialect returns the dialect name.
func (*Grammar) Dialect() string { return dialect.OrientDB }

// Literal formats a constraint value with the configured formatter.
func (g *Grammar) Literal(v any) string { return g.cfg.Literal(v) }

// Wrap formats a class or property name with the configured wrapper.
func (g *Grammar) Wrap(name string) string { return g.cfg.Wrap(name) }

// Compile returns all statements of the blueprint joined with ";".
func (g *Grammar) Compile(bp *schema.Blueprint) (string, error) {
	stmts, err := g.Statements(bp)
	if err != nil {
		return "", err
	}
	return strings.Join(stmts, Separator), nil
}

// Statements validates the blueprint and returns its statements in
// command order. Nothing is returned when any command fails.
func (g *Grammar) Statements(bp *schema.Blueprint) ([]string, error) {
	result := schema.Validate(bp)
	if err := result.Err(); err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		g.cfg.Logger.Warn("blueprint warning", "class", bp.Class, "warning", w.Error())
	}
	var stmts []string
	for _, cmd := range bp.Plan() {
		s, err := g.CompileCommand(bp, cmd)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s...)
	}
	if g.cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, s := range stmts {
			g.cfg.Logger.Debug("compiled statement", "class", bp.Class, "statement", s)
		}
	}
	return stmts, nil
}

// CompileCommand returns the statements of a single command.
func (g *Grammar) CompileCommand(bp *schema.Blueprint, cmd *schema.Command) ([]string, error) {
	if bp == nil || bp.Class == "" {
		return nil, orientschema.NewValidationError("", "", "class name is empty")
	}
	if cmd == nil {
		return nil, orientschema.NewValidationError(bp.Class, "", "command is nil")
	}
	stmts, err := g.compile(bp, cmd)
	if err != nil {
		return nil, fmt.Errorf("orientdb: compile %s on class %s: %w", cmd.Kind, bp.Class, err)
	}
	return stmts, nil
}

func (g *Grammar) compile(bp *schema.Blueprint, cmd *schema.Command) ([]string, error) {
	switch cmd.Kind {
	case schema.CreateClass:
		return g.compileCreate(bp)
	case schema.AddProperty:
		return g.compileAdd(bp)
	case schema.CreateIndex:
		s, err := g.compileIndex(bp, cmd)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	case schema.DropClass:
		return []string{"drop class " + g.Wrap(bp.Class) + " unsafe"}, nil
	case schema.DropClassIfExists:
		return []string{"drop class " + g.Wrap(bp.Class) + " if exists unsafe"}, nil
	case schema.DropProperty:
		s, err := g.compileDropProperty(bp, cmd)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	case schema.DeleteVertices:
		return []string{"DELETE VERTEX " + g.Wrap(bp.Class)}, nil
	case schema.RenameClass, schema.Rename, schema.DropPrimary,
		schema.DropUnique, schema.DropIndex, schema.DropForeign:
		return nil, orientschema.NewUnsupportedCommand(g.Dialect(), cmd.Kind.String())
	default:
		return nil, orientschema.NewValidationError(bp.Class, "", fmt.Sprintf("unknown command kind %d", cmd.Kind))
	}
}

// compileCreate returns the class statement followed by one property
// statement per column.
func (g *Grammar) compileCreate(bp *schema.Blueprint) ([]string, error) {
	var b strings.Builder
	b.WriteString("create class ")
	b.WriteString(g.Wrap(bp.Class))
	if bp.Parent != "" {
		b.WriteString(" extends ")
		b.WriteString(g.Wrap(bp.Parent))
	}
	props, err := g.compileAdd(bp)
	if err != nil {
		return nil, err
	}
	return append([]string{b.String()}, props...), nil
}

func (g *Grammar) compileAdd(bp *schema.Blueprint) ([]string, error) {
	stmts := make([]string, 0, len(bp.Columns))
	for _, c := range bp.Columns {
		s, err := g.CompileColumn(bp.Class, c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// CompileColumn returns the CREATE PROPERTY statement of a column.
func (g *Grammar) CompileColumn(class string, c *field.Descriptor) (string, error) {
	if c == nil {
		return "", orientschema.NewValidationError(class, "", "column is nil")
	}
	if strings.TrimSpace(c.Name) == "" {
		return "", orientschema.NewValidationError(class, "", "column name is empty")
	}
	if !c.Type.Valid() {
		return "", orientschema.NewValidationError(class, c.Name, fmt.Sprintf("invalid column type %q", c.Type))
	}
	kw, err := g.MapType(c.Type)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", c.Name, err)
	}
	clauses, err := g.CompileModifiers(c)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", c.Name, err)
	}
	var b strings.Builder
	b.WriteString("CREATE PROPERTY ")
	b.WriteString(g.Wrap(class))
	b.WriteString(".")
	b.WriteString(g.Wrap(c.Name))
	b.WriteString(" ")
	b.WriteString(kw)
	b.WriteString(modifierSuffix(clauses))
	return b.String(), nil
}

func (g *Grammar) compileIndex(bp *schema.Blueprint, cmd *schema.Command) (string, error) {
	idx := cmd.Index
	if idx == nil {
		return "", orientschema.NewValidationError(bp.Class, "", "create index has no index description")
	}
	if strings.TrimSpace(idx.Name) == "" {
		return "", orientschema.NewValidationError(bp.Class, "", "index name is empty")
	}
	if !idx.Type.Valid() {
		return "", orientschema.NewValidationError(bp.Class, "", fmt.Sprintf("index %q has invalid type %q", idx.Name, idx.Type))
	}
	if len(idx.Columns) == 0 {
		return "", orientschema.NewValidationError(bp.Class, "", fmt.Sprintf("index %q has no columns", idx.Name))
	}
	cols := make([]string, len(idx.Columns))
	for i, c := range idx.Columns {
		if strings.TrimSpace(c) == "" {
			return "", orientschema.NewValidationError(bp.Class, "", fmt.Sprintf("index %q has an empty column name", idx.Name))
		}
		cols[i] = g.Wrap(c)
	}
	return fmt.Sprintf("CREATE INDEX %s ON %s (%s) %s", idx.Name, g.Wrap(bp.Class), strings.Join(cols, ", "), idx.Type), nil
}

func (g *Grammar) compileDropProperty(bp *schema.Blueprint, cmd *schema.Command) (string, error) {
	if len(cmd.Columns) != 1 {
		return "", orientschema.NewValidationError(bp.Class, "", fmt.Sprintf("drop property takes exactly one column, got %d", len(cmd.Columns)))
	}
	if strings.TrimSpace(cmd.Columns[0]) == "" {
		return "", orientschema.NewValidationError(bp.Class, "", "drop property column name is empty")
	}
	return "DROP PROPERTY " + g.Wrap(bp.Class) + "." + g.Wrap(cmd.Columns[0]) + " IF EXISTS", nil
}

// CompileClassExists returns the query that probes for a class.
func (g *Grammar) CompileClassExists(class string) (string, error) {
	if class == "" {
		return "", orientschema.NewValidationError("", "", "class name is empty")
	}
	return "select * from " + g.Wrap(class), nil
}
