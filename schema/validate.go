package schema

import (
	"fmt"
	"strings"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/field"
)

// ValidationResult holds the results of blueprint validation.
type ValidationResult struct {
	Errors   []*orientschema.ValidationError
	Warnings []*orientschema.ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns the validation errors as a single error, or nil.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return orientschema.NewAggregateError(errs...)
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *ValidationResult) errorf(class, column, format string, args ...any) {
	r.Errors = append(r.Errors, orientschema.NewValidationError(class, column, fmt.Sprintf(format, args...)))
}

func (r *ValidationResult) warnf(class, column, format string, args ...any) {
	r.Warnings = append(r.Warnings, orientschema.NewValidationError(class, column, fmt.Sprintf(format, args...)))
}

// Validate checks a blueprint against the caller contract. Errors make the
// blueprint uncompilable; warnings flag constraints a dialect will ignore.
//
// Example:
//
//	result := schema.Validate(bp)
//	if result.HasErrors() {
//	    return result.Err()
//	}
func Validate(b *Blueprint) *ValidationResult {
	result := &ValidationResult{}
	if b == nil {
		result.errorf("", "", "blueprint is nil")
		return result
	}
	class := b.Class
	if strings.TrimSpace(class) == "" {
		result.errorf("", "", "class name is empty")
	}
	if b.Parent != "" && b.Parent == class {
		result.warnf(class, "", "class extends itself")
	}

	// Check columns
	colNames := make(map[string]bool, len(b.Columns))
	for i, c := range b.Columns {
		if c == nil {
			result.errorf(class, "", "column %d is nil", i)
			continue
		}
		if strings.TrimSpace(c.Name) == "" {
			result.errorf(class, "", "column %d has an empty name", i)
			continue
		}
		if colNames[c.Name] {
			result.errorf(class, c.Name, "duplicate column name")
		}
		colNames[c.Name] = true
		if !c.Type.Valid() {
			result.errorf(class, c.Name, "invalid column type %q", c.Type)
		}
		for _, b := range []struct {
			name string
			v    field.Optional[float64]
		}{{"min", c.Min}, {"max", c.Max}} {
			if v, ok := b.v.Get(); ok {
				if _, ok := field.Bound(v); !ok {
					result.errorf(class, c.Name, "%s %v is not a finite integer bound", b.name, v)
				}
			}
		}
		if c.Length.IsSet() {
			result.warnf(class, c.Name, "length %d is ignored; string types carry no length", c.Length.Value())
		}
		if c.Nullable.IsSet() && c.NotNull.IsSet() {
			result.warnf(class, c.Name, "both nullable and notnull are set; nullable takes precedence")
		}
	}

	// Check commands
	creating := b.Creating()
	for i, cmd := range b.Commands {
		if cmd == nil {
			result.errorf(class, "", "command %d is nil", i)
			continue
		}
		switch cmd.Kind {
		case CreateIndex:
			validateIndex(class, cmd, creating, colNames, result)
		case DropProperty:
			if len(cmd.Columns) != 1 {
				result.errorf(class, "", "drop property takes exactly one column, got %d", len(cmd.Columns))
			} else if strings.TrimSpace(cmd.Columns[0]) == "" {
				result.errorf(class, "", "drop property column name is empty")
			}
		case RenameClass, Rename:
			if strings.TrimSpace(cmd.To) == "" {
				result.errorf(class, "", "%s target name is empty", cmd.Kind)
			}
		default:
			if !cmd.Kind.Valid() {
				result.errorf(class, "", "command %d has unknown kind %d", i, uint8(cmd.Kind))
			}
		}
	}
	return result
}

func validateIndex(class string, cmd *Command, creating bool, colNames map[string]bool, result *ValidationResult) {
	idx := cmd.Index
	if idx == nil {
		result.errorf(class, "", "create index has no index description")
		return
	}
	if strings.TrimSpace(idx.Name) == "" {
		result.errorf(class, "", "index name is empty")
	}
	if !idx.Type.Valid() {
		result.errorf(class, "", "index %q has invalid type %q", idx.Name, idx.Type)
	}
	if len(idx.Columns) == 0 {
		result.errorf(class, "", "index %q has no columns", idx.Name)
	}
	for _, col := range idx.Columns {
		if strings.TrimSpace(col) == "" {
			result.errorf(class, "", "index %q has an empty column name", idx.Name)
			continue
		}
		// Indexes on existing classes may reference properties the
		// blueprint does not declare.
		if creating && !colNames[col] {
			result.warnf(class, col, "index %q references undeclared column", idx.Name)
		}
	}
}
