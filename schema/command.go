package schema

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/syssam/orientschema"
	"github.com/syssam/orientschema/schema/index"
)

// CommandKind identifies a schema command.
type CommandKind uint8

// Command kinds. The relational kinds (RenameClass, Rename, DropPrimary,
// DropUnique, DropIndex, DropForeign) can be described but a dialect may
// refuse to compile them.
const (
	KindInvalid CommandKind = iota
	CreateClass
	AddProperty
	CreateIndex
	DropClass
	DropClassIfExists
	DropProperty
	RenameClass
	DropPrimary
	DropUnique
	DropIndex
	DropForeign
	Rename
	DeleteVertices
	endKinds
)

var kindNames = [...]string{
	KindInvalid:       "invalid",
	CreateClass:       "create",
	AddProperty:       "add",
	CreateIndex:       "index",
	DropClass:         "drop",
	DropClassIfExists: "dropIfExists",
	DropProperty:      "dropColumn",
	RenameClass:       "renameClass",
	DropPrimary:       "dropPrimary",
	DropUnique:        "dropUnique",
	DropIndex:         "dropIndex",
	DropForeign:       "dropForeign",
	Rename:            "rename",
	DeleteVertices:    "deleteVertices",
}

// String returns the command kind name as used in blueprint files.
func (k CommandKind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Valid reports if the kind is a known command kind.
func (k CommandKind) Valid() bool {
	return k > KindInvalid && k < endKinds
}

// ParseCommandKind returns the command kind for the given name, matched
// case-insensitively.
func ParseCommandKind(name string) (CommandKind, error) {
	fold := cases.Fold()
	want := fold.String(name)
	for k := CreateClass; k < endKinds; k++ {
		if fold.String(kindNames[k]) == want {
			return k, nil
		}
	}
	return KindInvalid, orientschema.NewValidationError("", "", fmt.Sprintf("unknown command %q", name))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *CommandKind) UnmarshalText(text []byte) error {
	v, err := ParseCommandKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Command is a single schema change applied to the blueprint's class.
type Command struct {
	Kind CommandKind
	// Index describes the index of CreateIndex, and names the index
	// dropped by DropUnique, DropIndex and DropForeign.
	Index *index.Descriptor
	// Columns lists the properties dropped by DropProperty.
	Columns []string
	// To is the target name of RenameClass and Rename.
	To string
}
