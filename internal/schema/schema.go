package schema

import "fmt"

// Kind identifies one of the four primitive column kinds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
	KindBlob
)

// String returns the declaration-language name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is a declared type: a primitive kind, possibly made nullable by
// one level of Optional wrapping.
type Type struct {
	Kind     Kind
	Nullable bool
}

// The four primitive declared types.
var (
	Int   = Type{Kind: KindInt}
	Float = Type{Kind: KindFloat}
	Text  = Type{Kind: KindText}
	Blob  = Type{Kind: KindBlob}
)

// Optional wraps a primitive type so its column admits NULL.
// Exactly one level of wrapping exists; wrapping an already-optional
// type panics (programmer error in the declaration, not a runtime
// condition).
func Optional(t Type) Type {
	if t.Nullable {
		panic("schema: Optional applied to an already-optional type")
	}
	t.Nullable = true
	return t
}

// Column maps a declared type to its SQL column type and modifier.
// An optional type maps to the same SQL type as its primitive with the
// modifier cleared. A Kind outside the four primitives panics: the
// mapper is not defensive, an unknown kind is a bug in the caller.
func Column(t Type) (sqlType, mods string) {
	switch t.Kind {
	case KindInt:
		sqlType = "INTEGER"
	case KindFloat:
		sqlType = "REAL"
	case KindText:
		sqlType = "TEXT"
	case KindBlob:
		sqlType = "BLOB"
	default:
		panic(fmt.Sprintf("schema: unsupported kind %v", t.Kind))
	}
	if t.Nullable {
		return sqlType, ""
	}
	return sqlType, "NOT NULL"
}
