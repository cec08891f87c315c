package resolver

import (
	"sort"
	"strings"

	"github.com/benn-herrera/luastubs/model"
	"github.com/cockroachdb/errors"
)

// TypeKind represents what a resolvable type name refers to.
type TypeKind int

const (
	TypeKindBuiltin TypeKind = iota
	TypeKindEnum
	TypeKindObject
	TypeKindModule
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindBuiltin:
		return "builtin"
	case TypeKindEnum:
		return "enum"
	case TypeKindObject:
		return "object"
	case TypeKindModule:
		return "module"
	default:
		return "unknown"
	}
}

// TypeInfo holds information about a declared type name.
type TypeInfo struct {
	Kind       TypeKind
	Module     string   // Declaring module key; empty for builtins
	EnumValues []string // Enums only
	Methods    []string // Objects only
}

// ResolvedTypes maps type names to their type info.
type ResolvedTypes map[string]*TypeInfo

// builtinTypes are the Lua and LuaLS type names every document may use
// without declaring them.
var builtinTypes = []string{
	"any", "nil", "boolean", "number", "integer", "string", "table",
	"function", "userdata", "lightuserdata", "thread",
}

// Resolve builds the symbol table of a document: builtins, every module
// key, and every enum and object declared by any module, external ones
// included. Declaring the same name twice is an error.
func Resolve(doc *model.Document) (ResolvedTypes, error) {
	types := make(ResolvedTypes)
	for _, name := range builtinTypes {
		types[name] = &TypeInfo{Kind: TypeKindBuiltin}
	}

	add := func(name string, info *TypeInfo) error {
		if existing, ok := types[name]; ok {
			return errors.Newf("duplicate type %s (defined as %s and %s)", name, existing.Kind, info.Kind)
		}
		types[name] = info
		return nil
	}

	for _, m := range doc.Modules {
		if err := add(m.Key, &TypeInfo{Kind: TypeKindModule, Module: m.Key}); err != nil {
			return nil, err
		}
		for _, e := range m.Enums {
			values := make([]string, len(e.Values))
			for i, v := range e.Values {
				values[i] = v.Name
			}
			if err := add(e.Name, &TypeInfo{Kind: TypeKindEnum, Module: m.Key, EnumValues: values}); err != nil {
				return nil, err
			}
		}
		for _, o := range m.Objects {
			methods := make([]string, len(o.Methods))
			for i, fn := range o.Methods {
				methods[i] = fn.Name
			}
			if err := add(o.Name, &TypeInfo{Kind: TypeKindObject, Module: m.Key, Methods: methods}); err != nil {
				return nil, err
			}
		}
	}
	return types, nil
}

// TypeNames extracts the distinct type names referenced by a type string in
// the document's notation. The "*" wildcard and array/union punctuation are
// dropped: "{string|Blob}" yields [string Blob].
func TypeNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case '{', '}', '|', '(', ')', '[', ']', ',', '*', ' ', '\t':
			return true
		}
		return false
	})
	seen := map[string]bool{}
	var names []string
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			names = append(names, f)
		}
	}
	return names
}

// Unresolved returns the names referenced by raw that are not declared,
// sorted.
func (r ResolvedTypes) Unresolved(raw string) []string {
	var missing []string
	for _, name := range TypeNames(raw) {
		if _, ok := r[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Lookup returns the info for a type name.
func (r ResolvedTypes) Lookup(name string) (*TypeInfo, bool) {
	info, ok := r[name]
	return info, ok
}
