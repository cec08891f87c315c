package model

import (
	"encoding/json"
	"strings"
)

// Document is the top-level structure of an API description.
type Document struct {
	Modules   []Module   `json:"modules" yaml:"modules"`
	Callbacks []Function `json:"callbacks" yaml:"callbacks"`
}

// Module is a namespace-level grouping of enums, functions and objects.
type Module struct {
	Key         string       `json:"key" yaml:"key"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	External    bool         `json:"external,omitempty" yaml:"external,omitempty"`
	Enums       []Enum       `json:"enums,omitempty" yaml:"enums,omitempty"`
	Functions   []Function   `json:"functions,omitempty" yaml:"functions,omitempty"`
	Objects     []ObjectType `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// Enum is a named set of string literal values.
type Enum struct {
	Key         string      `json:"key,omitempty" yaml:"key,omitempty"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Values      []EnumValue `json:"values,omitempty" yaml:"values,omitempty"`
}

// EnumValue is one allowed literal of an Enum.
type EnumValue struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ObjectType is a class nested inside a module.
type ObjectType struct {
	Key          string     `json:"key" yaml:"key"`
	Name         string     `json:"name" yaml:"name"`
	Methods      []Function `json:"methods,omitempty" yaml:"methods,omitempty"`
	Constructors []string   `json:"constructors,omitempty" yaml:"constructors,omitempty"`
}

// Function is a namespace function, an object method or a callback.
type Function struct {
	Key         string    `json:"key" yaml:"key"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Related     []string  `json:"related,omitempty" yaml:"related,omitempty"`
	Deprecated  bool      `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Variants    []Variant `json:"variants" yaml:"variants"`
}

// Variant is one call signature of a Function.
type Variant struct {
	Arguments []Argument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Returns   []Return   `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// Argument is a single parameter of a Variant. A non-nil Default marks the
// parameter as optional.
type Argument struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"`
}

// UnmarshalJSON accepts defaults written as strings or as bare JSON
// literals; non-string literals keep their JSON spelling.
func (a *Argument) UnmarshalJSON(data []byte) error {
	type plain Argument
	var raw struct {
		plain
		Default json.RawMessage `json:"default"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Argument(raw.plain)
	a.Default = nil
	if len(raw.Default) == 0 || string(raw.Default) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Default, &s); err != nil {
		s = string(raw.Default)
	}
	a.Default = &s
	return nil
}

// Return is a single return value of a Variant.
type Return struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RootNamespace is the global table every module hangs off.
const RootNamespace = "lovr"

// MathModule is the module carrying the vector constructor shorthands.
const MathModule = "lovr.math"

// BareName returns the last dotted segment of the module key,
// e.g. "lovr.audio" → "audio".
func (m *Module) BareName() string {
	return LastSegment(m.Key)
}

// IsRoot reports whether the module is the root namespace itself.
func (m *Module) IsRoot() bool {
	return m.Key == RootNamespace
}

// HasDefault reports whether the argument is optional.
func (a *Argument) HasDefault() bool {
	return a.Default != nil
}

// Primary returns the first variant, which drives the stub declaration.
func (f *Function) Primary() (Variant, bool) {
	if len(f.Variants) == 0 {
		return Variant{}, false
	}
	return f.Variants[0], true
}

// Overloads returns every variant after the first.
func (f *Function) Overloads() []Variant {
	if len(f.Variants) < 2 {
		return nil
	}
	return f.Variants[1:]
}

// ModuleByKey looks up a module by its dotted key.
func (d *Document) ModuleByKey(key string) *Module {
	for i := range d.Modules {
		if d.Modules[i].Key == key {
			return &d.Modules[i]
		}
	}
	return nil
}

// LastSegment returns the part of a dotted path after the final dot.
func LastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// IsSwizzlable reports whether the object name is a vector or quaternion type
// whose components can be read in arbitrary combinations.
func IsSwizzlable(name string) bool {
	return strings.HasPrefix(name, "Vec") || name == "Quat"
}
