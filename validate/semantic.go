package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/benn-herrera/luastubs/model"
	"github.com/benn-herrera/luastubs/resolver"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "modules[1].functions[0].variants[2].arguments[0].type"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate performs semantic validation on a loaded document.
// resolvedTypes may be nil, which skips type resolution checks.
func Validate(doc *model.Document, resolvedTypes resolver.ResolvedTypes) *ValidationResult {
	result := &ValidationResult{}
	known := knownNames(doc)

	moduleSeen := make(map[string]bool)
	for i, m := range doc.Modules {
		modPath := fmt.Sprintf("modules[%d]", i)
		if m.Key == "" {
			result.addError(modPath+".key", "module key is empty")
		} else if moduleSeen[m.Key] {
			result.addError(modPath+".key", fmt.Sprintf("duplicate module key %q", m.Key))
		}
		moduleSeen[m.Key] = true

		enumSeen := make(map[string]bool)
		for j, e := range m.Enums {
			enumPath := fmt.Sprintf("%s.enums[%d]", modPath, j)
			if enumSeen[e.Name] {
				result.addError(enumPath+".name", fmt.Sprintf("duplicate enum %q in module %q", e.Name, m.Key))
			}
			enumSeen[e.Name] = true

			valueSeen := make(map[string]bool)
			for k, v := range e.Values {
				if valueSeen[v.Name] {
					result.addError(fmt.Sprintf("%s.values[%d].name", enumPath, k), fmt.Sprintf("duplicate value %q in enum %q", v.Name, e.Name))
				}
				valueSeen[v.Name] = true
			}
		}

		validateFunctions(result, fmt.Sprintf("%s.functions", modPath), m.Key, m.Functions, resolvedTypes, known)

		for j, o := range m.Objects {
			objPath := fmt.Sprintf("%s.objects[%d]", modPath, j)
			if o.Name == "" {
				result.addError(objPath+".name", "object name is empty")
			}
			validateFunctions(result, objPath+".methods", o.Name, o.Methods, resolvedTypes, known)
			for k, ctor := range o.Constructors {
				if !moduleHasFunction(doc, ctor) {
					result.addError(fmt.Sprintf("%s.constructors[%d]", objPath, k), fmt.Sprintf("constructor %q of %q is not a known function", ctor, o.Name))
				}
			}
		}
	}

	validateFunctions(result, "callbacks", "callbacks", doc.Callbacks, resolvedTypes, known)

	return result
}

func validateFunctions(result *ValidationResult, basePath, owner string, fns []model.Function, resolvedTypes resolver.ResolvedTypes, known map[string]bool) {
	seen := make(map[string]bool)
	for i, fn := range fns {
		fnPath := fmt.Sprintf("%s[%d]", basePath, i)
		if fn.Name == "" {
			result.addError(fnPath+".name", "function name is empty")
		} else if seen[fn.Name] {
			result.addError(fnPath+".name", fmt.Sprintf("duplicate function %q in %q", fn.Name, owner))
		}
		seen[fn.Name] = true

		if len(fn.Variants) == 0 {
			result.addError(fnPath+".variants", fmt.Sprintf("function %q has no variants", fn.Name))
		}

		for j, rel := range fn.Related {
			relPath := fmt.Sprintf("%s.related[%d]", fnPath, j)
			if obj, method, ok := strings.Cut(rel, ":"); ok && resolvedTypes != nil {
				if info, found := resolvedTypes.Lookup(obj); found && info.Kind == resolver.TypeKindObject {
					if !slices.Contains(info.Methods, method) {
						result.addError(relPath, fmt.Sprintf("related name %q: object %q has no method %q", rel, obj, method))
					}
					continue
				}
			}
			if !known[rel] && !known[strings.ReplaceAll(rel, ":", ".")] {
				result.addError(relPath, fmt.Sprintf("related name %q does not resolve", rel))
			}
		}

		if resolvedTypes == nil {
			continue
		}
		for j, v := range fn.Variants {
			varPath := fmt.Sprintf("%s.variants[%d]", fnPath, j)
			for k, arg := range v.Arguments {
				argPath := fmt.Sprintf("%s.arguments[%d]", varPath, k)
				for _, name := range resolvedTypes.Unresolved(arg.Type) {
					result.addError(argPath+".type", fmt.Sprintf("unknown type %q", name))
				}
				if !arg.HasDefault() {
					continue
				}
				if info, ok := resolvedTypes.Lookup(arg.Type); ok && info.Kind == resolver.TypeKindEnum {
					if lit := enumLiteral(*arg.Default); lit != "nil" && !slices.Contains(info.EnumValues, lit) {
						result.addError(argPath+".default", fmt.Sprintf("default %s is not a value of enum %q declared in %s", *arg.Default, arg.Type, info.Module))
					}
				}
			}
			for k, ret := range v.Returns {
				for _, name := range resolvedTypes.Unresolved(ret.Type) {
					result.addError(fmt.Sprintf("%s.returns[%d].type", varPath, k), fmt.Sprintf("unknown type %q", name))
				}
			}
		}
	}
}

// moduleHasFunction reports whether key ("lovr.audio.newSource") names a
// function of the module its prefix designates.
func moduleHasFunction(doc *model.Document, key string) bool {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return false
	}
	m := doc.ModuleByKey(key[:i])
	if m == nil {
		return false
	}
	name := key[i+1:]
	for _, fn := range m.Functions {
		if fn.Name == name {
			return true
		}
	}
	return false
}

// enumLiteral strips the Lua string quotes from an enum default such as
// 'linear'.
func enumLiteral(def string) string {
	if len(def) >= 2 && (def[0] == '\'' || def[0] == '"') && def[len(def)-1] == def[0] {
		return def[1 : len(def)-1]
	}
	return def
}

// knownNames collects every name a cross reference may point at: module
// keys, enum and object names, and the keys of functions, methods and
// callbacks in both "Object:method" and "Object.method" spellings.
func knownNames(doc *model.Document) map[string]bool {
	known := make(map[string]bool)
	addFn := func(fn model.Function) {
		if fn.Key != "" {
			known[fn.Key] = true
			known[strings.ReplaceAll(fn.Key, ":", ".")] = true
		}
	}
	for _, m := range doc.Modules {
		known[m.Key] = true
		for _, e := range m.Enums {
			known[e.Name] = true
		}
		for _, fn := range m.Functions {
			addFn(fn)
		}
		for _, o := range m.Objects {
			known[o.Name] = true
			if o.Key != "" {
				known[o.Key] = true
			}
			for _, fn := range o.Methods {
				addFn(fn)
			}
		}
	}
	for _, fn := range doc.Callbacks {
		addFn(fn)
	}
	return known
}
