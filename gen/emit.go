package gen

import (
	"strings"

	"github.com/benn-herrera/luastubs/model"
)

// shorthandAliases are the global constructor shorthands bound to fields of
// the math module.
var shorthandAliases = []string{"vec2", "vec3", "vec4", "mat4", "quat"}

const swizzleShape = "{ [string]: number|Vec2|Vec3|Vec4 }"

// CommentBlock renders free text as one comment line per non-empty line.
func CommentBlock(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, "---"+line)
	}
	return lines
}

// SingleLine collapses text onto one line by deleting its line breaks.
func SingleLine(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ReplaceAll(text, "\n", "")
}

// RenderEnum renders an enum as a string literal union alias.
func RenderEnum(e *model.Enum) []string {
	lines := CommentBlock(e.Description)
	lines = append(lines, "---@alias "+e.Name)
	for _, v := range e.Values {
		line := `---| "` + v.Name + `"`
		if desc := SingleLine(v.Description); desc != "" {
			line += " # " + desc
		}
		lines = append(lines, line)
	}
	return append(lines, "")
}

// RenderFunction renders a function, method or callback: description,
// cross references, alternate overloads, the primary variant's parameters and
// returns, and the trailing stub declaration.
func RenderFunction(fn *model.Function, namespace string, isMethod bool) []string {
	lines := CommentBlock(fn.Description)

	for _, related := range fn.Related {
		lines = append(lines, "---@see "+strings.ReplaceAll(related, ":", "."))
	}

	if fn.Deprecated {
		lines = append(lines, "---@deprecated")
	}

	for _, v := range fn.Overloads() {
		lines = append(lines, "---@overload "+funType(v))
	}

	// A function without variants still gets a bare stub; validation
	// reports it.
	primary, _ := fn.Primary()
	for _, arg := range primary.Arguments {
		lines = append(lines, paramLine(arg))
	}
	for _, ret := range primary.Returns {
		lines = append(lines, returnLine(ret))
	}

	sep := "."
	if isMethod {
		sep = ":"
	}
	names := make([]string, len(primary.Arguments))
	for i, arg := range primary.Arguments {
		names[i] = SanitizeParamName(arg.Name)
	}
	lines = append(lines, "function "+namespace+sep+fn.Name+"("+strings.Join(names, ", ")+") end")

	return append(lines, "")
}

// funType builds the "fun(...)" signature of an alternate overload.
func funType(v model.Variant) string {
	args := make([]string, len(v.Arguments))
	for i, arg := range v.Arguments {
		name := SanitizeParamName(arg.Name)
		if arg.HasDefault() {
			name += "?"
		}
		args[i] = name + ": " + NormalizeType(arg.Type)
	}
	sig := "fun(" + strings.Join(args, ", ") + ")"
	if len(v.Returns) > 0 {
		rets := make([]string, len(v.Returns))
		for i, ret := range v.Returns {
			rets[i] = NormalizeType(ret.Type)
		}
		sig += ": " + strings.Join(rets, ", ")
	}
	return sig
}

func paramLine(arg model.Argument) string {
	typ := NormalizeType(arg.Type)
	if arg.HasDefault() {
		typ += "?"
	}
	line := "---@param " + SanitizeParamName(arg.Name) + " " + typ
	if desc := SingleLine(arg.Description); desc != "" {
		line += " " + desc
	}
	if arg.HasDefault() {
		line += " (default: " + *arg.Default + ")"
	}
	return line
}

func returnLine(ret model.Return) string {
	line := "---@return " + NormalizeType(ret.Type)
	if desc := SingleLine(ret.Description); desc != "" {
		line += " # " + desc
	}
	return line
}

// RenderOperators renders operator annotations for a method whose name maps
// to a metamethod. Variants with more than one argument or more than one
// return value cannot be expressed and are skipped.
func RenderOperators(method *model.Function) []string {
	op, ok := OperatorFor(method.Name)
	if !ok {
		return nil
	}
	var lines []string
	for _, v := range method.Variants {
		if len(v.Arguments) > 1 || len(v.Returns) > 1 {
			continue
		}
		line := "---@operator " + op
		if len(v.Arguments) == 1 {
			line += "(" + NormalizeType(v.Arguments[0].Type) + ")"
		}
		if len(v.Returns) == 1 {
			line += ": " + NormalizeType(v.Returns[0].Type)
		}
		lines = append(lines, line)
	}
	return lines
}

// RenderObject renders a class: header, swizzle fields, operators,
// constructor references, the local table and every method.
func RenderObject(obj *model.ObjectType) []string {
	header := "---@class " + obj.Name
	swizzlable := model.IsSwizzlable(obj.Name)
	switch {
	case obj.Name == "Mat4":
		header += ": number[]"
	case swizzlable:
		header += ": " + swizzleShape
	}
	lines := []string{header}

	if swizzlable {
		lines = append(lines, SwizzleFields(obj.Name)...)
	}

	for i := range obj.Methods {
		lines = append(lines, RenderOperators(&obj.Methods[i])...)
	}

	for _, ctor := range obj.Constructors {
		lines = append(lines, "---@see "+ctor+" # constructor")
	}

	lines = append(lines, "local "+obj.Name+" = {}", "")

	for i := range obj.Methods {
		lines = append(lines, RenderFunction(&obj.Methods[i], obj.Name, true)...)
	}
	return lines
}

// RenderModule renders the complete annotation file for a module. External
// modules render to nothing.
func RenderModule(m *model.Module) []string {
	if m.External {
		return nil
	}
	bare := m.BareName()

	lines := []string{"---@meta " + m.Key, ""}
	lines = append(lines, CommentBlock(m.Description)...)
	lines = append(lines,
		"---@class "+m.Key+": { [any]: any }",
		"local "+bare+" = {}",
		"",
	)

	for i := range m.Enums {
		lines = append(lines, RenderEnum(&m.Enums[i])...)
	}
	for i := range m.Functions {
		lines = append(lines, RenderFunction(&m.Functions[i], bare, false)...)
	}
	for i := range m.Objects {
		lines = append(lines, RenderObject(&m.Objects[i])...)
	}

	return append(lines, m.Key+" = "+bare)
}

// RenderIndex renders the aggregate file: namespace fields for every rendered
// module, diagnostic directives, the shared callbacks and the global vector
// shorthands.
func RenderIndex(modules []*model.Module, callbacks []model.Function) []string {
	lines := []string{"---@meta", "", "---@class " + model.RootNamespace}
	for _, m := range modules {
		if m.External || m.IsRoot() {
			continue
		}
		lines = append(lines, "---@field "+m.BareName()+" "+m.Key)
	}
	lines = append(lines,
		model.RootNamespace+" = {}",
		"",
		"---@diagnostic disable: duplicate-set-field",
		"---@diagnostic disable: inject-field",
		"",
	)

	for i := range callbacks {
		lines = append(lines, RenderFunction(&callbacks[i], model.RootNamespace, false)...)
	}

	for _, alias := range shorthandAliases {
		lines = append(lines, alias+" = "+model.MathModule+"."+alias)
	}
	return lines
}

// JoinLines joins rendered lines into file content ending in a newline.
func JoinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
