package gen

import "strings"

// AnyType is the annotation spelling of the document's "*" wildcard.
const AnyType = "any"

// Variadic is the canonical spelling of every variadic parameter.
const Variadic = "..."

// luaKeywords are the reserved words of the Lua grammar. A parameter named
// after one of them cannot appear in a stub declaration.
var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "if": true,
	"in": true, "local": true, "nil": true, "not": true, "or": true,
	"repeat": true, "return": true, "then": true, "true": true, "until": true,
	"while": true,
}

// operators maps method names to the metamethod tokens LuaLS understands.
var operators = map[string]string{
	"add": "add",
	"sub": "sub",
	"div": "div",
	"mul": "mul",
	// "equals": "eq",
	// "length": "len",
}

// OperatorFor returns the operator token for a method name, if any.
func OperatorFor(methodName string) (string, bool) {
	op, ok := operators[methodName]
	return op, ok
}

// NormalizeType converts a type string from the document's notation into
// annotation syntax: "*" becomes "any", "{T}" becomes "T[]" and
// "{A|B}" becomes "(A|B)[]". Nested braces are handled recursively.
// Everything else is returned unchanged.
func NormalizeType(raw string) string {
	if raw == "*" {
		return AnyType
	}
	inner, ok := unwrapBraces(raw)
	if !ok {
		return raw
	}
	pieces := splitTopLevel(inner, '|')
	for i, p := range pieces {
		pieces[i] = NormalizeType(strings.TrimSpace(p))
	}
	if len(pieces) == 1 {
		return pieces[0] + "[]"
	}
	return "(" + strings.Join(pieces, "|") + ")[]"
}

// SanitizeParamName maps a parameter name to one that is legal in a Lua
// parameter list.
func SanitizeParamName(raw string) string {
	if strings.HasPrefix(raw, Variadic) {
		return Variadic
	}
	if luaKeywords[raw] {
		return raw + "_"
	}
	return raw
}

// unwrapBraces returns the text between a leading "{" and the "}" that
// closes it, provided that brace ends the string.
func unwrapBraces(s string) (string, bool) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return "", false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(s)-1 {
				return "", false
			}
		}
	}
	if depth != 0 {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// splitTopLevel splits s on sep, ignoring separators nested inside braces
// or parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
