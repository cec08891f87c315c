package gen

import (
	"testing"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"*", "any"},
		{"number", "number"},
		{"string | Blob", "string | Blob"},
		{"Vec3", "Vec3"},
		{"{string}", "string[]"},
		{"{A}", "A[]"},
		{"{A|B}", "(A|B)[]"},
		{"{string|Blob}", "(string|Blob)[]"},
		{"{ number | Vec3 }", "(number|Vec3)[]"},
		{"{*}", "any[]"},
		{"{*|number}", "(any|number)[]"},
		{"{{number}}", "number[][]"},
		{"{{A|B}|C}", "((A|B)[]|C)[]"},
		{"{A}|{B}", "{A}|{B}"},
		{"{unclosed", "{unclosed"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeType(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeType_Idempotent(t *testing.T) {
	inputs := []string{"*", "number", "string | Blob", "{A}", "{A|B}", "Vec3[]", "(A|B)[]"}
	for _, in := range inputs {
		once := NormalizeType(in)
		twice := NormalizeType(once)
		if once != twice {
			t.Errorf("NormalizeType not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestSanitizeParamName(t *testing.T) {
	keywords := []string{
		"and", "break", "do", "else", "elseif", "end", "false", "for",
		"function", "if", "in", "local", "nil", "not", "or", "repeat",
		"return", "then", "true", "until", "while",
	}
	if len(keywords) != len(luaKeywords) {
		t.Fatalf("expected %d reserved words, table has %d", len(keywords), len(luaKeywords))
	}
	for _, w := range keywords {
		if got := SanitizeParamName(w); got != w+"_" {
			t.Errorf("SanitizeParamName(%q) = %q, want %q", w, got, w+"_")
		}
	}

	tests := []struct {
		input string
		want  string
	}{
		{"...", "..."},
		{"...args", "..."},
		{"...values", "..."},
		{"x", "x"},
		{"type", "type"},
		{"ends", "ends"},
		{"End", "End"},
		{"..", ".."},
	}
	for _, tt := range tests {
		if got := SanitizeParamName(tt.input); got != tt.want {
			t.Errorf("SanitizeParamName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOperatorFor(t *testing.T) {
	tests := []struct {
		method string
		want   string
		ok     bool
	}{
		{"add", "add", true},
		{"sub", "sub", true},
		{"mul", "mul", true},
		{"div", "div", true},
		{"equals", "", false},
		{"length", "", false},
		{"normalize", "", false},
	}
	for _, tt := range tests {
		got, ok := OperatorFor(tt.method)
		if got != tt.want || ok != tt.ok {
			t.Errorf("OperatorFor(%q) = %q, %v, want %q, %v", tt.method, got, ok, tt.want, tt.ok)
		}
	}
}
