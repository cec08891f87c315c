package validate

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/benn-herrera/luastubs/loader"
	"github.com/benn-herrera/luastubs/model"
	"github.com/benn-herrera/luastubs/resolver"
)

func minimalDoc() *model.Document {
	return &model.Document{
		Modules: []model.Module{
			{
				Key: "lovr.audio",
				Functions: []model.Function{
					{
						Key:     "lovr.audio.newSource",
						Name:    "newSource",
						Related: []string{"Source:play"},
						Variants: []model.Variant{{
							Arguments: []model.Argument{{Name: "filename", Type: "string"}},
							Returns:   []model.Return{{Type: "Source"}},
						}},
					},
				},
				Objects: []model.ObjectType{
					{
						Key:          "Source",
						Name:         "Source",
						Constructors: []string{"lovr.audio.newSource"},
						Methods: []model.Function{
							{Key: "Source:play", Name: "play", Variants: []model.Variant{{}}},
						},
					},
				},
			},
		},
		Callbacks: []model.Function{
			{Key: "lovr.load", Name: "load", Variants: []model.Variant{{
				Arguments: []model.Argument{{Name: "arg", Type: "table"}},
			}}},
		},
	}
}

func mustResolve(t *testing.T, doc *model.Document) resolver.ResolvedTypes {
	t.Helper()
	types, err := resolver.Resolve(doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return types
}

func TestValidate_ValidMinimal(t *testing.T) {
	doc := minimalDoc()
	result := Validate(doc, mustResolve(t, doc))
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_DuplicateModule(t *testing.T) {
	doc := minimalDoc()
	doc.Modules = append(doc.Modules, model.Module{Key: "lovr.audio"})

	result := Validate(doc, nil)
	if result.IsValid() {
		t.Fatal("expected duplicate module error")
	}
	if !strings.Contains(result.Error(), `modules[1].key: duplicate module key "lovr.audio"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_NoVariants(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Functions = append(doc.Modules[0].Functions, model.Function{Key: "lovr.audio.stop", Name: "stop"})

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `modules[0].functions[1].variants: function "stop" has no variants`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_DuplicateMethod(t *testing.T) {
	doc := minimalDoc()
	obj := &doc.Modules[0].Objects[0]
	obj.Methods = append(obj.Methods, model.Function{Key: "Source:play", Name: "play", Variants: []model.Variant{{}}})

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `duplicate function "play" in "Source"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_UnknownType(t *testing.T) {
	doc := minimalDoc()
	fn := &doc.Modules[0].Functions[0]
	fn.Variants[0].Arguments = append(fn.Variants[0].Arguments, model.Argument{Name: "data", Type: "{Blob|string}"})

	result := Validate(doc, mustResolve(t, doc))
	if !strings.Contains(result.Error(), `modules[0].functions[0].variants[0].arguments[1].type: unknown type "Blob"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_NilTypesSkipsResolution(t *testing.T) {
	doc := minimalDoc()
	doc.Callbacks[0].Variants[0].Arguments[0].Type = "Mystery"
	if result := Validate(doc, nil); !result.IsValid() {
		t.Errorf("expected valid without type resolution, got:\n%s", result.Error())
	}
}

func TestValidate_UnresolvedRelated(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Functions[0].Related = append(doc.Modules[0].Functions[0].Related, "lovr.audio.missing")

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `related name "lovr.audio.missing" does not resolve`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_UnknownConstructor(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Objects[0].Constructors = []string{"lovr.audio.makeSource"}

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `constructor "lovr.audio.makeSource" of "Source" is not a known function`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_DuplicateEnumValue(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Enums = []model.Enum{{
		Name:   "TimeUnit",
		Values: []model.EnumValue{{Name: "seconds"}, {Name: "seconds"}},
	}}

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `modules[0].enums[0].values[1].name: duplicate value "seconds"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_FullDocument(t *testing.T) {
	doc, err := loader.LoadDocument(filepath.Join("..", "testdata", "full.json"))
	if err != nil {
		t.Fatalf("loading full.json: %v", err)
	}
	result := Validate(doc, mustResolve(t, doc))

	// full.json references Blob without declaring it and lists vector
	// constructor shorthands the math module does not define.
	want := []string{
		`modules[1].functions[0].variants[1].arguments[0].type: unknown type "Blob"`,
		`modules[1].functions[1].variants[0].arguments[0].type: unknown type "Blob"`,
		`modules[2].objects[0].constructors[0]: constructor "lovr.math.newVec2" of "Vec2" is not a known function`,
		`modules[2].objects[0].constructors[1]: constructor "lovr.math.vec2" of "Vec2" is not a known function`,
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %d:\n%s", len(want), len(result.Errors), result.Error())
	}
	for i, w := range want {
		if got := result.Errors[i].Error(); got != w {
			t.Errorf("error %d = %q, want %q", i, got, w)
		}
	}
}

func TestValidate_RelatedMethodMissing(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Functions[0].Related = []string{"Source:stop"}

	result := Validate(doc, mustResolve(t, doc))
	if !strings.Contains(result.Error(), `modules[0].functions[0].related[0]: related name "Source:stop": object "Source" has no method "stop"`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_ConstructorModuleMissing(t *testing.T) {
	doc := minimalDoc()
	doc.Modules[0].Objects[0].Constructors = []string{"lovr.sound.newSource"}

	result := Validate(doc, nil)
	if !strings.Contains(result.Error(), `constructor "lovr.sound.newSource" of "Source" is not a known function`) {
		t.Errorf("unexpected errors:\n%s", result.Error())
	}
}

func TestValidate_EnumDefault(t *testing.T) {
	tests := []struct {
		def     string
		wantErr bool
	}{
		{"'seconds'", false},
		{`"frames"`, false},
		{"nil", false},
		{"'minutes'", true},
	}
	for _, tt := range tests {
		doc := minimalDoc()
		doc.Modules[0].Enums = []model.Enum{{
			Name:   "TimeUnit",
			Values: []model.EnumValue{{Name: "seconds"}, {Name: "frames"}},
		}}
		fn := &doc.Modules[0].Functions[0]
		def := tt.def
		fn.Variants[0].Arguments = append(fn.Variants[0].Arguments, model.Argument{Name: "unit", Type: "TimeUnit", Default: &def})

		result := Validate(doc, mustResolve(t, doc))
		if !tt.wantErr {
			if !result.IsValid() {
				t.Errorf("default %s: unexpected errors:\n%s", tt.def, result.Error())
			}
			continue
		}
		want := `modules[0].functions[0].variants[0].arguments[1].default: default 'minutes' is not a value of enum "TimeUnit" declared in lovr.audio`
		if !strings.Contains(result.Error(), want) {
			t.Errorf("default %s: unexpected errors:\n%s", tt.def, result.Error())
		}
	}
}
