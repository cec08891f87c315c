package gen

import (
	"github.com/benn-herrera/luastubs/model"
)

// Default output naming.
const (
	DefaultExtension = ".lua"
	DefaultIndexName = "globals.lua"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	Doc       *model.Document
	Filter    *ModuleFilter // nil renders every module
	Extension string
	IndexName string
	DryRun    bool // log the files that would be written instead of writing
}

// NewContext creates a new generation context with default file naming.
func NewContext(doc *model.Document) *Context {
	return &Context{
		Doc:       doc,
		Extension: DefaultExtension,
		IndexName: DefaultIndexName,
	}
}

// Modules returns the modules that get a file of their own, in document
// order: external modules and modules rejected by the filter are left out.
func (c *Context) Modules() []*model.Module {
	var out []*model.Module
	for i := range c.Doc.Modules {
		m := &c.Doc.Modules[i]
		if m.External || !c.Filter.Match(m.Key) {
			continue
		}
		out = append(out, m)
	}
	return out
}
