package gen

import (
	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"
)

// ModuleFilter selects modules by key using glob patterns. Patterns use "."
// as the separator, so "lovr.*" matches "lovr.audio" but not "lovr.a.b";
// "lovr.**" matches both.
type ModuleFilter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewModuleFilter compiles include and exclude patterns. An empty include
// list admits every module; exclusions always win.
func NewModuleFilter(include, exclude []string) (*ModuleFilter, error) {
	f := &ModuleFilter{}
	for _, p := range include {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling include pattern %q", p)
		}
		f.include = append(f.include, g)
	}
	for _, p := range exclude {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, errors.Wrapf(err, "compiling exclude pattern %q", p)
		}
		f.exclude = append(f.exclude, g)
	}
	return f, nil
}

// Match reports whether a module key passes the filter. A nil filter
// matches everything.
func (f *ModuleFilter) Match(key string) bool {
	if f == nil {
		return true
	}
	for _, g := range f.exclude {
		if g.Match(key) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(key) {
			return true
		}
	}
	return false
}
