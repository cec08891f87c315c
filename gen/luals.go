package gen

func init() {
	Register("luals_modules", func() Generator { return &ModulesGenerator{} })
	Register("luals_index", func() Generator { return &IndexGenerator{} })
}

// ModulesGenerator produces one annotation file per rendered module.
type ModulesGenerator struct{}

func (g *ModulesGenerator) Name() string { return "luals_modules" }

func (g *ModulesGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var files []*OutputFile
	for _, m := range ctx.Modules() {
		files = append(files, &OutputFile{
			Path:    m.Key + ctx.Extension,
			Module:  m.Key,
			Content: JoinLines(RenderModule(m)),
		})
	}
	return files, nil
}

// IndexGenerator produces the aggregate file binding module namespaces,
// callbacks and global shorthands.
type IndexGenerator struct{}

func (g *IndexGenerator) Name() string { return "luals_index" }

func (g *IndexGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	lines := RenderIndex(ctx.Modules(), ctx.Doc.Callbacks)
	return []*OutputFile{
		{Path: ctx.IndexName, Content: JoinLines(lines)},
	}, nil
}
