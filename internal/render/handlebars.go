package render

import (
	"github.com/aymerick/raymond"
)

// HandlebarsEngine renders through a .hbs template file. The template is
// parsed once at construction so a broken template fails before any store
// mutation or output happens.
type HandlebarsEngine struct {
	tpl *raymond.Template
}

func NewHandlebarsEngine(path string) (*HandlebarsEngine, error) {
	tpl, err := raymond.ParseFile(path)
	if err != nil {
		return nil, &TemplateError{Err: err}
	}
	registerHelpers(tpl)
	return &HandlebarsEngine{tpl: tpl}, nil
}

func (e *HandlebarsEngine) Render(ctx map[string]any) (string, error) {
	return e.tpl.Exec(ctx)
}
