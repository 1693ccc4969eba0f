package render

import (
	"io"
	"time"

	"vent-cli/internal/model"
	"vent-cli/internal/store"
)

// Engine is the pluggable template capability: structured context in,
// complete document out. Concrete engines must not write anything
// themselves so a failed render can abort without partial output.
type Engine interface {
	Render(ctx map[string]any) (string, error)
}

type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string { return "template: " + e.Err.Error() }
func (e *TemplateError) Unwrap() error { return e.Err }

type Renderer struct {
	Engine Engine
}

// Render builds the document context from the log and writes the engine's
// output verbatim. The context keeps storage (insertion) order; presenting
// newest-first or nesting replies is the template's decision.
func (r Renderer) Render(w io.Writer, l *store.Log) error {
	out, err := r.Engine.Render(BuildContext(l.Messages))
	if err != nil {
		return &TemplateError{Err: err}
	}
	_, err = io.WriteString(w, out)
	return err
}

// BuildContext maps messages to view nodes in storage order. The reply
// field carries the parent id through unresolved (it may dangle after a
// removal); nil marks a top-level message.
func BuildContext(msgs []model.Message) map[string]any {
	nodes := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		node := map[string]any{
			"id":        m.ID,
			"ts":        m.CreatedAt.Unix(),
			"timestamp": m.DisplayTime(),
			"text":      m.Text,
		}
		if m.ReplyTo != nil {
			node["reply"] = *m.ReplyTo
		} else {
			node["reply"] = nil
		}
		nodes = append(nodes, node)
	}
	return map[string]any{
		"messages":     nodes,
		"count":        len(msgs),
		"generated_at": time.Now().Format(model.DisplayTimeLayout),
	}
}
