package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vent.hbs")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestHandlebarsEachReverse(t *testing.T) {
	path := writeTemplate(t, `{{#each_reverse messages}}{{id}}:{{text}};{{/each_reverse}}`)
	eng, err := NewHandlebarsEngine(path)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	if err := (Renderer{Engine: eng}).Render(&buf, testLog()); err != nil {
		t.Fatalf("render: %v", err)
	}
	// Display is newest-first; context order stays storage order.
	want := "2:second;3:third;1:first;"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestHandlebarsIfReply(t *testing.T) {
	path := writeTemplate(t, `{{#each_reverse messages}}{{#if_reply reply}}[re {{reply}}]{{/if_reply}}{{text}};{{/each_reverse}}`)
	eng, err := NewHandlebarsEngine(path)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	if err := (Renderer{Engine: eng}).Render(&buf, testLog()); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "second;[re 1]third;first;"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestHandlebarsIfReplyRejectsNonNumber(t *testing.T) {
	// generated_at is a formatted string, so pointing if_reply at it must
	// fail the whole render rather than silently skip the block.
	path := writeTemplate(t, `{{#if_reply generated_at}}x{{/if_reply}}`)
	eng, err := NewHandlebarsEngine(path)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	err = (Renderer{Engine: eng}).Render(&buf, testLog())
	var te *TemplateError
	if !errors.As(err, &te) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("failed render must not emit output, got %q", buf.String())
	}
}

func TestHandlebarsMissingTemplate(t *testing.T) {
	_, err := NewHandlebarsEngine(filepath.Join(t.TempDir(), "nope.hbs"))
	var te *TemplateError
	if !errors.As(err, &te) {
		t.Fatalf("expected TemplateError, got %v", err)
	}
}
