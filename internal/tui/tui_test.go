package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vent-cli/internal/model"
	"vent-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func intPtr(n int) *int { return &n }

func testLog() *store.Log {
	ts := time.Unix(1700000000, 0)
	return &store.Log{Messages: []model.Message{
		{ID: 1, CreatedAt: ts, Text: "hello there"},
		{ID: 2, CreatedAt: ts.Add(time.Minute), ReplyTo: intPtr(1), Text: "same"},
		{ID: 3, CreatedAt: ts.Add(2 * time.Minute), Text: "bye"},
	}}
}

func TestMessageItemTitleAndDescription(t *testing.T) {
	t.Parallel()

	top := messageItem{msg: model.Message{ID: 1, CreatedAt: time.Unix(1700000000, 0), Text: "hello"}}
	if top.Title() != "#1" {
		t.Fatalf("title: got %q", top.Title())
	}
	if !strings.Contains(top.Description(), "hello") {
		t.Fatalf("description: got %q", top.Description())
	}

	rep := messageItem{msg: model.Message{ID: 2, CreatedAt: time.Unix(1700000000, 0), ReplyTo: intPtr(1), Text: "same"}}
	if !strings.Contains(rep.Title(), ">>1") {
		t.Fatalf("reply title must name the target: %q", rep.Title())
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := truncate("a quite long message text", 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestRenderMessageDetail(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Setenv("VENT_TUI_MD_STYLE", "dark")

	l := testLog()
	m, _ := l.Find(2)
	out := renderMessageDetail(l, m, 60)
	if !strings.Contains(out, "#2") {
		t.Fatalf("detail missing id: %q", out)
	}
	if !strings.Contains(out, "in reply to #1") {
		t.Fatalf("detail missing reply target: %q", out)
	}
	if !strings.Contains(out, "same") {
		t.Fatalf("detail missing text: %q", out)
	}
}

func TestRenderMessageDetailDanglingReply(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Setenv("VENT_TUI_MD_STYLE", "dark")

	ts := time.Unix(1700000000, 0)
	l := &store.Log{Messages: []model.Message{
		{ID: 2, CreatedAt: ts, ReplyTo: intPtr(1), Text: "orphan"},
	}}
	m := l.Messages[0]
	out := renderMessageDetail(l, m, 60)
	if !strings.Contains(out, "(gone)") {
		t.Fatalf("dangling reply target should be marked: %q", out)
	}
}

func TestReloadErrorKeepsStateAndShowsFooterWarning(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Setenv("VENT_TUI_MD_STYLE", "dark")

	path := filepath.Join(t.TempDir(), "vent.csv")
	if err := os.WriteFile(path, []byte("garbage\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m := newAppModel(store.Store{Path: path}, testLog())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	if am.loadErr == nil {
		t.Fatal("expected reloading a corrupt store to record the error")
	}
	if len(am.log.Messages) != 3 {
		t.Fatalf("last good state must survive a failed reload, got %d messages", len(am.log.Messages))
	}
	if !strings.Contains(am.View(), "load failed") {
		t.Fatalf("footer should report the failed reload:\n%s", am.View())
	}
}

func TestAppModelListsNewestFirst(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := store.Store{Path: "does-not-exist.csv"}
	m := newAppModel(s, testLog())

	items := m.msgList.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	first, ok := items[0].(messageItem)
	if !ok {
		t.Fatalf("unexpected item type %T", items[0])
	}
	if first.msg.ID != 3 {
		t.Fatalf("expected newest message first, got #%d", first.msg.ID)
	}
}
