package tui

import (
	"fmt"
	"strings"

	"vent-cli/internal/model"
	"vent-cli/internal/store"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type messageItem struct {
	msg model.Message
}

func (i messageItem) FilterValue() string { return i.msg.Text }

func (i messageItem) Title() string {
	if i.msg.IsReply() {
		return fmt.Sprintf("#%d %s>>%d", i.msg.ID, glyphReplyPrefix(), *i.msg.ReplyTo)
	}
	return fmt.Sprintf("#%d", i.msg.ID)
}

func (i messageItem) Description() string {
	return i.msg.DisplayTime() + "  " + truncate(i.msg.Text, 60)
}

func glyphReplyPrefix() string { return "↩ " }

func truncate(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func renderMessageDetail(l *store.Log, m model.Message, width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("#%d", m.ID))
	meta := lipgloss.NewStyle().Foreground(colorMuted).Render(m.DisplayTime())
	b.WriteString(title + "  " + meta + "\n")

	if m.ReplyTo != nil {
		target := fmt.Sprintf("in reply to #%d", *m.ReplyTo)
		if _, ok := l.Find(*m.ReplyTo); !ok {
			// The target was removed; the reference is kept as-is.
			target += " (gone)"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Render(target) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderMarkdown(m.Text, width-2))

	replies := 0
	for _, r := range l.Messages {
		if r.ReplyTo != nil && *r.ReplyTo == m.ID {
			replies++
		}
	}
	if replies > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%d replies", replies)))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
