package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vent-cli/internal/model"
)

// Row format: id,ts,reply,text — one message per physical line.
// ts is unix seconds; reply is empty for top-level messages. Delimiter,
// backslash and line-break characters inside text are escaped so the row
// never spans lines and line numbers stay meaningful in parse errors.

const fieldCount = 4

func EncodeRow(m model.Message) string {
	reply := ""
	if m.ReplyTo != nil {
		reply = strconv.Itoa(*m.ReplyTo)
	}
	return fmt.Sprintf("%d,%d,%s,%s", m.ID, m.CreatedAt.Unix(), reply, escapeText(m.Text))
}

func DecodeRow(row string) (model.Message, error) {
	fields := splitRow(row)
	if len(fields) < fieldCount {
		return model.Message{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	if len(fields) > fieldCount {
		return model.Message{}, errors.New("unescaped delimiter in text")
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return model.Message{}, fmt.Errorf("invalid message id %q", fields[0])
	}
	sec, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return model.Message{}, fmt.Errorf("invalid timestamp %q", fields[1])
	}
	var replyTo *int
	if fields[2] != "" {
		n, err := strconv.Atoi(fields[2])
		if err != nil || n <= 0 {
			return model.Message{}, fmt.Errorf("invalid reply id %q", fields[2])
		}
		replyTo = &n
	}
	text, err := unescapeText(fields[3])
	if err != nil {
		return model.Message{}, err
	}

	return model.Message{
		ID:        id,
		CreatedAt: time.Unix(sec, 0),
		ReplyTo:   replyTo,
		Text:      text,
	}, nil
}

func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ',':
			b.WriteString(`\,`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeText(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		if esc {
			switch r {
			case '\\':
				b.WriteByte('\\')
			case ',':
				b.WriteByte(',')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				return "", fmt.Errorf("invalid escape \\%c in text", r)
			}
			esc = false
			continue
		}
		if r == '\\' {
			esc = true
			continue
		}
		b.WriteRune(r)
	}
	if esc {
		return "", errors.New("dangling escape at end of text")
	}
	return b.String(), nil
}

// splitRow splits on unescaped delimiters only. Escape sequences are kept
// intact for unescapeText; a trailing lone backslash is preserved so it is
// reported as a dangling escape rather than silently dropped.
func splitRow(row string) []string {
	var fields []string
	var cur strings.Builder
	esc := false
	for _, r := range row {
		if esc {
			cur.WriteByte('\\')
			cur.WriteRune(r)
			esc = false
			continue
		}
		switch r {
		case '\\':
			esc = true
		case ',':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if esc {
		cur.WriteByte('\\')
	}
	fields = append(fields, cur.String())
	return fields
}
