package store

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vent-cli/internal/model"
	"vent-cli/internal/reply"
)

type Store struct {
	Path string
}

// Log is the in-memory form of the backing file: messages in insertion
// order. Edits happen in place and removals delete without renumbering, so
// storage order is not necessarily id order.
type Log struct {
	Messages []model.Message
}

func (s Store) Load() (*Log, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Log{}, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	l := &Log{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		row := sc.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}
		m, err := DecodeRow(row)
		if err != nil {
			return nil, &ParseError{Path: s.Path, Line: lineNo, Err: err}
		}
		l.Messages = append(l.Messages, m)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// Save rewrites the whole sequence and atomically replaces the backing
// file. Either the new content lands in full or the previous file stays.
func (s Store) Save(l *Log) error {
	var buf bytes.Buffer
	for _, m := range l.Messages {
		buf.WriteString(EncodeRow(m))
		buf.WriteByte('\n')
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return atomicWriteFile(dir, filepath.Base(s.Path)+".*.tmp", s.Path, buf.Bytes(), 0o644)
}

func (l *Log) Find(id int) (model.Message, bool) {
	for _, m := range l.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return model.Message{}, false
}

func (l *Log) nextID() int {
	max := 0
	for _, m := range l.Messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// Add resolves an optional leading reply marker, validates the target
// eagerly, and appends a new message with id max+1.
func (l *Log) Add(raw string) (model.Message, error) {
	replyTo, text := reply.Parse(raw)
	if replyTo != nil {
		if _, ok := l.Find(*replyTo); !ok {
			return model.Message{}, InvalidReferenceError{ID: *replyTo}
		}
	}
	m := model.Message{
		ID: l.nextID(),
		// Truncate to seconds; that is the storage precision.
		CreatedAt: time.Unix(time.Now().Unix(), 0),
		ReplyTo:   replyTo,
		Text:      text,
	}
	l.Messages = append(l.Messages, m)
	return m, nil
}

func (l *Log) Edit(id int, text string) (model.Message, error) {
	for i := range l.Messages {
		if l.Messages[i].ID == id {
			l.Messages[i].Text = text
			return l.Messages[i], nil
		}
	}
	return model.Message{}, NotFoundError{ID: id}
}

// Remove deletes exactly one row. Replies referencing the removed id are
// left alone; a dangling reference is valid data, not an error.
func (l *Log) Remove(id int) error {
	for i := range l.Messages {
		if l.Messages[i].ID == id {
			l.Messages = append(l.Messages[:i], l.Messages[i+1:]...)
			return nil
		}
	}
	return NotFoundError{ID: id}
}
