package model

import "time"

type Message struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ReplyTo   *int      `json:"replyTo,omitempty"`
	Text      string    `json:"text"`
}

// DisplayTimeLayout is the human-facing timestamp format used by list
// output and rendered documents. Storage keeps unix seconds instead.
const DisplayTimeLayout = "2006-01-02 15:04:05 -0700"

func (m Message) DisplayTime() string {
	return m.CreatedAt.Format(DisplayTimeLayout)
}

func (m Message) IsReply() bool { return m.ReplyTo != nil }
