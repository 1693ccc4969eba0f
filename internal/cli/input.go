package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errEmptyMessage     = errors.New("empty message")
	errMultilineMessage = errors.New("message contains a line break")
)

// collectMessage joins positional args the way a shell would have passed a
// single quoted argument. Line breaks are rejected up front; the codec
// could escape them, but the logical model is one line per message.
func collectMessage(args []string) (string, error) {
	msg := strings.TrimSpace(strings.Join(args, " "))
	if msg == "" {
		return "", errEmptyMessage
	}
	if strings.ContainsAny(msg, "\n\r") {
		return "", errMultilineMessage
	}
	return msg, nil
}

func parseMessageID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid message id %q", arg)
	}
	return id, nil
}
