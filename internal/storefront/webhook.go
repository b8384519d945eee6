package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	relayTimeout   = 30 * time.Second
	maxReplyBytes  = 1 << 20
	actionSendChat = "sendMessage"

	// NoReplyText is shown when the assistant answered without any text.
	NoReplyText = "Sorry, I did not get a response. Please try again!"
	// RelayErrorText is shown when the assistant could not be reached.
	RelayErrorText = "Sorry, something went wrong while contacting the assistant. Please try again later!"
)

var ErrRelayNotConfigured = errors.New("chat webhook is not configured")

// ChatRelay forwards chat input to the conversational workflow webhook.
type ChatRelay struct {
	URL  string
	HTTP *http.Client
}

func NewChatRelay(webhookURL string) *ChatRelay {
	return &ChatRelay{
		URL:  webhookURL,
		HTTP: &http.Client{Timeout: relayTimeout},
	}
}

type relayReq struct {
	Action    string `json:"action"`
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
}

// Send posts one user message and returns the extracted reply text.
func (c *ChatRelay) Send(ctx context.Context, sessionID, input string) (string, error) {
	if c.URL == "" {
		return "", ErrRelayNotConfigured
	}

	raw, err := json.Marshal(relayReq{Action: actionSendChat, SessionID: sessionID, ChatInput: input})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat webhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", fmt.Errorf("chat webhook: read: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("chat webhook: status=%d", resp.StatusCode)
	}
	return ExtractReply(body)
}

// ExtractReply picks the display text out of a webhook answer: the first
// non-empty string among output, message and text, or the body itself when
// it is a JSON string. Anything else yields NoReplyText.
func ExtractReply(body []byte) (string, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", fmt.Errorf("chat webhook: decode: %w", err)
	}

	switch t := v.(type) {
	case string:
		if t != "" {
			return t, nil
		}
	case map[string]any:
		for _, k := range []string{"output", "message", "text"} {
			if s, ok := t[k].(string); ok && strings.TrimSpace(s) != "" {
				return s, nil
			}
		}
	}
	return NoReplyText, nil
}
