package storefront

import (
	"context"
	"net/http"

	"ShinnPerfume/internal/memory"
)

// MemoryClient reads and appends chat transcripts on the catalog service.
// Unlike the catalog calls it reports errors; chat persistence is best effort
// and the caller decides what to log.
type MemoryClient struct {
	client *Client
}

func NewMemoryClient(c *Client) *MemoryClient {
	return &MemoryClient{client: c}
}

type memoryReq struct {
	Action    string           `json:"action"`
	SessionID string           `json:"sessionId"`
	Messages  []memory.Message `json:"messages"`
}

func (m *MemoryClient) Get(ctx context.Context, sessionID string) ([]memory.Message, error) {
	var out struct {
		Memory []memory.Message `json:"memory"`
	}
	req := memoryReq{Action: memory.ActionGet, SessionID: sessionID}
	if err := m.client.do(ctx, http.MethodPost, "/memory", req, &out); err != nil {
		return nil, err
	}
	if out.Memory == nil {
		out.Memory = []memory.Message{}
	}
	return out.Memory, nil
}

// Save appends msgs and returns the transcript length after the append.
func (m *MemoryClient) Save(ctx context.Context, sessionID string, msgs []memory.Message) (int, error) {
	if msgs == nil {
		msgs = []memory.Message{}
	}
	var out struct {
		Count int `json:"count"`
	}
	req := memoryReq{Action: memory.ActionSave, SessionID: sessionID, Messages: msgs}
	if err := m.client.do(ctx, http.MethodPost, "/memory", req, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
