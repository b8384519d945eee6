// Package storefront is the customer-facing side of the shop: a degraded-mode
// client for the catalog service, the in-memory catalog provider, the chat
// relay and the HTTP server that exposes them.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"ShinnPerfume/internal/catalog"
)

const clientTimeout = 5 * time.Second

var ErrUnavailable = errors.New("catalog unavailable")

// APIError is a non-2xx answer from the catalog service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog: status=%d: %s", e.Status, e.Message)
}

// Fetch is the result of reading one category. Perfumes is never nil; Err
// says why the read degraded to an empty list.
type Fetch struct {
	Perfumes []catalog.Perfume
	Err      error
}

func (f Fetch) Failed() bool { return f.Err != nil }

// Empty reports a successful read of a category with no records.
func (f Fetch) Empty() bool { return f.Err == nil && len(f.Perfumes) == 0 }

// Dump is the debug view of the catalog; Err is set when it could not be read.
type Dump struct {
	catalog.Dump
	Err error
}

// Client talks to the catalog service. Catalog operations never return an
// error to the caller: failures are logged and collapse to an empty list, nil
// or false.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Log     *zap.Logger
}

func NewClient(baseURL, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: clientTimeout},
		Log:     log,
	}
}

func (c *Client) FetchByCategory(ctx context.Context, cat catalog.Category) Fetch {
	var out struct {
		Data []catalog.Perfume `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/perfumes/"+url.PathEscape(string(cat)), nil, &out); err != nil {
		c.Log.Warn("fetch perfumes failed", zap.String("category", string(cat)), zap.Error(err))
		return Fetch{Perfumes: []catalog.Perfume{}, Err: err}
	}
	if out.Data == nil {
		out.Data = []catalog.Perfume{}
	}
	return Fetch{Perfumes: out.Data}
}

func (c *Client) InitializeAll(ctx context.Context, perfumes []catalog.Perfume) bool {
	var out struct {
		Count int `json:"count"`
	}
	body := map[string]any{"perfumes": perfumes}
	if err := c.do(ctx, http.MethodPost, "/init-data", body, &out); err != nil {
		c.Log.Warn("initialize perfumes failed", zap.Error(err))
		return false
	}
	c.Log.Info("catalog initialized", zap.Int("count", out.Count))
	return true
}

func (c *Client) Add(ctx context.Context, p catalog.Perfume) *catalog.Perfume {
	var out struct {
		Data catalog.Perfume `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/perfumes", p, &out); err != nil {
		c.Log.Warn("add perfume failed", zap.String("key", p.Key()), zap.Error(err))
		return nil
	}
	return &out.Data
}

// Update sends a partial record; only the given fields change.
func (c *Client) Update(ctx context.Context, cat catalog.Category, id int, fields map[string]any) *catalog.Perfume {
	var out struct {
		Data catalog.Perfume `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, perfumePath(cat, id), fields, &out); err != nil {
		c.Log.Warn("update perfume failed", zap.String("key", catalog.Key(cat, id)), zap.Error(err))
		return nil
	}
	return &out.Data
}

func (c *Client) Delete(ctx context.Context, cat catalog.Category, id int) bool {
	if err := c.do(ctx, http.MethodDelete, perfumePath(cat, id), nil, nil); err != nil {
		c.Log.Warn("delete perfume failed", zap.String("key", catalog.Key(cat, id)), zap.Error(err))
		return false
	}
	return true
}

func (c *Client) FetchDebugDump(ctx context.Context) Dump {
	var out struct {
		Count int `json:"count"`
		Data  struct {
			Her []catalog.Perfume `json:"her"`
			Him []catalog.Perfume `json:"him"`
			All []catalog.Perfume `json:"all"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/debug/all-data", nil, &out); err != nil {
		c.Log.Warn("debug dump failed", zap.Error(err))
		return Dump{Err: err}
	}
	return Dump{Dump: catalog.Dump{
		Count: out.Count,
		Her:   out.Data.Her,
		Him:   out.Data.Him,
		All:   out.Data.All,
	}}
}

func (c *Client) ClearAll(ctx context.Context) bool {
	if err := c.do(ctx, http.MethodDelete, "/debug/clear-all", nil, nil); err != nil {
		c.Log.Warn("clear catalog failed", zap.Error(err))
		return false
	}
	return true
}

func (c *Client) ResetToDefaults(ctx context.Context) bool {
	if err := c.do(ctx, http.MethodPost, "/debug/reset", nil, nil); err != nil {
		c.Log.Warn("reset catalog failed", zap.Error(err))
		return false
	}
	return true
}

// Health checks that the catalog service answers and its store is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/readyz", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Error
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func perfumePath(cat catalog.Category, id int) string {
	return fmt.Sprintf("/perfumes/%s/%d", url.PathEscape(string(cat)), id)
}
