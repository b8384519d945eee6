//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	baseURL       = getenv("E2E_BASE_URL", "http://localhost:8082")
	storefrontURL = os.Getenv("E2E_STOREFRONT_URL")
)

type perfume struct {
	ID          int    `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	TopNotes    string `json:"topNotes"`
}

type listResp struct {
	Success bool      `json:"success"`
	Data    []perfume `json:"data"`
}

func TestSystem_E2E_PerfumeLifecycle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	id := 100000 + rand.Intn(800000)
	path := fmt.Sprintf("%s/perfumes/her/%d", baseURL, id)

	doJSON(t, http.MethodPost, baseURL+"/perfumes", map[string]any{
		"category":    "her",
		"id":          id,
		"name":        "TEST",
		"tagline":     "WHERE TESTS BLOOM",
		"description": "e2e",
		"topNotes":    "Rose",
	}, nil, 200)
	t.Cleanup(func() { doJSON(t, http.MethodDelete, path, nil, nil, 200) })

	got := findPerfume(t, id)
	if got == nil || got.Name != "TEST" {
		t.Fatalf("created perfume not listed: %+v", got)
	}

	doJSON(t, http.MethodPut, path, map[string]any{"name": "TEST2"}, nil, 200)
	got = findPerfume(t, id)
	if got == nil || got.Name != "TEST2" || got.Tagline != "WHERE TESTS BLOOM" || got.TopNotes != "Rose" {
		t.Fatalf("update lost fields: %+v", got)
	}

	if os.Getenv("E2E_RESTART_CATALOG") == "1" {
		restartService(t, ctx, "catalog")
		waitReady(t, ctx, baseURL+"/readyz")
		if got := findPerfume(t, id); got == nil || got.Name != "TEST2" {
			t.Fatalf("perfume lost across restart: %+v", got)
		}
	}

	doJSON(t, http.MethodDelete, path, nil, nil, 200)
	doJSON(t, http.MethodDelete, path, nil, nil, 200)
	if got := findPerfume(t, id); got != nil {
		t.Fatalf("deleted perfume still listed: %+v", got)
	}

	doJSON(t, http.MethodPut, path, map[string]any{"name": "X"}, nil, 404)
	doJSON(t, http.MethodGet, baseURL+"/perfumes/kids", nil, nil, 400)
}

func TestSystem_E2E_ChatMemory(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	session := fmt.Sprintf("e2e_%d_%d", time.Now().UnixNano(), rand.Intn(100000))

	doJSON(t, http.MethodPost, baseURL+"/memory", map[string]any{
		"action": "save", "sessionId": session,
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	}, nil, 200)
	doJSON(t, http.MethodPost, baseURL+"/memory", map[string]any{
		"action": "save", "sessionId": session,
		"messages": []map[string]string{{"role": "assistant", "content": "hello"}},
	}, nil, 200)

	var got struct {
		Memory []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"memory"`
	}
	doJSON(t, http.MethodPost, baseURL+"/memory", map[string]any{"action": "get", "sessionId": session}, &got, 200)

	if len(got.Memory) != 2 || got.Memory[0].Content != "hi" || got.Memory[1].Content != "hello" {
		t.Fatalf("memory=%+v", got.Memory)
	}

	doJSON(t, http.MethodPost, baseURL+"/memory", map[string]any{"action": "drop", "sessionId": session}, nil, 400)
}

func TestSystem_E2E_StorefrontCatalog(t *testing.T) {
	if storefrontURL == "" {
		t.Skip("E2E_STOREFRONT_URL not set")
	}
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, storefrontURL+"/readyz")

	var snap struct {
		Data struct {
			Her []perfume `json:"herPerfumes"`
			Him []perfume `json:"himPerfumes"`
		} `json:"data"`
	}
	doJSON(t, http.MethodGet, storefrontURL+"/catalog", nil, &snap, 200)
	if len(snap.Data.Her) == 0 || len(snap.Data.Him) == 0 {
		t.Fatalf("storefront served an empty category: her=%d him=%d", len(snap.Data.Her), len(snap.Data.Him))
	}
}

func findPerfume(t *testing.T, id int) *perfume {
	t.Helper()

	var lr listResp
	doJSON(t, http.MethodGet, baseURL+"/perfumes/her", nil, &lr, 200)
	for i := range lr.Data {
		if i > 0 && lr.Data[i-1].ID > lr.Data[i].ID {
			t.Fatalf("list not sorted by id at %d", i)
		}
	}
	for _, p := range lr.Data {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
