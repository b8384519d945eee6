package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShinnPerfume/internal/api"
	"ShinnPerfume/internal/catalog"
	"ShinnPerfume/internal/kv"
	"ShinnPerfume/internal/memory"
)

const adminToken = "admin-token"

type downStore struct{ kv.Store }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func newTS(t *testing.T, store kv.Store, cfg kv.Config) *httptest.Server {
	t.Helper()

	deps := api.Deps{
		Store:       store,
		StoreConfig: cfg,
		Catalog:     &catalog.Server{Service: catalog.NewService(store, zap.NewNop()), Log: zap.NewNop()},
		Memory:      &memory.Server{Service: memory.NewService(store, zap.NewNop(), 0), Log: zap.NewNop()},
	}
	h := api.NewHandler(deps, api.HTTPDeps{
		Log:            zap.NewNop(),
		Service:        "catalog",
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: true,
		AdminToken:     adminToken,
		CORSOrigins:    []string{"*"},
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url, token string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return resp, raw
}

func TestHealthAndReady(t *testing.T) {
	ts := newTS(t, kv.NewMemStore(), kv.Config{Driver: "memory"})

	resp, raw := get(t, ts.URL+"/health", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(raw), `"ok"`) {
		t.Fatalf("health status=%d body=%s", resp.StatusCode, raw)
	}

	if resp, _ := get(t, ts.URL+"/readyz", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestReadyz_StoreDown(t *testing.T) {
	ts := newTS(t, downStore{kv.NewMemStore()}, kv.Config{Driver: "memory"})

	if resp, _ := get(t, ts.URL+"/readyz", ""); resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
}

func TestDBCredentials(t *testing.T) {
	ts := newTS(t, kv.NewMemStore(), kv.Config{
		Driver: "postgres",
		DSN:    "postgres://shinn:s3cret@db:5432/shinn?sslmode=disable",
	})

	if resp, _ := get(t, ts.URL+"/db-credentials", ""); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("no token status=%d", resp.StatusCode)
	}
	if resp, _ := get(t, ts.URL+"/db-credentials", "wrong"); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("wrong token status=%d", resp.StatusCode)
	}

	resp, raw := get(t, ts.URL+"/db-credentials", adminToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, raw)
	}
	if strings.Contains(string(raw), "s3cret") {
		t.Fatalf("password leaked: %s", raw)
	}

	var body struct {
		Success     bool    `json:"success"`
		Credentials kv.Info `json:"credentials"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Credentials.Driver != "postgres" || body.Credentials.TableName != kv.TableName {
		t.Fatalf("credentials=%+v", body.Credentials)
	}
}

func TestMetrics_RequiresToken(t *testing.T) {
	ts := newTS(t, kv.NewMemStore(), kv.Config{})

	get(t, ts.URL+"/perfumes", "")

	if resp, _ := get(t, ts.URL+"/metrics", ""); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("metrics without token status=%d", resp.StatusCode)
	}
	resp, raw := get(t, ts.URL+"/metrics", adminToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status=%d", resp.StatusCode)
	}
	if !strings.Contains(string(raw), `path="/perfumes"`) {
		t.Fatalf("request not recorded:\n%s", raw)
	}
}

func TestRoutesMounted(t *testing.T) {
	ts := newTS(t, kv.NewMemStore(), kv.Config{})

	resp, _ := get(t, ts.URL+"/perfumes/her", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("catalog route status=%d", resp.StatusCode)
	}

	r, err := http.Post(ts.URL+"/memory", "application/json", strings.NewReader(`{"action":"get","sessionId":"x"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	r.Body.Close()
	if r.StatusCode != http.StatusOK {
		t.Fatalf("memory route status=%d", r.StatusCode)
	}

	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("cors header=%q", resp.Header.Get("Access-Control-Allow-Origin"))
	}
}
