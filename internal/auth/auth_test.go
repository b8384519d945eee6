package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := NewTokenMaker(testSecret)

	tok, err := tm.New("admin", RoleAdmin, AdminTokenTTL)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Subject != "admin" || c.Role != RoleAdmin {
		t.Fatalf("claims=%+v", c)
	}
}

func TestTokenMaker_Rejects(t *testing.T) {
	tm := NewTokenMaker(testSecret)
	other := NewTokenMaker("ffffffffffffffffffffffffffffffff")

	foreign, _ := other.New("admin", RoleAdmin, time.Minute)
	if _, err := tm.Parse(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign secret: err=%v", err)
	}

	issued := time.Now()
	tm.now = func() time.Time { return issued }
	tok, _ := tm.New("admin", RoleAdmin, AdminTokenTTL)
	tm.now = func() time.Time { return issued.Add(AdminTokenTTL + time.Second) }
	if _, err := tm.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired: err=%v", err)
	}

	if _, err := tm.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: err=%v", err)
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPassword(hash, "correct horse"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err=%v", err)
	}
	if err := CheckPassword("", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty hash: err=%v", err)
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("empty password hashed")
	}
}

func TestRequireRole(t *testing.T) {
	tm := NewTokenMaker(testSecret)
	admin, _ := tm.New("admin", RoleAdmin, time.Minute)
	viewer, _ := tm.New("bob", "viewer", time.Minute)

	var gotSubject string
	h := RequireRole(tm, RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name  string
		authz string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewer, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status=%d want=%d", rec.Code, tc.want)
			}
		})
	}
	if gotSubject != "admin" {
		t.Fatalf("subject=%q", gotSubject)
	}
}
