package storefront

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ShinnPerfume/internal/auth"
	"ShinnPerfume/internal/catalog"
	"ShinnPerfume/internal/memory"
	"ShinnPerfume/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	adminSubject = "admin"
)

type Server struct {
	Provider *Provider
	Catalog  *Client
	// Memory is nil when chat transcripts are not persisted.
	Memory *MemoryClient
	Relay  *ChatRelay
	Tokens *auth.TokenMaker

	AdminPasswordHash string
	Log               *zap.Logger
}

func (s *Server) snapshot(w http.ResponseWriter, _ *http.Request) {
	kit.WriteOK(w, map[string]any{"data": s.Provider.Snapshot()})
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	c, err := catalog.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid category", nil)
		return
	}
	kit.WriteOK(w, map[string]any{"data": s.Provider.Perfumes(c)})
}

type loginReq struct {
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if strings.TrimSpace(req.Password) == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "password required", nil)
		return
	}

	if err := auth.CheckPassword(s.AdminPasswordHash, req.Password); err != nil {
		s.Log.Warn("admin login rejected", zap.String("remote", kit.ClientIP(r)))
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	tok, err := s.Tokens.New(adminSubject, auth.RoleAdmin, auth.AdminTokenTTL)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{
		AccessToken: tok,
		ExpiresIn:   int(auth.AdminTokenTTL.Seconds()),
	})
}

func (s *Server) addPerfume(w http.ResponseWriter, r *http.Request) {
	var p catalog.Perfume
	if err := decodeBody(w, r, &p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	created := s.Catalog.Add(r.Context(), p)
	if created == nil {
		s.mutationFailed(w, r)
		return
	}
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, map[string]any{"data": created})
}

func (s *Server) updatePerfume(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeBody(w, r, &fields); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	c, id, ok := pathIdentity(r)
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid category or id", nil)
		return
	}

	updated := s.Catalog.Update(r.Context(), c, id, fields)
	if updated == nil {
		s.mutationFailed(w, r)
		return
	}
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, map[string]any{"data": updated})
}

func (s *Server) deletePerfume(w http.ResponseWriter, r *http.Request) {
	c, id, ok := pathIdentity(r)
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid category or id", nil)
		return
	}

	if !s.Catalog.Delete(r.Context(), c, id) {
		s.mutationFailed(w, r)
		return
	}
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, nil)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, map[string]any{"data": s.Provider.Snapshot()})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	if !s.Catalog.ResetToDefaults(r.Context()) {
		s.mutationFailed(w, r)
		return
	}
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, nil)
}

func (s *Server) clearAll(w http.ResponseWriter, r *http.Request) {
	if !s.Catalog.ClearAll(r.Context()) {
		s.mutationFailed(w, r)
		return
	}
	// the provider keeps its lists: an empty catalog never blanks the shop
	s.Provider.Refresh(r.Context())
	kit.WriteOK(w, nil)
}

func (s *Server) debug(w http.ResponseWriter, r *http.Request) {
	d := s.Catalog.FetchDebugDump(r.Context())
	if d.Err != nil {
		kit.WriteError(w, r, http.StatusBadGateway, d.Err.Error(), nil)
		return
	}
	kit.WriteOK(w, map[string]any{
		"count": d.Count,
		"data":  map[string]any{"her": d.Her, "him": d.Him, "all": d.All},
	})
}

func (s *Server) mutationFailed(w http.ResponseWriter, r *http.Request) {
	admin, _ := auth.SubjectFromContext(r.Context())
	s.Log.Warn("admin mutation failed",
		zap.String("admin", admin),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	kit.WriteError(w, r, http.StatusBadGateway, "catalog operation failed", nil)
}

type chatReq struct {
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if strings.TrimSpace(req.ChatInput) == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "chatInput is required", nil)
		return
	}
	if req.SessionID == "" {
		req.SessionID = "user_" + uuid.NewString()
	}

	reply, err := s.Relay.Send(r.Context(), req.SessionID, req.ChatInput)
	if err != nil {
		s.Log.Warn("chat relay failed", zap.String("session_id", req.SessionID), zap.Error(err))
		kit.WriteError(w, r, http.StatusBadGateway, RelayErrorText, map[string]any{"sessionId": req.SessionID})
		return
	}

	if s.Memory != nil {
		turns := []memory.Message{
			{Role: "user", Content: req.ChatInput},
			{Role: "assistant", Content: reply},
		}
		if _, err := s.Memory.Save(r.Context(), req.SessionID, turns); err != nil {
			s.Log.Warn("chat memory save failed", zap.String("session_id", req.SessionID), zap.Error(err))
		}
	}

	kit.WriteOK(w, map[string]any{"sessionId": req.SessionID, "reply": reply})
}

func pathIdentity(r *http.Request) (catalog.Category, int, bool) {
	c, err := catalog.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", 0, false
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return "", 0, false
	}
	return c, id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
