package memory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShinnPerfume/pkg/kit"
)

const maxBodyBytes = 1 << 20

const (
	ActionGet  = "get"
	ActionSave = "save"
)

type Server struct {
	Service *Service
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

func (s *Server) Register(r chi.Router) {
	r.Post("/memory", s.handle)
	r.Delete("/debug/clear-memory", s.clear)
}

type request struct {
	Action    string          `json:"action"`
	SessionID string          `json:"sessionId"`
	Messages  json.RawMessage `json:"messages"`
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.SessionID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Session ID is required", nil)
		return
	}

	switch req.Action {
	case ActionGet:
		msgs, err := s.Service.Get(r.Context(), req.SessionID)
		if err != nil {
			s.writeErr(w, r, err)
			return
		}
		kit.WriteOK(w, map[string]any{"memory": msgs, "sessionId": req.SessionID})

	case ActionSave:
		msgs, ok := decodeMessages(req.Messages)
		if !ok {
			kit.WriteError(w, r, http.StatusBadRequest, "Messages must be an array", nil)
			return
		}
		sess, err := s.Service.Save(r.Context(), req.SessionID, msgs)
		if err != nil {
			s.writeErr(w, r, err)
			return
		}
		kit.WriteOK(w, map[string]any{"sessionId": req.SessionID, "count": len(sess.Messages)})

	default:
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid action. Use 'get' or 'save'", nil)
	}
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	n, err := s.Service.Clear(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	kit.WriteOK(w, map[string]any{
		"count":   n,
		"message": "Cleared " + strconv.Itoa(n) + " memory sessions from database",
	})
}

// decodeMessages accepts only a JSON array; null, objects and scalars are
// rejected.
func decodeMessages(raw json.RawMessage) ([]Message, bool) {
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	msgs := []Message{}
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, false
	}
	return msgs, true
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrInvalidArgument) {
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if s.Log != nil {
		s.Log.Error("memory request failed", zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, err.Error(), nil)
}
