package catalog

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

type Server struct {
	Service *Service
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// Register adds the catalog endpoints to r.
func (s *Server) Register(r chi.Router) {
	r.Get("/perfumes", s.listAll)
	r.Get("/perfumes/{category}", s.listByCategory)
	r.Post("/perfumes", s.create)
	r.Put("/perfumes/{category}/{id}", s.update)
	r.Delete("/perfumes/{category}/{id}", s.delete)

	r.Post("/init-data", s.initData)

	r.Get("/debug/all-data", s.dump)
	r.Delete("/debug/clear-all", s.clearAll)
	r.Post("/debug/reset", s.reset)
}

func (s *Server) listAll(w http.ResponseWriter, r *http.Request) {
	perfumes, err := s.Service.ListAll(r.Context())
	if err != nil {
		s.writeErr(w, r, "list perfumes failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"data": perfumes})
}

func (s *Server) listByCategory(w http.ResponseWriter, r *http.Request) {
	c, err := ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid category", nil)
		return
	}

	perfumes, err := s.Service.ListByCategory(r.Context(), c)
	if err != nil {
		s.writeErr(w, r, "list category failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"data": perfumes})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p Perfume
	if err := decodeBody(w, r, &p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	created, err := s.Service.Create(r.Context(), p)
	if err != nil {
		s.writeErr(w, r, "create perfume failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"data": created})
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if err := decodeBody(w, r, &fields); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	c, id, ok := pathIdentity(r)
	if !ok {
		// nothing can be stored under an invalid identity
		kit.WriteError(w, r, http.StatusNotFound, "Perfume not found", nil)
		return
	}

	updated, err := s.Service.Update(r.Context(), c, id, fields)
	if err != nil {
		s.writeErr(w, r, "update perfume failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"data": updated})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	c, id, ok := pathIdentity(r)
	if !ok {
		kit.WriteOK(w, nil)
		return
	}

	if err := s.Service.Delete(r.Context(), c, id); err != nil {
		s.writeErr(w, r, "delete perfume failed", err)
		return
	}
	kit.WriteOK(w, nil)
}

type initReq struct {
	Perfumes []Perfume `json:"perfumes"`
}

func (s *Server) initData(w http.ResponseWriter, r *http.Request) {
	var req initReq
	if err := decodeBody(w, r, &req); err != nil || req.Perfumes == nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid data format", nil)
		return
	}

	n, err := s.Service.BulkInit(r.Context(), req.Perfumes)
	if err != nil {
		s.writeErr(w, r, "init data failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"count": n})
}

func (s *Server) dump(w http.ResponseWriter, r *http.Request) {
	d, err := s.Service.Dump(r.Context())
	if err != nil {
		s.writeErr(w, r, "dump failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{
		"count": d.Count,
		"data":  map[string]any{"her": d.Her, "him": d.Him, "all": d.All},
	})
}

func (s *Server) clearAll(w http.ResponseWriter, r *http.Request) {
	n, err := s.Service.ClearAll(r.Context())
	if err != nil {
		s.writeErr(w, r, "clear all failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{
		"count":   n,
		"message": "Cleared " + strconv.Itoa(n) + " perfumes from database",
	})
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	n, err := s.Service.ResetToDefaults(r.Context())
	if err != nil {
		s.writeErr(w, r, "reset failed", err)
		return
	}
	kit.WriteOK(w, map[string]any{"count": n})
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "Perfume not found", nil)
	default:
		if s.Log != nil {
			s.Log.Error(msg, zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, err.Error(), nil)
	}
}

func pathIdentity(r *http.Request) (Category, int, bool) {
	c, err := ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", 0, false
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return "", 0, false
	}
	return c, id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
