package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gxcuit/vibe-translate/internal/domain"
	"github.com/gxcuit/vibe-translate/internal/ports"
)

type providerRequest struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	list, err := s.d.Providers.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []*domain.Provider{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createProvider(w http.ResponseWriter, r *http.Request) {
	var req providerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Type == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, errors.New("type and name are required"))
		return
	}
	p := &domain.Provider{Type: req.Type, Name: req.Name, BaseURL: req.BaseURL, Model: req.Model, APIKey: req.APIKey}
	if err := s.d.Providers.Create(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.syncRegistry(p, "")
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) getProvider(w http.ResponseWriter, r *http.Request) {
	p, ok := s.providerFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProvider(w http.ResponseWriter, r *http.Request) {
	old, ok := s.providerFromPath(w, r)
	if !ok {
		return
	}
	var req providerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	p := &domain.Provider{ID: old.ID, Type: req.Type, Name: req.Name, BaseURL: req.BaseURL, Model: req.Model, APIKey: req.APIKey}
	if err := s.d.Providers.Update(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.syncRegistry(p, old.Name)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProvider(w http.ResponseWriter, r *http.Request) {
	p, ok := s.providerFromPath(w, r)
	if !ok {
		return
	}
	if err := s.d.Providers.Delete(r.Context(), p.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if s.d.Registry != nil {
		s.d.Registry.Unregister(p.Name)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// listProviderModels fetches models from the backend and refreshes the stored
// cache; on backend failure it falls back to the last cached list.
func (s *Server) listProviderModels(w http.ResponseWriter, r *http.Request) {
	p, ok := s.providerFromPath(w, r)
	if !ok {
		return
	}
	client, err := s.d.BuildProvider(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	models, err := client.ListModels(r.Context())
	if err != nil {
		cached, cerr := s.d.Providers.ListModelCache(r.Context(), p.ID)
		if cerr != nil || len(cached) == 0 {
			writeError(w, http.StatusBadGateway, err)
			return
		}
		out := make([]ports.ModelInfo, 0, len(cached))
		for _, m := range cached {
			out = append(out, ports.ModelInfo{Name: m.Name})
		}
		writeJSON(w, http.StatusOK, map[string]any{"models": out, "cached": true})
		return
	}
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}
	_ = s.d.Providers.SaveModelCache(r.Context(), p.ID, names)
	writeJSON(w, http.StatusOK, map[string]any{"models": models, "cached": false})
}

func (s *Server) testProvider(w http.ResponseWriter, r *http.Request) {
	p, ok := s.providerFromPath(w, r)
	if !ok {
		return
	}
	client, err := s.d.BuildProvider(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := client.Test(r.Context()); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) providersHealth(w http.ResponseWriter, r *http.Request) {
	if s.d.Registry == nil {
		writeJSON(w, http.StatusOK, map[string]string{})
		return
	}
	res := s.d.Registry.HealthCheck(r.Context())
	out := make(map[string]string, len(res))
	for name, err := range res {
		if err != nil {
			out[name] = err.Error()
		} else {
			out[name] = "ok"
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) providerFromPath(w http.ResponseWriter, r *http.Request) (*domain.Provider, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad provider id: %w", err))
		return nil, false
	}
	p, err := s.d.Providers.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, errors.New("provider not found"))
		} else {
			writeError(w, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return p, true
}

// syncRegistry rebuilds the live client for a changed record. A rename drops
// the stale entry first.
func (s *Server) syncRegistry(p *domain.Provider, oldName string) {
	if s.d.Registry == nil || s.d.BuildProvider == nil {
		return
	}
	if oldName != "" && oldName != p.Name {
		s.d.Registry.Unregister(oldName)
	}
	if client, err := s.d.BuildProvider(p); err == nil {
		s.d.Registry.Register(p.Name, client)
	}
}
