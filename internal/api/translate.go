package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gxcuit/vibe-translate/internal/sentence"
	"github.com/gxcuit/vibe-translate/internal/usecase/translator"
)

type translateRequest struct {
	Text        string `json:"text"`
	Surrounding string `json:"surrounding"`
	ProviderID  int64  `json:"provider_id"`
	TargetLang  string `json:"target_lang"`
	BypassCache bool   `json:"bypass_cache"`
}

type translateResponse struct {
	Translation string           `json:"translation"`
	Context     sentence.Context `json:"context"`
	Provider    string           `json:"provider"`
	Model       string           `json:"model"`
	Cached      bool             `json:"cached"`
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	res, err := s.d.Translator.Translate(r.Context(), translator.Args{
		Text:        req.Text,
		Surrounding: req.Surrounding,
		ProviderID:  req.ProviderID,
		TargetLang:  req.TargetLang,
		BypassCache: req.BypassCache,
	})
	if err != nil {
		var pe *translator.ProviderError
		switch {
		case errors.Is(err, translator.ErrEmptyText), errors.Is(err, translator.ErrNoProvider):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, err)
		case errors.As(err, &pe):
			slog.Error("provider call failed", "error", err)
			writeError(w, http.StatusBadGateway, err)
		default:
			slog.Error("translate failed", "error", err)
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{
		Translation: res.Translation,
		Context:     res.Context,
		Provider:    res.Provider,
		Model:       res.Model,
		Cached:      res.Cached,
	})
}
