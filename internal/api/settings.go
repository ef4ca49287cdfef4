package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (s *Server) listSettings(w http.ResponseWriter, r *http.Request) {
	all, err := s.d.Settings.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make(map[string]string, len(all))
	for _, st := range all {
		out[st.Key] = st.Value
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) putSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	for k, v := range req {
		if err := s.d.Settings.Set(r.Context(), k, v); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Errorf("set %s: %w", k, err))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}
