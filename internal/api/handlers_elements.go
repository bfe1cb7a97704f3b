package api

import (
	"net/http"
	"strings"

	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListElements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    s.table.Len(),
		"elements": s.table.Elements(),
	})
}

func (s *Server) handleGetElement(w http.ResponseWriter, r *http.Request) {
	symbol := segment.Normalize(strings.TrimSpace(chi.URLParam(r, "symbol")))
	i, ok := s.table.FindIndex(symbol)
	if !ok {
		jsonError(w, "element not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.table.Element(i))
}
