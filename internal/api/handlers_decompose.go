package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/elementnamer/internal/metrics"
	"github.com/dgallion1/elementnamer/internal/render"
	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/go-chi/chi/v5"
)

type decomposeResponse struct {
	segment.Result
	Count int `json:"count"`
}

// handleDecompose spells a word from the path or the "word" query parameter.
// ?format= selects json (default), text, markdown or html.
func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		word = r.URL.Query().Get("word")
	}

	word = strings.TrimSpace(word)
	normalized := segment.Normalize(word)
	if normalized == "" {
		jsonError(w, "word is required", http.StatusBadRequest)
		return
	}
	if n := utf8.RuneCountInString(normalized); n > s.cfg.MaxWordLength {
		jsonError(w, fmt.Sprintf("word too long: %d characters (max %d)", n, s.cfg.MaxWordLength), http.StatusBadRequest)
		return
	}
	// Ambiguous words double their tree per ambiguous pair, so length alone
	// does not bound the work.
	if err := s.cfg.CheckWork(normalized, s.table); err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	start := time.Now()
	res := segment.Decompose(word, s.table)
	elapsed := time.Since(start)
	metrics.Observe(res, elapsed)

	s.log.Debug("decomposed",
		"word", res.Word,
		"decompositions", len(res.Decompositions),
		"tree_nodes", res.TreeNodes,
		"tree_depth", res.TreeDepth,
		"elapsed_us", elapsed.Microseconds(),
	)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, decomposeResponse{Result: res, Count: len(res.Decompositions)})
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := render.Text(w, res); err != nil {
			s.log.Warn("write text response", "error", err)
		}
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(render.Markdown(res))
	case "html":
		out, err := render.HTML(res)
		if err != nil {
			s.log.Error("render html", "word", res.Word, "error", err)
			jsonError(w, "failed to render html", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	default:
		jsonError(w, fmt.Sprintf("unsupported format: %s", format), http.StatusBadRequest)
	}
}
