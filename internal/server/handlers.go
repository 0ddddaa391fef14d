package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lexicon/middlewares"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

// Translation is the response of the translate endpoint.
type Translation struct {
	Key    string   `json:"key"`
	Locale string   `json:"locale"`
	Value  string   `json:"value"`
	Found  bool     `json:"found"`
	N      *float64 `json:"n,omitempty"`
}

// Locales is the response of the locales endpoint.
type Locales struct {
	Locales  []string `json:"locales"`
	Fallback string   `json:"fallback"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// reserved query parameters that are not placeholders.
var reserved = map[string]bool{"locale": true, "n": true}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	tr, ok := middlewares.TranslatorFromContext(r.Context())
	if !ok {
		tr = i18n.NewTranslator(s.resolver, s.resolver.FallbackLocale())
	}

	key := chi.URLParam(r, "key")
	query := r.URL.Query()

	placeholders := make(i18n.M, len(query))
	for name, values := range query {
		if !reserved[name] && len(values) > 0 {
			placeholders[name] = values[0]
		}
	}

	resp := Translation{Key: key, Locale: tr.Locale()}

	if raw := query.Get("n"); raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "n must be a number")
			return
		}
		resp.N = &n
		resp.Value = tr.Tn(r.Context(), key, n, placeholders)
	} else {
		resp.Value = tr.T(r.Context(), key, placeholders)
	}
	resp.Found = resp.Value != key

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) locales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Locales{
		Locales:  s.resolver.Locales(),
		Fallback: s.resolver.FallbackLocale(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
