// internal/httpserver/routes_leaderboard.go
//
// HTTP routes for the leaderboard:
//   - GET  /leaderboard?limit=N → ranked entries (N defaults to and is capped at 10)
//   - POST /scores              → submit the run carried by a bearer score token
//
// The submitted entry comes only from the verified token claims; the request
// body is ignored.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/leaderboard"
)

type ctxEntryKey struct{}

// mountLeaderboard registers the leaderboard routes.
func (s *Server) mountLeaderboard(r chi.Router) {
	r.Get("/leaderboard", s.handleList)
	r.With(s.requireScoreToken).Post("/scores", s.handleSubmit)
}

// handleList returns the top entries.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	n := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		n = v
	}
	entries, err := s.store.Top(r.Context(), n)
	if err != nil {
		log.Error().Err(err).Msg("list leaderboard")
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	_ = json.NewEncoder(w).Encode(leaderboard.ListResponse{Entries: entries})
}

// submitRes is the body returned by POST /scores.
type submitRes struct {
	Accepted leaderboard.Entry `json:"accepted"`
}

// handleSubmit stores the entry verified by requireScoreToken.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	e, _ := r.Context().Value(ctxEntryKey{}).(leaderboard.Entry)
	if err := s.store.Submit(r.Context(), e); err != nil {
		if errors.Is(err, leaderboard.ErrEmptyName) {
			writeError(w, http.StatusBadRequest, "empty_name")
			return
		}
		log.Error().Err(err).Str("name", e.Name).Msg("submit score")
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}
	log.Info().Str("name", e.Name).Int("score", e.Score).Msg("score accepted")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(submitRes{Accepted: e})
}

// requireScoreToken verifies the bearer score token and puts its entry on
// the request context.
func (s *Server) requireScoreToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		e, err := leaderboard.VerifyScore(tokenStr, s.secret)
		if err != nil {
			log.Warn().Err(err).Msg("rejected score token")
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxEntryKey{}, e)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
