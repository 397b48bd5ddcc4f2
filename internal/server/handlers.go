package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/critique-dev/critique/internal/analyzer"
	"github.com/critique-dev/critique/internal/review"
)

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxCodeBytes))

	var req analyzer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("code exceeds %d bytes", s.cfg.MaxCodeBytes))
			return
		}
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if strings.TrimSpace(req.Language) == "" {
		respondError(w, http.StatusBadRequest, "language is required")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		respondError(w, http.StatusBadRequest, "code is required")
		return
	}
	if len(req.Code) < s.cfg.MinCodeLen {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("code must be at least %d bytes", s.cfg.MinCodeLen))
		return
	}

	rev, err := review.Run(r.Context(), req, s.cfg)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The response body is the result object alone; engine metadata stays
	// out of the fixed wire shape.
	respondJSON(w, http.StatusOK, rev.Result)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
