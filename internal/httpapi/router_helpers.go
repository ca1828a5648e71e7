package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"brothertrans/backend/internal/domain"
)

type corsPolicy struct {
	allowAnyOrigin bool
	allowedOrigins map[string]struct{}
	allowHeaders   string
	allowMethods   string
}

func newCORSPolicy(config RuntimeConfig) corsPolicy {
	policy := corsPolicy{
		allowAnyOrigin: config.AllowAnyCORSOrigin,
		allowedOrigins: make(map[string]struct{}, len(config.CORSAllowedOrigins)),
		allowHeaders:   "Content-Type",
		allowMethods:   "GET, POST, OPTIONS",
	}
	for _, origin := range config.CORSAllowedOrigins {
		policy.allowedOrigins[origin] = struct{}{}
	}
	return policy
}

func setCORS(w http.ResponseWriter, r *http.Request, policy corsPolicy) {
	if policy.allowAnyOrigin {
		w.Header().Set("Access-Control-Allow-Headers", policy.allowHeaders)
		w.Header().Set("Access-Control-Allow-Methods", policy.allowMethods)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		return
	}

	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return
	}
	if _, allowed := policy.allowedOrigins[origin]; !allowed {
		return
	}

	w.Header().Set("Access-Control-Allow-Headers", policy.allowHeaders)
	w.Header().Set("Access-Control-Allow-Methods", policy.allowMethods)
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Vary", "Origin")
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

func isExactRoute(segments []string, parts ...string) bool {
	if len(segments) != len(parts) {
		return false
	}
	for idx, part := range parts {
		if segments[idx] != part {
			return false
		}
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

// formValue returns a trimmed form field; ParseForm must already have run.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// parseFormInt parses a required numeric form field. Missing or non-numeric
// input is a validation error, not a NaN-shaped record.
func parseFormInt(r *http.Request, key string) (int64, error) {
	raw := formValue(r, key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return value, nil
}

// parseFormIntDefault parses an optional numeric form field, substituting the
// fallback when the field is absent or empty.
func parseFormIntDefault(r *http.Request, key string, fallback int64) (int64, error) {
	raw := formValue(r, key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return value, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write json failed: status=%d body_type=%T err=%v", status, body, err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationError(w http.ResponseWriter, err error) {
	message := "validation failed"
	// Joined errors put the sentinel first; the human detail follows.
	detailed := strings.TrimSpace(strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()))
	if detailed != "" {
		message = detailed
	}
	writeError(w, http.StatusBadRequest, message)
}

// writeDetailError keeps the unit detail 404 body in the {"message": ...}
// shape the frontend pages were written against.
func writeDetailError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Unit tidak ditemukan"})
		return
	}
	writeServiceError(w, err)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
