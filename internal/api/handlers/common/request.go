// Package common holds request parsing and response helpers shared by handlers
package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"Parlor/internal/api/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// MaxBodyBytes bounds JSON request bodies
const MaxBodyBytes = 1 << 20

// DecodeJSON reads a size-limited JSON body into dst.
// On failure it writes the error response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge", "Request body too large (max 1MB)")
			return false
		}
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}

// WriteJSON renders v as JSON with the given status
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// URLParamUUID parses a chi route parameter as a UUID.
// On failure it writes a 400 and returns false.
func URLParamUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// ParseLimitOffset reads limit and offset query parameters; invalid values fall back to 0
// and services apply their own defaults
func ParseLimitOffset(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return limit, offset
}

// WriteAuthRequired writes the standard 401 for handlers behind OptionalAuth
func WriteAuthRequired(w http.ResponseWriter) {
	handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
}
