package feed

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Parlor/internal/api/handlers/common"
	"Parlor/internal/api/middleware"
	"Parlor/internal/core/newsfeed"

	"github.com/google/uuid"
)

// GetFeedHandler serves the personal, global and per-user feeds
type GetFeedHandler struct {
	service newsfeed.Service
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(service newsfeed.Service) *GetFeedHandler {
	return &GetFeedHandler{
		service: service,
	}
}

// HandlePersonal handles GET /api/feed/personal
// Requires authentication
func (h *GetFeedHandler) HandlePersonal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired", "User must be authenticated to view the personal feed")
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.GetPersonalFeed(r.Context(), userID, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, result)
}

// HandleGlobal handles GET /api/feed/global
func (h *GetFeedHandler) HandleGlobal(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.GetGlobalFeed(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, result)
}

// HandleUser handles GET /api/feed/user/{targetUserId}
// Anonymous requests may read public accounts only
func (h *GetFeedHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	targetID, ok := common.URLParamUUID(w, r, "targetUserId")
	if !ok {
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	result, err := h.service.GetUserFeed(r.Context(), middleware.GetUserID(r), targetID, filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, result)
}

// parseFilter reads the query string into a filter.
// Absent values keep DefaultFilter; out-of-range paging is clamped by the engine.
func parseFilter(r *http.Request) (newsfeed.Filter, error) {
	q := r.URL.Query()
	filter := newsfeed.DefaultFilter()

	var err error
	if filter.Page, err = parseInt(q.Get("page"), filter.Page); err != nil {
		return filter, fmt.Errorf("page must be an integer")
	}
	if filter.PageSize, err = parseInt(q.Get("pageSize"), filter.PageSize); err != nil {
		return filter, fmt.Errorf("pageSize must be an integer")
	}

	filter.SearchQuery = q.Get("searchQuery")
	filter.Hashtag = q.Get("hashtag")

	if filter.FromDate, err = parseDate(q.Get("fromDate")); err != nil {
		return filter, fmt.Errorf("fromDate: %w", err)
	}
	if filter.ToDate, err = parseDate(q.Get("toDate")); err != nil {
		return filter, fmt.Errorf("toDate: %w", err)
	}

	if filter.IncludeReposts, err = parseBool(q.Get("includeReposts"), true); err != nil {
		return filter, fmt.Errorf("includeReposts must be true or false")
	}
	if filter.IncludeComments, err = parseBool(q.Get("includeComments"), true); err != nil {
		return filter, fmt.Errorf("includeComments must be true or false")
	}

	return filter, nil
}

func parseInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func parseBool(raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseBool(raw)
}

// parseDate accepts RFC 3339 timestamps or plain dates (midnight UTC)
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("expected RFC 3339 timestamp or YYYY-MM-DD, got %q", raw)
	}
	return &t, nil
}
