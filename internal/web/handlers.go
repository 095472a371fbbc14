package web

import (
	"errors"
	"log/slog"
	"net/http"

	"Parlor/internal/core/auth"
)

// Handlers serves the password reset page linked from reset emails
type Handlers struct {
	templates *Templates
	auth      auth.Service
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(templates *Templates, authService auth.Service) *Handlers {
	return &Handlers{
		templates: templates,
		auth:      authService,
	}
}

// ResetPasswordPageData is rendered into reset_password.html
type ResetPasswordPageData struct {
	Token string
	Email string
	Error string
}

// ResetPasswordPageHandler renders the reset form
// GET /reset-password?token=...&email=...
func (h *Handlers) ResetPasswordPageHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := ResetPasswordPageData{
		Token: q.Get("token"),
		Email: q.Get("email"),
	}

	status := http.StatusOK
	if data.Token == "" || data.Email == "" {
		data.Error = "This reset link is incomplete. Request a new one."
		status = http.StatusBadRequest
	}

	h.render(w, status, "reset_password.html", data)
}

// ResetPasswordSubmitHandler consumes the token and sets the new password
// POST /reset-password
func (h *Handlers) ResetPasswordSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("reset password submit: failed to parse form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	data := ResetPasswordPageData{
		Token: r.PostFormValue("token"),
		Email: r.PostFormValue("email"),
	}

	if r.PostFormValue("password") != r.PostFormValue("confirm") {
		data.Error = "Passwords do not match."
		h.render(w, http.StatusBadRequest, "reset_password.html", data)
		return
	}

	err := h.auth.ResetPassword(r.Context(), auth.ResetPasswordRequest{
		Email:       data.Email,
		Token:       data.Token,
		NewPassword: r.PostFormValue("password"),
	})
	switch {
	case err == nil:
		h.render(w, http.StatusOK, "reset_done.html", nil)
	case errors.Is(err, auth.ErrInvalidResetToken):
		// The token is burned; the form cannot be retried
		h.render(w, http.StatusBadRequest, "reset_done.html", map[string]string{
			"Error": "This reset link is invalid or has expired. Request a new one.",
		})
	case auth.IsValidationError(err):
		var valErr *auth.ValidationError
		errors.As(err, &valErr)
		data.Error = valErr.Message
		h.render(w, http.StatusBadRequest, "reset_password.html", data)
	default:
		slog.Error("reset password submit failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	if err := h.templates.Render(w, status, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
