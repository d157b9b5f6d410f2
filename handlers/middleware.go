package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/satheeshds/billing/auth"
	"github.com/satheeshds/billing/bill"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/render"
	"github.com/satheeshds/billing/store"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

// Shared collaborators, set once in main before serving.
var (
	Store    store.Store
	Sessions *bill.Sessions
	Auth     *auth.Service
	Render   render.Options
	Now      = time.Now
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeCodedError(w, status, "", msg)
}

func writeCodedError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg, Code: code})
}

// writeAuthError answers an identity failure with its code and the
// user-facing description.
func writeAuthError(w http.ResponseWriter, err error) {
	code := auth.Code(err)
	if code == "" {
		slog.Error("auth failed", "error", err)
		writeError(w, http.StatusInternalServerError, auth.Describe(err).Description)
		return
	}
	status := http.StatusUnauthorized
	switch {
	case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrEmailInUse):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrOperationNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, auth.ErrTooManyRequests):
		status = http.StatusTooManyRequests
	}
	writeCodedError(w, status, code, auth.Describe(err).Description)
}

// writeBillError maps calculator and bill failures to status codes.
func writeBillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gst.ErrInvalidItem):
		writeCodedError(w, http.StatusBadRequest, "InvalidItem", err.Error())
	case errors.Is(err, bill.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, bill.ErrEmptyBill):
		writeCodedError(w, http.StatusBadRequest, "EmptyBill", "Please add at least one item.")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	// downloads opened in a new tab cannot set headers
	return r.URL.Query().Get("token")
}

// RequireAuth is middleware that resolves the bearer token to the current
// user. Guest tokens are accepted.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		u, err := Auth.ParseToken(token)
		if err != nil {
			writeAuthError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
	})
}

// RequireAccount rejects guest sessions. It must run after RequireAuth.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := currentUser(r); u.Anonymous {
			writeCodedError(w, http.StatusForbidden, "AccountRequired", "Sign in with an account to access saved invoices.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) auth.CurrentUser {
	u, _ := auth.FromContext(r.Context())
	return u
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
