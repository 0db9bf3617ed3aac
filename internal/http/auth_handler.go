package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/application"
	"github.com/circlecat/mentorship-dashboard/internal/persistence"
)

const sessionCookieName = "session_token"

type authService interface {
	Authenticate(ctx context.Context, params application.AuthenticateParams) (application.AuthenticateResult, error)
	RevokeSession(ctx context.Context, token string) error
}

type AuthHandler struct {
	service   authService
	responder responder
	logger    *slog.Logger
}

func NewAuthHandler(service authService, logger *slog.Logger) *AuthHandler {
	base := defaultLogger(logger)
	return &AuthHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AuthHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AuthHandler", operation, attrs...)
}

func (h *AuthHandler) ready(w http.ResponseWriter) bool {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	return true
}

// CreateSession exchanges demo credentials for a session token. The token is
// returned three ways so every client style works: in the body, in the
// X-Session-Token header, and as an HttpOnly cookie.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(ctx, "CreateSession", "error_kind", "bad_request").ErrorContext(ctx, "failed to decode session request", "error", err)
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	logger := h.log(ctx, "CreateSession", "email", email)

	params := application.AuthenticateParams{
		Email:       email,
		Password:    req.Password,
		Fingerprint: r.UserAgent(),
	}
	result, err := h.service.Authenticate(ctx, params)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		logger.ErrorContext(ctx, "authentication rejected", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{
			ErrorCode: "AUTH_INVALID_CREDENTIALS",
			Message:   "email or password is incorrect",
		})
		return
	case err != nil:
		logger.ErrorContext(ctx, "authentication failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	session := result.Session
	setSessionCookie(w, session.Token, session.ExpiresAt)
	w.Header().Set("X-Session-Token", session.Token)

	logger.InfoContext(ctx, "account authenticated", "account_id", result.Account.ID)
	h.responder.writeJSON(ctx, w, http.StatusCreated, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339Nano),
		Account:   toAccountDTO(result.Account),
	})
}

// DeleteCurrentSession revokes whichever token the request presented and
// clears the cookie. This route is reachable without a valid session so a
// client stuck with an expired token can still log out cleanly.
func (h *AuthHandler) DeleteCurrentSession(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	ctx := r.Context()

	token := extractTokenFromRequest(r)
	if token == "" {
		h.log(ctx, "DeleteCurrentSession", "error_kind", "unauthorized").ErrorContext(ctx, "missing session token for current session revocation")
		h.responder.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{
			ErrorCode: "AUTH_SESSION_EXPIRED",
			Message:   errMissingSessionToken.Error(),
		})
		return
	}

	logger := h.log(ctx, "DeleteCurrentSession", "token_present", true)
	if err := h.service.RevokeSession(ctx, token); err != nil {
		logger.ErrorContext(ctx, "failed to revoke session", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	clearSessionCookie(w)
	logger.InfoContext(ctx, "session revoked for current principal")
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}

// DeleteSession revokes an arbitrary token on behalf of an administrator.
func (h *AuthHandler) DeleteSession(w http.ResponseWriter, r *http.Request, token string) {
	if !h.ready(w) {
		return
	}
	ctx := r.Context()

	principal, ok := PrincipalFromContext(ctx)
	if !ok || !principal.IsAdmin {
		h.log(ctx, "DeleteSession", "error_kind", "forbidden").ErrorContext(ctx, "non-administrator attempted session revocation")
		h.responder.writeJSON(ctx, w, http.StatusForbidden, errorResponse{
			ErrorCode: "AUTH_FORBIDDEN",
			Message:   "you are not allowed to perform this operation",
		})
		return
	}

	token = strings.TrimSpace(token)
	if token == "" {
		h.log(ctx, "DeleteSession", "error_kind", "bad_request").ErrorContext(ctx, "empty token provided for admin revocation")
		h.responder.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "a token to revoke is required"})
		return
	}

	logger := h.log(ctx, "DeleteSession", "token_present", true, "actor_id", principal.AccountID)
	if err := h.service.RevokeSession(ctx, token); err != nil {
		logger.ErrorContext(ctx, "failed to revoke session", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "session revoked by administrator")
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt string     `json:"expires_at"`
	Account   accountDTO `json:"account"`
}

type accountDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	UserID      string `json:"user_id,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
}

func toAccountDTO(account persistence.Account) accountDTO {
	return accountDTO{
		ID:          account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		UserID:      account.UserID,
		IsAdmin:     account.IsAdmin,
	}
}

func setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
	}
	if !expires.IsZero() {
		cookie.Expires = expires.UTC()
	}
	http.SetCookie(w, cookie)
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
	})
}

func extractTokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		const prefix = "Bearer "
		if strings.HasPrefix(header, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(header, prefix))
		}
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
