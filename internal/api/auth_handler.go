package api

import (
	"log/slog"
	"net/http"

	"posts-api/internal/api/shared"
	"posts-api/internal/config"
	"posts-api/internal/service/auth"
)

// AuthHandler handles the token issuance endpoint.
type AuthHandler struct {
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	authConfig       *config.AuthConfig
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// IssueToken handles POST /token. It validates the submitted credentials
// against the configured demo identity and, on success, returns a signed
// bearer token. Unknown usernames and wrong passwords produce the identical
// 401 response.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if req.Username != h.authConfig.DemoUsername {
		h.logger.Debug("login rejected", slog.String("reason", "unknown username"))
		shared.RespondWithUnauthorized(w, r)
		return
	}

	if err := h.passwordVerifier.Compare(h.authConfig.DemoPasswordHash, req.Password); err != nil {
		h.logger.Debug("login rejected", slog.String("reason", "password mismatch"))
		shared.RespondWithUnauthorized(w, r)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("failed to generate token", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
