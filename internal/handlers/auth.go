package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/middleware"
	"github.com/a2sh3r/mindflex/internal/models"
)

type authRequest struct {
	Login    string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if r.Body == nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		writeError(w, "register failed", err)
		return
	}

	h.respondWithToken(w, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if r.Body == nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		writeError(w, "login failed", err)
		return
	}

	h.respondWithToken(w, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.revoker.Revoke(r.Context(), session.TokenID, session.Expires); err != nil {
		writeError(w, "logout failed", err)
		return
	}
	logger.Log.Info("user logged out", zap.String("login", session.Login))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, user *models.User) {
	tokenString, err := h.issuer.Issue(user)
	if err != nil {
		logger.Log.Error("could not create token", zap.Error(err))
		http.Error(w, "could not create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	writeJSON(w, http.StatusOK, authResponse{Token: tokenString, Role: user.Role})
}
