package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/mindflex/internal/middleware"
	"github.com/a2sh3r/mindflex/internal/models"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.ledgerService.Profile(r.Context(), session.Login)
	if err != nil {
		writeError(w, "failed to get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.ledgerService.RequestWithdrawal(r.Context(), session, req.PhoneNumber)
	if err != nil {
		writeError(w, "withdraw error", err)
		return
	}
	writeJSON(w, http.StatusCreated, withdrawal)
}

func (h *Handler) ListTutorWithdrawals(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.ledgerService.ListTutorWithdrawals(r.Context(), session)
	if err != nil {
		writeError(w, "failed to get withdrawals", err)
		return
	}
	writeList(w, withdrawals)
}
