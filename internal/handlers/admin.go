package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/service"
	"github.com/a2sh3r/mindflex/internal/utils"
)

type creditResponse struct {
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

func (h *Handler) PostQuestion(w http.ResponseWriter, r *http.Request) {
	files, closeFiles, err := openFiles(r)
	if err != nil {
		writeError(w, "invalid question form", err)
		return
	}
	defer closeFiles()

	req := models.PostQuestionRequest{
		Title:        r.FormValue("title"),
		Subject:      r.FormValue("subject"),
		Budget:       r.FormValue("budget"),
		DeliveryTime: r.FormValue("delivery_time"),
		Description:  r.FormValue("description"),
	}

	q, err := h.questionService.Post(r.Context(), req, files)
	if err != nil {
		writeError(w, "failed to post question", err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListAll(r.Context())
	if err != nil {
		writeError(w, "failed to list questions", err)
		return
	}
	writeList(w, questions)
}

func (h *Handler) ReviewQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.questionService.RecordReviewAndArchive(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, "failed to record review", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := h.ledgerService.ListTutors(r.Context())
	if err != nil {
		writeError(w, "failed to list tutors", err)
		return
	}
	writeList(w, tutors)
}

func (h *Handler) CreditTutor(w http.ResponseWriter, r *http.Request) {
	var req models.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	amount, err := service.ParseAmount(req.Amount.String())
	if err != nil {
		writeError(w, "invalid credit amount", err)
		return
	}

	username := utils.NormalizeUsername(chi.URLParam(r, "username"))
	balance, err := h.ledgerService.CreditBalance(r.Context(), username, amount)
	if err != nil {
		writeError(w, "failed to credit balance", err)
		return
	}
	writeJSON(w, http.StatusOK, creditResponse{Username: username, Balance: balance})
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.ledgerService.ListWithdrawals(r.Context())
	if err != nil {
		writeError(w, "failed to list withdrawals", err)
		return
	}
	writeList(w, withdrawals)
}

func (h *Handler) ClearWithdrawal(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.ClearWithdrawal(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "failed to clear withdrawal", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
