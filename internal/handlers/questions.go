package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/a2sh3r/mindflex/internal/middleware"
)

// subjectsFilter accepts ?subject=A&subject=B as well as ?subject=A,B.
func subjectsFilter(r *http.Request) []string {
	var subjects []string
	for _, v := range r.URL.Query()["subject"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				subjects = append(subjects, s)
			}
		}
	}
	return subjects
}

func (h *Handler) ListOpenQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListOpen(r.Context(), subjectsFilter(r))
	if err != nil {
		writeError(w, "failed to list open questions", err)
		return
	}
	writeList(w, questions)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.questionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "failed to get question", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) TakeQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	q, err := h.questionService.Take(r.Context(), chi.URLParam(r, "id"), session)
	if err != nil {
		writeError(w, "failed to take question", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	files, closeFiles, err := openFiles(r)
	if err != nil {
		writeError(w, "invalid answer form", err)
		return
	}
	defer closeFiles()

	q, err := h.questionService.SubmitAnswer(r.Context(), chi.URLParam(r, "id"), session, r.FormValue("answer_text"), files)
	if err != nil {
		writeError(w, "failed to submit answer", err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	cd, err := h.questionService.Countdown(r.Context(), chi.URLParam(r, "id"), session)
	if err != nil {
		writeError(w, "failed to get countdown", err)
		return
	}
	writeJSON(w, http.StatusOK, cd)
}

func (h *Handler) ListTutorQuestions(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	questions, err := h.questionService.ListAssignedTo(r.Context(), session.Login)
	if err != nil {
		writeError(w, "failed to list tutor questions", err)
		return
	}
	writeList(w, questions)
}
