package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/storage"
)

func TestHandler_PostQuestion(t *testing.T) {
	env := newTestEnv(t)
	fields := map[string]string{
		"title":         "Integrate x squared",
		"subject":       "Mathematics",
		"budget":        "10",
		"delivery_time": "3 hours",
		"description":   "Show all steps",
	}

	t.Run("multipart with files", func(t *testing.T) {
		env.questions.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req models.PostQuestionRequest, files []storage.File) (*models.Question, error) {
				assert.Equal(t, "Integrate x squared", req.Title)
				assert.Equal(t, "3 hours", req.DeliveryTime)
				assert.Len(t, files, 2)
				return &models.Question{ID: testQuestionID, Title: req.Title}, nil
			})

		body, ct := multipartBody(t, fields, map[string]string{"a.pdf": "a", "b.png": "b"})
		w := env.do(t, http.MethodPost, "/api/admin/questions", env.adminToken, ct, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("urlencoded without files", func(t *testing.T) {
		env.questions.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Len(0)).
			Return(nil, apperrors.ErrInvalidDeliveryTimeFormat)

		form := url.Values{}
		for k, v := range fields {
			form.Set(k, v)
		}
		form.Set("delivery_time", "3 weeks")
		w := env.do(t, http.MethodPost, "/api/admin/questions", env.adminToken,
			"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tutor forbidden", func(t *testing.T) {
		body, ct := multipartBody(t, fields, nil)
		w := env.do(t, http.MethodPost, "/api/admin/questions", env.tutorToken, ct, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_ReviewQuestion(t *testing.T) {
	env := newTestEnv(t)

	env.questions.EXPECT().RecordReviewAndArchive(gomock.Any(), testQuestionID, models.ReviewRequest{Tutor: "alice", Rating: 5}).Return(nil)
	w := env.doJSON(t, http.MethodPost, "/api/admin/questions/"+testQuestionID+"/review", env.adminToken, `{"tutor":"alice","rating":5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	env.questions.EXPECT().RecordReviewAndArchive(gomock.Any(), testQuestionID, gomock.Any()).Return(apperrors.ErrQuestionNotFound)
	w = env.doJSON(t, http.MethodPost, "/api/admin/questions/"+testQuestionID+"/review", env.adminToken, `{"rating":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.questions.EXPECT().RecordReviewAndArchive(gomock.Any(), testQuestionID, gomock.Any()).Return(apperrors.ErrInvalidRating)
	w = env.doJSON(t, http.MethodPost, "/api/admin/questions/"+testQuestionID+"/review", env.adminToken, `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreditTutor(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
	}{
		{
			name: "credited",
			body: `{"amount": 25.50}`,
			setup: func() {
				env.ledger.EXPECT().CreditBalance(gomock.Any(), "alice", gomock.Any()).
					DoAndReturn(func(_ interface{}, _ string, amount decimal.Decimal) (decimal.Decimal, error) {
						assert.Equal(t, "25.5", amount.String())
						return decimal.RequireFromString("75.50"), nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero amount",
			body:       `{"amount": 0}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not a number",
			body:       `{"amount": "lots"}`,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown tutor",
			body: `{"amount": 5}`,
			setup: func() {
				env.ledger.EXPECT().CreditBalance(gomock.Any(), "alice", gomock.Any()).Return(decimal.Zero, apperrors.ErrTutorNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			w := env.doJSON(t, http.MethodPost, "/api/admin/tutors/Alice/balance", env.adminToken, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var resp creditResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "alice", resp.Username)
				assert.True(t, decimal.RequireFromString("75.5").Equal(resp.Balance))
			}
		})
	}
}

func TestHandler_AdminLists(t *testing.T) {
	env := newTestEnv(t)

	env.questions.EXPECT().ListAll(gomock.Any()).Return([]models.Question{{ID: testQuestionID}}, nil)
	env.ledger.EXPECT().ListTutors(gomock.Any()).Return([]models.TutorSummary{{Username: "alice", Balance: decimal.NewFromInt(3)}}, nil)
	env.ledger.EXPECT().ListWithdrawals(gomock.Any()).Return(nil, nil)

	assert.Equal(t, http.StatusOK, env.doJSON(t, http.MethodGet, "/api/admin/questions", env.adminToken, "").Code)
	assert.Equal(t, http.StatusOK, env.doJSON(t, http.MethodGet, "/api/admin/tutors", env.adminToken, "").Code)
	assert.Equal(t, http.StatusNoContent, env.doJSON(t, http.MethodGet, "/api/admin/withdrawals", env.adminToken, "").Code)
	assert.Equal(t, http.StatusForbidden, env.doJSON(t, http.MethodGet, "/api/admin/tutors", env.tutorToken, "").Code)
}

func TestHandler_ClearWithdrawal(t *testing.T) {
	env := newTestEnv(t)
	id := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

	env.ledger.EXPECT().ClearWithdrawal(gomock.Any(), id).Return(nil)
	assert.Equal(t, http.StatusOK, env.doJSON(t, http.MethodPost, "/api/admin/withdrawals/"+id+"/clear", env.adminToken, "").Code)

	env.ledger.EXPECT().ClearWithdrawal(gomock.Any(), "missing").Return(apperrors.ErrWithdrawalNotFound)
	assert.Equal(t, http.StatusNotFound, env.doJSON(t, http.MethodPost, "/api/admin/withdrawals/missing/clear", env.adminToken, "").Code)
}
