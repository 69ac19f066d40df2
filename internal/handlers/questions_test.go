package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/storage"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_ListOpenQuestions(t *testing.T) {
	env := newTestEnv(t)

	env.questions.EXPECT().ListOpen(gomock.Any(), []string{"Law", "Science", "Writing"}).
		Return([]models.Question{{ID: testQuestionID, Subject: "Law"}}, nil)
	w := env.doJSON(t, http.MethodGet, "/api/questions/open?subject=Law,Science&subject=Writing", env.tutorToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Question
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	env.questions.EXPECT().ListOpen(gomock.Any(), nil).Return([]models.Question{}, nil)
	w = env.doJSON(t, http.MethodGet, "/api/questions/open", env.tutorToken, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/questions/open", env.adminToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/questions/open", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_TakeQuestion(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "won", wantStatus: http.StatusOK},
		{name: "already assigned", err: apperrors.ErrQuestionAlreadyAssigned, wantStatus: http.StatusConflict},
		{name: "missing", err: apperrors.ErrQuestionNotFound, wantStatus: http.StatusNotFound},
		{name: "database down", err: apperrors.Upstream("assign question", io.ErrUnexpectedEOF), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q *models.Question
			if tt.err == nil {
				q = &models.Question{ID: testQuestionID, IsAssigned: true, TutorAssigned: "alice"}
			}
			env.questions.EXPECT().Take(gomock.Any(), testQuestionID, sessionFor("alice")).Return(q, tt.err)

			w := env.doJSON(t, http.MethodPost, "/api/questions/"+testQuestionID+"/take", env.tutorToken, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err == apperrors.ErrQuestionAlreadyAssigned {
				assert.Equal(t, "question is already assigned\n", w.Body.String())
			}
		})
	}
}

func TestHandler_SubmitAnswer(t *testing.T) {
	env := newTestEnv(t)

	t.Run("text and file", func(t *testing.T) {
		env.questions.EXPECT().SubmitAnswer(gomock.Any(), testQuestionID, sessionFor("alice"), "see attached", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, _ auth.Session, _ string, files []storage.File) (*models.Question, error) {
				require.Len(t, files, 1)
				assert.Equal(t, "proof.pdf", files[0].Name)
				body, err := io.ReadAll(files[0].Content)
				require.NoError(t, err)
				assert.Equal(t, "%PDF", string(body))
				return &models.Question{ID: testQuestionID, IsAnswered: true}, nil
			})

		body, ct := multipartBody(t, map[string]string{"answer_text": "see attached"}, map[string]string{"proof.pdf": "%PDF"})
		w := env.do(t, http.MethodPost, "/api/questions/"+testQuestionID+"/answer", env.tutorToken, ct, body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("upload failure", func(t *testing.T) {
		env.questions.EXPECT().SubmitAnswer(gomock.Any(), testQuestionID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &apperrors.UploadError{Failed: "b.pdf", Uploaded: []string{"https://f/a.pdf"}, Err: io.ErrUnexpectedEOF})

		body, ct := multipartBody(t, nil, map[string]string{"a.pdf": "a", "b.pdf": "b"})
		w := env.do(t, http.MethodPost, "/api/questions/"+testQuestionID+"/answer", env.tutorToken, ct, body)
		require.Equal(t, http.StatusBadGateway, w.Code)

		var resp uploadErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "b.pdf", resp.Failed)
		assert.Equal(t, []string{"https://f/a.pdf"}, resp.Uploaded)
	})

	t.Run("other tutor", func(t *testing.T) {
		env.questions.EXPECT().SubmitAnswer(gomock.Any(), testQuestionID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrNotAssignedTutor)

		body, ct := multipartBody(t, map[string]string{"answer_text": "x"}, nil)
		w := env.do(t, http.MethodPost, "/api/questions/"+testQuestionID+"/answer", env.tutorToken, ct, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("too many files", func(t *testing.T) {
		files := map[string]string{}
		for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
			files[n+".txt"] = n
		}
		body, ct := multipartBody(t, nil, files)
		w := env.do(t, http.MethodPost, "/api/questions/"+testQuestionID+"/answer", env.tutorToken, ct, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetCountdown(t *testing.T) {
	env := newTestEnv(t)

	env.questions.EXPECT().Countdown(gomock.Any(), testQuestionID, sessionFor("alice")).
		Return(models.Countdown{QuestionID: testQuestionID, Remaining: "02:59:59", Display: "02 hours 59 min 59 sec"}, nil)

	w := env.doJSON(t, http.MethodGet, "/api/questions/"+testQuestionID+"/countdown", env.tutorToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cd models.Countdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cd))
	assert.Equal(t, "02:59:59", cd.Remaining)

	env.questions.EXPECT().Countdown(gomock.Any(), testQuestionID, gomock.Any()).Return(models.Countdown{}, apperrors.ErrInvalidDeliveryTimeFormat)
	w = env.doJSON(t, http.MethodGet, "/api/questions/"+testQuestionID+"/countdown", env.tutorToken, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetQuestion(t *testing.T) {
	env := newTestEnv(t)

	env.questions.EXPECT().Get(gomock.Any(), "nope").Return(nil, apperrors.ErrQuestionNotFound)
	w := env.doJSON(t, http.MethodGet, "/api/questions/nope", env.adminToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "question not found\n", w.Body.String())
}
