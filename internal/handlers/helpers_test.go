package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/metrics"
	service_mocks "github.com/a2sh3r/mindflex/internal/mocks/service_mocks"
	"github.com/a2sh3r/mindflex/internal/models"
)

const testQuestionID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type testEnv struct {
	router     chi.Router
	users      *service_mocks.MockUserService
	questions  *service_mocks.MockQuestionService
	ledger     *service_mocks.MockLedgerService
	issuer     *auth.TokenIssuer
	revoker    *auth.MemoryRevoker
	tutorToken string
	adminToken string
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:     service_mocks.NewMockUserService(ctrl),
		questions: service_mocks.NewMockQuestionService(ctrl),
		ledger:    service_mocks.NewMockLedgerService(ctrl),
		issuer:    auth.NewTokenIssuer("testsecret", time.Hour),
		revoker:   auth.NewMemoryRevoker(),
	}

	h := NewHandler(env.users, env.questions, env.ledger, env.issuer, env.revoker)
	env.router = NewRouter(h, RouterConfig{RequestTimeout: 5 * time.Second, RateLimit: 1000, RateBurst: 1000}, metrics.NewMetrics())

	var err error
	env.tutorToken, err = env.issuer.Issue(&models.User{ID: 3, Login: "alice", Role: models.RoleTutor})
	require.NoError(t, err)
	env.adminToken, err = env.issuer.Issue(&models.User{ID: 1, Login: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return e.do(t, method, path, token, "application/json", r)
}

type sessionMatcher struct {
	login string
}

func (m sessionMatcher) Matches(x interface{}) bool {
	s, ok := x.(auth.Session)
	return ok && s.Login == m.login
}

func (m sessionMatcher) String() string {
	return "session of " + m.login
}

func sessionFor(login string) gomock.Matcher {
	return sessionMatcher{login: login}
}
