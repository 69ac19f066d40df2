package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/metrics"
	"github.com/a2sh3r/mindflex/internal/middleware"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/service"
)

type Handler struct {
	userService     service.UserService
	questionService service.QuestionService
	ledgerService   service.LedgerService
	issuer          *auth.TokenIssuer
	revoker         auth.Revoker
}

func NewHandler(
	userService service.UserService,
	questionService service.QuestionService,
	ledgerService service.LedgerService,
	issuer *auth.TokenIssuer,
	revoker auth.Revoker,
) *Handler {
	return &Handler{
		userService:     userService,
		questionService: questionService,
		ledgerService:   ledgerService,
		issuer:          issuer,
		revoker:         revoker,
	}
}

type RouterConfig struct {
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

func NewRouter(handler *Handler, cfg RouterConfig, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.NewMetricsMiddleware(m))
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	limiter := middleware.NewUserRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	r.Route("/api/user", func(r chi.Router) {
		r.With(middleware.RateLimitMiddleware(limiter)).Post("/register", handler.Register)
		r.With(middleware.RateLimitMiddleware(limiter)).Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(handler.issuer, handler.revoker))
			r.Post("/logout", handler.Logout)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(handler.issuer, handler.revoker))
		r.Use(middleware.RateLimitMiddleware(limiter))

		r.Route("/api/questions", func(r chi.Router) {
			r.With(middleware.RequireRole(models.RoleTutor)).Get("/open", handler.ListOpenQuestions)
			r.Get("/{id}", handler.GetQuestion)
			r.Get("/{id}/countdown", handler.GetCountdown)
			r.With(middleware.RequireRole(models.RoleTutor)).Post("/{id}/take", handler.TakeQuestion)
			r.With(middleware.RequireRole(models.RoleTutor)).Post("/{id}/answer", handler.SubmitAnswer)
		})

		r.Route("/api/tutor", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleTutor))
			r.Get("/questions", handler.ListTutorQuestions)
			r.Get("/profile", handler.GetProfile)
			r.Get("/withdrawals", handler.ListTutorWithdrawals)
			r.Post("/withdrawals", handler.RequestWithdrawal)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/questions", handler.ListQuestions)
			r.Post("/questions", handler.PostQuestion)
			r.Post("/questions/{id}/review", handler.ReviewQuestion)
			r.Get("/tutors", handler.ListTutors)
			r.Post("/tutors/{username}/balance", handler.CreditTutor)
			r.Get("/withdrawals", handler.ListWithdrawals)
			r.Post("/withdrawals/{id}/clear", handler.ClearWithdrawal)
		})
	})

	return r
}
