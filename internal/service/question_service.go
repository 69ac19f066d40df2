package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/countdown"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/metrics"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/repository"
	"github.com/a2sh3r/mindflex/internal/storage"
	"github.com/a2sh3r/mindflex/internal/utils"
	"github.com/a2sh3r/mindflex/internal/validation"
)

type QuestionService interface {
	Post(ctx context.Context, req models.PostQuestionRequest, files []storage.File) (*models.Question, error)
	ListOpen(ctx context.Context, subjects []string) ([]models.Question, error)
	ListAll(ctx context.Context) ([]models.Question, error)
	ListAssignedTo(ctx context.Context, tutor string) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	Take(ctx context.Context, id string, session auth.Session) (*models.Question, error)
	SubmitAnswer(ctx context.Context, id string, session auth.Session, text string, files []storage.File) (*models.Question, error)
	RecordReviewAndArchive(ctx context.Context, id string, req models.ReviewRequest) error
	Countdown(ctx context.Context, id string, session auth.Session) (models.Countdown, error)
	ResumeCountdowns(ctx context.Context) error
}

// Countdowns is the part of countdown.Manager the lifecycle needs.
type Countdowns interface {
	Start(ctx context.Context, q *models.Question) error
	Stop(ctx context.Context, questionID string) error
	Display(ctx context.Context, q *models.Question) (models.Countdown, error)
	Resume(ctx context.Context, questions []models.Question)
}

// Buckets groups the blob stores of question and answer attachments.
type Buckets struct {
	Questions     storage.Bucket
	Answers       storage.Bucket
	UploadTimeout time.Duration
}

type questionService struct {
	questions  repository.QuestionRepository
	users      repository.UserRepository
	buckets    Buckets
	countdowns Countdowns
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewQuestionService(
	questions repository.QuestionRepository,
	users repository.UserRepository,
	buckets Buckets,
	countdowns Countdowns,
	m *metrics.Metrics,
) QuestionService {
	return &questionService{
		questions:  questions,
		users:      users,
		buckets:    buckets,
		countdowns: countdowns,
		metrics:    m,
		now:        time.Now,
	}
}

func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// Post validates the form, uploads the attachments one by one and stores the
// question as unassigned. Nothing is stored if an upload fails.
func (s *questionService) Post(ctx context.Context, req models.PostQuestionRequest, files []storage.File) (*models.Question, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if utils.CountWords(req.Title) > models.MaxTitleWords {
		return nil, apperrors.ErrTitleTooLong
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !models.IsSubject(req.Subject) {
		return nil, apperrors.Validation("subject is not supported")
	}
	budget, err := ParseAmount(req.Budget)
	if err != nil {
		return nil, apperrors.Validation("budget must be a positive number")
	}
	if _, err := countdown.Parse(req.DeliveryTime); err != nil {
		return nil, err
	}
	if len(files) > models.MaxAttachments {
		return nil, apperrors.ErrTooManyFiles
	}

	urls, err := storage.UploadAll(ctx, s.buckets.Questions, "", files, s.buckets.UploadTimeout)
	if err != nil {
		s.metrics.UploadFailures.WithLabelValues("questions").Inc()
		return nil, err
	}

	q := &models.Question{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Subject:      req.Subject,
		Budget:       budget,
		DeliveryTime: strings.TrimSpace(req.DeliveryTime),
		Description:  req.Description,
		FileURLs:     urls,
		CreatedAt:    s.now(),
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}

	s.metrics.QuestionsPosted.Inc()
	logger.Log.Info("question posted", zap.String("id", q.ID), zap.String("subject", q.Subject), zap.Int("files", len(urls)))
	return q, nil
}

func (s *questionService) ListOpen(ctx context.Context, subjects []string) ([]models.Question, error) {
	filter := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		if subject = strings.TrimSpace(subject); subject != "" {
			filter = append(filter, subject)
		}
	}
	return s.questions.ListOpen(ctx, filter)
}

func (s *questionService) ListAll(ctx context.Context) ([]models.Question, error) {
	return s.questions.ListAll(ctx)
}

func (s *questionService) ListAssignedTo(ctx context.Context, tutor string) ([]models.Question, error) {
	return s.questions.ListByTutor(ctx, utils.NormalizeUsername(tutor))
}

func (s *questionService) Get(ctx context.Context, id string) (*models.Question, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return s.questions.GetByID(ctx, id)
}

// Take assigns the question to the calling tutor. Of concurrent takes exactly
// one succeeds; the others get ErrQuestionAlreadyAssigned.
func (s *questionService) Take(ctx context.Context, id string, session auth.Session) (*models.Question, error) {
	if session.Role != models.RoleTutor {
		return nil, apperrors.ErrForbiddenRole
	}
	if err := validID(id); err != nil {
		return nil, err
	}

	if err := s.questions.Assign(ctx, id, session.Login, s.now()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			s.metrics.TakeAttempts.WithLabelValues("conflict").Inc()
		case errors.Is(err, apperrors.ErrNotFound):
			s.metrics.TakeAttempts.WithLabelValues("not_found").Inc()
		default:
			s.metrics.TakeAttempts.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	s.metrics.TakeAttempts.WithLabelValues("won").Inc()

	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.countdowns.Start(ctx, q); err != nil {
		logger.Log.Warn("failed to start countdown", zap.String("id", id), zap.Error(err))
	}

	logger.Log.Info("question taken", zap.String("id", id), zap.String("tutor", session.Login))
	return q, nil
}

// SubmitAnswer stores the answer of the assigned tutor. Submitting again
// replaces the previous answer.
func (s *questionService) SubmitAnswer(ctx context.Context, id string, session auth.Session, text string, files []storage.File) (*models.Question, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.IsAssigned {
		return nil, apperrors.ErrQuestionNotTaken
	}
	if q.TutorAssigned != session.Login {
		return nil, apperrors.ErrNotAssignedTutor
	}

	text = strings.TrimSpace(text)
	if text == "" && len(files) == 0 {
		return nil, apperrors.ErrEmptyAnswer
	}
	if len(files) > models.MaxAttachments {
		return nil, apperrors.ErrTooManyFiles
	}

	urls, err := storage.UploadAll(ctx, s.buckets.Answers, session.Login, files, s.buckets.UploadTimeout)
	if err != nil {
		s.metrics.UploadFailures.WithLabelValues("answers").Inc()
		return nil, err
	}

	if err := s.questions.SaveAnswer(ctx, id, session.Login, models.Answer{Text: text, FileURLs: urls}, s.now()); err != nil {
		return nil, err
	}

	s.metrics.AnswersSubmitted.Inc()
	logger.Log.Info("answer submitted", zap.String("id", id), zap.String("tutor", session.Login), zap.Int("files", len(urls)))
	return s.questions.GetByID(ctx, id)
}

// RecordReviewAndArchive appends the rating to the assigned tutor and removes
// the question. Both happen or neither does.
func (s *questionService) RecordReviewAndArchive(ctx context.Context, id string, req models.ReviewRequest) error {
	if err := validation.Var("rating", req.Rating, "min=1,max=5"); err != nil {
		return apperrors.ErrInvalidRating
	}

	q, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !q.IsAssigned || q.TutorAssigned == "" {
		return apperrors.ErrQuestionNotTaken
	}
	if req.Tutor != "" && utils.NormalizeUsername(req.Tutor) != q.TutorAssigned {
		return apperrors.Validation("question is assigned to " + q.TutorAssigned)
	}

	tutor, err := s.users.GetUserByLogin(ctx, q.TutorAssigned)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.ErrTutorNotFound
	}
	if err != nil {
		return err
	}

	if err := s.questions.ArchiveWithReview(ctx, id, tutor.ID, req.Rating, s.now()); err != nil {
		return err
	}

	if err := s.countdowns.Stop(ctx, id); err != nil {
		logger.Log.Warn("failed to stop countdown", zap.String("id", id), zap.Error(err))
	}
	s.metrics.ReviewsRecorded.Inc()
	logger.Log.Info("question archived", zap.String("id", id), zap.String("tutor", tutor.Login), zap.Int("rating", req.Rating))
	return nil
}

func (s *questionService) Countdown(ctx context.Context, id string, session auth.Session) (models.Countdown, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return models.Countdown{}, err
	}
	if !q.IsAssigned {
		return models.Countdown{}, apperrors.ErrQuestionNotTaken
	}
	if !session.IsAdmin() && q.TutorAssigned != session.Login {
		return models.Countdown{}, apperrors.ErrNotAssignedTutor
	}
	return s.countdowns.Display(ctx, q)
}

// ResumeCountdowns restarts the timers of every assigned question.
func (s *questionService) ResumeCountdowns(ctx context.Context) error {
	questions, err := s.questions.ListAssigned(ctx)
	if err != nil {
		return err
	}
	s.countdowns.Resume(ctx, questions)
	logger.Log.Info("countdowns resumed", zap.Int("questions", len(questions)))
	return nil
}
