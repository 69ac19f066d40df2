package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/metrics"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/rating"
	"github.com/a2sh3r/mindflex/internal/repository"
	"github.com/a2sh3r/mindflex/internal/utils"
	"github.com/a2sh3r/mindflex/internal/validation"
)

type LedgerService interface {
	CreditBalance(ctx context.Context, tutor string, amount decimal.Decimal) (decimal.Decimal, error)
	RequestWithdrawal(ctx context.Context, session auth.Session, phone string) (*models.Withdrawal, error)
	ClearWithdrawal(ctx context.Context, id string) error
	ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	ListTutorWithdrawals(ctx context.Context, session auth.Session) ([]models.Withdrawal, error)
	ListTutors(ctx context.Context) ([]models.TutorSummary, error)
	Profile(ctx context.Context, tutor string) (*models.TutorProfile, error)
}

type ledgerService struct {
	ledger  repository.LedgerRepository
	users   repository.UserRepository
	rate    decimal.Decimal
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewLedgerService(ledger repository.LedgerRepository, users repository.UserRepository, rate decimal.Decimal, m *metrics.Metrics) LedgerService {
	return &ledgerService{ledger: ledger, users: users, rate: rate, metrics: m, now: time.Now}
}

// ParseAmount reads a positive money amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	return amount, nil
}

func (s *ledgerService) tutor(ctx context.Context, login string) (*models.User, error) {
	user, err := s.users.GetUserByLogin(ctx, utils.NormalizeUsername(login))
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrTutorNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleTutor {
		return nil, apperrors.ErrTutorNotFound
	}
	return user, nil
}

func (s *ledgerService) CreditBalance(ctx context.Context, tutor string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}

	user, err := s.tutor(ctx, tutor)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := s.ledger.Credit(ctx, user.ID, amount, s.now())
	if err != nil {
		return decimal.Zero, err
	}

	s.metrics.BalanceCredited.Add(amount.InexactFloat64())
	logger.Log.Info("balance credited",
		zap.String("tutor", user.Login),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()))
	return balance, nil
}

// RequestWithdrawal moves the whole balance of the caller into a pending
// payout request.
func (s *ledgerService) RequestWithdrawal(ctx context.Context, session auth.Session, phone string) (*models.Withdrawal, error) {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if err := validation.Struct(models.WithdrawalRequest{PhoneNumber: phone}); err != nil {
		return nil, err
	}

	w := &models.Withdrawal{
		ID:          uuid.NewString(),
		UserID:      session.UserID,
		Username:    session.Login,
		Rate:        s.rate,
		PhoneNumber: phone,
		CreatedAt:   s.now(),
	}
	if err := s.ledger.Withdraw(ctx, w); err != nil {
		return nil, err
	}

	s.metrics.Withdrawals.WithLabelValues(string(models.WithdrawalPending)).Inc()
	logger.Log.Info("withdrawal requested",
		zap.String("tutor", w.Username),
		zap.String("id", w.ID),
		zap.String("amount", w.Amount.StringFixed(2)))
	return w, nil
}

func (s *ledgerService) ClearWithdrawal(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrWithdrawalNotFound
	}
	if err := s.ledger.ClearWithdrawal(ctx, id, s.now()); err != nil {
		return err
	}
	s.metrics.Withdrawals.WithLabelValues(string(models.WithdrawalCleared)).Inc()
	return nil
}

func (s *ledgerService) ListWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return s.ledger.GetWithdrawals(ctx)
}

func (s *ledgerService) ListTutorWithdrawals(ctx context.Context, session auth.Session) ([]models.Withdrawal, error) {
	return s.ledger.GetUserWithdrawals(ctx, session.UserID)
}

func (s *ledgerService) ListTutors(ctx context.Context) ([]models.TutorSummary, error) {
	return s.users.ListTutors(ctx)
}

func (s *ledgerService) Profile(ctx context.Context, tutor string) (*models.TutorProfile, error) {
	user, err := s.tutor(ctx, tutor)
	if err != nil {
		return nil, err
	}
	reviews, err := s.users.GetReviews(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	avg := rating.AverageRating(reviews)
	return &models.TutorProfile{
		Username:        user.Login,
		Email:           user.Email,
		Balance:         user.Balance,
		ConvertedAmount: models.ConvertedAmount(user.Balance, s.rate),
		Reviews:         reviews,
		AverageRating:   avg,
		SuccessRate:     rating.SuccessRate(avg),
		Stars:           rating.Stars(avg),
	}, nil
}
