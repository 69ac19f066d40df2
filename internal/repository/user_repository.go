package repository

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	EnsureAdmin(ctx context.Context, login, passwordHash string) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	ListTutors(ctx context.Context) ([]models.TutorSummary, error)
	GetReviews(ctx context.Context, userID int64) ([]models.Review, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (login, email, date_of_birth, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (login) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, user.Login, user.Email, user.DateOfBirth, user.Password, user.Role)
	if err != nil {
		return apperrors.Upstream("create user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Upstream("create user", err)
	}
	if n == 0 {
		return apperrors.ErrUserAlreadyExists
	}
	return nil
}

// EnsureAdmin creates the admin account or resets its password and role.
func (r *userRepo) EnsureAdmin(ctx context.Context, login, passwordHash string) error {
	query := `INSERT INTO users (login, password_hash, role)
			  VALUES ($1, $2, 'admin')
			  ON CONFLICT (login) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = 'admin'`
	if _, err := r.db.ExecContext(ctx, query, login, passwordHash); err != nil {
		return apperrors.Upstream("ensure admin", err)
	}
	return nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT id, login, email, date_of_birth, password_hash, role, balance, created_at FROM users WHERE login=$1`
	row := r.db.QueryRowContext(ctx, query, login)

	var (
		user models.User
		dob  sql.NullTime
	)
	err := row.Scan(&user.ID, &user.Login, &user.Email, &dob, &user.Password, &user.Role, &user.Balance, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Upstream("get user", err)
	}
	if dob.Valid {
		user.DateOfBirth = &dob.Time
	}
	return &user, nil
}

func (r *userRepo) ListTutors(ctx context.Context) ([]models.TutorSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT login, balance FROM users WHERE role = 'tutor' ORDER BY login`)
	if err != nil {
		return nil, apperrors.Upstream("list tutors", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	tutors := make([]models.TutorSummary, 0)
	for rows.Next() {
		var t models.TutorSummary
		if err := rows.Scan(&t.Username, &t.Balance); err != nil {
			return nil, apperrors.Upstream("list tutors", err)
		}
		tutors = append(tutors, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream("list tutors", err)
	}
	return tutors, nil
}

func (r *userRepo) GetReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT rating, created_at FROM reviews WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, apperrors.Upstream("get reviews", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.Rating, &rv.Timestamp); err != nil {
			return nil, apperrors.Upstream("get reviews", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream("get reviews", err)
	}
	return reviews, nil
}
