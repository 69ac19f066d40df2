package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type LedgerRepository interface {
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, at time.Time) (decimal.Decimal, error)
	Withdraw(ctx context.Context, w *models.Withdrawal) error
	GetWithdrawals(ctx context.Context) ([]models.Withdrawal, error)
	GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	ClearWithdrawal(ctx context.Context, id string, at time.Time) error
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

// Credit increments the balance in place and records the credit in the same
// transaction. It returns the new balance.
func (r *ledgerRepo) Credit(ctx context.Context, userID int64, amount decimal.Decimal, at time.Time) (balance decimal.Decimal, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, apperrors.Upstream("begin credit", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	err = tx.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2 AND role = 'tutor'
		RETURNING balance
	`, amount, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrTutorNotFound
		return decimal.Zero, err
	}
	if err != nil {
		return decimal.Zero, apperrors.Upstream("credit balance", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO credits (user_id, amount, created_at)
		VALUES ($1, $2, $3)
	`, userID, amount, at)
	if err != nil {
		return decimal.Zero, apperrors.Upstream("record credit", err)
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, apperrors.Upstream("commit credit", err)
	}
	return balance, nil
}

// Withdraw locks the tutor row, zeroes the whole balance and records a
// pending request for it. w.Rate must be set; AmountUSD and Amount are filled
// from the locked balance.
func (r *ledgerRepo) Withdraw(ctx context.Context, w *models.Withdrawal) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Upstream("begin withdrawal", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, w.UserID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrTutorNotFound
		return err
	}
	if err != nil {
		return apperrors.Upstream("lock balance", err)
	}
	if !balance.IsPositive() {
		err = apperrors.ErrZeroBalance
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE users SET balance = 0 WHERE id = $1`, w.UserID)
	if err != nil {
		return apperrors.Upstream("zero balance", err)
	}

	w.AmountUSD = balance
	w.Amount = models.ConvertedAmount(balance, w.Rate)
	w.Status = models.WithdrawalPending

	_, err = tx.ExecContext(ctx, `
		INSERT INTO withdrawal_requests (id, user_id, username, amount_usd, amount, rate, phone_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, w.ID, w.UserID, w.Username, w.AmountUSD, w.Amount, w.Rate, w.PhoneNumber, w.Status, w.CreatedAt)
	if err != nil {
		return apperrors.Upstream("record withdrawal", err)
	}

	if err = tx.Commit(); err != nil {
		return apperrors.Upstream("commit withdrawal", err)
	}
	return nil
}

const withdrawalColumns = `id, user_id, username, amount_usd, amount, rate, phone_number, status, created_at, cleared_at`

func (r *ledgerRepo) GetWithdrawals(ctx context.Context) ([]models.Withdrawal, error) {
	return r.listWithdrawals(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests ORDER BY created_at DESC`)
}

func (r *ledgerRepo) GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return r.listWithdrawals(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *ledgerRepo) listWithdrawals(ctx context.Context, query string, args ...interface{}) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, apperrors.Upstream("list withdrawals", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	withdrawals := make([]models.Withdrawal, 0)
	for rows.Next() {
		var (
			w         models.Withdrawal
			clearedAt sql.NullTime
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.Username, &w.AmountUSD, &w.Amount, &w.Rate,
			&w.PhoneNumber, &w.Status, &w.CreatedAt, &clearedAt); err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, apperrors.Upstream("list withdrawals", err)
		}
		if clearedAt.Valid {
			w.ClearedAt = &clearedAt.Time
		}
		withdrawals = append(withdrawals, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream("list withdrawals", err)
	}
	return withdrawals, nil
}

// ClearWithdrawal marks the request cleared. Clearing twice keeps the first
// cleared_at.
func (r *ledgerRepo) ClearWithdrawal(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_requests
		SET status = 'cleared', cleared_at = COALESCE(cleared_at, $1)
		WHERE id = $2
	`, at, id)
	if err != nil {
		return apperrors.Upstream("clear withdrawal", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Upstream("clear withdrawal", err)
	}
	if n == 0 {
		return apperrors.ErrWithdrawalNotFound
	}
	return nil
}
