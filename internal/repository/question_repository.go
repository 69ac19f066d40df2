package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type QuestionRepository interface {
	Create(ctx context.Context, q *models.Question) error
	GetByID(ctx context.Context, id string) (*models.Question, error)
	ListOpen(ctx context.Context, subjects []string) ([]models.Question, error)
	ListAll(ctx context.Context) ([]models.Question, error)
	ListByTutor(ctx context.Context, tutor string) ([]models.Question, error)
	ListAssigned(ctx context.Context) ([]models.Question, error)
	Assign(ctx context.Context, id, tutor string, at time.Time) error
	SaveAnswer(ctx context.Context, id, tutor string, answer models.Answer, at time.Time) error
	ArchiveWithReview(ctx context.Context, id string, tutorID int64, rating int, at time.Time) error
}

type questionRepo struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) QuestionRepository {
	return &questionRepo{db: db}
}

const questionColumns = `id, title, subject, budget, delivery_time, description, file_urls,
	is_assigned, tutor_assigned, assigned_at, is_answered, answer_text, answer_file_urls, answered_at, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var (
		q          models.Question
		tutor      sql.NullString
		answerText sql.NullString
		assignedAt sql.NullTime
		answeredAt sql.NullTime
	)
	err := row.Scan(
		&q.ID, &q.Title, &q.Subject, &q.Budget, &q.DeliveryTime, &q.Description, pq.Array(&q.FileURLs),
		&q.IsAssigned, &tutor, &assignedAt, &q.IsAnswered, &answerText, pq.Array(&q.AnswerFileURLs), &answeredAt, &q.CreatedAt,
	)
	if err != nil {
		return models.Question{}, err
	}
	q.TutorAssigned = tutor.String
	q.AnswerText = answerText.String
	if assignedAt.Valid {
		q.AssignedAt = &assignedAt.Time
	}
	if answeredAt.Valid {
		q.AnsweredAt = &answeredAt.Time
	}
	return q, nil
}

func (r *questionRepo) Create(ctx context.Context, q *models.Question) error {
	query := `INSERT INTO questions (id, title, subject, budget, delivery_time, description, file_urls, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID, q.Title, q.Subject, q.Budget, q.DeliveryTime, q.Description, pq.Array(nonNil(q.FileURLs)), q.CreatedAt)
	if err != nil {
		return apperrors.Upstream("insert question", err)
	}
	return nil
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrQuestionNotFound
	}
	if err != nil {
		return nil, apperrors.Upstream("get question", err)
	}
	return &q, nil
}

func (r *questionRepo) ListOpen(ctx context.Context, subjects []string) ([]models.Question, error) {
	if len(subjects) == 0 {
		return r.list(ctx, "list open questions",
			`SELECT `+questionColumns+` FROM questions WHERE is_assigned = FALSE ORDER BY created_at DESC`)
	}
	return r.list(ctx, "list open questions",
		`SELECT `+questionColumns+` FROM questions WHERE is_assigned = FALSE AND subject = ANY($1) ORDER BY created_at DESC`,
		pq.Array(subjects))
}

func (r *questionRepo) ListAll(ctx context.Context) ([]models.Question, error) {
	return r.list(ctx, "list questions",
		`SELECT `+questionColumns+` FROM questions ORDER BY created_at DESC`)
}

func (r *questionRepo) ListByTutor(ctx context.Context, tutor string) ([]models.Question, error) {
	return r.list(ctx, "list tutor questions",
		`SELECT `+questionColumns+` FROM questions WHERE tutor_assigned = $1 ORDER BY assigned_at DESC`, tutor)
}

func (r *questionRepo) ListAssigned(ctx context.Context) ([]models.Question, error) {
	return r.list(ctx, "list assigned questions",
		`SELECT `+questionColumns+` FROM questions WHERE is_assigned = TRUE ORDER BY assigned_at`)
}

func (r *questionRepo) list(ctx context.Context, op, query string, args ...interface{}) ([]models.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query questions", zap.String("op", op), zap.Error(err))
		return nil, apperrors.Upstream(op, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	questions := make([]models.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			logger.Log.Error("failed to scan question row", zap.Error(err))
			return nil, apperrors.Upstream(op, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Upstream(op, err)
	}
	return questions, nil
}

// Assign binds tutor to the question only while it is still unassigned. The
// WHERE clause makes the check and the write one statement, so of several
// concurrent callers exactly one sees a row affected.
func (r *questionRepo) Assign(ctx context.Context, id, tutor string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE questions
		SET is_assigned = TRUE, tutor_assigned = $1, assigned_at = $2
		WHERE id = $3 AND is_assigned = FALSE
	`, tutor, at, id)
	if err != nil {
		return apperrors.Upstream("assign question", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Upstream("assign question", err)
	}
	if n == 1 {
		return nil
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrQuestionNotFound
	}
	return apperrors.ErrQuestionAlreadyAssigned
}

func (r *questionRepo) SaveAnswer(ctx context.Context, id, tutor string, answer models.Answer, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE questions
		SET is_answered = TRUE, answer_text = $1, answer_file_urls = $2, answered_at = $3
		WHERE id = $4 AND is_assigned = TRUE AND tutor_assigned = $5
	`, answer.Text, pq.Array(nonNil(answer.FileURLs)), at, id, tutor)
	if err != nil {
		return apperrors.Upstream("save answer", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Upstream("save answer", err)
	}
	if n == 0 {
		return apperrors.ErrNotAssignedTutor
	}
	return nil
}

// ArchiveWithReview appends the review and then deletes the question inside
// one transaction. Nothing is kept if either statement fails.
func (r *questionRepo) ArchiveWithReview(ctx context.Context, id string, tutorID int64, rating int, at time.Time) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Upstream("begin archive", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reviews (user_id, question_id, rating, created_at)
		VALUES ($1, $2, $3, $4)
	`, tutorID, id, rating, at)
	if err != nil {
		return apperrors.Upstream("append review", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return apperrors.Upstream("delete question", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Upstream("delete question", err)
	}
	if n == 0 {
		err = apperrors.ErrQuestionNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return apperrors.Upstream("commit archive", err)
	}
	return nil
}

func (r *questionRepo) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM questions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, apperrors.Upstream("check question", err)
	}
	return exists, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
