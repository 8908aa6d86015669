package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/repository/pgdb/converter"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/tr"
)

// StudentRepo реализует репозиторий студентов поверх PostgreSQL.
type StudentRepo struct {
	pool *pgxpool.Pool
	conv converter.StudentConverter
}

func NewStudentRepo(pool *pgxpool.Pool, conv converter.StudentConverter) *StudentRepo {
	return &StudentRepo{
		pool: pool,
		conv: conv,
	}
}

// GetAllWithEmbedding возвращает пары (roll_number, encoding) всех студентов
// с зарегистрированным эмбеддингом. Порядок выдачи не определён.
func (s *StudentRepo) GetAllWithEmbedding(ctx context.Context) ([]domain.FaceEmbedding, error) {
	query := `
		SELECT roll_number, encoding
		FROM students
		WHERE encoding IS NOT NULL
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.EmbeddingModel
	for rows.Next() {
		var model converter.EmbeddingModel
		if err := rows.Scan(&model.RollNumber, &model.Encoding); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToArrEmbedding(models), nil
}

// UpsertEmbedding перезаписывает эмбеддинг существующего студента.
// Студентов заводит внешняя система, поэтому незнакомый roll_number — это
// e.ErrStudentNotFound, а не повод создать запись.
func (s *StudentRepo) UpsertEmbedding(ctx context.Context, rollNumber string, vector []float32) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE students
		SET encoding = $2, updated_at = NOW()
		WHERE roll_number = $1
	`

	result, err := tx.Exec(ctx, query, rollNumber, vector)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrStudentNotFound)
	}

	return nil
}

// GetStatus сообщает, зарегистрирован ли эмбеддинг студента.
func (s *StudentRepo) GetStatus(ctx context.Context, rollNumber string) (bool, error) {
	query := `
		SELECT encoding IS NOT NULL
		FROM students
		WHERE roll_number = $1
	`

	var enrolled bool
	err := s.pool.QueryRow(ctx, query, rollNumber).Scan(&enrolled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, e.Wrap(whereami.WhereAmI(), e.ErrStudentNotFound)
		}

		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return enrolled, nil
}
