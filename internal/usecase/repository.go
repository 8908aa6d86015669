package usecase

import (
	"context"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
)

type StudentRepository interface {
	// GetAllWithEmbedding возвращает всех студентов с непустым эмбеддингом.
	// Порядок не определён; хранилище не навязывает метрику.
	GetAllWithEmbedding(ctx context.Context) ([]domain.FaceEmbedding, error)
	// UpsertEmbedding перезаписывает эмбеддинг существующего студента.
	// Возвращает e.ErrStudentNotFound, если roll number не заведён в реестре.
	UpsertEmbedding(ctx context.Context, rollNumber string, vector []float32) error
	GetStatus(ctx context.Context, rollNumber string) (bool, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	// GetRoster возвращает кэшированный список эмбеддингов; второй результат — попадание.
	GetRoster(ctx context.Context) ([]domain.FaceEmbedding, bool, error)
	SetRoster(ctx context.Context, roster []domain.FaceEmbedding) error
	DeleteRoster(ctx context.Context) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// AnnIndex — приближённый поиск ближайшего соседа за пределами полного перебора.
// Контракт резолвера не меняется: индекс обязан считать дистанцию в той же L2-метрике.
type AnnIndex interface {
	Upsert(ctx context.Context, embedding *domain.FaceEmbedding, modelVersion string) error
	// Nearest возвращает ближайшего кандидата; found=false при пустом индексе.
	Nearest(ctx context.Context, probe []float32) (rollNumber string, distance float64, found bool, err error)
}
