//go:generate goverter gen github.com/vidyarthi-tech/face-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
)

// StudentConverter преобразует сущности Student между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertVector
type StudentConverter interface {
	ToModel(entity *domain.Student) *StudentModel
	ToEntity(model *StudentModel) *domain.Student
	ToEmbedding(model *EmbeddingModel) *domain.FaceEmbedding
	ToArrEmbedding(models []*EmbeddingModel) []domain.FaceEmbedding
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertVector(v []float32) []float32 {
	return v
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
