//go:generate goverter gen github.com/vidyarthi-tech/face-backend/internal/repository/redis/converter

package converter

import (
	"github.com/vidyarthi-tech/face-backend/internal/domain"
)

// goverter:converter
// goverter:extend ConvertVector
type RosterConverter interface {
	ToRedisModel(entity *domain.FaceEmbedding) *FaceEmbeddingRedisModel
	ToEntity(model *FaceEmbeddingRedisModel) *domain.FaceEmbedding
	ToArrRedisModel(entities []domain.FaceEmbedding) []FaceEmbeddingRedisModel
	ToArrEntity(models []FaceEmbeddingRedisModel) []domain.FaceEmbedding
}

func ConvertVector(v []float32) []float32 {
	return v
}
