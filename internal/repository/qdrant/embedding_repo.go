package qdrant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

// EmbeddingRepo — ANN-индекс эмбеддингов лиц поверх Qdrant.
// Коллекция создаётся с евклидовой метрикой, поэтому score точки
// напрямую сравним с порогом резолвера.
type EmbeddingRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewEmbeddingRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *EmbeddingRepo {
	return &EmbeddingRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет или обновляет эмбеддинг студента в коллекции.
// ID точки детерминированно выводится из roll_number, поэтому повторная
// регистрация перезаписывает точку, а не плодит дубликаты.
func (q *EmbeddingRepo) Upsert(ctx context.Context, embedding *domain.FaceEmbedding, modelVersion string) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(pointID(embedding.RollNumber)),
		Vectors: qdrant.NewVectors(embedding.Vector...),
		Payload: qdrant.NewValueMap(domain.NewIndexPayload(embedding.RollNumber, modelVersion, time.Now().Unix())),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Nearest возвращает ближайшего к probe кандидата; found=false при пустом индексе.
func (q *EmbeddingRepo) Nearest(ctx context.Context, probe []float32) (string, float64, bool, error) {
	limit := uint64(1)

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Query:          qdrant.NewQuery(probe...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return "", 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(points) == 0 {
		return "", 0, false, nil
	}

	nearest := points[0]
	rollNumber := nearest.Payload["roll_number"].GetStringValue()
	if rollNumber == "" {
		return "", 0, false, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}

	return rollNumber, float64(nearest.Score), true, nil
}

// pointID — UUIDv5 от roll_number в пространстве имён URL.
func pointID(rollNumber string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("face-backend/"+rollNumber)).String()
}
