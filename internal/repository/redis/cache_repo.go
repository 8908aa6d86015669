package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/repository/redis/converter"
	"github.com/vidyarthi-tech/face-backend/pkg/clients"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// rosterKey — единственный ключ кэша: ростер кэшируется целиком,
// потому что каждый кадр распознавания сканирует его полностью.
const rosterKey = "face:roster"

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.RosterConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.RosterConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetRoster возвращает закэшированный ростер эмбеддингов.
// Второй результат — попадание; битый кэш трактуется как промах и удаляется.
func (r *CacheRepo) GetRoster(ctx context.Context) ([]domain.FaceEmbedding, bool, error) {
	data, err := r.client.Client.Get(ctx, rosterKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil // cache miss
		}

		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.FaceEmbeddingRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Roster cache unmarshal failed, dropping key: %v", e.Wrap(whereami.WhereAmI(), err))
		if delErr := r.client.Client.Del(context.Background(), rosterKey).Err(); delErr != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}

		return nil, false, nil // cache miss
	}

	return r.conv.ToArrEntity(models), true, nil
}

// SetRoster кэширует ростер целиком с TTL из конфигурации.
func (r *CacheRepo) SetRoster(ctx context.Context, roster []domain.FaceEmbedding) error {
	models := r.conv.ToArrRedisModel(roster)

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, rosterKey, data, r.cfg.RosterTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteRoster инвалидирует кэш ростера после изменения эмбеддингов.
func (r *CacheRepo) DeleteRoster(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, rosterKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
