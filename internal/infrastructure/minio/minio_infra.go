package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/infrastructure"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет загрузкой и очисткой контрольных снимков в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		wg:          sync.WaitGroup{},
	}
}

// UploadImage загружает контрольный снимок регистрации и возвращает ключ объекта.
// Компенсацию при откате транзакции выполняет вызывающая сторона через CleanupImages.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	const op = "MinioInfrastructure.UploadImage"

	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.Image.MimeType)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.Image.MimeType, req.Image.Name, err))
	}

	objKey := fmt.Sprintf("enrollments/%s/%s.%s", req.RollNumber, imageID, ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, req.Image.Data, &req.Image.Size, &req.Image.MimeType)

	key, err := m.minioRepo.Upload(ctx, newImage)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("upload %s failed: %w", objKey, err))
	}

	return key, nil
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		backoff := time.Second
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				// Добавляем jitter для распределения нагрузки
				jitter := time.Duration(time.Now().UnixNano() % int64(time.Second))
				sleepTime := backoff + jitter

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
				backoff *= 2
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
