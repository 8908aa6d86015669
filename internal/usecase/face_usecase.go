package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/domain"
	"github.com/vidyarthi-tech/face-backend/internal/frame"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// FaceUseCase реализует бизнес-логику регистрации и распознавания лиц.
type FaceUseCase struct {
	studentRepo StudentRepository
	dbPool      transaction.Transactional
	extractor   FaceExtractorInfra
	imagesInfra ImagesInfra
	annIndex    AnnIndex // nil, если ANN-индекс выключен
	cacheRepo   CacheRepository
	outboxRepo  OutboxRepository
	producer    MessageProducer
	resolver    *Resolver
	cfg         *cfg.RecognitionCfg
	logger      logger.Logger
}

func NewFaceUC(
	studentRepo StudentRepository,
	dbPool transaction.Transactional,
	extractor FaceExtractorInfra,
	imagesInfra ImagesInfra,
	annIndex AnnIndex,
	cacheRepo CacheRepository,
	outboxRepo OutboxRepository,
	producer MessageProducer,
	resolver *Resolver,
	cfg *cfg.RecognitionCfg,
	logger logger.Logger,
) *FaceUseCase {
	return &FaceUseCase{
		studentRepo: studentRepo,
		dbPool:      dbPool,
		extractor:   extractor,
		imagesInfra: imagesInfra,
		annIndex:    annIndex,
		cacheRepo:   cacheRepo,
		outboxRepo:  outboxRepo,
		producer:    producer,
		resolver:    resolver,
		cfg:         cfg,
		logger:      logger,
	}
}

// Enroll регистрирует эталонный эмбеддинг лица существующего студента.
// Эмбеддинг и outbox-событие фиксируются в одной транзакции; контрольный
// снимок в MinIO компенсируется при откате. Повторная регистрация
// перезаписывает эмбеддинг и не создаёт новых студентов.
func (f *FaceUseCase) Enroll(ctx context.Context, req *EnrollReq) (*EnrollRes, error) {
	const op = "FaceUseCase.Enroll"

	var err error
	if err = f.validateEnroll(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Декодирование и извлечение до открытия транзакции: битое изображение
	// или кадр без лица не должны трогать БД вовсе.
	fr, err := frame.DecodeBytes(req.Image.Data)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	extracted, err := f.extractor.Extract(ctx, NewExtractReq(fr, true))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	switch {
	case !extracted.FaceFound:
		return nil, e.Wrap(op, e.ErrNoFaceDetected)
	case len(extracted.Vector) == 0:
		return nil, e.Wrap(op, e.ErrEmptyEmbedding)
	case len(extracted.Vector) != f.cfg.VectorSize:
		return nil, e.Wrap(op, e.ErrVectorDimensionMismatch)
	}

	var (
		imageKey string
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, f.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного снимка
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded {
				f.logger.Warnf(
					"Cleaning up orphaned enrollment image after transaction failure. roll_number: %s, error: %v",
					req.RollNumber,
					e.Wrap(op, err),
				)

				f.imagesInfra.CleanupImages([]string{imageKey})
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Перезапись эмбеддинга существующего студента
	if err = f.studentRepo.UpsertEmbedding(ctx, req.RollNumber, extracted.Vector); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Контрольный снимок регистрации в MinIO
	imageKey, err = f.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.RollNumber, req.Image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	uploaded = true

	// Outbox-событие в той же транзакции, что и эмбеддинг
	eventID := uuid.NewString()
	payload, err := f.producer.EnrolledPayload(NewEnrolledPayloadReq(
		eventID, req.RollNumber, imageKey, extracted.ModelVersion, f.cfg.VectorSize,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = f.outboxRepo.Create(ctx, NewOutboxEvent(eventID, req.RollNumber, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Инвалидация кэша ростера до следующего чтения
	if cacheErr := f.cacheRepo.DeleteRoster(ctx); cacheErr != nil {
		f.logger.Warnf("Failed to invalidate roster cache: %v", e.Wrap(op, cacheErr))
	}

	// ANN-индекс — перестраиваемое зеркало: ошибка записи не откатывает регистрацию
	if f.annIndex != nil {
		if indexErr := f.annIndex.Upsert(ctx, domain.NewFaceEmbedding(req.RollNumber, extracted.Vector), extracted.ModelVersion); indexErr != nil {
			f.logger.Warnf("Failed to mirror embedding to ANN index: %v", e.Wrap(op, indexErr))
		}
	}

	return NewEnrollRes(req.RollNumber, eventID, imageKey), nil
}

// RecognizeFrame обрабатывает один кадр стриминговой сессии распознавания.
// Всегда возвращает пригодный результат: любые ошибки кадра деградируют
// до сентинела, а error нужен только для логирования на вызывающей стороне.
func (f *FaceUseCase) RecognizeFrame(ctx context.Context, payload string) (*domain.RecognitionResult, error) {
	fr, err := frame.DecodeBase64(payload)
	if err != nil {
		return domain.NewNoFaceResult(), nil
	}

	return f.recognize(ctx, fr)
}

// RecognizeImage распознаёт одиночное изображение (gRPC-путь для смежных сервисов).
func (f *FaceUseCase) RecognizeImage(ctx context.Context, data []byte) (*domain.RecognitionResult, error) {
	fr, err := frame.DecodeBytes(data)
	if err != nil {
		return domain.NewNoFaceResult(), nil
	}

	return f.recognize(ctx, fr)
}

func (f *FaceUseCase) recognize(ctx context.Context, fr *domain.Frame) (*domain.RecognitionResult, error) {
	const op = "FaceUseCase.recognize"

	// Стриминг работает в мягком режиме: кадр без лица — ожидаемое состояние
	extracted, err := f.extractor.Extract(ctx, NewExtractReq(fr, false))
	if err != nil {
		return domain.NewNoFaceResult(), e.Wrap(op, err)
	}

	if !extracted.FaceFound {
		return domain.NewNoFaceResult(), nil
	}

	if f.annIndex != nil {
		rollNumber, distance, found, err := f.annIndex.Nearest(ctx, extracted.Vector)
		if err != nil {
			return domain.NewUnknownResult(0), e.Wrap(op, err)
		}

		return f.resolver.FromNearest(rollNumber, distance, found), nil
	}

	roster, err := f.getRoster(ctx)
	if err != nil {
		return domain.NewUnknownResult(0), e.Wrap(op, err)
	}

	result, err := f.resolver.Resolve(extracted.Vector, roster)
	if err != nil {
		return domain.NewUnknownResult(0), e.Wrap(op, err)
	}

	return result, nil
}

// AnalyzeFrame обрабатывает один кадр сессии автозахвата: только локализация
// лица, хранилище не затрагивается.
func (f *FaceUseCase) AnalyzeFrame(ctx context.Context, payload string) (*domain.Detection, error) {
	const op = "FaceUseCase.AnalyzeFrame"

	fr, err := frame.DecodeBase64(payload)
	if err != nil {
		return domain.NewDetection(false, 0), nil
	}

	detected, err := f.extractor.Detect(ctx, NewDetectReq(fr))
	if err != nil {
		return domain.NewDetection(false, 0), e.Wrap(op, err)
	}

	if !detected.FaceFound || detected.Confidence <= 0 {
		return domain.NewDetection(false, 0), nil
	}

	return domain.NewDetection(true, roundConfidence(detected.Confidence)), nil
}

// GetEnrollmentStatus сообщает, зарегистрирован ли эталонный эмбеддинг студента.
func (f *FaceUseCase) GetEnrollmentStatus(ctx context.Context, rollNumber string) (bool, error) {
	const op = "FaceUseCase.GetEnrollmentStatus"

	if strings.TrimSpace(rollNumber) == "" {
		return false, e.Wrap(op, e.ErrRollNumberRequired)
	}

	enrolled, err := f.studentRepo.GetStatus(ctx, rollNumber)
	if err != nil {
		return false, e.Wrap(op, err)
	}

	return enrolled, nil
}

// getRoster возвращает список эмбеддингов: кэш, при промахе — БД
// с фоновым прогревом кэша.
func (f *FaceUseCase) getRoster(ctx context.Context) ([]domain.FaceEmbedding, error) {
	const op = "FaceUseCase.getRoster"

	roster, hit, err := f.cacheRepo.GetRoster(ctx)
	if err != nil {
		f.logger.Warnf("Roster cache read failed: %v", e.Wrap(op, err))
	} else if hit {
		return roster, nil
	}

	roster, err = f.studentRepo.GetAllWithEmbedding(ctx)
	if err != nil {
		return nil, err
	}

	// Фоновый прогрев кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := f.cacheRepo.SetRoster(bgCtx, roster); err != nil {
			f.logger.Warnf("Failed to cache roster in background: %v", e.Wrap(op, err))
		}
	}()

	return roster, nil
}

// validateEnroll проверяет корректность входных данных запроса на регистрацию.
func (f *FaceUseCase) validateEnroll(req *EnrollReq) error {
	if strings.TrimSpace(req.RollNumber) == "" {
		return e.ErrRollNumberRequired
	}

	if len(req.Image.Data) == 0 {
		return e.ErrNoImage
	}

	return nil
}

// roundConfidence округляет уверенность детектора до 4 знаков,
// как того требует протокол канала analyze.
func roundConfidence(confidence float64) float64 {
	return decimal.NewFromFloat(confidence).Round(4).InexactFloat64()
}
