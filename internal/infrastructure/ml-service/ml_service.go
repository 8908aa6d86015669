package ml_service

import (
	"context"
	"fmt"
	"time"

	faceproto "github.com/vidyarthi-tech/face-backend/internal/proto"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/jitter"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MLService — клиент внешнего ML-сервиса (детекция лиц, эмбеддинги, модели успеваемости).
// Количество одновременных запросов ограничено семафором: кадры стриминга
// приходят быстрее, чем GPU успевает их обрабатывать.
type MLService struct {
	client     faceproto.MachineLearningServiceClient
	sem        chan struct{}
	maxRetries int
	logger     logger.Logger
}

func NewMLService(client faceproto.MachineLearningServiceClient, maxConcurrent int, maxRetries int, logger logger.Logger) *MLService {
	return &MLService{
		client:     client,
		sem:        make(chan struct{}, maxConcurrent),
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Extract извлекает эмбеддинг лица из кадра.
// При EnforceDetection=true отсутствие лица — жёсткая ошибка e.ErrNoFaceDetected,
// иначе — обычный результат с FaceFound=false.
func (m *MLService) Extract(ctx context.Context, req *usecase.ExtractReq) (*usecase.ExtractRes, error) {
	const op = "MLService.Extract"

	protoReq := &faceproto.ExtractEmbeddingRequest{
		Frame:            toProtoFrame(req),
		EnforceDetection: req.EnforceDetection,
	}

	var res *faceproto.ExtractEmbeddingResponse
	err := m.call(ctx, op, func(ctx context.Context) error {
		var callErr error
		res, callErr = m.client.ExtractEmbedding(ctx, protoReq)
		return callErr
	})
	if err != nil {
		return nil, mapGRPCError(op, err)
	}

	if !res.FaceFound {
		if req.EnforceDetection {
			return nil, e.Wrap(op, e.ErrNoFaceDetected)
		}

		return usecase.NewExtractRes(false, nil, 0, res.ModelVersion), nil
	}

	return usecase.NewExtractRes(true, res.Vector, res.Confidence, res.ModelVersion), nil
}

// Detect выполняет только локализацию лица, без извлечения эмбеддинга.
func (m *MLService) Detect(ctx context.Context, req *usecase.DetectReq) (*usecase.DetectRes, error) {
	const op = "MLService.Detect"

	protoReq := &faceproto.DetectFaceRequest{
		Frame: &faceproto.FramePixels{
			Pixels:   req.Frame.Pix,
			Width:    int32(req.Frame.Width),
			Height:   int32(req.Frame.Height),
			Channels: int32(req.Frame.Channels),
		},
	}

	var res *faceproto.DetectFaceResponse
	err := m.call(ctx, op, func(ctx context.Context) error {
		var callErr error
		res, callErr = m.client.DetectFace(ctx, protoReq)
		return callErr
	})
	if err != nil {
		return nil, mapGRPCError(op, err)
	}

	return usecase.NewDetectRes(res.FaceFound, res.Confidence), nil
}

// PredictExamScore предсказывает экзаменационный балл по закодированной анкете.
func (m *MLService) PredictExamScore(ctx context.Context, features []float64) (float64, error) {
	const op = "MLService.PredictExamScore"

	var res *faceproto.PredictExamScoreResponse
	err := m.call(ctx, op, func(ctx context.Context) error {
		var callErr error
		res, callErr = m.client.PredictExamScore(ctx, &faceproto.PredictRequest{Features: features})
		return callErr
	})
	if err != nil {
		return 0, mapGRPCError(op, err)
	}

	return res.Score, nil
}

// PredictDropout предсказывает риск отчисления.
func (m *MLService) PredictDropout(ctx context.Context, features []float64) (string, float64, error) {
	const op = "MLService.PredictDropout"

	var res *faceproto.PredictDropoutResponse
	err := m.call(ctx, op, func(ctx context.Context) error {
		var callErr error
		res, callErr = m.client.PredictDropout(ctx, &faceproto.PredictRequest{Features: features})
		return callErr
	})
	if err != nil {
		return "", 0, mapGRPCError(op, err)
	}

	return res.Label, res.Probability, nil
}

// call выполняет запрос под семафором с retry и экспоненциальной задержкой
// для временных ошибок.
func (m *MLService) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	const (
		baseJitter = 500 * time.Millisecond
		maxJitter  = 5 * time.Second
	)

	select {
	case m.sem <- struct{}{}:
	case <-ctx.Done():
		return e.Wrap(op, ctx.Err())
	}
	defer func() { <-m.sem }()

	var lastErr error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if !isRetryable(lastErr) || attempt == m.maxRetries-1 {
			return lastErr
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		m.logger.Warnf("%s failed, retrying in %v (attempt %d): %v", op, sleepTime, attempt+1, lastErr)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return lastErr
}

func toProtoFrame(req *usecase.ExtractReq) *faceproto.FramePixels {
	return &faceproto.FramePixels{
		Pixels:   req.Frame.Pix,
		Width:    int32(req.Frame.Width),
		Height:   int32(req.Frame.Height),
		Channels: int32(req.Frame.Channels),
	}
}

// isRetryable распознаёт временные ошибки gRPC.
func isRetryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// mapGRPCError переводит статусы gRPC в ошибки доменной таксономии.
func mapGRPCError(op string, err error) error {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return e.Wrap(op, fmt.Errorf("%w: %s", e.ErrBadImage, status.Convert(err).Message()))
	default:
		return e.Wrap(op, err)
	}
}
