package usecase

import "context"

// FaceExtractorInfra — граница внешнего ML-сервиса извлечения эмбеддингов.
// Extract возвращает явный результат (вектор | лицо не найдено), а не исключение:
// при EnforceDetection=false отсутствие лица — это FaceFound=false, не ошибка.
// При EnforceDetection=true отсутствие лица — жёсткая e.ErrNoFaceDetected.
type FaceExtractorInfra interface {
	Extract(ctx context.Context, req *ExtractReq) (*ExtractRes, error)
	Detect(ctx context.Context, req *DetectReq) (*DetectRes, error)
}

// PredictInfra — граница моделей предсказания успеваемости.
type PredictInfra interface {
	PredictExamScore(ctx context.Context, features []float64) (float64, error)
	PredictDropout(ctx context.Context, features []float64) (label string, probability float64, err error)
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
	// EnrolledPayload сериализует событие face.enrolled для outbox.
	EnrolledPayload(req *EnrolledPayloadReq) ([]byte, error)
}
