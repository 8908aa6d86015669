package usecase

import (
	"time"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
)

// FACE USECASE

// EnrollReq — запрос на регистрацию эталонного лица студента.
type EnrollReq struct {
	RollNumber string
	Image      FaceImage
}

// FaceImage представляет изображение, загруженное через multipart/form-data.
type FaceImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// EnrollRes — результат успешной регистрации.
type EnrollRes struct {
	RollNumber string
	EventID    string
	ImageKey   string
}

// PREDICT USECASE

// StudentFeaturesReq — анкета студента для моделей успеваемости.
// Категориальные значения валидируются и кодируются на стороне usecase.
type StudentFeaturesReq struct {
	Age                     float64
	Gender                  string // Male | Female
	StudyHoursPerDay        float64
	SocialMediaHours        float64
	PartTimeJob             string // Yes | No
	AttendancePercentage    float64
	SleepHours              float64
	DietQuality             string // Fair | Good | Poor
	ExerciseHours           float64
	ParentalEducationLevel  string // Master | High School | Bachelor | None
	MentalHealth            int
}

type ExamScoreRes struct {
	Score float64 // округлён до 2 знаков
}

type DropoutRes struct {
	Label       string
	Probability float64 // округлена до 4 знаков
}

// INFRASTRUCTURE

// ExtractReq — запрос на извлечение эмбеддинга из кадра.
type ExtractReq struct {
	Frame *domain.Frame
	// EnforceDetection: true — отсутствие лица считается ошибкой (регистрация),
	// false — допустимым результатом (стриминг).
	EnforceDetection bool
}

// ExtractRes — явный результат извлечения: вектор либо «лицо не найдено».
type ExtractRes struct {
	FaceFound    bool
	Vector       []float32
	Confidence   float64
	ModelVersion string
}

type DetectReq struct {
	Frame *domain.Frame
}

type DetectRes struct {
	FaceFound  bool
	Confidence float64
}

// UploadImageReq — запрос на сохранение контрольного снимка регистрации.
type UploadImageReq struct {
	RollNumber string
	Image      FaceImage
}

type WriteRawMessageReq struct {
	RollNumber string
	Payload    []byte
}

// EnrolledPayloadReq — данные события face.enrolled.
type EnrolledPayloadReq struct {
	EventID      string
	RollNumber   string
	ImageKey     string
	ModelVersion string
	VectorSize   int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const FaceEnrolled OutboxEventType = "face.enrolled"

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	RollNumber  string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewEnrollReq(rollNumber string, image FaceImage) *EnrollReq {
	return &EnrollReq{
		RollNumber: rollNumber,
		Image:      image,
	}
}

func NewFaceImage(data []byte, mimeType string, size int64, name string) *FaceImage {
	return &FaceImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewEnrollRes(rollNumber, eventID, imageKey string) *EnrollRes {
	return &EnrollRes{
		RollNumber: rollNumber,
		EventID:    eventID,
		ImageKey:   imageKey,
	}
}

func NewExtractReq(frame *domain.Frame, enforceDetection bool) *ExtractReq {
	return &ExtractReq{
		Frame:            frame,
		EnforceDetection: enforceDetection,
	}
}

func NewExtractRes(faceFound bool, vector []float32, confidence float64, modelVersion string) *ExtractRes {
	return &ExtractRes{
		FaceFound:    faceFound,
		Vector:       vector,
		Confidence:   confidence,
		ModelVersion: modelVersion,
	}
}

func NewDetectReq(frame *domain.Frame) *DetectReq {
	return &DetectReq{Frame: frame}
}

func NewDetectRes(faceFound bool, confidence float64) *DetectRes {
	return &DetectRes{
		FaceFound:  faceFound,
		Confidence: confidence,
	}
}

func NewUploadImageReq(rollNumber string, image FaceImage) *UploadImageReq {
	return &UploadImageReq{
		RollNumber: rollNumber,
		Image:      image,
	}
}

func NewWriteRawMessageReq(rollNumber string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		RollNumber: rollNumber,
		Payload:    payload,
	}
}

func NewEnrolledPayloadReq(eventID, rollNumber, imageKey, modelVersion string, vectorSize int) *EnrolledPayloadReq {
	return &EnrolledPayloadReq{
		EventID:      eventID,
		RollNumber:   rollNumber,
		ImageKey:     imageKey,
		ModelVersion: modelVersion,
		VectorSize:   vectorSize,
	}
}

func NewOutboxEvent(eventID string, rollNumber string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:    eventID,
		EventType:  FaceEnrolled,
		RollNumber: rollNumber,
		Payload:    payload,
		Status:     Pending,
		CreatedAt:  time.Now().UTC(),
	}
}
