package usecase

import (
	"context"

	"github.com/vidyarthi-tech/face-backend/internal/domain"
)

type FaceUC interface {
	Enroll(ctx context.Context, req *EnrollReq) (*EnrollRes, error)
	RecognizeFrame(ctx context.Context, payload string) (*domain.RecognitionResult, error)
	AnalyzeFrame(ctx context.Context, payload string) (*domain.Detection, error)
	RecognizeImage(ctx context.Context, data []byte) (*domain.RecognitionResult, error)
	GetEnrollmentStatus(ctx context.Context, rollNumber string) (bool, error)
}

type PredictUC interface {
	PredictExamScore(ctx context.Context, req *StudentFeaturesReq) (*ExamScoreRes, error)
	PredictDropout(ctx context.Context, req *StudentFeaturesReq) (*DropoutRes, error)
}
