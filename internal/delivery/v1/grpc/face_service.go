package grpc

import (
	"context"

	"github.com/vidyarthi-tech/face-backend/internal/proto"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// FaceService отдаёт распознавание и статус регистрации смежным сервисам платформы.
type FaceService struct {
	proto.UnimplementedFaceRecognitionServiceServer
	faceUC usecase.FaceUC
	logger logger.Logger
}

func NewFaceService(faceUC usecase.FaceUC, logger logger.Logger) *FaceService {
	return &FaceService{faceUC: faceUC, logger: logger}
}

func (g *FaceService) RecognizeImage(ctx context.Context, req *proto.RecognizeImageRequest) (*proto.RecognizeImageResponse, error) {
	const op = "grpc.RecognizeImage"

	result, err := g.faceUC.RecognizeImage(ctx, req.ImageData)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.RecognizeImageResponse{
		Result:     result.String(),
		RollNumber: result.RollNumber,
		Distance:   result.Distance,
	}, nil
}

func (g *FaceService) GetEnrollmentStatus(ctx context.Context, req *proto.GetEnrollmentStatusRequest) (*proto.GetEnrollmentStatusResponse, error) {
	const op = "grpc.GetEnrollmentStatus"

	enrolled, err := g.faceUC.GetEnrollmentStatus(ctx, req.RollNumber)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.GetEnrollmentStatusResponse{
		Enrolled: enrolled,
	}, nil
}
