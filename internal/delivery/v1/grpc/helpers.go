package grpc

import (
	"errors"

	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrStudentNotFound):
		return status.Error(codes.NotFound, e.ErrStudentNotFound.Error())
	case errors.Is(err, e.ErrRollNumberRequired):
		return status.Error(codes.InvalidArgument, e.ErrRollNumberRequired.Error())
	case errors.Is(err, e.ErrBadImage):
		return status.Error(codes.InvalidArgument, e.ErrBadImage.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
