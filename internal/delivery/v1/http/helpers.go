package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStudentNotFound):
		return http.StatusNotFound, e.ErrStudentNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrRollNumberRequired):
		return http.StatusBadRequest, e.ErrRollNumberRequired.Error()
	case errors.Is(err, e.ErrNoImage):
		return http.StatusBadRequest, e.ErrNoImage.Error()
	case errors.Is(err, e.ErrBadImage):
		return http.StatusBadRequest, e.ErrBadImage.Error()
	case errors.Is(err, e.ErrNoFaceDetected):
		return http.StatusBadRequest, e.ErrNoFaceDetected.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrInvalidFeature):
		return http.StatusBadRequest, e.ErrInvalidFeature.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseEnrollForm извлекает roll_number и файл изображения из multipart-формы.
func parseEnrollForm(r *http.Request) (*usecase.EnrollReq, error) {
	rollNumber := r.FormValue("roll_number")
	if strings.TrimSpace(rollNumber) == "" {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrRollNumberRequired)
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrNoImage)
	}

	const maxFileSize = 15 << 20
	data, mimeType, err := readFile(files[0], maxFileSize)
	if err != nil {
		return nil, err
	}

	image := usecase.NewFaceImage(data, mimeType, int64(len(data)), files[0].Filename)

	return usecase.NewEnrollReq(rollNumber, *image), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
