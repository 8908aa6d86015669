package e

import "fmt"

var (
	// Внутренние ошибки
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")

	// Ошибки распознавания
	ErrBadImage                = fmt.Errorf("could not decode image")
	ErrNoFaceDetected          = fmt.Errorf("no face detected in image")
	ErrEmptyEmbedding          = fmt.Errorf("extractor returned empty embedding")
	ErrVectorDimensionMismatch = fmt.Errorf("embedding dimension mismatch")

	// 404 Not Found
	ErrStudentNotFound = fmt.Errorf("student not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrRollNumberRequired   = fmt.Errorf("roll number is required")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrInvalidFeature       = fmt.Errorf("invalid feature value")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
