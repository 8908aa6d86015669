package http

import (
	"fmt"
	"net/http"

	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

type FaceHandler struct {
	faceUsecase usecase.FaceUC
	logger      logger.Logger
}

func NewFaceHandler(faceUsecase usecase.FaceUC, logger logger.Logger) *FaceHandler {
	return &FaceHandler{faceUsecase: faceUsecase, logger: logger}
}

// enrollFace
//
//	@Summary		Регистрация лица студента
//	@Description	Привязывает эталонный эмбеддинг лица к существующему студенту
//	@Tags			faces
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			roll_number	formData	string					true	"Roll number студента"
//	@Param			image		formData	file					true	"Фотография лица"
//	@Success		200			{object}	map[string]interface{}	"Успешная регистрация"
//	@Failure		400			{object}	ErrorResponse			"Битое изображение или лицо не найдено"
//	@Failure		404			{object}	ErrorResponse			"Студент не найден"
//	@Router			/enroll [post]
func (f *FaceHandler) enrollFace(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		f.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseEnrollForm(r)
	if err != nil {
		f.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := f.faceUsecase.Enroll(r.Context(), req)
	if err != nil {
		f.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("Successfully enrolled face for student %s.", res.RollNumber),
	})
}

// home
//
//	@Summary	Приветственное сообщение
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/ [get]
func (f *FaceHandler) home(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the Face Recognition API. Use /enroll to register a face.",
	})
}

// healthCheck
//
//	@Summary	Проверка работоспособности
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/health [get]
func (f *FaceHandler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status":  "OK",
		"message": "The API is healthy and running.",
	})
}
