package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/vidyarthi-tech/face-backend/docs" // Импорт сгенерированных файлов
	"github.com/vidyarthi-tech/face-backend/internal/delivery/v1/ws"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(faceUC usecase.FaceUC, predictUC usecase.PredictUC, wsHandler *ws.Handler) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	faceHandler := NewFaceHandler(faceUC, r.logger)
	r.router.Get("/", faceHandler.home)
	r.router.Get("/health", faceHandler.healthCheck)
	r.router.Post("/enroll", faceHandler.enrollFace)

	r.router.Get("/ws/analyze_face", wsHandler.Analyze)
	r.router.Get("/ws/recognize", wsHandler.Recognize)

	prHandler := NewPredictHandler(predictUC, r.logger)
	r.router.Route("/predict", func(pr chi.Router) {
		pr.Post("/exam-score", prHandler.predictExamScore)
		pr.Post("/dropout", prHandler.predictDropout)
	})
}
