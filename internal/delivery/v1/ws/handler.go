package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/vidyarthi-tech/face-backend/internal/cfg"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// Handler поднимает WebSocket-сессии распознавания и автозахвата.
type Handler struct {
	faceUsecase usecase.FaceUC
	cfg         *cfg.RecognitionCfg
	logger      logger.Logger
	upgrader    websocket.Upgrader
}

func NewHandler(faceUsecase usecase.FaceUC, cfg *cfg.RecognitionCfg, logger logger.Logger) *Handler {
	return &Handler{
		faceUsecase: faceUsecase,
		cfg:         cfg,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1 << 20,
			WriteBufferSize: 4 << 10,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
	}
}

// Recognize обслуживает канал распознавания: на каждый кадр — plain-text ответ
// с roll number, "Unknown" или "No face detected".
func (h *Handler) Recognize(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	h.logger.Debugf("Recognition session started: %s", r.RemoteAddr)

	session := NewSession(conn, h.cfg.FrameTimeout, func(ctx context.Context, payload string) ([]byte, error) {
		result, err := h.faceUsecase.RecognizeFrame(ctx, payload)
		return []byte(result.String()), err
	}, h.logger)

	session.Run(r.Context())
	h.logger.Debugf("Recognition session closed: %s", r.RemoteAddr)
}

// Analyze обслуживает канал автозахвата: на каждый кадр — JSON с флагом
// наличия лица и уверенностью детектора.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnf("WebSocket upgrade failed: %v", err)
		return
	}

	h.logger.Debugf("Analyze session started: %s", r.RemoteAddr)

	session := NewSession(conn, h.cfg.FrameTimeout, func(ctx context.Context, payload string) ([]byte, error) {
		detection, err := h.faceUsecase.AnalyzeFrame(ctx, payload)

		reply, marshalErr := json.Marshal(map[string]interface{}{
			"face_found": detection.FaceFound,
			"confidence": detection.Confidence,
		})
		if marshalErr != nil {
			return nil, marshalErr
		}

		return reply, err
	}, h.logger)

	session.Run(r.Context())
	h.logger.Debugf("Analyze session closed: %s", r.RemoteAddr)
}

// originChecker допускает любые origin'ы при пустом списке, иначе сверяет хост.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}

		if _, ok := allowedSet[origin]; ok {
			return true
		}
		_, ok := allowedSet[u.Host]
		return ok
	}
}
