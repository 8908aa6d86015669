package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
)

// Conn — минимальный транспортный контракт WebSocket-соединения.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// processFunc обрабатывает один кадр и возвращает готовый к отправке ответ.
// Ошибка означает деградацию, а не разрыв: ответ при этом всё равно пригоден.
type processFunc func(ctx context.Context, payload string) ([]byte, error)

// Session обрабатывает кадры одного соединения строго по одному.
// Буфер кадров имеет глубину 1: пока обработчик занят, приходящие кадры
// вытесняют друг друга, и клиент получает ответ на самый свежий.
type Session struct {
	conn         Conn
	frameTimeout time.Duration
	process      processFunc
	logger       logger.Logger
}

func NewSession(conn Conn, frameTimeout time.Duration, process processFunc, logger logger.Logger) *Session {
	return &Session{
		conn:         conn,
		frameTimeout: frameTimeout,
		process:      process,
		logger:       logger,
	}
}

// Run крутит цикл сессии до разрыва соединения или отмены контекста.
// Писатель здесь единственный: ответы уходят только из этого цикла.
func (s *Session) Run(ctx context.Context) {
	defer s.conn.Close()

	frames := make(chan string, 1)
	readerDone := make(chan struct{})

	go s.readFrames(frames, readerDone)

	for {
		select {
		case <-ctx.Done():
			return
		case <-readerDone:
			return
		case payload := <-frames:
			frameCtx, cancel := context.WithTimeout(ctx, s.frameTimeout)
			reply, err := s.process(frameCtx, payload)
			cancel()

			if err != nil {
				s.logger.Warnf("Frame processing degraded: %v", err)
			}

			if reply == nil {
				continue
			}

			if err := s.conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				s.logger.Debugf("Session write failed, closing: %v", err)
				return
			}
		}
	}
}

// readFrames читает сообщения и держит в буфере только последний кадр.
func (s *Session) readFrames(frames chan string, done chan struct{}) {
	defer close(done)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		payload := string(data)
		select {
		case frames <- payload:
		default:
			// Вытесняем устаревший кадр
			select {
			case <-frames:
			default:
			}
			frames <- payload
		}
	}
}
