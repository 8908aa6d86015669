package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

type fakeConn struct {
	in        chan []byte
	writes    chan []byte
	readCalls chan struct{}
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		in:        make(chan []byte),
		writes:    make(chan []byte, 16),
		readCalls: make(chan struct{}, 16),
		closed:    make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	c.readCalls <- struct{}{}
	data, ok := <-c.in
	if !ok {
		return 0, nil, errors.New("connection closed")
	}
	return websocket.TextMessage, data, nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.writes <- data
	return nil
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func waitBytes(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case data := <-ch:
		return string(data)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
		return ""
	}
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestSessionProcessesFramesInOrder(t *testing.T) {
	conn := newFakeConn()
	session := NewSession(conn, time.Second, func(_ context.Context, payload string) ([]byte, error) {
		return []byte("echo:" + payload), nil
	}, noopLogger{})

	done := make(chan struct{})
	go func() {
		session.Run(context.Background())
		close(done)
	}()

	for i := 0; i < 3; i++ {
		frame := fmt.Sprintf("frame-%d", i)
		conn.in <- []byte(frame)
		if got := waitBytes(t, conn.writes); got != "echo:"+frame {
			t.Fatalf("expected echo:%s, got %q", frame, got)
		}
	}

	close(conn.in)
	waitSignal(t, done, "session shutdown")
	waitSignal(t, conn.closed, "connection close")
}

func TestSessionSurvivesProcessingErrors(t *testing.T) {
	conn := newFakeConn()
	session := NewSession(conn, time.Second, func(_ context.Context, payload string) ([]byte, error) {
		return []byte("degraded"), errors.New("extractor unavailable")
	}, noopLogger{})

	done := make(chan struct{})
	go func() {
		session.Run(context.Background())
		close(done)
	}()

	// Ошибка обработки не рвёт сессию: оба кадра получают ответ
	for i := 0; i < 2; i++ {
		conn.in <- []byte("frame")
		if got := waitBytes(t, conn.writes); got != "degraded" {
			t.Fatalf("expected degraded reply, got %q", got)
		}
	}

	close(conn.in)
	waitSignal(t, done, "session shutdown")
}

func TestSessionDropsStaleFrames(t *testing.T) {
	conn := newFakeConn()
	gate := make(chan struct{})
	started := make(chan struct{}, 1)
	session := NewSession(conn, time.Second, func(_ context.Context, payload string) ([]byte, error) {
		started <- struct{}{}
		<-gate
		return []byte(payload), nil
	}, noopLogger{})

	done := make(chan struct{})
	go func() {
		session.Run(context.Background())
		close(done)
	}()

	// Первый ReadMessage начинается сразу после старта сессии
	waitSignal(t, conn.readCalls, "first read")
	conn.in <- []byte("A")

	// A забран в обработку и застрял на gate
	waitSignal(t, started, "processing start")
	waitSignal(t, conn.readCalls, "second read")
	conn.in <- []byte("B")

	// B лёг в буфер, reader запросил следующий кадр
	waitSignal(t, conn.readCalls, "third read")
	conn.in <- []byte("C")

	// C вытеснил B из буфера глубины 1
	waitSignal(t, conn.readCalls, "fourth read")
	close(gate)

	if got := waitBytes(t, conn.writes); got != "A" {
		t.Fatalf("expected reply A, got %q", got)
	}
	if got := waitBytes(t, conn.writes); got != "C" {
		t.Fatalf("expected stale frame B to be dropped, got %q", got)
	}

	close(conn.in)
	waitSignal(t, done, "session shutdown")
}

func TestSessionStopsOnContextCancel(t *testing.T) {
	conn := newFakeConn()
	session := NewSession(conn, time.Second, func(_ context.Context, payload string) ([]byte, error) {
		return []byte(payload), nil
	}, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		session.Run(ctx)
		close(done)
	}()

	waitSignal(t, conn.readCalls, "first read")
	cancel()

	waitSignal(t, done, "session shutdown")
	waitSignal(t, conn.closed, "connection close")
}
