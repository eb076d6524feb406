// Package telemetry streams frame snapshots to websocket subscribers
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"nhooyr.io/websocket"

	"github.com/lixenwraith/flanker/engine"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/status"
)

type subscriber struct {
	send chan []byte
}

// Server fans CBOR snapshots out to /stream subscribers
// Broadcast never blocks; a subscriber whose buffer is full misses that message
type Server struct {
	mu          deadlock.Mutex
	subscribers map[*subscriber]struct{}
	last        []byte
	buffer      int
	timeout     time.Duration

	every   int64
	metrics *status.Registry
	dropped int64
}

// NewServer creates a server publishing every n-th frame
func NewServer(every int, metrics *status.Registry) *Server {
	if every < 1 {
		every = 1
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	return &Server{
		subscribers: make(map[*subscriber]struct{}),
		buffer:      parameter.TelemetrySubscriberBuffer,
		timeout:     parameter.TelemetryWriteTimeout,
		every:       int64(every),
		metrics:     metrics,
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

// Serve listens on addr until ctx is done
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("telemetry listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("telemetry server: %w", err)
	}
	return nil
}

// Draw implements engine.FrameSink
func (s *Server) Draw(f engine.Frame) {
	if f.Index%s.every != 0 {
		return
	}
	msg, err := NewSnapshot(f, s.metrics.Snapshot()).Marshal()
	if err != nil {
		log.Error().Err(err).Msg("failed encoding snapshot")
		return
	}
	s.Broadcast(msg)
}

// Broadcast queues msg for every subscriber
func (s *Server) Broadcast(msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = msg
	for sub := range s.subscribers {
		select {
		case sub.send <- msg:
		default:
			s.dropped++
		}
	}
}

// Subscribers returns the current subscriber count
func (s *Server) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// Dropped returns how many messages were skipped for slow subscribers
func (s *Server) Dropped() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Debug().Err(err).Msg("websocket accept failed")
		return
	}
	defer c.Close(websocket.StatusInternalError, "stream ended")

	err = s.subscribe(r.Context(), c)
	if errors.Is(err, context.Canceled) {
		return
	}
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
		websocket.CloseStatus(err) == websocket.StatusGoingAway {
		return
	}
	if err != nil {
		log.Debug().Err(err).Msg("telemetry subscriber closed")
	}
}

func (s *Server) subscribe(ctx context.Context, c *websocket.Conn) error {
	ctx = c.CloseRead(ctx)

	sub := &subscriber{send: make(chan []byte, s.buffer)}
	first := s.add(sub)
	defer s.remove(sub)

	if first != nil {
		if err := WriteTimeout(ctx, s.timeout, c, first); err != nil {
			return err
		}
	}

	for {
		select {
		case msg := <-sub.send:
			if err := WriteTimeout(ctx, s.timeout, c, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// add registers sub and returns the latest message so it starts with a current frame
func (s *Server) add(sub *subscriber) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[sub] = struct{}{}
	return s.last
}

func (s *Server) remove(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

// WriteTimeout writes one binary message, bounded by timeout
func WriteTimeout(ctx context.Context, timeout time.Duration, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Write(ctx, websocket.MessageBinary, msg)
}

var _ engine.FrameSink = (*Server)(nil)
