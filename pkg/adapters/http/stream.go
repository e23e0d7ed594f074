package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/finiteconsole/pkg/domain"
)

// StreamManager fans loop events out to SSE subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan<- string]struct{}
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan<- string]struct{}),
		logger:      logger,
	}
}

func (sm *StreamManager) Subscribe() (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Slow client: drop rather than block the loop.
			sm.logger.Warn("SSE: client buffer full, dropping message")
		}
	}
}

// Hooks returns lifecycle hooks that broadcast every loop event as JSON.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(_ context.Context, e *domain.MenuEvent) { sm.publish(e) },
		OnMenuLeave: func(_ context.Context, e *domain.MenuEvent) { sm.publish(e) },
		OnAction:    func(_ context.Context, e *domain.ActionEvent) { sm.publish(e) },
		OnUnmatched: func(_ context.Context, e *domain.InputEvent) { sm.publish(e) },
		OnLoopStart: func(_ context.Context, e *domain.LoopEvent) { sm.publish(e) },
		OnLoopStop:  func(_ context.Context, e *domain.LoopEvent) { sm.publish(e) },
	}
}

func (sm *StreamManager) publish(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		sm.logger.Warn("SSE: event encode failed", "err", err)
		return
	}
	sm.Broadcast(string(data))
}

// SubscribeEvents handles GET /events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
