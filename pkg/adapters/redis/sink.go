package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/finiteconsole/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultStream is the stream key events are appended to.
const DefaultStream = "finiteconsole:events"

// Sink appends loop events to a Redis stream as an audit trail.
type Sink struct {
	client  *backend.Client
	stream  string
	maxLen  int64
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Sink.
type Option func(*Sink)

// WithStream sets the stream key.
func WithStream(stream string) Option {
	return func(s *Sink) {
		if stream != "" {
			s.stream = stream
		}
	}
}

// WithMaxLen caps the stream length (approximate trimming). Zero keeps everything.
func WithMaxLen(n int64) Option {
	return func(s *Sink) {
		s.maxLen = n
	}
}

// WithLogger reports failed writes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		s.logger = logger
	}
}

// NewSink creates a sink writing through client.
func NewSink(client *backend.Client, opts ...Option) *Sink {
	s := &Sink{
		client:  client,
		stream:  DefaultStream,
		timeout: 2 * time.Second,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record is one stored event.
type Record struct {
	ID      string           `json:"id"`
	Type    domain.EventType `json:"type"`
	MenuID  string           `json:"menu_id"`
	Payload json.RawMessage  `json:"payload"`
}

// Append writes a single event to the stream.
func (s *Sink) Append(ctx context.Context, t domain.EventType, menuID string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", t, err)
	}
	args := &backend.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"type":    string(t),
			"menu_id": menuID,
			"payload": string(payload),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	return s.client.XAdd(ctx, args).Err()
}

// Read returns up to count events, oldest first. A count of zero reads all.
func (s *Sink) Read(ctx context.Context, count int64) ([]Record, error) {
	var (
		msgs []backend.XMessage
		err  error
	)
	if count > 0 {
		msgs, err = s.client.XRangeN(ctx, s.stream, "-", "+", count).Result()
	} else {
		msgs, err = s.client.XRange(ctx, s.stream, "-", "+").Result()
	}
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(msgs))
	for _, msg := range msgs {
		rec := Record{ID: msg.ID}
		if v, ok := msg.Values["type"].(string); ok {
			rec.Type = domain.EventType(v)
		}
		if v, ok := msg.Values["menu_id"].(string); ok {
			rec.MenuID = v
		}
		if v, ok := msg.Values["payload"].(string); ok {
			rec.Payload = json.RawMessage(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Hooks returns lifecycle hooks that append every event to the stream.
// Writes outlive the loop's cancellation so the stop event is recorded too.
func (s *Sink) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) {
			s.record(ctx, e.Type, e.MenuID, e)
		},
		OnMenuLeave: func(ctx context.Context, e *domain.MenuEvent) {
			s.record(ctx, e.Type, e.MenuID, e)
		},
		OnAction: func(ctx context.Context, e *domain.ActionEvent) {
			s.record(ctx, e.Type, e.MenuID, e)
		},
		OnUnmatched: func(ctx context.Context, e *domain.InputEvent) {
			s.record(ctx, e.Type, e.MenuID, e)
		},
		OnLoopStart: func(ctx context.Context, e *domain.LoopEvent) {
			s.record(ctx, e.Type, e.InitMenuID, e)
		},
		OnLoopStop: func(ctx context.Context, e *domain.LoopEvent) {
			s.record(ctx, e.Type, e.InitMenuID, e)
		},
	}
}

func (s *Sink) record(ctx context.Context, t domain.EventType, menuID string, event any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	if err := s.Append(ctx, t, menuID, event); err != nil {
		s.logger.Warn("audit write failed", "stream", s.stream, "type", t, "err", err)
	}
}
