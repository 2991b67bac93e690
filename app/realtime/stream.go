package realtime

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrStreamClosed is returned by Send once the stream reached its terminal state.
var ErrStreamClosed = errors.New("stream is closed")

// ErrStreamStalled is returned by Send when the client cannot keep up within
// the send patience; the caller treats it as a delivery failure and drops the
// stream from the registry.
var ErrStreamStalled = errors.New("stream send timed out")

// Event one message pushed over a stream
type Event struct {
	ID   string
	Name string
	Data interface{}
}

// Stream is one live outbound push channel for exactly one user. A stream is
// OPEN until Close is called; CLOSED is terminal.
type Stream struct {
	userID      int64
	events      chan Event
	done        chan struct{}
	closeOnce   sync.Once
	sendTimeout time.Duration
	expiresAt   time.Time
}

// NewStream creates an OPEN stream with a bounded lifetime.
func NewStream(userID int64, lifetime, sendTimeout time.Duration) *Stream {
	return &Stream{
		userID:      userID,
		events:      make(chan Event, 16),
		done:        make(chan struct{}),
		sendTimeout: sendTimeout,
		expiresAt:   time.Now().Add(lifetime),
	}
}

// UserID owner of the stream
func (s *Stream) UserID() int64 {
	return s.userID
}

// Events messages queued for the writer goroutine
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Done is closed when the stream reaches CLOSED.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// ExpiresAt end of the stream's lifetime; the client reconnects after it.
func (s *Stream) ExpiresAt() time.Time {
	return s.expiresAt
}

// Send queues one event for delivery. It never blocks longer than the send
// patience; message loss on failure is acceptable since the notification store
// is the durable source of truth.
func (s *Stream) Send(e Event) error {
	// CLOSED is terminal; check it before the buffered send so a dead
	// stream can never accept an event just because its buffer has room
	select {
	case <-s.done:
		return ErrStreamClosed
	default:
	}

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return ErrStreamClosed
	default:
	}

	timer := time.NewTimer(s.sendTimeout)
	defer timer.Stop()
	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return ErrStreamClosed
	case <-timer.C:
		return ErrStreamStalled
	}
}

// Close transitions the stream to CLOSED. Safe to call multiple times.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
