package realtime

import (
	"sync"
)

// Registry is the process-wide map from user id to that user's single live
// stream. All mutation goes through the registry; it is the only writer of
// the mapping. Registry operations never block on transport I/O.
type Registry struct {
	mu      sync.Mutex
	streams map[int64]*Stream
}

// NewRegistry create an empty registry
func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[int64]*Stream),
	}
}

// Register installs the stream as the user's current connection. A previous
// stream for the same user is replaced and closed: last connection wins, so a
// user never holds more than one live stream. Closing the replaced stream is
// best effort and happens outside the lock.
func (r *Registry) Register(userID int64, s *Stream) {
	r.mu.Lock()
	old := r.streams[userID]
	r.streams[userID] = s
	r.mu.Unlock()

	if old != nil && old != s {
		old.Close()
	}
}

// Remove drops the mapping only while s is still the user's current stream.
// A stale handle that was already replaced is a no-op, so an erroring old
// connection can never evict its successor.
func (r *Registry) Remove(userID int64, s *Stream) {
	r.mu.Lock()
	if r.streams[userID] == s {
		delete(r.streams, userID)
	}
	r.mu.Unlock()
}

// Lookup returns the user's current stream, if any. Non-blocking.
func (r *Registry) Lookup(userID int64) (*Stream, bool) {
	r.mu.Lock()
	s, ok := r.streams[userID]
	r.mu.Unlock()
	return s, ok
}

// Count number of live streams, for operational logging.
func (r *Registry) Count() int {
	r.mu.Lock()
	n := len(r.streams)
	r.mu.Unlock()
	return n
}
