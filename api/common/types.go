package common

import (
	"net/http"

	"github.com/travel-record/backend-sub002/app"
)

// HandlerFuncWithCTX - type is an adapter to use handlerfunc with ctx
type HandlerFuncWithCTX func(*app.Context, http.ResponseWriter, *http.Request) error

// StatusCodeRecorder wraps a ResponseWriter and remembers the status written.
// It passes http.Flusher through so streaming handlers keep working.
type StatusCodeRecorder struct {
	http.ResponseWriter
	http.Flusher
	StatusCode int
}

func (r *StatusCodeRecorder) WriteHeader(statusCode int) {
	r.StatusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// Flush forwards to the wrapped writer when it supports flushing.
func (r *StatusCodeRecorder) Flush() {
	if r.Flusher != nil {
		r.Flusher.Flush()
	}
}
