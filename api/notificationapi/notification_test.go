package notificationapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/app/config"
	"github.com/travel-record/backend-sub002/app/realtime"
	"github.com/travel-record/backend-sub002/model"

	"github.com/sirupsen/logrus"
)

func TestWriteEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   realtime.Event
		want string
	}{
		{
			"full event",
			realtime.Event{ID: "65f0", Name: "notification", Data: map[string]string{"k": "v"}},
			"id: 65f0\nevent: notification\ndata: {\"k\":\"v\"}\n\n",
		},
		{
			"ack without id",
			realtime.Event{Name: "connected", Data: "subscribed"},
			"event: connected\ndata: \"subscribed\"\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEvent(&buf, tt.ev); err != nil {
				t.Fatalf("writeEvent() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("writeEvent() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func newSubscribeTestAPI() *api {
	return &api{
		App: &app.App{
			Config: &config.Config{
				StreamLifetimeMinutes:    1,
				StreamSendTimeoutSeconds: 1,
			},
			Registry: realtime.NewRegistry(),
		},
	}
}

func TestSubscribe(t *testing.T) {
	a := newSubscribeTestAPI()
	ctx := &app.Context{
		Logger: logrus.StandardLogger(),
		User:   &model.Account{ID: 42, Nickname: "mina"},
	}

	reqCtx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/notification/subscribe", nil).WithContext(reqCtx)
	w := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() {
		done <- a.Subscribe(ctx, w, req)
	}()

	// wait for the stream to be registered
	var stream *realtime.Stream
	deadline := time.Now().Add(time.Second)
	for {
		if s, ok := a.App.Registry.Lookup(42); ok {
			stream = s
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stream never registered")
		}
		time.Sleep(time.Millisecond)
	}

	if err := stream.Send(realtime.Event{ID: "65f0", Name: "notification", Data: "hello"}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	// client goes away
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Subscribe never returned after disconnect")
	}

	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, "event: connected") {
		t.Errorf("missing subscription ack, body = %q", body)
	}
	if !strings.Contains(body, "id: 65f0") || !strings.Contains(body, "event: notification") {
		t.Errorf("pushed event missing from body = %q", body)
	}

	if _, ok := a.App.Registry.Lookup(42); ok {
		t.Error("stream must be removed from the registry after disconnect")
	}
}

func TestSubscribeReplacedByNewConnection(t *testing.T) {
	a := newSubscribeTestAPI()
	ctx := &app.Context{
		Logger: logrus.StandardLogger(),
		User:   &model.Account{ID: 42, Nickname: "mina"},
	}

	req := httptest.NewRequest(http.MethodGet, "/notification/subscribe", nil)
	w := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() {
		done <- a.Subscribe(ctx, w, req)
	}()

	deadline := time.Now().Add(time.Second)
	for {
		if _, ok := a.App.Registry.Lookup(42); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("stream never registered")
		}
		time.Sleep(time.Millisecond)
	}

	// second connection for the same user evicts the first
	replacement := realtime.NewStream(42, time.Minute, time.Second)
	a.App.Registry.Register(42, replacement)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("replaced Subscribe never returned")
	}

	// the first handler's deferred cleanup must not evict the replacement
	if got, ok := a.App.Registry.Lookup(42); !ok || got != replacement {
		t.Error("replacement stream must stay registered")
	}
}
