package realtime

import (
	"testing"
	"time"
)

func TestStreamSendAndReceive(t *testing.T) {
	s := NewStream(1, time.Minute, time.Second)
	defer s.Close()

	want := Event{ID: "abc", Name: "notification", Data: "payload"}
	if err := s.Send(want); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	select {
	case got := <-s.Events():
		if got.ID != want.ID || got.Name != want.Name {
			t.Errorf("received %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
	}
}

func TestStreamSendAfterClose(t *testing.T) {
	s := NewStream(1, time.Minute, time.Second)
	s.Close()

	if err := s.Send(Event{Name: "notification"}); err != ErrStreamClosed {
		t.Errorf("Send() error = %v, want ErrStreamClosed", err)
	}
}

func TestStreamSendAfterCloseNeverSucceeds(t *testing.T) {
	// the closed check must win even while the buffer has room
	for i := 0; i < 200; i++ {
		s := NewStream(1, time.Minute, time.Second)
		s.Close()
		if err := s.Send(Event{Name: "notification"}); err != ErrStreamClosed {
			t.Fatalf("Send() on closed stream error = %v, want ErrStreamClosed (attempt %d)", err, i)
		}
	}
}

func TestStreamSendStallsWhenReaderIsGone(t *testing.T) {
	s := NewStream(1, time.Minute, 10*time.Millisecond)
	defer s.Close()

	// nobody reads; fill the buffer until Send has to wait
	var err error
	for i := 0; i < 64; i++ {
		if err = s.Send(Event{Name: "notification"}); err != nil {
			break
		}
	}
	if err != ErrStreamStalled {
		t.Errorf("Send() error = %v, want ErrStreamStalled", err)
	}
}

func TestStreamCloseIsIdempotent(t *testing.T) {
	s := NewStream(1, time.Minute, time.Second)
	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Error("Done() must be closed after Close()")
	}
}

func TestStreamExpiry(t *testing.T) {
	s := NewStream(1, time.Minute, time.Second)
	defer s.Close()

	left := time.Until(s.ExpiresAt())
	if left <= 0 || left > time.Minute {
		t.Errorf("ExpiresAt() %v away, want within the configured lifetime", left)
	}
}
