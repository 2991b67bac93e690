package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/travel-record/backend-sub002/app/realtime"
	"github.com/travel-record/backend-sub002/model"
)

// fakeService records Create calls in order and can be told to fail or panic.
type fakeService struct {
	mu      sync.Mutex
	created []model.DomainEvent
	panicOn int64
}

func (f *fakeService) Create(ctx context.Context, ev *model.DomainEvent) (*model.Notification, error) {
	f.mu.Lock()
	panicOn := f.panicOn
	f.mu.Unlock()
	if panicOn != 0 && ev.RecipientID == panicOn {
		panic("storage exploded")
	}

	n, err := model.NewNotification(ev)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.created = append(f.created, *ev)
	f.mu.Unlock()
	return n, nil
}

func (f *fakeService) HasUnread(ctx context.Context, userID int64) (bool, error) {
	return false, nil
}

func (f *fakeService) ListAll(ctx context.Context, userID int64) ([]model.Notification, error) {
	return nil, nil
}

func (f *fakeService) ListByType(ctx context.Context, userID int64, t model.NotificationType) ([]model.Notification, error) {
	return nil, nil
}

func (f *fakeService) createdEvents() []model.DomainEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.DomainEvent, len(f.created))
	copy(out, f.created)
	return out
}

func likeEvent(recipientID, actorID int64) model.DomainEvent {
	return model.DomainEvent{
		RecipientID:   recipientID,
		ActorID:       actorID,
		ActorNickname: "juno",
		Type:          model.NotificationRecordLike,
		RecordLike:    &model.RecordLikePayload{RecordID: 1, Title: "Hallasan sunrise"},
	}
}

func TestDispatcherStoresAndPushes(t *testing.T) {
	svc := &fakeService{}
	registry := realtime.NewRegistry()
	stream := realtime.NewStream(10, time.Minute, time.Second)
	registry.Register(10, stream)

	d := NewDispatcher(svc, registry, 2, 8)
	d.Publish(likeEvent(10, 20))
	d.Stop()

	if got := svc.createdEvents(); len(got) != 1 {
		t.Fatalf("created %d notifications, want 1", len(got))
	}

	select {
	case ev := <-stream.Events():
		if ev.ID == "" {
			t.Error("pushed event must carry the notification id")
		}
		msg, ok := ev.Data.(model.PushMessage)
		if !ok {
			t.Fatalf("pushed %T, want model.PushMessage", ev.Data)
		}
		if msg.Content != "juno liked your record." {
			t.Errorf("Content = %q", msg.Content)
		}
	case <-time.After(time.Second):
		t.Fatal("no event pushed to the recipient's stream")
	}
}

func TestDispatcherSkipsSelfActions(t *testing.T) {
	svc := &fakeService{}
	registry := realtime.NewRegistry()

	d := NewDispatcher(svc, registry, 2, 8)
	d.Publish(likeEvent(10, 10))
	d.Stop()

	if got := svc.createdEvents(); len(got) != 0 {
		t.Errorf("created %d notifications for a self-action, want 0", len(got))
	}
}

func TestDispatcherOfflineRecipient(t *testing.T) {
	svc := &fakeService{}
	registry := realtime.NewRegistry()

	d := NewDispatcher(svc, registry, 2, 8)
	d.Publish(likeEvent(10, 20))
	d.Stop()

	if got := svc.createdEvents(); len(got) != 1 {
		t.Errorf("created %d notifications, want 1; offline recipients still get the record", len(got))
	}
}

func TestDispatcherDropsStreamAfterFailedPush(t *testing.T) {
	svc := &fakeService{}
	registry := realtime.NewRegistry()
	stream := realtime.NewStream(10, time.Minute, 10*time.Millisecond)
	registry.Register(10, stream)
	// the stream is already dead but still registered
	stream.Close()

	d := NewDispatcher(svc, registry, 2, 8)
	d.Publish(likeEvent(10, 20))
	d.Stop()

	if _, ok := registry.Lookup(10); ok {
		t.Error("a stream that fails a push must be removed from the registry")
	}
}

func TestDispatcherKeepsRecipientOrder(t *testing.T) {
	svc := &fakeService{}
	registry := realtime.NewRegistry()

	d := NewDispatcher(svc, registry, 4, 64)
	for i := int64(1); i <= 20; i++ {
		ev := likeEvent(10, 20)
		ev.RecordLike = &model.RecordLikePayload{RecordID: i, Title: "t"}
		d.Publish(ev)
	}
	d.Stop()

	got := svc.createdEvents()
	if len(got) != 20 {
		t.Fatalf("created %d notifications, want 20", len(got))
	}
	for i, ev := range got {
		if ev.RecordLike.RecordID != int64(i+1) {
			t.Fatalf("event %d has record %d; one recipient's events must stay in publish order", i, ev.RecordLike.RecordID)
		}
	}
}

func TestDispatcherContainsPanics(t *testing.T) {
	svc := &fakeService{panicOn: 66}
	registry := realtime.NewRegistry()

	d := NewDispatcher(svc, registry, 1, 8)
	d.Publish(likeEvent(66, 20))
	d.Publish(likeEvent(10, 20))
	d.Stop()

	got := svc.createdEvents()
	if len(got) != 1 || got[0].RecipientID != 10 {
		t.Errorf("a panicking event must not take the worker down; created = %+v", got)
	}
}

func TestDispatcherPublishAfterStop(t *testing.T) {
	svc := &fakeService{}
	d := NewDispatcher(svc, realtime.NewRegistry(), 2, 8)
	d.Stop()

	// must not panic on the closed queues
	d.Publish(likeEvent(10, 20))

	if got := svc.createdEvents(); len(got) != 0 {
		t.Errorf("created %d notifications after Stop, want 0", len(got))
	}
}
