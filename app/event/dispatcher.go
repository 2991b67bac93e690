package event

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/travel-record/backend-sub002/app/notification"
	"github.com/travel-record/backend-sub002/app/realtime"
	"github.com/travel-record/backend-sub002/consts"
	"github.com/travel-record/backend-sub002/model"

	"github.com/sirupsen/logrus"
)

// Dispatcher bridges domain events raised by CRUD services to the
// notification store and the live push streams, off the request goroutine.
// Events are sharded by recipient across a fixed pool of workers, so one
// recipient's events are processed in publish order while different
// recipients interleave freely.
type Dispatcher struct {
	service  notification.Service
	registry *realtime.Registry
	logger   logrus.FieldLogger

	queues []chan model.DomainEvent
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher starts the worker pool. Each worker owns one bounded queue.
func NewDispatcher(svc notification.Service, registry *realtime.Registry, workers, queueSize int) *Dispatcher {
	d := &Dispatcher{
		service:  svc,
		registry: registry,
		logger:   logrus.StandardLogger(),
		queues:   make([]chan model.DomainEvent, workers),
	}
	for i := range d.queues {
		d.queues[i] = make(chan model.DomainEvent, queueSize)
		d.wg.Add(1)
		go d.work(d.queues[i])
	}
	return d
}

// Publish submits an event for asynchronous processing. The caller gets no
// result and must not wait for delivery. When the shard's queue is full the
// call logs a warning and blocks until there is room; events are never
// silently dropped.
func (d *Dispatcher) Publish(ev model.DomainEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warnf("dispatcher stopped, discarding %s event for user %d", ev.Type, ev.RecipientID)
		return
	}

	q := d.queues[d.shard(ev.RecipientID)]
	select {
	case q <- ev:
	default:
		d.logger.Warnf("dispatch queue full, blocking publish of %s event for user %d", ev.Type, ev.RecipientID)
		q <- ev
	}
}

// Stop drains the queues and waits for in-flight events to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, q := range d.queues {
		close(q)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) shard(recipientID int64) int {
	n := int64(len(d.queues))
	i := recipientID % n
	if i < 0 {
		i += n
	}
	return int(i)
}

func (d *Dispatcher) work(q <-chan model.DomainEvent) {
	defer d.wg.Done()
	for ev := range q {
		d.process(ev)
	}
}

// process handles one event. Any failure is logged and ends this event only;
// it never reaches the producing request or other in-flight events.
func (d *Dispatcher) process(ev model.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("recovered from panic while dispatching %s event for user %d: %v\n%s",
				ev.Type, ev.RecipientID, r, debug.Stack())
		}
	}()

	if ev.RecipientID == ev.ActorID {
		return
	}

	n, err := d.service.Create(context.Background(), &ev)
	if err != nil {
		d.logger.Errorf("unable to create %s notification for user %d: %v", ev.Type, ev.RecipientID, err)
		return
	}
	if n == nil {
		// suppressed
		return
	}

	stream, ok := d.registry.Lookup(ev.RecipientID)
	if !ok {
		// recipient is offline; the record stays retrievable via listing
		return
	}

	msg := n.ToPushMessage()
	if err := stream.Send(realtime.Event{ID: msg.ID, Name: consts.EventNotification, Data: msg}); err != nil {
		d.registry.Remove(ev.RecipientID, stream)
		stream.Close()
		d.logger.Warnf("dropping live stream of user %d after failed push: %v", ev.RecipientID, err)
	}
}
