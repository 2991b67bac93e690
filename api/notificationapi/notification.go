package notificationapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/app/realtime"
	"github.com/travel-record/backend-sub002/consts"
	"github.com/travel-record/backend-sub002/model"
	"github.com/travel-record/backend-sub002/util"
)

// Subscribe opens the long-lived push stream for the authenticated user. The
// new stream replaces any previous one for the same user, an acknowledgment
// event is pushed immediately, and the connection is held open until the
// client disconnects or the stream's lifetime ceiling passes.
func (a *api) Subscribe(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return &app.UserError{Message: "streaming is not supported", StatusCode: http.StatusNotImplemented}
	}

	lifetime := time.Duration(a.App.Config.StreamLifetimeMinutes) * time.Minute
	sendTimeout := time.Duration(a.App.Config.StreamSendTimeoutSeconds) * time.Second

	stream := realtime.NewStream(ctx.User.ID, lifetime, sendTimeout)
	a.App.Registry.Register(ctx.User.ID, stream)
	defer func() {
		a.App.Registry.Remove(ctx.User.ID, stream)
		stream.Close()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	// synthetic ack so the client can tell "subscribed" from a silent failure
	if err := writeEvent(w, realtime.Event{Name: consts.EventConnected, Data: "subscribed"}); err != nil {
		return nil
	}
	flusher.Flush()

	lifetimeTimer := time.NewTimer(time.Until(stream.ExpiresAt()))
	defer lifetimeTimer.Stop()

	for {
		select {
		case ev := <-stream.Events():
			if err := writeEvent(w, ev); err != nil {
				ctx.Logger.Warnf("closing push stream of user %d after write error: %v", ctx.User.ID, err)
				return nil
			}
			flusher.Flush()
		case <-stream.Done():
			// closed by a replacement connection or a failed push
			return nil
		case <-lifetimeTimer.C:
			// lifetime ceiling reached; the client is expected to reconnect
			return nil
		case <-r.Context().Done():
			return nil
		}
	}
}

func writeEvent(w io.Writer, ev realtime.Event) error {
	data, err := json.Marshal(ev.Data)
	if err != nil {
		return err
	}
	if ev.ID != "" {
		if _, err := fmt.Fprintf(w, "id: %s\n", ev.ID); err != nil {
			return err
		}
	}
	if ev.Name != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", ev.Name); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

// HasUnread lightweight poll fallback: does the user have unread notifications?
func (a *api) HasUnread(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	hasUnread, err := a.App.NotificationService.HasUnread(r.Context(), ctx.User.ID)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(util.SetResponse(map[string]bool{"hasUnread": hasUnread}, 1, "unread status fetched"))
	return nil
}

// NotificationListing returns all of the user's notifications newest first.
// Viewing marks them read; see NotificationService.ListAll.
func (a *api) NotificationListing(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	notifications, err := a.App.NotificationService.ListAll(r.Context(), ctx.User.ID)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(util.SetResponse(toPushMessages(notifications), 1, "notification list fetched"))
	return nil
}

// NotificationListingByType returns the user's notifications of one type.
// Unlike NotificationListing it leaves read status untouched.
func (a *api) NotificationListingByType(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	notificationType := model.NotificationType(strings.ToUpper(ctx.Vars["type"]))
	if !notificationType.Valid() {
		return &app.ValidationError{Message: fmt.Sprintf("unknown notification type %q", ctx.Vars["type"])}
	}

	notifications, err := a.App.NotificationService.ListByType(r.Context(), ctx.User.ID, notificationType)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(util.SetResponse(toPushMessages(notifications), 1, "notification list fetched"))
	return nil
}

func toPushMessages(notifications []model.Notification) []model.PushMessage {
	messages := make([]model.PushMessage, 0, len(notifications))
	for i := range notifications {
		messages = append(messages, notifications[i].ToPushMessage())
	}
	return messages
}
