package notification

import (
	"context"

	"github.com/travel-record/backend-sub002/app/config"
	"github.com/travel-record/backend-sub002/model"
	"github.com/travel-record/backend-sub002/mongodatabase"

	"github.com/pkg/errors"
)

// Service is the sole writer of notification records and the read side for
// the notification endpoints.
type Service interface {
	// Create persists an UNREAD notification for the event. A self-action
	// (recipient == actor) is suppressed: it returns (nil, nil), writes
	// nothing and is not an error.
	Create(ctx context.Context, ev *model.DomainEvent) (*model.Notification, error)
	// HasUnread reports whether the user has at least one UNREAD notification.
	HasUnread(ctx context.Context, userID int64) (bool, error)
	// ListAll returns all of the user's notifications newest first and marks
	// the returned ones READ.
	ListAll(ctx context.Context, userID int64) ([]model.Notification, error)
	// ListByType returns the user's notifications of one type, newest first,
	// without touching read status.
	ListByType(ctx context.Context, userID int64, notificationType model.NotificationType) ([]model.Notification, error)
}

type service struct {
	config  *config.Config
	mongoDB *mongodatabase.DBConfig
}

// NewService create new notification Service
func NewService(repos *model.Repos, conf *config.Config) Service {
	svc := &service{
		config:  conf,
		mongoDB: repos.MongoDB,
	}
	return svc
}

func (s *service) Create(ctx context.Context, ev *model.DomainEvent) (*model.Notification, error) {
	if ev.RecipientID == ev.ActorID {
		return nil, nil
	}

	n, err := model.NewNotification(ev)
	if err != nil {
		return nil, err
	}

	if err := createNotification(ctx, s.mongoDB, n); err != nil {
		return nil, errors.Wrap(err, "error while creating notification object")
	}
	return n, nil
}

func (s *service) HasUnread(ctx context.Context, userID int64) (bool, error) {
	return hasUnreadNotification(ctx, s.mongoDB, userID)
}

func (s *service) ListAll(ctx context.Context, userID int64) ([]model.Notification, error) {
	return getNotificationList(ctx, s.mongoDB, userID)
}

func (s *service) ListByType(ctx context.Context, userID int64, notificationType model.NotificationType) ([]model.Notification, error) {
	if !notificationType.Valid() {
		return nil, errors.Errorf("unknown notification type %q", notificationType)
	}
	return getNotificationListByType(ctx, s.mongoDB, userID, notificationType)
}
