package model

import (
	"fmt"
	"time"

	"github.com/travel-record/backend-sub002/consts"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType is the closed set of events a user can be notified about.
type NotificationType string

const (
	NotificationComment        NotificationType = "COMMENT"
	NotificationRecordLike     NotificationType = "RECORD_LIKE"
	NotificationFeedInvitation NotificationType = "FEED_INVITATION"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationComment, NotificationRecordLike, NotificationFeedInvitation:
		return true
	}
	return false
}

// CommentPayload carries the comment a COMMENT notification points at.
type CommentPayload struct {
	CommentID int64  `bson:"commentId" json:"commentId"`
	ParentID  *int64 `bson:"parentId,omitempty" json:"parentId,omitempty"`
	Content   string `bson:"content" json:"content"`
}

// RecordLikePayload carries the record a RECORD_LIKE notification points at.
type RecordLikePayload struct {
	RecordID int64  `bson:"recordId" json:"recordId"`
	Title    string `bson:"title" json:"title"`
}

// FeedInvitationPayload carries the feed a FEED_INVITATION notification points at.
type FeedInvitationPayload struct {
	FeedID int64  `bson:"feedId" json:"feedId"`
	Name   string `bson:"name" json:"name"`
}

// Notification is the durable record of one delivered-or-pending notification.
// Exactly one of the payload pointers is set, matching Type.
type Notification struct {
	ID             primitive.ObjectID     `bson:"_id" json:"_id"`
	RecipientID    int64                  `bson:"recipientId" json:"recipientId"`
	SenderID       int64                  `bson:"senderId" json:"senderId"`
	SenderNickname string                 `bson:"senderNickname" json:"senderNickname"`
	Type           NotificationType       `bson:"type" json:"type"`
	Status         string                 `bson:"status" json:"status"`
	Comment        *CommentPayload        `bson:"comment,omitempty" json:"comment,omitempty"`
	RecordLike     *RecordLikePayload     `bson:"recordLike,omitempty" json:"recordLike,omitempty"`
	FeedInvitation *FeedInvitationPayload `bson:"feedInvitation,omitempty" json:"feedInvitation,omitempty"`
	CreatedDate    time.Time              `bson:"createdDate" json:"createdDate"`
}

// NewNotification builds an UNREAD notification from a domain event. The type
// set is closed: an unknown type or a payload that does not match the type is
// rejected here and never reaches the store.
func NewNotification(ev *DomainEvent) (*Notification, error) {
	if !ev.Type.Valid() {
		return nil, errors.Errorf("unknown notification type %q", ev.Type)
	}

	n := &Notification{
		ID:             primitive.NewObjectID(),
		RecipientID:    ev.RecipientID,
		SenderID:       ev.ActorID,
		SenderNickname: ev.ActorNickname,
		Type:           ev.Type,
		Status:         consts.StatusUnread,
		CreatedDate:    time.Now().UTC(),
	}

	switch ev.Type {
	case NotificationComment:
		if ev.Comment == nil {
			return nil, errors.New("COMMENT event without comment payload")
		}
		payload := *ev.Comment
		n.Comment = &payload
	case NotificationRecordLike:
		if ev.RecordLike == nil {
			return nil, errors.New("RECORD_LIKE event without record payload")
		}
		payload := *ev.RecordLike
		n.RecordLike = &payload
	case NotificationFeedInvitation:
		if ev.FeedInvitation == nil {
			return nil, errors.New("FEED_INVITATION event without feed payload")
		}
		payload := *ev.FeedInvitation
		n.FeedInvitation = &payload
	}
	return n, nil
}

// Content renders the human-readable message for the notification's type.
func (n *Notification) Content() string {
	switch n.Type {
	case NotificationComment:
		if n.Comment != nil && n.Comment.ParentID != nil {
			return fmt.Sprintf("%s replied to your comment.", n.SenderNickname)
		}
		return fmt.Sprintf("%s commented on your record.", n.SenderNickname)
	case NotificationRecordLike:
		return fmt.Sprintf("%s liked your record.", n.SenderNickname)
	case NotificationFeedInvitation:
		name := ""
		if n.FeedInvitation != nil {
			name = n.FeedInvitation.Name
		}
		return fmt.Sprintf("%s invited you to the trip %q.", n.SenderNickname, name)
	}
	return ""
}

// PushMessage is the wire shape shared by the subscribe stream and the list
// endpoints. Payload fields irrelevant to the type are omitted, not null-padded.
type PushMessage struct {
	ID             string                 `json:"id"`
	Type           NotificationType       `json:"type"`
	Status         string                 `json:"status"`
	Content        string                 `json:"content"`
	SenderID       int64                  `json:"senderId"`
	SenderNickname string                 `json:"senderNickname"`
	Comment        *CommentPayload        `json:"comment,omitempty"`
	RecordLike     *RecordLikePayload     `json:"recordLike,omitempty"`
	FeedInvitation *FeedInvitationPayload `json:"feedInvitation,omitempty"`
	CreatedDate    time.Time              `json:"createdDate"`
}

// ToPushMessage renders the notification into its wire shape.
func (n *Notification) ToPushMessage() PushMessage {
	return PushMessage{
		ID:             n.ID.Hex(),
		Type:           n.Type,
		Status:         n.Status,
		Content:        n.Content(),
		SenderID:       n.SenderID,
		SenderNickname: n.SenderNickname,
		Comment:        n.Comment,
		RecordLike:     n.RecordLike,
		FeedInvitation: n.FeedInvitation,
		CreatedDate:    n.CreatedDate,
	}
}
