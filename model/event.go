package model

// DomainEvent is the in-process message a CRUD collaborator submits when a
// comment, like or invitation may warrant a notification. It is never
// persisted; the dispatcher turns it into a Notification.
type DomainEvent struct {
	RecipientID   int64
	ActorID       int64
	ActorNickname string
	Type          NotificationType

	// context entities; the one matching Type must be set
	Comment        *CommentPayload
	RecordLike     *RecordLikePayload
	FeedInvitation *FeedInvitationPayload
}
