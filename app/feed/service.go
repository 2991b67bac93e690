package feed

import (
	"time"

	"github.com/travel-record/backend-sub002/app/event"
	"github.com/travel-record/backend-sub002/consts"
	"github.com/travel-record/backend-sub002/database"
	"github.com/travel-record/backend-sub002/model"
	"github.com/travel-record/backend-sub002/util"

	"github.com/pkg/errors"
)

var (
	// ErrRecordNotFound target record does not exist
	ErrRecordNotFound = errors.New("record not found")
	// ErrParentCommentNotFound reply target does not exist on the record
	ErrParentCommentNotFound = errors.New("parent comment not found")
	// ErrFeedNotFound target feed does not exist
	ErrFeedNotFound = errors.New("feed not found")
	// ErrAlreadyLiked the user already liked the record
	ErrAlreadyLiked = errors.New("record already liked")
	// ErrNotFeedOwner only the feed owner can invite
	ErrNotFeedOwner = errors.New("only the feed owner can invite")
)

// Service covers the collaborator operations that raise notification events:
// commenting on a record, liking a record and inviting a user to a feed. Each
// write persists first, then submits a domain event and returns without
// waiting for dispatch.
type Service interface {
	CreateComment(actor *model.Account, recordID int64, parentID *int64, content string) (*model.Comment, error)
	LikeRecord(actor *model.Account, recordID int64) (*model.RecordLike, error)
	UnlikeRecord(actor *model.Account, recordID int64) error
	InviteToFeed(actor *model.Account, feedID, inviteeID int64) (*model.FeedInvitation, error)
}

type service struct {
	dbMaster   *database.Database
	dbReplica  *database.Database
	dispatcher *event.Dispatcher
}

// NewService create new feed Service
func NewService(repos *model.Repos, dispatcher *event.Dispatcher) Service {
	svc := &service{
		dbMaster:   repos.MasterDB,
		dbReplica:  repos.ReplicaDB,
		dispatcher: dispatcher,
	}
	return svc
}

func (s *service) CreateComment(actor *model.Account, recordID int64, parentID *int64, content string) (*model.Comment, error) {
	record, err := getRecordByID(s.dbReplica, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	// a reply notifies the parent comment's author, a top-level comment the
	// record's author
	recipientID := record.AuthorID
	if parentID != nil {
		parent, err := getCommentByID(s.dbReplica, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.RecordID != recordID {
			return nil, ErrParentCommentNotFound
		}
		recipientID = parent.AuthorID
	}

	comment := &model.Comment{
		RecordID:    recordID,
		AuthorID:    actor.ID,
		ParentID:    parentID,
		Content:     content,
		CreatedDate: time.Now().UTC(),
	}
	if err := insertComment(s.dbMaster, comment); err != nil {
		return nil, err
	}

	s.dispatcher.Publish(model.DomainEvent{
		RecipientID:   recipientID,
		ActorID:       actor.ID,
		ActorNickname: actor.Nickname,
		Type:          model.NotificationComment,
		Comment: &model.CommentPayload{
			CommentID: comment.ID,
			ParentID:  parentID,
			Content:   util.TruncateRunes(content, consts.CommentSnippetLen),
		},
	})
	return comment, nil
}

func (s *service) LikeRecord(actor *model.Account, recordID int64) (*model.RecordLike, error) {
	record, err := getRecordByID(s.dbReplica, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	exists, err := likeExists(s.dbReplica, recordID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyLiked
	}

	like := &model.RecordLike{
		RecordID:    recordID,
		UserID:      actor.ID,
		CreatedDate: time.Now().UTC(),
	}
	if err := insertLike(s.dbMaster, like); err != nil {
		return nil, err
	}

	s.dispatcher.Publish(model.DomainEvent{
		RecipientID:   record.AuthorID,
		ActorID:       actor.ID,
		ActorNickname: actor.Nickname,
		Type:          model.NotificationRecordLike,
		RecordLike: &model.RecordLikePayload{
			RecordID: record.ID,
			Title:    record.Title,
		},
	})
	return like, nil
}

// UnlikeRecord removes the user's like. Removing a like never notifies anyone.
func (s *service) UnlikeRecord(actor *model.Account, recordID int64) error {
	record, err := getRecordByID(s.dbReplica, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrRecordNotFound
	}
	return deleteLike(s.dbMaster, recordID, actor.ID)
}

func (s *service) InviteToFeed(actor *model.Account, feedID, inviteeID int64) (*model.FeedInvitation, error) {
	f, err := getFeedByID(s.dbReplica, feedID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFeedNotFound
	}
	if f.OwnerID != actor.ID {
		return nil, ErrNotFeedOwner
	}

	invitation := &model.FeedInvitation{
		FeedID:      feedID,
		InviterID:   actor.ID,
		InviteeID:   inviteeID,
		CreatedDate: time.Now().UTC(),
	}
	if err := insertInvitation(s.dbMaster, invitation); err != nil {
		return nil, err
	}

	s.dispatcher.Publish(model.DomainEvent{
		RecipientID:   inviteeID,
		ActorID:       actor.ID,
		ActorNickname: actor.Nickname,
		Type:          model.NotificationFeedInvitation,
		FeedInvitation: &model.FeedInvitationPayload{
			FeedID: f.ID,
			Name:   f.Name,
		},
	})
	return invitation, nil
}
