package model

import "time"

// Feed a travel journal owned by one user, possibly shared with contributors
type Feed struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// Record a dated entry inside a feed
type Record struct {
	ID          int64     `json:"id" db:"id"`
	FeedID      int64     `json:"feedId" db:"feed_id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	Title       string    `json:"title" db:"title"`
	Place       string    `json:"place" db:"place"`
	RecordDate  time.Time `json:"recordDate" db:"record_date"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// Comment a comment on a record; ParentID set for replies
type Comment struct {
	ID          int64     `json:"id" db:"id"`
	RecordID    int64     `json:"recordId" db:"record_id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	ParentID    *int64    `json:"parentId,omitempty" db:"parent_id"`
	Content     string    `json:"content" db:"content"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// RecordLike one user's like on one record
type RecordLike struct {
	ID          int64     `json:"id" db:"id"`
	RecordID    int64     `json:"recordId" db:"record_id"`
	UserID      int64     `json:"userId" db:"user_id"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// FeedInvitation an invitation for a user to contribute to a feed
type FeedInvitation struct {
	ID          int64     `json:"id" db:"id"`
	FeedID      int64     `json:"feedId" db:"feed_id"`
	InviterID   int64     `json:"inviterId" db:"inviter_id"`
	InviteeID   int64     `json:"inviteeId" db:"invitee_id"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}
