package feedapi

import (
	"encoding/json"
	"net/http"

	"github.com/travel-record/backend-sub002/app"
	"github.com/travel-record/backend-sub002/app/feed"
	"github.com/travel-record/backend-sub002/util"
)

type createCommentRequest struct {
	ParentID *int64 `json:"parentId,omitempty"`
	Content  string `json:"content"`
}

type inviteRequest struct {
	InviteeID int64 `json:"inviteeId"`
}

// CreateComment posts a comment (or reply) on a record. The notification for
// the record's author is dispatched asynchronously; the response does not
// wait for it.
func (a *api) CreateComment(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	recordID, err := ctx.GetResourceID("recordID")
	if err != nil {
		return &app.ValidationError{Message: "Invalid record id"}
	}

	var payload createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return &app.ValidationError{Message: "Invalid request body"}
	}
	if payload.Content == "" {
		return &app.ValidationError{Message: "comment content is required"}
	}

	comment, err := a.App.FeedService.CreateComment(ctx.User, recordID, payload.ParentID, payload.Content)
	if err != nil {
		return mapFeedError(err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(comment, 1, "comment created"))
	return nil
}

// LikeRecord adds the user's like on a record.
func (a *api) LikeRecord(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	recordID, err := ctx.GetResourceID("recordID")
	if err != nil {
		return &app.ValidationError{Message: "Invalid record id"}
	}

	like, err := a.App.FeedService.LikeRecord(ctx.User, recordID)
	if err != nil {
		return mapFeedError(err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(like, 1, "record liked"))
	return nil
}

// UnlikeRecord removes the user's like from a record.
func (a *api) UnlikeRecord(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	recordID, err := ctx.GetResourceID("recordID")
	if err != nil {
		return &app.ValidationError{Message: "Invalid record id"}
	}

	if err := a.App.FeedService.UnlikeRecord(ctx.User, recordID); err != nil {
		return mapFeedError(err)
	}

	json.NewEncoder(w).Encode(util.SetResponse(nil, 1, "record unliked"))
	return nil
}

// InviteToFeed invites another user to contribute to the caller's feed.
func (a *api) InviteToFeed(ctx *app.Context, w http.ResponseWriter, r *http.Request) error {
	feedID, err := ctx.GetResourceID("feedID")
	if err != nil {
		return &app.ValidationError{Message: "Invalid feed id"}
	}

	var payload inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return &app.ValidationError{Message: "Invalid request body"}
	}
	if payload.InviteeID <= 0 {
		return &app.ValidationError{Message: "inviteeId is required"}
	}

	invitation, err := a.App.FeedService.InviteToFeed(ctx.User, feedID, payload.InviteeID)
	if err != nil {
		return mapFeedError(err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(util.SetResponse(invitation, 1, "invitation sent"))
	return nil
}

// mapFeedError translates service errors into the API error taxonomy.
func mapFeedError(err error) error {
	switch err {
	case feed.ErrRecordNotFound, feed.ErrParentCommentNotFound, feed.ErrFeedNotFound:
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusNotFound}
	case feed.ErrAlreadyLiked:
		return &app.ValidationError{Message: err.Error()}
	case feed.ErrNotFeedOwner:
		return &app.UserError{Message: err.Error(), StatusCode: http.StatusForbidden}
	}
	return err
}
