package feed

import (
	"database/sql"

	"github.com/travel-record/backend-sub002/database"
	"github.com/travel-record/backend-sub002/model"

	"github.com/pkg/errors"
)

func getRecordByID(db *database.Database, recordID int64) (*model.Record, error) {
	stmt := "SELECT id, feed_id, author_id, title, place, record_date, created_date FROM Record WHERE id = ?"
	record := &model.Record{}
	err := db.Conn.Get(record, stmt, recordID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch record")
	}
	return record, nil
}

func getCommentByID(db *database.Database, commentID int64) (*model.Comment, error) {
	stmt := "SELECT id, record_id, author_id, parent_id, content, created_date FROM Comment WHERE id = ?"
	comment := &model.Comment{}
	err := db.Conn.Get(comment, stmt, commentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch comment")
	}
	return comment, nil
}

func getFeedByID(db *database.Database, feedID int64) (*model.Feed, error) {
	stmt := "SELECT id, owner_id, name, description, created_date FROM Feed WHERE id = ?"
	f := &model.Feed{}
	err := db.Conn.Get(f, stmt, feedID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch feed")
	}
	return f, nil
}

func insertComment(db *database.Database, c *model.Comment) error {
	stmt := "INSERT INTO Comment (record_id, author_id, parent_id, content, created_date) VALUES (?, ?, ?, ?, ?)"
	res, err := db.Conn.Exec(stmt, c.RecordID, c.AuthorID, c.ParentID, c.Content, c.CreatedDate)
	if err != nil {
		return errors.Wrap(err, "unable to insert comment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "unable to read comment id")
	}
	c.ID = id
	return nil
}

func likeExists(db *database.Database, recordID, userID int64) (bool, error) {
	stmt := "SELECT COUNT(1) FROM RecordLike WHERE record_id = ? AND user_id = ?"
	var count int
	if err := db.Conn.Get(&count, stmt, recordID, userID); err != nil {
		return false, errors.Wrap(err, "unable to check record like")
	}
	return count > 0, nil
}

func insertLike(db *database.Database, l *model.RecordLike) error {
	stmt := "INSERT INTO RecordLike (record_id, user_id, created_date) VALUES (?, ?, ?)"
	res, err := db.Conn.Exec(stmt, l.RecordID, l.UserID, l.CreatedDate)
	if err != nil {
		return errors.Wrap(err, "unable to insert record like")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "unable to read like id")
	}
	l.ID = id
	return nil
}

func deleteLike(db *database.Database, recordID, userID int64) error {
	stmt := "DELETE FROM RecordLike WHERE record_id = ? AND user_id = ?"
	if _, err := db.Conn.Exec(stmt, recordID, userID); err != nil {
		return errors.Wrap(err, "unable to delete record like")
	}
	return nil
}

func insertInvitation(db *database.Database, inv *model.FeedInvitation) error {
	stmt := "INSERT INTO FeedInvitation (feed_id, inviter_id, invitee_id, created_date) VALUES (?, ?, ?, ?)"
	res, err := db.Conn.Exec(stmt, inv.FeedID, inv.InviterID, inv.InviteeID, inv.CreatedDate)
	if err != nil {
		return errors.Wrap(err, "unable to insert feed invitation")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "unable to read invitation id")
	}
	inv.ID = id
	return nil
}
