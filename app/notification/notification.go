package notification

import (
	"context"

	"github.com/travel-record/backend-sub002/consts"
	"github.com/travel-record/backend-sub002/model"
	"github.com/travel-record/backend-sub002/mongodatabase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createNotification(ctx context.Context, db *mongodatabase.DBConfig, n *model.Notification) error {
	dbConn, err := db.New(consts.Notification)
	if err != nil {
		return err
	}

	_, err = dbConn.Collection.InsertOne(ctx, n)
	if err != nil {
		return errors.Wrap(err, "unable to insert notification")
	}
	return nil
}

func hasUnreadNotification(ctx context.Context, db *mongodatabase.DBConfig, recipientID int64) (bool, error) {
	dbConn, err := db.New(consts.Notification)
	if err != nil {
		return false, err
	}

	filter := bson.M{"recipientId": recipientID, "status": consts.StatusUnread}
	count, err := dbConn.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "unable to count unread notifications")
	}
	return count > 0, nil
}

// getNotificationList returns the recipient's notifications newest first and
// marks exactly the returned ones read. Marking is bounded by the fetched ids
// so a notification created concurrently with the listing stays UNREAD until
// its own first listing.
func getNotificationList(ctx context.Context, db *mongodatabase.DBConfig, recipientID int64) ([]model.Notification, error) {
	dbConn, err := db.New(consts.Notification)
	if err != nil {
		return nil, err
	}

	notifications, err := findNotifications(ctx, dbConn, bson.M{"recipientId": recipientID})
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return notifications, nil
	}

	filter := unreadMarkFilter(recipientID, notifications)
	if filter == nil {
		return notifications, nil
	}

	update := bson.M{"$set": bson.M{"status": consts.StatusRead}}
	if _, err := dbConn.Collection.UpdateMany(ctx, filter, update); err != nil {
		return nil, errors.Wrap(err, "unable to mark notifications as read")
	}
	return notifications, nil
}

// unreadMarkFilter bounds the read-marking update to exactly the fetched
// unread notifications, so a notification created concurrently with the
// listing is never marked read unseen. Nil when the listing holds nothing
// unread.
func unreadMarkFilter(recipientID int64, notifications []model.Notification) bson.M {
	unreadIDs := make([]primitive.ObjectID, 0, len(notifications))
	for _, n := range notifications {
		if n.Status == consts.StatusUnread {
			unreadIDs = append(unreadIDs, n.ID)
		}
	}
	if len(unreadIDs) == 0 {
		return nil
	}
	return bson.M{
		"recipientId": recipientID,
		"status":      consts.StatusUnread,
		"_id":         bson.M{"$in": unreadIDs},
	}
}

func getNotificationListByType(ctx context.Context, db *mongodatabase.DBConfig, recipientID int64, notificationType model.NotificationType) ([]model.Notification, error) {
	dbConn, err := db.New(consts.Notification)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"recipientId": recipientID, "type": notificationType}
	return findNotifications(ctx, dbConn, filter)
}

func findNotifications(ctx context.Context, dbConn *mongodatabase.MongoDBConn, filter bson.M) ([]model.Notification, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdDate", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := dbConn.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch notifications")
	}

	notifications := []model.Notification{}
	if err := cur.All(ctx, &notifications); err != nil {
		return nil, errors.Wrap(err, "unable to decode notifications")
	}
	return notifications, nil
}
