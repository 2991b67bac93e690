package mongodatabase

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBConn handle for one collection
type MongoDBConn struct {
	Collection *mongo.Collection
	Client     *mongo.Client
}

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// New returns a handle for the named collection. The underlying client is
// dialed once and shared across callers.
func (config *DBConfig) New(collectionName string) (*MongoDBConn, error) {
	clientOnce.Do(func() {
		clientOptions := options.Client().ApplyURI(config.Host).
			SetRetryReads(true).
			SetRetryWrites(true).
			SetConnectTimeout(30 * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, clientErr = mongo.Connect(ctx, clientOptions)
		if clientErr != nil {
			return
		}
		clientErr = client.Ping(ctx, nil)
	})
	if clientErr != nil {
		return nil, errors.Wrap(clientErr, "unable to connect to mongo")
	}

	collection := client.Database(config.DBName).Collection(collectionName)
	return &MongoDBConn{Collection: collection, Client: client}, nil
}

// Disconnect closes the shared client. No-op when it was never dialed.
func Disconnect() error {
	if client == nil {
		return nil
	}
	return client.Disconnect(context.TODO())
}
