package db

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client                 *mongo.Client
	ToursCollection        *mongo.Collection
	BookingsCollection     *mongo.Collection
	ContactsCollection     *mongo.Collection
	DestinationsCollection *mongo.Collection
)

// Init connects to MongoDB and binds the collections. An unreachable store is
// not fatal: the driver connects lazily and the read paths degrade to the
// static catalog, so callers should log the returned error and keep serving.
func Init() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "oyowtours"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	Client = client

	ToursCollection = client.Database(dbName).Collection("tours")
	BookingsCollection = client.Database(dbName).Collection("bookings")
	ContactsCollection = client.Database(dbName).Collection("contacts")
	DestinationsCollection = client.Database(dbName).Collection("destinations")

	return client.Ping(ctx, readpref.Primary())
}

// Ping reports whether the store currently answers, bounded by the context.
func Ping(ctx context.Context) bool {
	if Client == nil {
		return false
	}
	return Client.Ping(ctx, readpref.Primary()) == nil
}

// Close disconnects the client during shutdown.
func Close(ctx context.Context) {
	if Client != nil {
		_ = Client.Disconnect(ctx)
	}
}
