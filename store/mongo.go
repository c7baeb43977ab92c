package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"oyow/models"
)

// Mongo implementations of the gateway interfaces. Collections are injected so
// tests and the seeder can point them anywhere.

// Returned when the client never connected; callers treat it like any other
// store failure, so reads degrade and writes stay best-effort.
var errNotInitialized = errors.New("store: not initialized")

type MongoTours struct {
	Coll *mongo.Collection
}

func (s *MongoTours) FindActive(ctx context.Context) ([]models.Tour, error) {
	if s.Coll == nil {
		return nil, errNotInitialized
	}
	cursor, err := s.Coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (s *MongoTours) FindByID(ctx context.Context, id string) (models.Tour, error) {
	if s.Coll == nil {
		return models.Tour{}, errNotInitialized
	}
	var tour models.Tour
	err := s.Coll.FindOne(ctx, bson.M{"tourid": id}).Decode(&tour)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Tour{}, ErrNotFound
	}
	return tour, err
}

// ReplaceAll wipes the collection and inserts the given tours. Used by the seeder.
func (s *MongoTours) ReplaceAll(ctx context.Context, tours []models.Tour) error {
	if s.Coll == nil {
		return errNotInitialized
	}
	if _, err := s.Coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(tours))
	for i, t := range tours {
		docs[i] = t
	}
	_, err := s.Coll.InsertMany(ctx, docs)
	return err
}

type MongoBookings struct {
	Coll *mongo.Collection
}

func (s *MongoBookings) Insert(ctx context.Context, b models.Booking) error {
	if s.Coll == nil {
		return errNotInitialized
	}
	_, err := s.Coll.InsertOne(ctx, b)
	return err
}

func (s *MongoBookings) FindByID(ctx context.Context, id string) (models.Booking, error) {
	if s.Coll == nil {
		return models.Booking{}, errNotInitialized
	}
	var booking models.Booking
	err := s.Coll.FindOne(ctx, bson.M{"bookingid": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Booking{}, ErrNotFound
	}
	booking.Persisted = true
	return booking, err
}

type MongoContacts struct {
	Coll *mongo.Collection
}

func (s *MongoContacts) Insert(ctx context.Context, c models.Contact) error {
	if s.Coll == nil {
		return errNotInitialized
	}
	_, err := s.Coll.InsertOne(ctx, c)
	return err
}

type MongoDestinations struct {
	Coll *mongo.Collection
}

func (s *MongoDestinations) FindActive(ctx context.Context) ([]models.Destination, error) {
	return s.find(ctx, bson.M{"isActive": true})
}

func (s *MongoDestinations) FindByID(ctx context.Context, id string) (models.Destination, error) {
	if s.Coll == nil {
		return models.Destination{}, errNotInitialized
	}
	var dest models.Destination
	err := s.Coll.FindOne(ctx, bson.M{"destinationid": id}).Decode(&dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Destination{}, ErrNotFound
	}
	return dest, err
}

func (s *MongoDestinations) Insert(ctx context.Context, d models.Destination) error {
	if s.Coll == nil {
		return errNotInitialized
	}
	_, err := s.Coll.InsertOne(ctx, d)
	return err
}

func (s *MongoDestinations) Update(ctx context.Context, id string, d models.Destination) (models.Destination, error) {
	if s.Coll == nil {
		return models.Destination{}, errNotInitialized
	}
	d.DestinationID = id
	res, err := s.Coll.ReplaceOne(ctx, bson.M{"destinationid": id}, d)
	if err != nil {
		return models.Destination{}, err
	}
	if res.MatchedCount == 0 {
		return models.Destination{}, ErrNotFound
	}
	return d, nil
}

// SoftDelete clears the active flag; documents are never hard-deleted here.
func (s *MongoDestinations) SoftDelete(ctx context.Context, id string) error {
	if s.Coll == nil {
		return errNotInitialized
	}
	res, err := s.Coll.UpdateOne(ctx,
		bson.M{"destinationid": id},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoDestinations) Search(ctx context.Context, f DestinationFilter) ([]models.Destination, error) {
	return s.find(ctx, f.Query())
}

func (s *MongoDestinations) find(ctx context.Context, filter bson.M) ([]models.Destination, error) {
	if s.Coll == nil {
		return nil, errNotInitialized
	}
	cursor, err := s.Coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dests []models.Destination
	if err := cursor.All(ctx, &dests); err != nil {
		return nil, err
	}
	return dests, nil
}

// Query compiles the filter into a Mongo query. Name and location match as
// case-insensitive substrings; only active destinations are considered.
func (f DestinationFilter) Query() bson.M {
	query := bson.M{"isActive": true}
	if f.Name != "" {
		query["name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Location != "" {
		query["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	if f.MinRating != nil {
		query["rating"] = bson.M{"$gte": *f.MinRating}
	}
	if f.MaxPrice != nil {
		query["price"] = bson.M{"$lte": *f.MaxPrice}
	}
	return query
}

// Timeout is the bound on a single store round-trip. The original design had
// none; without one a stalled store pins request goroutines indefinitely.
const Timeout = 5 * time.Second
