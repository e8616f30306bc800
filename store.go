package authstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentStore is the minimal persistence surface required by Store.
// It models single-document operations against one named collection;
// the collection is bound at construction, not per call.
//
// MongoStore is the MongoDB implementation. Implementations over other
// document stores (or in-memory fakes for testing) just need these
// four operations.
type DocumentStore interface {
	// InsertOne inserts the given document and returns its
	// store-assigned id.
	InsertOne(ctx context.Context, doc interface{}) (id interface{}, err error)

	// FindOne looks up a single document matching filter and decodes it
	// into dst. A missing document is not an error: found reports
	// whether a document was decoded.
	FindOne(ctx context.Context, filter bson.M, dst interface{}) (found bool, err error)

	// UpdateOne sets the given fields on the single document matching
	// filter and returns how many documents matched (0 or 1).
	UpdateOne(ctx context.Context, filter, set bson.M) (matched int64, err error)

	// DeleteOne deletes the single document matching filter and returns
	// how many documents were deleted (0 or 1).
	DeleteOne(ctx context.Context, filter bson.M) (deleted int64, err error)
}

// MongoStore is the MongoDB-backed DocumentStore.
type MongoStore struct {
	c *mongo.Collection
}

// NewMongoStore creates a new MongoStore on top of an established
// MongoDB connection. The client's lifecycle (connect/disconnect)
// remains with the caller.
// This function panics if mongoClient is nil.
func NewMongoStore(mongoClient *mongo.Client, cfg Config) *MongoStore {
	if mongoClient == nil {
		panic("mongoClient must be provided")
	}

	if cfg.DBName == "" {
		cfg.DBName = DefaultDBName
	}
	if cfg.AccountsCollectionName == "" {
		cfg.AccountsCollectionName = DefaultAccountsCollectionName
	}

	return &MongoStore{
		c: mongoClient.Database(cfg.DBName).Collection(cfg.AccountsCollectionName),
	}
}

// EnsureIndexes creates the unique indexes the account collection is
// expected to have (name, email, signupToken). Without them Find's
// single-match contract and the store-side duplicate rejection are not
// guaranteed. Call it once at application startup.
func (ms *MongoStore) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.M{"name": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"signupToken": 1}, Options: options.Index().SetUnique(true)},
	}

	_, err := ms.c.Indexes().CreateMany(ctx, models)
	return err
}

// InsertOne implements DocumentStore.InsertOne.
func (ms *MongoStore) InsertOne(ctx context.Context, doc interface{}) (interface{}, error) {
	res, err := ms.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

// FindOne implements DocumentStore.FindOne.
func (ms *MongoStore) FindOne(ctx context.Context, filter bson.M, dst interface{}) (bool, error) {
	err := ms.c.FindOne(ctx, filter).Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateOne implements DocumentStore.UpdateOne.
func (ms *MongoStore) UpdateOne(ctx context.Context, filter, set bson.M) (int64, error) {
	res, err := ms.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// DeleteOne implements DocumentStore.DeleteOne.
func (ms *MongoStore) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := ms.c.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
