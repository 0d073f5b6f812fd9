package users

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/deepblocks/auth-service/internal/mongodb"
)

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	client *mongodb.Client
}

// NewMongoRepository creates a repository backed by the shared Mongo client.
func NewMongoRepository(client *mongodb.Client) *MongoRepository {
	return &MongoRepository{client: client}
}

// EnsureIndexes creates the unique index on email. Called once at startup;
// it makes insert-if-absent atomic at the storage layer, closing the
// check-then-insert race between concurrent signups.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users: create email index: %w", err)
	}
	return nil
}

// FindByEmail returns the record matching email exactly, or ErrNotFound.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var user User
	err = coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

// Insert writes a new record and fills in the assigned ObjectID.
func (r *MongoRepository) Insert(ctx context.Context, user *User) (*User, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("users: insert: %w", err)
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

// collection resolves the users collection, surfacing the
// storage-unavailable error when the client is not connected.
func (r *MongoRepository) collection() (*mongo.Collection, error) {
	coll, err := r.client.Collection(CollectionName)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return coll, nil
}
