package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	errs "stonks/internal/errors"
)

const (
	databaseName   = "users"
	collectionName = "users"
)

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	List(ctx context.Context) ([]bson.D, error)
	FindByUID(ctx context.Context, uid string) (bson.D, error)
	Insert(ctx context.Context, doc bson.D) error
	DeleteByUID(ctx context.Context, uid string) (bson.D, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository over users.users.
func NewUserRepository(client *mongo.Client) UserRepository {
	return &userRepository{coll: client.Database(databaseName).Collection(collectionName)}
}

// List returns all documents not marked deleted, in cursor order.
func (r *userRepository) List(ctx context.Context) ([]bson.D, error) {
	cur, err := r.coll.Find(ctx, bson.D{{Key: "deleted", Value: false}})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	var docs []bson.D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read users cursor: %w", err)
	}
	return docs, nil
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (bson.D, error) {
	var doc bson.D
	err := r.coll.FindOne(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", uid, err)
	}
	return doc, nil
}

// Insert stores the document verbatim. No uniqueness or schema check is
// performed; duplicate uids are storable.
func (r *userRepository) Insert(ctx context.Context, doc bson.D) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// DeleteByUID hard-deletes the first document matching uid and returns it.
func (r *userRepository) DeleteByUID(ctx context.Context, uid string) (bson.D, error) {
	var doc bson.D
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "uid", Value: uid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete user %s: %w", uid, err)
	}
	return doc, nil
}
