package repository

import (
	"context"
	"errors"
	"time"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepository implements ProfileRepository
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile repository
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	collection := db.Collection("profiles")

	// Unique index on username. This narrows the check-then-write race
	// on username assignment but does not close it; see ExistsUsername.
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"username": 1},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoProfileRepository{
		collection: collection,
	}
}

// Insert creates a new profile document
func (r *MongoProfileRepository) Insert(ctx context.Context, profile *entity.UserProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

// FindByID finds a profile by the identity-issued user id
func (r *MongoProfileRepository) FindByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ExistsUsername reports whether a profile already holds the username.
// There is no isolation between this read and a later Insert; two
// concurrent signups can both see false before either write lands.
func (r *MongoProfileRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies the given fields and stamps updatedAt, returning the
// resulting document.
func (r *MongoProfileRepository) Update(ctx context.Context, userID string, fields map[string]any) (*entity.UserProfile, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		updateDoc[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile entity.UserProfile
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": updateDoc},
		opts,
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Delete removes a profile document
func (r *MongoProfileRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrProfileNotFound
	}
	return nil
}
