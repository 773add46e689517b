package repositories

import (
	"context"
	"time"

	"github.com/careernest/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	Get(ctx context.Context, follower, following primitive.ObjectID) (*models.Follow, error)
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByFollowing(ctx context.Context, following primitive.ObjectID) ([]models.Follow, error)
	FindByFollower(ctx context.Context, follower primitive.ObjectID) ([]models.Follow, error)
}

// MongoFollowRepository implements FollowRepository for MongoDB
type MongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new MongoFollowRepository
func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection("follows")}
}

func (r *MongoFollowRepository) Get(ctx context.Context, follower, following primitive.ObjectID) (*models.Follow, error) {
	var follow models.Follow
	err := r.collection.FindOne(ctx, bson.M{"follower": follower, "following": following}).Decode(&follow)
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *MongoFollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	follow.ID = primitive.NewObjectID()
	follow.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, follow)
	return err
}

func (r *MongoFollowRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoFollowRepository) FindByFollowing(ctx context.Context, following primitive.ObjectID) ([]models.Follow, error) {
	return r.find(ctx, bson.M{"following": following})
}

func (r *MongoFollowRepository) FindByFollower(ctx context.Context, follower primitive.ObjectID) ([]models.Follow, error) {
	return r.find(ctx, bson.M{"follower": follower})
}

func (r *MongoFollowRepository) find(ctx context.Context, filter bson.M) ([]models.Follow, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var follows []models.Follow
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}
