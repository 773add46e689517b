package repositories

import (
	"context"
	"time"

	"github.com/careernest/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusCount is one row of the application status aggregation
type StatusCount struct {
	Status models.ApplicationStatus `json:"status" bson:"_id"`
	Count  int                      `json:"count" bson:"count"`
}

// ApplicationRepository defines the interface for application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	GetByUserAndOpportunity(ctx context.Context, user, opportunity primitive.ObjectID) (*models.Application, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Application, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

// MongoApplicationRepository implements ApplicationRepository for MongoDB
type MongoApplicationRepository struct {
	collection *mongo.Collection
}

// NewMongoApplicationRepository creates a new MongoApplicationRepository
func NewMongoApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{collection: db.Collection("applications")}
}

func (r *MongoApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	app.ID = primitive.NewObjectID()
	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = models.ApplicationApplied
	}
	_, err := r.collection.InsertOne(ctx, app)
	return err
}

func (r *MongoApplicationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *MongoApplicationRepository) GetByUserAndOpportunity(ctx context.Context, user, opportunity primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	err := r.collection.FindOne(ctx, bson.M{"user": user, "opportunity": opportunity}).Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *MongoApplicationRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Application, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": user},
		options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *MongoApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoApplicationRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user": user})
	return err
}

func (r *MongoApplicationRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus groups applications by pipeline status
func (r *MongoApplicationRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
