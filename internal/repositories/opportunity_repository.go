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

// OpportunityRepository defines the interface for opportunity listings
type OpportunityRepository interface {
	Create(ctx context.Context, opp *models.Opportunity) error
	CreateMany(ctx context.Context, opps []models.Opportunity) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error)
	FindAll(ctx context.Context) ([]models.Opportunity, error)
	Count(ctx context.Context) (int64, error)
}

// MongoOpportunityRepository implements OpportunityRepository for MongoDB
type MongoOpportunityRepository struct {
	collection *mongo.Collection
}

// NewMongoOpportunityRepository creates a new MongoOpportunityRepository
func NewMongoOpportunityRepository(db *mongo.Database) *MongoOpportunityRepository {
	return &MongoOpportunityRepository{collection: db.Collection("opportunities")}
}

func (r *MongoOpportunityRepository) Create(ctx context.Context, opp *models.Opportunity) error {
	opp.ID = primitive.NewObjectID()
	opp.PostedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, opp)
	return err
}

func (r *MongoOpportunityRepository) CreateMany(ctx context.Context, opps []models.Opportunity) error {
	docs := make([]interface{}, 0, len(opps))
	for i := range opps {
		opps[i].ID = primitive.NewObjectID()
		if opps[i].PostedAt.IsZero() {
			opps[i].PostedAt = time.Now()
		}
		docs = append(docs, opps[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoOpportunityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Opportunity, error) {
	var opp models.Opportunity
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&opp); err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *MongoOpportunityRepository) FindAll(ctx context.Context) ([]models.Opportunity, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var opps []models.Opportunity
	if err := cursor.All(ctx, &opps); err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *MongoOpportunityRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
