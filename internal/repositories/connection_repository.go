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

// ConnectionRepository defines the interface for connection edge operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error)
	Save(ctx context.Context, conn *models.Connection) error
	FindActiveBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error)
	DeleteAcceptedBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error)
	FindPendingByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Connection, error)
	FindPendingByRequester(ctx context.Context, requester primitive.ObjectID) ([]models.Connection, error)
	FindActiveInvolving(ctx context.Context, user primitive.ObjectID) ([]models.Connection, error)
	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
}

// MongoConnectionRepository implements ConnectionRepository for MongoDB
type MongoConnectionRepository struct {
	collection *mongo.Collection
}

// NewMongoConnectionRepository creates a new MongoConnectionRepository
func NewMongoConnectionRepository(db *mongo.Database) *MongoConnectionRepository {
	return &MongoConnectionRepository{collection: db.Collection("connections")}
}

func (r *MongoConnectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	conn.ID = primitive.NewObjectID()
	conn.CreatedAt = time.Now()
	if conn.Status == "" {
		conn.Status = models.ConnectionPending
	}
	_, err := r.collection.InsertOne(ctx, conn)
	return err
}

func (r *MongoConnectionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error) {
	var conn models.Connection
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *MongoConnectionRepository) Save(ctx context.Context, conn *models.Connection) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": conn.ID}, conn)
	return err
}

// pairFilter matches the edge between a and b in either direction
func pairFilter(a, b primitive.ObjectID) bson.A {
	return bson.A{
		bson.M{"requester": a, "recipient": b},
		bson.M{"requester": b, "recipient": a},
	}
}

// FindActiveBetween returns the pending or accepted edge between two users,
// regardless of direction
func (r *MongoConnectionRepository) FindActiveBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	var conn models.Connection
	err := r.collection.FindOne(ctx, bson.M{
		"$or":    pairFilter(a, b),
		"status": bson.M{"$in": bson.A{models.ConnectionPending, models.ConnectionAccepted}},
	}).Decode(&conn)
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// DeleteAcceptedBetween removes the accepted edge between two users and
// returns the deleted document
func (r *MongoConnectionRepository) DeleteAcceptedBetween(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	var conn models.Connection
	err := r.collection.FindOneAndDelete(ctx, bson.M{
		"$or":    pairFilter(a, b),
		"status": models.ConnectionAccepted,
	}).Decode(&conn)
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (r *MongoConnectionRepository) findSorted(ctx context.Context, filter bson.M) ([]models.Connection, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conns []models.Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

func (r *MongoConnectionRepository) FindPendingByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Connection, error) {
	return r.findSorted(ctx, bson.M{"recipient": recipient, "status": models.ConnectionPending})
}

func (r *MongoConnectionRepository) FindPendingByRequester(ctx context.Context, requester primitive.ObjectID) ([]models.Connection, error) {
	return r.findSorted(ctx, bson.M{"requester": requester, "status": models.ConnectionPending})
}

// FindActiveInvolving returns every pending or accepted edge touching a user
func (r *MongoConnectionRepository) FindActiveInvolving(ctx context.Context, user primitive.ObjectID) ([]models.Connection, error) {
	return r.findSorted(ctx, bson.M{
		"$or":    bson.A{bson.M{"requester": user}, bson.M{"recipient": user}},
		"status": bson.M{"$in": bson.A{models.ConnectionPending, models.ConnectionAccepted}},
	})
}

func (r *MongoConnectionRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"$or": bson.A{bson.M{"requester": user}, bson.M{"recipient": user}},
	})
	return err
}
