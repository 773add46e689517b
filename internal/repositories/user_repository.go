package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/careernest/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernamesCI(ctx context.Context, usernames []string) ([]models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	Search(ctx context.Context, role string, skills []string, search string) ([]models.User, error)
	AdminList(ctx context.Context, role, search, sort string, page, limit int64) ([]models.User, int64, error)
	FindCandidatesExcluding(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]models.User, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
	AddConnection(ctx context.Context, id, other primitive.ObjectID) error
	PullConnection(ctx context.Context, id, other primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if user.Skills == nil {
		user.Skills = []string{}
	}
	if user.Connections == nil {
		user.Connections = []primitive.ObjectID{}
	}
	if user.SavedPosts == nil {
		user.SavedPosts = []primitive.ObjectID{}
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernamesCI resolves usernames case-insensitively, used for @mentions
func (r *MongoUserRepository) FindByUsernamesCI(ctx context.Context, usernames []string) ([]models.User, error) {
	if len(usernames) == 0 {
		return nil, nil
	}
	patterns := make([]primitive.Regex, 0, len(usernames))
	for _, name := range usernames {
		patterns = append(patterns, primitive.Regex{Pattern: "^" + regexEscape(name) + "$", Options: "i"})
	}
	cursor, err := r.collection.Find(ctx, bson.M{"username": bson.M{"$in": patterns}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Search filters users by role, skills (case-insensitive) and a free-text
// search over username, email and headline
func (r *MongoUserRepository) Search(ctx context.Context, role string, skills []string, search string) ([]models.User, error) {
	query := bson.M{}
	if role != "" {
		query["role"] = role
	}
	if len(skills) > 0 {
		patterns := make([]primitive.Regex, 0, len(skills))
		for _, s := range skills {
			patterns = append(patterns, primitive.Regex{Pattern: regexEscape(s), Options: "i"})
		}
		query["skills"] = bson.M{"$in": patterns}
	}
	if search != "" {
		re := primitive.Regex{Pattern: regexEscape(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
			bson.M{"headline": re},
		}
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminList pages through users for the admin dashboard
func (r *MongoUserRepository) AdminList(ctx context.Context, role, search, sort string, page, limit int64) ([]models.User, int64, error) {
	query := bson.M{}
	if role != "" && role != "all" {
		query["role"] = role
	}
	if search != "" {
		re := primitive.Regex{Pattern: regexEscape(search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
		}
	}

	sortOpt := bson.D{{Key: "created_at", Value: -1}}
	if sort == "name" {
		sortOpt = bson.D{{Key: "username", Value: 1}}
	}

	findOptions := options.Find().
		SetSort(sortOpt).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindCandidatesExcluding returns up to limit candidate-role users whose ids
// are not in exclude, in natural query order
func (r *MongoUserRepository) FindCandidatesExcluding(ctx context.Context, exclude []primitive.ObjectID, limit int64) ([]models.User, error) {
	query := bson.M{
		"_id":  bson.M{"$nin": exclude},
		"role": models.RoleCandidate,
	}
	cursor, err := r.collection.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields applies a $set and returns the updated document
func (r *MongoUserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) AddConnection(ctx context.Context, id, other primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"connections": other}})
	return err
}

func (r *MongoUserRepository) PullConnection(ctx context.Context, id, other primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"connections": other}})
	return err
}

func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}
