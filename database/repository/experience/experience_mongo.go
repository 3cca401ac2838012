package experienceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"urbanpilgrim/database"
	"urbanpilgrim/models"
)

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("pilgrim_experiences")
	repo := &MongoExperienceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoExperienceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an experience by its unique ID.
func (r *MongoExperienceRepo) GetByID(id string) (*models.Experience, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch experience with id %s: %w", id, err)
	}
	return &exp, nil
}

// GetAll retrieves all experiences.
func (r *MongoExperienceRepo) GetAll() ([]models.Experience, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var exps []models.Experience
	if err := cursor.All(ctx, &exps); err != nil {
		return nil, fmt.Errorf("failed to decode experiences: %w", err)
	}
	return exps, nil
}

// Create inserts a new experience document.
func (r *MongoExperienceRepo) Create(exp *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// Update modifies an existing experience document.
func (r *MongoExperienceRepo) Update(exp *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	exp.UpdatedAt = time.Now()
	filter := bson.M{"id": exp.ID}
	update := bson.M{"$set": exp}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update experience with id %s: %w", exp.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("experience with id %s not found", exp.ID)
	}
	return nil
}

// Delete removes an experience document by its ID.
func (r *MongoExperienceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete experience with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("experience with id %s not found", id)
	}
	return nil
}
