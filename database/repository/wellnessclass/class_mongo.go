package classRepo

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

// MongoClassRepo implements ClassRepository using MongoDB.
type MongoClassRepo struct {
	coll *mongo.Collection
}

// NewMongoClassRepo creates a new instance of ClassRepository using MongoDB.
func NewMongoClassRepo() ClassRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("wellness_guide_classes")
	repo := &MongoClassRepo{coll: coll}

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
func (r *MongoClassRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a class by its unique ID.
func (r *MongoClassRepo) GetByID(id string) (*models.WellnessClass, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var class models.WellnessClass
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&class); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch class with id %s: %w", id, err)
	}
	return &class, nil
}

// GetByGuideID retrieves all classes created by a guide, newest first.
func (r *MongoClassRepo) GetByGuideID(guideID string) ([]models.WellnessClass, error) {
	return r.find(bson.M{"guide_id": guideID})
}

// GetByStatus retrieves classes in a given review status, newest first.
func (r *MongoClassRepo) GetByStatus(status string) ([]models.WellnessClass, error) {
	return r.find(bson.M{"status": status})
}

func (r *MongoClassRepo) find(filter bson.M) ([]models.WellnessClass, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []models.WellnessClass
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}
	return classes, nil
}

// Create inserts a new class document.
func (r *MongoClassRepo) Create(class *models.WellnessClass) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	class.CreatedAt = now
	class.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, class); err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

// UpdateStatus moves a class through the admin-review workflow.
func (r *MongoClassRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update class with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("class with id %s not found", id)
	}
	return nil
}

// Delete removes a class document by its ID.
func (r *MongoClassRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete class with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("class with id %s not found", id)
	}
	return nil
}
