package petRepo

import (
	"context"
	"fmt"
	"time"

	"groomly/database"
	"groomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo creates a new instance of PetRepository using MongoDB.
func NewMongoPetRepo() PetRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("pets")
	repo := &MongoPetRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPetRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) Create(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (r *MongoPetRepo) GetByID(id string) (*models.Pet, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		return nil, fmt.Errorf("failed to fetch pet with id %s: %w", id, err)
	}
	return &pet, nil
}

func (r *MongoPetRepo) GetByOwner(ownerID string) ([]models.Pet, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pets for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}
	return pets, nil
}

func (r *MongoPetRepo) Update(pet *models.Pet) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pet.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": pet.ID}, pet)
	if err != nil {
		return fmt.Errorf("failed to update pet %s: %w", pet.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("pet %s not found", pet.ID)
	}
	return nil
}

func (r *MongoPetRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pet %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("pet %s not found", id)
	}
	return nil
}
