package catalogRepo

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

type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("services")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) Create(service *models.GroomService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetByID(id string) (*models.GroomService, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.GroomService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoCatalogRepo) GetAll(activeOnly bool) ([]models.GroomService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.GroomService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) Update(service *models.GroomService) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": service.ID}, service)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", service.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) SetActive(id string, active bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}
