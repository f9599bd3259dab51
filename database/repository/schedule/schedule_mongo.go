package scheduleRepo

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

type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new instance of ScheduleRepository using MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("scheduleRules")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stylistId", Value: 1}, {Key: "weekday", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) Create(rule *models.ScheduleRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to create schedule rule: %w", err)
	}
	return nil
}

func (r *MongoScheduleRepo) GetByID(id string) (*models.ScheduleRule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rule models.ScheduleRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule rule with id %s: %w", id, err)
	}
	return &rule, nil
}

func (r *MongoScheduleRepo) GetByStylist(stylistID string) ([]models.ScheduleRule, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"stylistId": stylistID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule rules for stylist %s: %w", stylistID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.ScheduleRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode schedule rules: %w", err)
	}
	return rules, nil
}

func (r *MongoScheduleRepo) Update(rule *models.ScheduleRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": rule.ID}, rule)
	if err != nil {
		return fmt.Errorf("failed to update schedule rule %s: %w", rule.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule rule %s not found", rule.ID)
	}
	return nil
}

func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule rule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("schedule rule %s not found", id)
	}
	return nil
}
