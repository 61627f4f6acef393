// Package repository provides data access for pricing rules.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/discount-service/internal/domain/model"
)

// PricingRulesConfig represents a versioned pricing rules document. A single
// document is active at any time; updates supersede rather than mutate.
type PricingRulesConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Rules     model.PricingRules     `bson:"rules" json:"rules"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// PricingRulesRepository provides methods for pricing rules operations.
type PricingRulesRepository struct {
	collection *mongo.Collection
}

// NewPricingRulesRepository creates a new pricing rules repository.
func NewPricingRulesRepository(db *MongoDB) *PricingRulesRepository {
	return &PricingRulesRepository{
		collection: db.PricingRules,
	}
}

// GetActive returns the active pricing rules configuration.
func (r *PricingRulesRepository) GetActive(ctx context.Context) (*PricingRulesConfig, error) {
	var config PricingRulesConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active config found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create creates a new pricing rules configuration and deactivates any
// previously active document.
func (r *PricingRulesRepository) Create(ctx context.Context, rules model.PricingRules, createdBy string) (*PricingRulesConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := PricingRulesConfig{
		ID:        primitive.NewObjectID(),
		Rules:     rules,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the rules of an existing configuration and bumps its version.
func (r *PricingRulesRepository) Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*PricingRulesConfig, error) {
	var current PricingRulesConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"rules":      rules,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config PricingRulesConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns pricing rules configurations, newest first.
func (r *PricingRulesRepository) List(ctx context.Context, limit int) ([]PricingRulesConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []PricingRulesConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
