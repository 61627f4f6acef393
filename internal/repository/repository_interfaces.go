// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/domain/model"
)

// PricingRulesRepositoryInterface defines the interface for pricing rules repository operations.
type PricingRulesRepositoryInterface interface {
	GetActive(ctx context.Context) (*PricingRulesConfig, error)
	Create(ctx context.Context, rules model.PricingRules, createdBy string) (*PricingRulesConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*PricingRulesConfig, error)
	List(ctx context.Context, limit int) ([]PricingRulesConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
