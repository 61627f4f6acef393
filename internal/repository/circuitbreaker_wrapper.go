// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/discount-service/internal/circuitbreaker"
	"github.com/guttosm/discount-service/internal/domain/model"
)

// PricingRulesRepositoryWithCircuitBreaker wraps PricingRulesRepository with circuit breaker protection.
type PricingRulesRepositoryWithCircuitBreaker struct {
	repo           *PricingRulesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPricingRulesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPricingRulesRepositoryWithCircuitBreaker(repo *PricingRulesRepository, cb *circuitbreaker.CircuitBreaker) *PricingRulesRepositoryWithCircuitBreaker {
	return &PricingRulesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active pricing rules configuration with circuit breaker protection.
func (r *PricingRulesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*PricingRulesConfig, error) {
	var result *PricingRulesConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil so callers fall back to built-in rules
		return nil, nil
	}
	return result, err
}

// Create creates a new pricing rules configuration with circuit breaker protection.
func (r *PricingRulesRepositoryWithCircuitBreaker) Create(ctx context.Context, rules model.PricingRules, createdBy string) (*PricingRulesConfig, error) {
	var result *PricingRulesConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, rules, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing pricing rules configuration with circuit breaker protection.
func (r *PricingRulesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, rules model.PricingRules, updatedBy string) (*PricingRulesConfig, error) {
	var result *PricingRulesConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, rules, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns pricing rules configurations with circuit breaker protection.
func (r *PricingRulesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]PricingRulesConfig, error) {
	var result []PricingRulesConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PricingRulesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
