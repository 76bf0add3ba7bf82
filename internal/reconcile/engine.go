package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store persists the children of one relation. Every call is scoped to the parent.
type Store[C any] interface {
	ExistingIDs(ctx context.Context, parentID string) ([]string, error)
	Insert(ctx context.Context, parentID string, child C) error
	Update(ctx context.Context, parentID string, child C) error
	Delete(ctx context.Context, parentID string, ids []string) error
}

// Observer receives the outcome of every reconciliation.
type Observer interface {
	ObserveReconcile(relation string, result Result)
}

// Engine applies reconciliation plans.
type Engine struct {
	newID    func() string
	logger   *zap.Logger
	observer Observer
}

// Option customises an Engine.
type Option func(*Engine)

// WithIDGenerator overrides how ids for inserted children are minted.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithObserver reports results to o.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// NewEngine constructs an engine.
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{newID: uuid.NewString, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile loads the stored ids under parentID, plans against submitted and applies the plan.
// Deletes run first, then updates, then inserts. The first failing statement aborts the run and the
// returned Result counts the writes that did happen.
func Reconcile[C any](ctx context.Context, e *Engine, rel Relation[C], parentID string, submitted []C) (Result, error) {
	if e == nil {
		e = NewEngine(nil)
	}

	existing, err := rel.Store.ExistingIDs(ctx, parentID)
	if err != nil {
		return Result{}, fmt.Errorf("load %s: %w", rel.Name, err)
	}

	plan := BuildPlan(rel, existing, submitted, e.newID)
	res := Result{Kept: len(plan.Kept), Skipped: plan.Skipped, Stale: len(plan.Stale)}

	if len(plan.Stale) > 0 {
		e.logger.Warn("ignoring child ids not owned by parent",
			zap.String("relation", rel.Name),
			zap.String("parent_id", parentID),
			zap.Strings("ids", plan.Stale),
		)
	}

	err = apply(ctx, rel, parentID, plan, &res)
	if e.observer != nil {
		e.observer.ObserveReconcile(rel.Name, res)
	}
	if err != nil {
		e.logger.Warn("reconcile aborted",
			zap.String("relation", rel.Name),
			zap.String("parent_id", parentID),
			zap.Error(err),
		)
		return res, err
	}

	e.logger.Debug("children reconciled",
		zap.String("relation", rel.Name),
		zap.String("policy", rel.Policy.String()),
		zap.String("parent_id", parentID),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("deleted", res.Deleted),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func apply[C any](ctx context.Context, rel Relation[C], parentID string, plan Plan[C], res *Result) error {
	if len(plan.Deletes) > 0 {
		if err := rel.Store.Delete(ctx, parentID, plan.Deletes); err != nil {
			return fmt.Errorf("delete %s: %w", rel.Name, err)
		}
		res.Deleted = len(plan.Deletes)
	}

	for _, child := range plan.Updates {
		if err := rel.Store.Update(ctx, parentID, child); err != nil {
			return fmt.Errorf("update %s %s: %w", rel.Name, rel.ID(child), err)
		}
		res.Updated++
	}

	for _, child := range plan.Inserts {
		if err := rel.Store.Insert(ctx, parentID, child); err != nil {
			return fmt.Errorf("insert %s: %w", rel.Name, err)
		}
		res.Inserted++
	}

	return nil
}
