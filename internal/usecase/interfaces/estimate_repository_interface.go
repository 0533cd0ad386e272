package interfaces

import (
	"context"
	"errors"

	"builder_estimates/internal/domain/entities"
)

var (
	// ErrWriteConflict reports that a concurrent checkout won the race for the same
	// estimate number or guest email. Nothing was written; the caller may retry.
	ErrWriteConflict = errors.New("concurrent write conflict")
	// ErrBuilderNotFound reports an authenticated builder id unknown to the store.
	ErrBuilderNotFound = errors.New("builder not found")
	// ErrCheckoutTooLarge reports a cart with more lines than one atomic write can hold.
	ErrCheckoutTooLarge = errors.New("checkout exceeds the maximum number of line items")
)

// IEstimateRepository abstracts persistence for Estimate and EstimateItem.
//
// CreateWithItems is the checkout's transactional boundary: builder upsert,
// estimate numbering, the estimate row and every item row commit together or not
// at all.
//
// Getters return a zero Estimate (empty ID) when nothing matches.

type IEstimateRepository interface {
	CreateWithItems(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error)
	GetByNumber(ctx context.Context, estimateNumber string) (entities.Estimate, error)
	ListByBuilder(ctx context.Context, builderID string) ([]entities.Estimate, error)
	UpdateStatusByNumber(ctx context.Context, estimateNumber string, status entities.EstimateStatus) (entities.Estimate, error)
}
