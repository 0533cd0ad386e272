package usecase

import (
	"context"
	"errors"
	"strings"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/domain/numbering"
	"builder_estimates/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateNumber = errors.New("invalid estimate number")
	ErrInvalidEstimateStatus = errors.New("invalid estimate status")
	ErrInvalidBuilderID      = errors.New("invalid builder id")
)

// IEstimateUseCase exposes read access to persisted estimates and the admin status
// change.
//
//   - thank-you page => GetByNumber()
//   - builder dashboard => ListForBuilder()
//   - estimate detail (owner only) => GetForBuilder()
//   - admin status change => UpdateStatus()

type IEstimateUseCase interface {
	GetByNumber(ctx context.Context, estimateNumber string) (entities.Estimate, error)
	GetForBuilder(ctx context.Context, estimateNumber, builderID string) (entities.Estimate, error)
	ListForBuilder(ctx context.Context, builderID string) ([]entities.Estimate, error)
	UpdateStatus(ctx context.Context, estimateNumber string, status entities.EstimateStatus) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) GetByNumber(ctx context.Context, estimateNumber string) (entities.Estimate, error) {
	estimateNumber, err := normalizeEstimateNumber(estimateNumber)
	if err != nil {
		return entities.Estimate{}, err
	}

	e, err := u.repo.GetByNumber(ctx, estimateNumber)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// GetForBuilder hides estimates owned by someone else behind ErrEstimateNotFound.
func (u *EstimateUseCase) GetForBuilder(ctx context.Context, estimateNumber, builderID string) (entities.Estimate, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return entities.Estimate{}, ErrInvalidBuilderID
	}

	e, err := u.GetByNumber(ctx, estimateNumber)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.BuilderID != builderID {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// ListForBuilder returns the builder's estimates newest first.
func (u *EstimateUseCase) ListForBuilder(ctx context.Context, builderID string) ([]entities.Estimate, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return nil, ErrInvalidBuilderID
	}
	return u.repo.ListByBuilder(ctx, builderID)
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, estimateNumber string, status entities.EstimateStatus) (entities.Estimate, error) {
	estimateNumber, err := normalizeEstimateNumber(estimateNumber)
	if err != nil {
		return entities.Estimate{}, err
	}
	status = entities.EstimateStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.Estimate{}, ErrInvalidEstimateStatus
	}

	updated, err := u.repo.UpdateStatusByNumber(ctx, estimateNumber, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func normalizeEstimateNumber(estimateNumber string) (string, error) {
	estimateNumber = strings.ToUpper(strings.TrimSpace(estimateNumber))
	if _, _, err := numbering.Parse(estimateNumber); err != nil {
		return "", ErrInvalidEstimateNumber
	}
	return estimateNumber, nil
}
