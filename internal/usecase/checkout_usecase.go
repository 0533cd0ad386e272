package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"builder_estimates/internal/domain/cart"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrCartEmpty              = errors.New("cart is empty")
	ErrNoAvailablePackages    = errors.New("no package in the cart is still available")
	ErrInvalidGuestContact    = errors.New("company name, contact person and email are required")
	ErrEstimateNumberConflict = errors.New("could not allocate an estimate number")
)

const DefaultCheckoutAttempts = 3

var tracer = otel.Tracer("builder_estimates/internal/usecase")

// GuestContact identifies a builder checking out without an account.
type GuestContact struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
}

// CheckoutInput carries either an authenticated BuilderID or a Guest contact.
type CheckoutInput struct {
	BuilderID   string
	Guest       *GuestContact
	ClientName  string
	ClientEmail string
	Notes       string
}

// ICheckoutUseCase turns the session cart into a persisted estimate.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, c *cart.Cart, in CheckoutInput) (entities.Estimate, error)
}

type CheckoutUseCase struct {
	repo        interfaces.IEstimateRepository
	catalog     interfaces.ICatalogRepository
	log         *logger.Logger
	maxAttempts int
	now         func() time.Time
	newID       func() string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IEstimateRepository, catalog interfaces.ICatalogRepository, log *logger.Logger, maxAttempts int) *CheckoutUseCase {
	if maxAttempts <= 0 {
		maxAttempts = DefaultCheckoutAttempts
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &CheckoutUseCase{
		repo:        repo,
		catalog:     catalog,
		log:         log.With("component", "CheckoutUseCase"),
		maxAttempts: maxAttempts,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Checkout validates the cart and the buyer, snapshots every available line and
// writes builder, estimate and items in one atomic store call. The cart is cleared
// only after the write commits; on any error it is left untouched.
func (u *CheckoutUseCase) Checkout(ctx context.Context, c *cart.Cart, in CheckoutInput) (entities.Estimate, error) {
	ctx, span := tracer.Start(ctx, "CheckoutUseCase.Checkout")
	defer span.End()

	created, err := u.checkout(ctx, c, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entities.Estimate{}, err
	}
	span.SetAttributes(
		attribute.String("estimate.number", created.EstimateNumber),
		attribute.Int("estimate.items", len(created.Items)),
	)
	return created, nil
}

func (u *CheckoutUseCase) checkout(ctx context.Context, c *cart.Cart, in CheckoutInput) (entities.Estimate, error) {
	if c.Len() <= 0 {
		return entities.Estimate{}, ErrCartEmpty
	}

	draft, err := u.newDraft(in)
	if err != nil {
		return entities.Estimate{}, err
	}

	lines, err := c.Iter(ctx, u.catalog)
	if err != nil {
		return entities.Estimate{}, err
	}
	for item := range lines {
		if item.Orphaned() {
			u.log.Warn("skipping cart line for missing package", "package_id", item.PackageID, "name", item.Name)
			continue
		}
		packageID := item.Package.ID
		draft.Items = append(draft.Items, entities.EstimateItem{
			ID:                  u.newID(),
			EstimateID:          draft.Estimate.ID,
			PackageID:           &packageID,
			PriceLowSnapshot:    item.PriceLow,
			PriceHighSnapshot:   item.PriceHigh,
			PackageNameSnapshot: item.Name,
			QuantitySnapshot:    item.Quantity,
		})
	}
	if len(draft.Items) == 0 {
		return entities.Estimate{}, ErrNoAvailablePackages
	}

	draft.Estimate.TotalLow = c.TotalLow()
	draft.Estimate.TotalHigh = c.TotalHigh()

	var created entities.Estimate
	for attempt := 1; ; attempt++ {
		created, err = u.repo.CreateWithItems(ctx, draft)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrWriteConflict) {
			u.log.Error("checkout write failed", "estimate_id", draft.Estimate.ID, "error", err)
			return entities.Estimate{}, err
		}
		if attempt >= u.maxAttempts {
			u.log.Error("checkout gave up after write conflicts", "attempts", attempt)
			return entities.Estimate{}, ErrEstimateNumberConflict
		}
		u.log.Warn("checkout write conflict, retrying", "attempt", attempt)
	}

	c.Clear()
	u.log.Info("estimate created", "estimate_number", created.EstimateNumber, "builder_id", created.BuilderID, "items", len(created.Items))
	return created, nil
}

func (u *CheckoutUseCase) newDraft(in CheckoutInput) (entities.EstimateDraft, error) {
	now := u.now().UTC()
	draft := entities.EstimateDraft{
		Estimate: entities.Estimate{
			ID:          u.newID(),
			ClientName:  strings.TrimSpace(in.ClientName),
			ClientEmail: strings.TrimSpace(in.ClientEmail),
			Notes:       strings.TrimSpace(in.Notes),
			Status:      entities.EstimateStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	if builderID := strings.TrimSpace(in.BuilderID); builderID != "" {
		draft.Estimate.BuilderID = builderID
		return draft, nil
	}

	if in.Guest == nil {
		return entities.EstimateDraft{}, ErrInvalidGuestContact
	}
	guest := entities.Builder{
		ID:            u.newID(),
		Email:         strings.ToLower(strings.TrimSpace(in.Guest.Email)),
		CompanyName:   strings.TrimSpace(in.Guest.CompanyName),
		ContactPerson: strings.TrimSpace(in.Guest.ContactPerson),
		Phone:         strings.TrimSpace(in.Guest.Phone),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if guest.Email == "" || guest.CompanyName == "" || guest.ContactPerson == "" {
		return entities.EstimateDraft{}, ErrInvalidGuestContact
	}
	draft.Guest = &guest
	return draft, nil
}
