package usecase

import (
	"context"
	"errors"

	"builder_estimates/internal/domain/cart"
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// CartSummary is the cart page: every line in package id order, orphans included.
type CartSummary struct {
	Items     []cart.Item
	Count     int
	TotalLow  decimal.Decimal
	TotalHigh decimal.Decimal
}

// ICartUseCase mutates the session cart. The cart itself is loaded and saved by the
// session middleware; these operations only validate against the catalog.

type ICartUseCase interface {
	AddPackage(ctx context.Context, c *cart.Cart, packageID int64, quantity int) (entities.PackageTemplate, error)
	UpdatePackage(ctx context.Context, c *cart.Cart, packageID int64, quantity int) (pkg entities.PackageTemplate, kept bool, err error)
	RemovePackage(ctx context.Context, c *cart.Cart, packageID int64) (string, error)
	Summary(ctx context.Context, c *cart.Cart) (CartSummary, error)
	Clear(ctx context.Context, c *cart.Cart)
}

type CartUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(catalog interfaces.ICatalogRepository) *CartUseCase {
	return &CartUseCase{catalog: catalog}
}

// AddPackage accumulates quantity onto the line for an active package.
func (u *CartUseCase) AddPackage(ctx context.Context, c *cart.Cart, packageID int64, quantity int) (entities.PackageTemplate, error) {
	if quantity < 1 {
		return entities.PackageTemplate{}, ErrInvalidQuantity
	}
	p, err := u.activePackage(ctx, packageID)
	if err != nil {
		return entities.PackageTemplate{}, err
	}
	c.Add(p, quantity, false)
	return p, nil
}

// UpdatePackage overwrites the quantity; zero or less removes the line.
func (u *CartUseCase) UpdatePackage(ctx context.Context, c *cart.Cart, packageID int64, quantity int) (entities.PackageTemplate, bool, error) {
	p, err := u.activePackage(ctx, packageID)
	if err != nil {
		return entities.PackageTemplate{}, false, err
	}
	kept := c.Update(p, quantity)
	return p, kept, nil
}

// RemovePackage drops a line and returns the name to show the user. A line whose
// package left the catalog can still be removed by id.
func (u *CartUseCase) RemovePackage(ctx context.Context, c *cart.Cart, packageID int64) (string, error) {
	if packageID <= 0 {
		return "", ErrInvalidPackageID
	}
	p, err := u.catalog.GetPackage(ctx, packageID)
	if err != nil {
		return "", err
	}

	name := p.Name
	if p.ID == 0 {
		line, ok := c.Line(packageID)
		if !ok {
			return "", ErrPackageNotFound
		}
		name = line.Name
	}

	c.Remove(packageID)
	return name, nil
}

func (u *CartUseCase) Summary(ctx context.Context, c *cart.Cart) (CartSummary, error) {
	items, err := c.Items(ctx, u.catalog)
	if err != nil {
		return CartSummary{}, err
	}
	return CartSummary{
		Items:     items,
		Count:     c.Len(),
		TotalLow:  c.TotalLow(),
		TotalHigh: c.TotalHigh(),
	}, nil
}

func (u *CartUseCase) Clear(_ context.Context, c *cart.Cart) {
	c.Clear()
}

func (u *CartUseCase) activePackage(ctx context.Context, packageID int64) (entities.PackageTemplate, error) {
	if packageID <= 0 {
		return entities.PackageTemplate{}, ErrInvalidPackageID
	}
	p, err := u.catalog.GetPackage(ctx, packageID)
	if err != nil {
		return entities.PackageTemplate{}, err
	}
	if p.ID == 0 || !p.IsActive {
		return entities.PackageTemplate{}, ErrPackageNotFound
	}
	return p, nil
}
