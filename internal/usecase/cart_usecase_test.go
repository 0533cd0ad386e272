package usecase

import (
	"context"
	"errors"
	"testing"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/domain/session"
	mock_interfaces "builder_estimates/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pricedPackage(id int64, name, low, high string) entities.PackageTemplate {
	return entities.PackageTemplate{
		ID:        id,
		Name:      name,
		PriceLow:  decimal.RequireFromString(low),
		PriceHigh: decimal.RequireFromString(high),
		IsActive:  true,
	}
}

func TestCartUseCase_AddPackage(t *testing.T) {
	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		c := session.New("s1").Cart()
		if _, err := uc.AddPackage(context.Background(), c, 1, 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("inactive package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(repo)

		p := pricedPackage(1, "A", "1", "2")
		p.IsActive = false
		repo.EXPECT().GetPackage(gomock.Any(), int64(1)).Return(p, nil)

		c := session.New("s1").Cart()
		if _, err := uc.AddPackage(context.Background(), c, 1, 1); !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
		if c.Len() != 0 {
			t.Fatalf("cart must be untouched")
		}
	})

	t.Run("accumulates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().GetPackage(gomock.Any(), int64(1)).Return(pricedPackage(1, "A", "100.00", "150.00"), nil).Times(2)

		s := session.New("s1")
		c := s.Cart()
		if _, err := uc.AddPackage(context.Background(), c, 1, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.AddPackage(context.Background(), c, 1, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() != 3 || !s.Modified() {
			t.Fatalf("expected 3 in a modified session, got %d", c.Len())
		}
	})
}

func TestCartUseCase_UpdatePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCartUseCase(repo)

	repo.EXPECT().GetPackage(gomock.Any(), int64(1)).Return(pricedPackage(1, "A", "1", "2"), nil).AnyTimes()

	c := session.New("s1").Cart()
	if _, kept, err := uc.UpdatePackage(context.Background(), c, 1, 4); err != nil || !kept {
		t.Fatalf("unexpected result: kept=%v err=%v", kept, err)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4, got %d", c.Len())
	}
	if _, kept, err := uc.UpdatePackage(context.Background(), c, 1, 0); err != nil || kept {
		t.Fatalf("expected removal, kept=%v err=%v", kept, err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cart")
	}
}

func TestCartUseCase_RemovePackage(t *testing.T) {
	t.Run("unknown package not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().GetPackage(gomock.Any(), int64(9)).Return(entities.PackageTemplate{}, nil)

		c := session.New("s1").Cart()
		if _, err := uc.RemovePackage(context.Background(), c, 9); !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("orphaned line can be removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(repo)

		c := session.New("s1").Cart()
		c.Add(pricedPackage(9, "Retired", "1", "2"), 1, false)
		repo.EXPECT().GetPackage(gomock.Any(), int64(9)).Return(entities.PackageTemplate{}, nil)

		name, err := uc.RemovePackage(context.Background(), c, 9)
		if err != nil || name != "Retired" {
			t.Fatalf("unexpected result: %q %v", name, err)
		}
		if c.Distinct() != 0 {
			t.Fatalf("expected line removed")
		}
	})

	t.Run("inactive package in catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(repo)

		p := pricedPackage(3, "Old", "1", "2")
		p.IsActive = false
		c := session.New("s1").Cart()
		c.Add(p, 2, false)
		repo.EXPECT().GetPackage(gomock.Any(), int64(3)).Return(p, nil)

		if name, err := uc.RemovePackage(context.Background(), c, 3); err != nil || name != "Old" {
			t.Fatalf("unexpected result: %q %v", name, err)
		}
	})
}

func TestCartUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCartUseCase(repo)

	c := session.New("s1").Cart()
	c.Add(pricedPackage(1, "A", "100.00", "150.00"), 2, false)
	c.Add(pricedPackage(2, "B", "50.00", "80.00"), 1, false)

	repo.EXPECT().GetPackagesByIDs(gomock.Any(), gomock.Any()).Return([]entities.PackageTemplate{pricedPackage(1, "A", "1", "1")}, nil)

	sum, err := uc.Summary(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Count != 3 || len(sum.Items) != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if !sum.TotalLow.Equal(decimal.RequireFromString("250.00")) || !sum.TotalHigh.Equal(decimal.RequireFromString("380.00")) {
		t.Fatalf("unexpected totals %s/%s", sum.TotalLow, sum.TotalHigh)
	}
	if sum.Items[0].Orphaned() || !sum.Items[1].Orphaned() {
		t.Fatalf("expected second line orphaned")
	}
}
