package usecase

import (
	"context"
	"errors"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"
)

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidPackageID  = errors.New("invalid package id")
	ErrInvalidCategoryID = errors.New("invalid category id")
	ErrPageNotFound      = errors.New("page not found")
)

const (
	DefaultCatalogPageSize = 12
	FeaturedPackagesLimit  = 6
)

// PackagePage is one page of an active package listing.
type PackagePage struct {
	Packages   []entities.PackageTemplate
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

func (p PackagePage) HasNext() bool     { return p.Page < p.TotalPages }
func (p PackagePage) HasPrevious() bool { return p.Page > 1 }

// PackageDetail is a package with its category, subcategory and install phases resolved.
type PackageDetail struct {
	Package       entities.PackageTemplate
	Category      entities.Category
	SubCategory   *entities.SubCategory
	InstallPhases []entities.InstallPhase
	RequiresPhase *entities.InstallPhase
}

type CategoryWithSubCategories struct {
	Category      entities.Category
	SubCategories []entities.SubCategory
}

// CategoryListing is the browse page of one category.
type CategoryListing struct {
	Category      entities.Category
	SubCategories []entities.SubCategory
	Packages      PackagePage
}

// ICatalogUseCase exposes catalog browsing. Only active packages, categories and
// subcategories are ever listed.

type ICatalogUseCase interface {
	ListPackages(ctx context.Context, page int) (PackagePage, error)
	FeaturedPackages(ctx context.Context) ([]entities.PackageTemplate, error)
	GetPackageDetail(ctx context.Context, id int64) (PackageDetail, error)
	ListCategories(ctx context.Context) ([]CategoryWithSubCategories, error)
	ListCategoryPackages(ctx context.Context, categoryID, subCategoryID int64, page int) (CategoryListing, error)
}

type CatalogUseCase struct {
	repo     interfaces.ICatalogRepository
	pageSize int
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, pageSize int) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = DefaultCatalogPageSize
	}
	return &CatalogUseCase{repo: repo, pageSize: pageSize}
}

func (u *CatalogUseCase) ListPackages(ctx context.Context, page int) (PackagePage, error) {
	pkgs, err := u.repo.ListActivePackages(ctx, entities.PackageFilter{})
	if err != nil {
		return PackagePage{}, err
	}
	return paginate(pkgs, page, u.pageSize)
}

func (u *CatalogUseCase) FeaturedPackages(ctx context.Context) ([]entities.PackageTemplate, error) {
	pkgs, err := u.repo.ListActivePackages(ctx, entities.PackageFilter{})
	if err != nil {
		return nil, err
	}
	if len(pkgs) > FeaturedPackagesLimit {
		pkgs = pkgs[:FeaturedPackagesLimit]
	}
	return pkgs, nil
}

func (u *CatalogUseCase) GetPackageDetail(ctx context.Context, id int64) (PackageDetail, error) {
	if id <= 0 {
		return PackageDetail{}, ErrInvalidPackageID
	}

	p, err := u.repo.GetPackage(ctx, id)
	if err != nil {
		return PackageDetail{}, err
	}
	if p.ID == 0 || !p.IsActive {
		return PackageDetail{}, ErrPackageNotFound
	}

	detail := PackageDetail{Package: p}

	category, err := u.repo.GetCategory(ctx, p.CategoryID)
	if err != nil {
		return PackageDetail{}, err
	}
	detail.Category = category

	if p.SubCategoryID != nil {
		subs, err := u.repo.ListActiveSubCategories(ctx, p.CategoryID)
		if err != nil {
			return PackageDetail{}, err
		}
		for i := range subs {
			if subs[i].ID == *p.SubCategoryID {
				sub := subs[i]
				detail.SubCategory = &sub
				break
			}
		}
	}

	if len(p.InstallPhaseIDs) > 0 || p.RequiresPhaseID != nil {
		phases, err := u.repo.ListActiveInstallPhases(ctx)
		if err != nil {
			return PackageDetail{}, err
		}
		wanted := make(map[int64]bool, len(p.InstallPhaseIDs))
		for _, id := range p.InstallPhaseIDs {
			wanted[id] = true
		}
		for i := range phases {
			phase := phases[i]
			if wanted[phase.ID] {
				detail.InstallPhases = append(detail.InstallPhases, phase)
			}
			if p.RequiresPhaseID != nil && *p.RequiresPhaseID == phase.ID {
				detail.RequiresPhase = &phase
			}
		}
	}

	return detail, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryWithSubCategories, error) {
	categories, err := u.repo.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryWithSubCategories, 0, len(categories))
	for _, c := range categories {
		subs, err := u.repo.ListActiveSubCategories(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryWithSubCategories{Category: c, SubCategories: subs})
	}
	return out, nil
}

func (u *CatalogUseCase) ListCategoryPackages(ctx context.Context, categoryID, subCategoryID int64, page int) (CategoryListing, error) {
	if categoryID <= 0 {
		return CategoryListing{}, ErrInvalidCategoryID
	}

	category, err := u.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return CategoryListing{}, err
	}
	if category.ID == 0 || !category.IsActive {
		return CategoryListing{}, ErrCategoryNotFound
	}

	subs, err := u.repo.ListActiveSubCategories(ctx, categoryID)
	if err != nil {
		return CategoryListing{}, err
	}

	filter := entities.PackageFilter{CategoryID: categoryID}
	if subCategoryID > 0 {
		filter.SubCategoryID = subCategoryID
	}
	pkgs, err := u.repo.ListActivePackages(ctx, filter)
	if err != nil {
		return CategoryListing{}, err
	}

	pageResult, err := paginate(pkgs, page, u.pageSize)
	if err != nil {
		return CategoryListing{}, err
	}

	return CategoryListing{Category: category, SubCategories: subs, Packages: pageResult}, nil
}

// paginate mirrors the browse pages: the first page always exists, even when empty.
func paginate(pkgs []entities.PackageTemplate, page, size int) (PackagePage, error) {
	if page == 0 {
		page = 1
	}
	total := len(pkgs)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		return PackagePage{}, ErrPageNotFound
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return PackagePage{
		Packages:   pkgs[start:end],
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
