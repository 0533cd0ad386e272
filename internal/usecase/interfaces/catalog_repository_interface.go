package interfaces

import (
	"context"

	"builder_estimates/internal/domain/entities"
)

// ICatalogRepository is the read side of the package catalog.
//
// Single-item getters return a zero value (ID 0) when nothing matches.
// GetPackagesByIDs silently omits ids that do not exist and does not filter on
// IsActive.

type ICatalogRepository interface {
	GetPackage(ctx context.Context, id int64) (entities.PackageTemplate, error)
	GetPackagesByIDs(ctx context.Context, ids []int64) ([]entities.PackageTemplate, error)
	ListActivePackages(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageTemplate, error)
	GetCategory(ctx context.Context, id int64) (entities.Category, error)
	ListActiveCategories(ctx context.Context) ([]entities.Category, error)
	ListActiveSubCategories(ctx context.Context, categoryID int64) ([]entities.SubCategory, error)
	ListActiveInstallPhases(ctx context.Context) ([]entities.InstallPhase, error)
}

// ICatalogWriter loads catalog data. Only the seed command writes the catalog.

type ICatalogWriter interface {
	SaveCategory(ctx context.Context, c entities.Category) error
	SaveSubCategory(ctx context.Context, s entities.SubCategory) error
	SaveInstallPhase(ctx context.Context, p entities.InstallPhase) error
	SavePackage(ctx context.Context, p entities.PackageTemplate) error
}
