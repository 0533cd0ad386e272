package response

import (
	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase"
)

type PackageResponse struct {
	ID                       int64   `json:"id"`
	Name                     string  `json:"name"`
	CategoryID               int64   `json:"category_id"`
	SubCategoryID            *int64  `json:"subcategory_id"`
	Description              string  `json:"description"`
	PriceLow                 string  `json:"price_low"`
	PriceHigh                string  `json:"price_high"`
	PriceNotes               string  `json:"price_notes,omitempty"`
	BundleDiscountNote       string  `json:"bundle_discount_note,omitempty"`
	UtilityIncentiveEligible bool    `json:"utility_incentive_eligible"`
	InstallPhaseIDs          []int64 `json:"install_phase_ids"`
	RequiresPhaseID          *int64  `json:"requires_phase_id"`
}

type CategoryResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Order         int                   `json:"order"`
	SubCategories []SubCategoryResponse `json:"subcategories,omitempty"`
}

type SubCategoryResponse struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type InstallPhaseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type PackagePageResponse struct {
	Packages    []PackageResponse `json:"packages"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	Total       int               `json:"total"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

type PackageDetailResponse struct {
	Package       PackageResponse        `json:"package"`
	Category      CategoryResponse       `json:"category"`
	SubCategory   *SubCategoryResponse   `json:"subcategory"`
	InstallPhases []InstallPhaseResponse `json:"install_phases"`
	RequiresPhase *InstallPhaseResponse  `json:"requires_phase"`
}

type CategoryListingResponse struct {
	Category      CategoryResponse      `json:"category"`
	SubCategories []SubCategoryResponse `json:"subcategories"`
	Packages      PackagePageResponse   `json:"packages"`
}

func FromPackage(p entities.PackageTemplate) PackageResponse {
	phases := p.InstallPhaseIDs
	if phases == nil {
		phases = []int64{}
	}
	return PackageResponse{
		ID:                       p.ID,
		Name:                     p.Name,
		CategoryID:               p.CategoryID,
		SubCategoryID:            p.SubCategoryID,
		Description:              p.Description,
		PriceLow:                 money(p.PriceLow),
		PriceHigh:                money(p.PriceHigh),
		PriceNotes:               p.PriceNotes,
		BundleDiscountNote:       p.BundleDiscountNote,
		UtilityIncentiveEligible: p.UtilityIncentiveEligible,
		InstallPhaseIDs:          phases,
		RequiresPhaseID:          p.RequiresPhaseID,
	}
}

func FromPackages(pkgs []entities.PackageTemplate) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromPackage(p))
	}
	return out
}

func FromPackagePage(p usecase.PackagePage) PackagePageResponse {
	return PackagePageResponse{
		Packages:    FromPackages(p.Packages),
		Page:        p.Page,
		PageSize:    p.PageSize,
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, Order: c.Order}
}

func FromSubCategory(s entities.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{ID: s.ID, CategoryID: s.CategoryID, Name: s.Name, Description: s.Description, Order: s.Order}
}

func FromSubCategories(subs []entities.SubCategory) []SubCategoryResponse {
	out := make([]SubCategoryResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubCategory(s))
	}
	return out
}

func FromInstallPhase(p entities.InstallPhase) InstallPhaseResponse {
	return InstallPhaseResponse{ID: p.ID, Name: p.Name, Description: p.Description, Order: p.Order}
}

func FromPackageDetail(d usecase.PackageDetail) PackageDetailResponse {
	res := PackageDetailResponse{
		Package:       FromPackage(d.Package),
		Category:      FromCategory(d.Category),
		InstallPhases: make([]InstallPhaseResponse, 0, len(d.InstallPhases)),
	}
	if d.SubCategory != nil {
		s := FromSubCategory(*d.SubCategory)
		res.SubCategory = &s
	}
	for _, p := range d.InstallPhases {
		res.InstallPhases = append(res.InstallPhases, FromInstallPhase(p))
	}
	if d.RequiresPhase != nil {
		p := FromInstallPhase(*d.RequiresPhase)
		res.RequiresPhase = &p
	}
	return res
}

func FromCategoriesWithSubCategories(cats []usecase.CategoryWithSubCategories) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		res := FromCategory(c.Category)
		res.SubCategories = FromSubCategories(c.SubCategories)
		out = append(out, res)
	}
	return out
}

func FromCategoryListing(l usecase.CategoryListing) CategoryListingResponse {
	return CategoryListingResponse{
		Category:      FromCategory(l.Category),
		SubCategories: FromSubCategories(l.SubCategories),
		Packages:      FromPackagePage(l.Packages),
	}
}
