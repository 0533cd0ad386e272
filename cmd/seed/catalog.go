package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Categories    []categoryDoc `yaml:"categories"`
	SubCategories []subDoc      `yaml:"subcategories"`
	InstallPhases []phaseDoc    `yaml:"install_phases"`
	Packages      []packageDoc  `yaml:"packages"`
}

type categoryDoc struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
	Active      *bool  `yaml:"is_active"`
}

type subDoc struct {
	ID          int64  `yaml:"id"`
	CategoryID  int64  `yaml:"category_id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
	Active      *bool  `yaml:"is_active"`
}

type phaseDoc struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
	Active      *bool  `yaml:"is_active"`
}

// Prices stay strings so YAML never routes them through float64.
type packageDoc struct {
	ID                       int64   `yaml:"id"`
	Name                     string  `yaml:"name"`
	CategoryID               int64   `yaml:"category_id"`
	SubCategoryID            *int64  `yaml:"subcategory_id"`
	Description              string  `yaml:"description"`
	PriceLow                 string  `yaml:"price_low"`
	PriceHigh                string  `yaml:"price_high"`
	PriceNotes               string  `yaml:"price_notes"`
	BundleDiscountNote       string  `yaml:"bundle_discount_note"`
	UtilityIncentiveEligible bool    `yaml:"utility_incentive_eligible"`
	InstallPhaseIDs          []int64 `yaml:"install_phase_ids"`
	RequiresPhaseID          *int64  `yaml:"requires_phase_id"`
	Active                   *bool   `yaml:"is_active"`
}

// Catalog is a parsed, cross-checked seed file.
type Catalog struct {
	Categories    []entities.Category
	SubCategories []entities.SubCategory
	InstallPhases []entities.InstallPhase
	Packages      []entities.PackageTemplate
}

func active(b *bool) bool { return b == nil || *b }

// ParseCatalog decodes a seed file and checks that every reference points at a
// record in the same file.
func ParseCatalog(r io.Reader, now time.Time) (Catalog, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	var out Catalog
	categories := map[int64]bool{}
	for _, c := range doc.Categories {
		if c.ID <= 0 || c.Name == "" {
			return Catalog{}, fmt.Errorf("category %d: id and name are required", c.ID)
		}
		categories[c.ID] = true
		out.Categories = append(out.Categories, entities.Category{
			ID: c.ID, Name: c.Name, Description: c.Description, Order: c.Order, IsActive: active(c.Active),
		})
	}

	subCategories := map[int64]int64{}
	for _, s := range doc.SubCategories {
		if s.ID <= 0 || s.Name == "" {
			return Catalog{}, fmt.Errorf("subcategory %d: id and name are required", s.ID)
		}
		if !categories[s.CategoryID] {
			return Catalog{}, fmt.Errorf("subcategory %d: unknown category %d", s.ID, s.CategoryID)
		}
		subCategories[s.ID] = s.CategoryID
		out.SubCategories = append(out.SubCategories, entities.SubCategory{
			ID: s.ID, CategoryID: s.CategoryID, Name: s.Name, Description: s.Description, Order: s.Order, IsActive: active(s.Active),
		})
	}

	phases := map[int64]bool{}
	for _, p := range doc.InstallPhases {
		if p.ID <= 0 || p.Name == "" {
			return Catalog{}, fmt.Errorf("install phase %d: id and name are required", p.ID)
		}
		phases[p.ID] = true
		out.InstallPhases = append(out.InstallPhases, entities.InstallPhase{
			ID: p.ID, Name: p.Name, Description: p.Description, Order: p.Order, IsActive: active(p.Active),
		})
	}

	for _, p := range doc.Packages {
		pkg, err := p.toEntity(categories, subCategories, phases, now)
		if err != nil {
			return Catalog{}, err
		}
		out.Packages = append(out.Packages, pkg)
	}
	return out, nil
}

func (p packageDoc) toEntity(categories map[int64]bool, subCategories map[int64]int64, phases map[int64]bool, now time.Time) (entities.PackageTemplate, error) {
	if p.ID <= 0 || p.Name == "" {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: id and name are required", p.ID)
	}
	if !categories[p.CategoryID] {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: unknown category %d", p.ID, p.CategoryID)
	}
	if p.SubCategoryID != nil {
		parent, ok := subCategories[*p.SubCategoryID]
		if !ok || parent != p.CategoryID {
			return entities.PackageTemplate{}, fmt.Errorf("package %d: subcategory %d is not under category %d", p.ID, *p.SubCategoryID, p.CategoryID)
		}
	}
	for _, id := range p.InstallPhaseIDs {
		if !phases[id] {
			return entities.PackageTemplate{}, fmt.Errorf("package %d: unknown install phase %d", p.ID, id)
		}
	}
	if p.RequiresPhaseID != nil && !phases[*p.RequiresPhaseID] {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: unknown required phase %d", p.ID, *p.RequiresPhaseID)
	}

	low, err := decimal.NewFromString(p.PriceLow)
	if err != nil {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: price_low: %w", p.ID, err)
	}
	high, err := decimal.NewFromString(p.PriceHigh)
	if err != nil {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: price_high: %w", p.ID, err)
	}
	if low.IsNegative() || high.IsNegative() {
		return entities.PackageTemplate{}, fmt.Errorf("package %d: prices must not be negative", p.ID)
	}

	return entities.PackageTemplate{
		ID:                       p.ID,
		Name:                     p.Name,
		CategoryID:               p.CategoryID,
		SubCategoryID:            p.SubCategoryID,
		Description:              p.Description,
		PriceLow:                 low.Round(2),
		PriceHigh:                high.Round(2),
		PriceNotes:               p.PriceNotes,
		BundleDiscountNote:       p.BundleDiscountNote,
		UtilityIncentiveEligible: p.UtilityIncentiveEligible,
		InstallPhaseIDs:          p.InstallPhaseIDs,
		RequiresPhaseID:          p.RequiresPhaseID,
		IsActive:                 active(p.Active),
		CreatedAt:                now,
		UpdatedAt:                now,
	}, nil
}

// Load writes the catalog parents first so foreign keys hold in Postgres.
func (c Catalog) Load(ctx context.Context, w interfaces.ICatalogWriter) error {
	for _, cat := range c.Categories {
		if err := w.SaveCategory(ctx, cat); err != nil {
			return fmt.Errorf("category %d: %w", cat.ID, err)
		}
	}
	for _, s := range c.SubCategories {
		if err := w.SaveSubCategory(ctx, s); err != nil {
			return fmt.Errorf("subcategory %d: %w", s.ID, err)
		}
	}
	for _, p := range c.InstallPhases {
		if err := w.SaveInstallPhase(ctx, p); err != nil {
			return fmt.Errorf("install phase %d: %w", p.ID, err)
		}
	}
	for _, p := range c.Packages {
		if err := w.SavePackage(ctx, p); err != nil {
			return fmt.Errorf("package %d: %w", p.ID, err)
		}
	}
	return nil
}
