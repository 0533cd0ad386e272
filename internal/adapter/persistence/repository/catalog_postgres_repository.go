package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const packageColumns = `p.id, p.name, p.category_id, p.subcategory_id, p.description,
       p.price_low, p.price_high, p.price_notes, p.bundle_discount_note,
       p.utility_incentive_eligible, p.requires_phase_id, p.is_active, p.created_at, p.updated_at,
       COALESCE((SELECT array_agg(pp.phase_id ORDER BY pp.phase_id)
                 FROM package_install_phases pp WHERE pp.package_id = p.id), '{}')`

// CatalogPostgresRepository reads and seeds the catalog tables created by the
// embedded migrations.

type CatalogPostgresRepository struct {
	db *sql.DB
}

var (
	_ interfaces.ICatalogRepository = (*CatalogPostgresRepository)(nil)
	_ interfaces.ICatalogWriter     = (*CatalogPostgresRepository)(nil)
)

func NewCatalogPostgresRepository(db *sql.DB) *CatalogPostgresRepository {
	return &CatalogPostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (entities.PackageTemplate, error) {
	var (
		p        entities.PackageTemplate
		subID    sql.NullInt64
		requires sql.NullInt64
		phases   pq.Int64Array
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.CategoryID, &subID, &p.Description,
		&p.PriceLow, &p.PriceHigh, &p.PriceNotes, &p.BundleDiscountNote,
		&p.UtilityIncentiveEligible, &requires, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&phases,
	)
	if err != nil {
		return entities.PackageTemplate{}, err
	}
	if subID.Valid {
		p.SubCategoryID = &subID.Int64
	}
	if requires.Valid {
		p.RequiresPhaseID = &requires.Int64
	}
	p.InstallPhaseIDs = []int64(phases)
	return p, nil
}

func (r *CatalogPostgresRepository) GetPackage(ctx context.Context, id int64) (entities.PackageTemplate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+packageColumns+` FROM package_templates p WHERE p.id = $1`, id)
	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.PackageTemplate{}, nil
		}
		return entities.PackageTemplate{}, fmt.Errorf("select package: %w", err)
	}
	return p, nil
}

func (r *CatalogPostgresRepository) GetPackagesByIDs(ctx context.Context, ids []int64) ([]entities.PackageTemplate, error) {
	if len(ids) == 0 {
		return []entities.PackageTemplate{}, nil
	}
	return r.queryPackages(ctx, `SELECT `+packageColumns+` FROM package_templates p WHERE p.id = ANY($1) ORDER BY p.id`, pq.Array(ids))
}

func (r *CatalogPostgresRepository) ListActivePackages(ctx context.Context, filter entities.PackageFilter) ([]entities.PackageTemplate, error) {
	return r.queryPackages(ctx,
		`SELECT `+packageColumns+`
         FROM package_templates p
         WHERE p.is_active
           AND ($1 = 0 OR p.category_id = $1)
           AND ($2 = 0 OR p.subcategory_id = $2)
         ORDER BY p.category_id, p.subcategory_id NULLS FIRST, p.name, p.id`,
		filter.CategoryID, filter.SubCategoryID,
	)
}

func (r *CatalogPostgresRepository) queryPackages(ctx context.Context, query string, args ...any) ([]entities.PackageTemplate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select packages: %w", err)
	}
	defer rows.Close()

	out := []entities.PackageTemplate{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogPostgresRepository) GetCategory(ctx context.Context, id int64) (entities.Category, error) {
	var c entities.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, sort_order, is_active FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Order, &c.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Category{}, nil
		}
		return entities.Category{}, fmt.Errorf("select category: %w", err)
	}
	return c, nil
}

func (r *CatalogPostgresRepository) ListActiveCategories(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, sort_order, is_active
         FROM categories WHERE is_active ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	out := []entities.Category{}
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Order, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogPostgresRepository) ListActiveSubCategories(ctx context.Context, categoryID int64) ([]entities.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_id, name, description, sort_order, is_active
         FROM subcategories
         WHERE is_active AND ($1 = 0 OR category_id = $1)
         ORDER BY sort_order, name`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("select subcategories: %w", err)
	}
	defer rows.Close()

	out := []entities.SubCategory{}
	for rows.Next() {
		var s entities.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Description, &s.Order, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CatalogPostgresRepository) ListActiveInstallPhases(ctx context.Context) ([]entities.InstallPhase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, sort_order, is_active
         FROM install_phases WHERE is_active ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("select install phases: %w", err)
	}
	defer rows.Close()

	out := []entities.InstallPhase{}
	for rows.Next() {
		var p entities.InstallPhase
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Order, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan install phase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogPostgresRepository) SaveCategory(ctx context.Context, c entities.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, sort_order, is_active)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
             sort_order = EXCLUDED.sort_order, is_active = EXCLUDED.is_active`,
		c.ID, c.Name, c.Description, c.Order, c.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

func (r *CatalogPostgresRepository) SaveSubCategory(ctx context.Context, s entities.SubCategory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subcategories (id, category_id, name, description, sort_order, is_active)
         VALUES ($1, $2, $3, $4, $5, $6)
         ON CONFLICT (id) DO UPDATE SET category_id = EXCLUDED.category_id, name = EXCLUDED.name,
             description = EXCLUDED.description, sort_order = EXCLUDED.sort_order, is_active = EXCLUDED.is_active`,
		s.ID, s.CategoryID, s.Name, s.Description, s.Order, s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert subcategory: %w", err)
	}
	return nil
}

func (r *CatalogPostgresRepository) SaveInstallPhase(ctx context.Context, p entities.InstallPhase) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO install_phases (id, name, description, sort_order, is_active)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
             sort_order = EXCLUDED.sort_order, is_active = EXCLUDED.is_active`,
		p.ID, p.Name, p.Description, p.Order, p.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert install phase: %w", err)
	}
	return nil
}

// SavePackage upserts the package and replaces its install phases in one transaction.
func (r *CatalogPostgresRepository) SavePackage(ctx context.Context, p entities.PackageTemplate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO package_templates (id, name, category_id, subcategory_id, description, price_low, price_high,
             price_notes, bundle_discount_note, utility_incentive_eligible, requires_phase_id, is_active, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
         ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category_id = EXCLUDED.category_id,
             subcategory_id = EXCLUDED.subcategory_id, description = EXCLUDED.description,
             price_low = EXCLUDED.price_low, price_high = EXCLUDED.price_high, price_notes = EXCLUDED.price_notes,
             bundle_discount_note = EXCLUDED.bundle_discount_note,
             utility_incentive_eligible = EXCLUDED.utility_incentive_eligible,
             requires_phase_id = EXCLUDED.requires_phase_id, is_active = EXCLUDED.is_active,
             updated_at = EXCLUDED.updated_at`,
		p.ID, p.Name, p.CategoryID, p.SubCategoryID, p.Description, p.PriceLow, p.PriceHigh,
		p.PriceNotes, p.BundleDiscountNote, p.UtilityIncentiveEligible, p.RequiresPhaseID, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert package: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM package_install_phases WHERE package_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear package phases: %w", err)
	}
	for _, phaseID := range p.InstallPhaseIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO package_install_phases (package_id, phase_id) VALUES ($1, $2)`,
			p.ID, phaseID,
		); err != nil {
			return fmt.Errorf("insert package phase: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
