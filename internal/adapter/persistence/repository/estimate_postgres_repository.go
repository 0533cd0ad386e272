package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"builder_estimates/internal/domain/entities"
	"builder_estimates/internal/domain/numbering"
	"builder_estimates/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation      = "23505"
	pqForeignKeyViolation  = "23503"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

const estimateColumns = `id, estimate_number, builder_id, client_name, client_email, total_low, total_high,
       status, notes, created_at, updated_at`

const estimateItemColumns = `id, estimate_id, package_id, price_low_snapshot, price_high_snapshot,
       package_name_snapshot, quantity_snapshot`

// EstimatePostgresRepository persists estimates in Postgres.
//
// The guest upsert and the per-year counter are single statements that take row
// locks inside the checkout transaction, so concurrent checkouts serialize on
// them instead of failing.

type EstimatePostgresRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IEstimateRepository = (*EstimatePostgresRepository)(nil)

func NewEstimatePostgresRepository(db *sql.DB) *EstimatePostgresRepository {
	return &EstimatePostgresRepository{db: db, now: time.Now}
}

func (r *EstimatePostgresRepository) CreateWithItems(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error) {
	e := draft.Estimate

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if g := draft.Guest; g != nil {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO builders (id, email, company_name, contact_person, phone, created_at, updated_at)
             VALUES ($1, $2, $3, $4, $5, $6, $6)
             ON CONFLICT (email) DO UPDATE SET
                 company_name = EXCLUDED.company_name,
                 contact_person = EXCLUDED.contact_person,
                 phone = CASE WHEN EXCLUDED.phone <> '' THEN EXCLUDED.phone ELSE builders.phone END,
                 updated_at = EXCLUDED.updated_at
             RETURNING id`,
			g.ID, g.Email, g.CompanyName, g.ContactPerson, g.Phone, e.UpdatedAt,
		).Scan(&e.BuilderID)
		if err != nil {
			return entities.Estimate{}, mapPQError("upsert builder", err)
		}
	}
	if e.BuilderID == "" {
		return entities.Estimate{}, interfaces.ErrBuilderNotFound
	}

	year := e.CreatedAt.UTC().Year()
	var seq int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO estimate_sequences (year, last_sequence, updated_at)
         VALUES ($1, 1, $2)
         ON CONFLICT (year) DO UPDATE SET
             last_sequence = estimate_sequences.last_sequence + 1,
             updated_at = EXCLUDED.updated_at
         RETURNING last_sequence`,
		year, e.CreatedAt,
	).Scan(&seq)
	if err != nil {
		return entities.Estimate{}, mapPQError("next estimate sequence", err)
	}
	e.EstimateNumber = numbering.Format(year, seq)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO estimates (id, estimate_number, builder_id, client_name, client_email, total_low, total_high,
             status, notes, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.EstimateNumber, e.BuilderID, e.ClientName, e.ClientEmail, e.TotalLow, e.TotalHigh,
		string(e.Status), e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return entities.Estimate{}, mapPQError("insert estimate", err)
	}

	items := make([]entities.EstimateItem, 0, len(draft.Items))
	for i, it := range draft.Items {
		it.EstimateID = e.ID
		_, err = tx.ExecContext(ctx,
			`INSERT INTO estimate_items (id, estimate_id, package_id, price_low_snapshot, price_high_snapshot,
                 package_name_snapshot, quantity_snapshot, position)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, it.EstimateID, it.PackageID, it.PriceLowSnapshot, it.PriceHighSnapshot,
			it.PackageNameSnapshot, it.QuantitySnapshot, i,
		)
		if err != nil {
			return entities.Estimate{}, fmt.Errorf("insert estimate item: %w", err)
		}
		items = append(items, it)
	}

	if err := tx.Commit(); err != nil {
		return entities.Estimate{}, mapPQError("commit", err)
	}

	e.Items = items
	return e, nil
}

// mapPQError turns lost races into ErrWriteConflict and an unknown builder into
// ErrBuilderNotFound.
func mapPQError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqSerializationFailure, pqDeadlockDetected:
			return fmt.Errorf("%s: %w", op, interfaces.ErrWriteConflict)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, interfaces.ErrBuilderNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanEstimate(row rowScanner) (entities.Estimate, error) {
	var (
		e      entities.Estimate
		status string
	)
	err := row.Scan(&e.ID, &e.EstimateNumber, &e.BuilderID, &e.ClientName, &e.ClientEmail,
		&e.TotalLow, &e.TotalHigh, &status, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Status = entities.EstimateStatus(status)
	return e, nil
}

func (r *EstimatePostgresRepository) GetByNumber(ctx context.Context, estimateNumber string) (entities.Estimate, error) {
	e, err := scanEstimate(r.db.QueryRowContext(ctx,
		`SELECT `+estimateColumns+` FROM estimates WHERE estimate_number = $1`, estimateNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, fmt.Errorf("select estimate: %w", err)
	}

	byEstimate, err := r.itemsFor(ctx, []string{e.ID})
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Items = byEstimate[e.ID]
	return e, nil
}

func (r *EstimatePostgresRepository) ListByBuilder(ctx context.Context, builderID string) ([]entities.Estimate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+estimateColumns+`
         FROM estimates WHERE builder_id = $1
         ORDER BY created_at DESC, id`, builderID)
	if err != nil {
		return nil, fmt.Errorf("select estimates: %w", err)
	}
	defer rows.Close()

	out := []entities.Estimate{}
	ids := []string{}
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		out = append(out, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	byEstimate, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Items = byEstimate[out[i].ID]
	}
	return out, nil
}

func (r *EstimatePostgresRepository) UpdateStatusByNumber(ctx context.Context, estimateNumber string, status entities.EstimateStatus) (entities.Estimate, error) {
	e, err := scanEstimate(r.db.QueryRowContext(ctx,
		`UPDATE estimates SET status = $2, updated_at = $3
         WHERE estimate_number = $1
         RETURNING `+estimateColumns,
		estimateNumber, string(status), r.now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, fmt.Errorf("update estimate status: %w", err)
	}

	byEstimate, err := r.itemsFor(ctx, []string{e.ID})
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Items = byEstimate[e.ID]
	return e, nil
}

// itemsFor loads the items of several estimates in one query.
func (r *EstimatePostgresRepository) itemsFor(ctx context.Context, estimateIDs []string) (map[string][]entities.EstimateItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+estimateItemColumns+`
         FROM estimate_items WHERE estimate_id = ANY($1)
         ORDER BY estimate_id, position`, pq.Array(estimateIDs))
	if err != nil {
		return nil, fmt.Errorf("select estimate items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entities.EstimateItem, len(estimateIDs))
	for rows.Next() {
		var (
			it        entities.EstimateItem
			packageID sql.NullInt64
		)
		if err := rows.Scan(&it.ID, &it.EstimateID, &packageID, &it.PriceLowSnapshot, &it.PriceHighSnapshot,
			&it.PackageNameSnapshot, &it.QuantitySnapshot); err != nil {
			return nil, fmt.Errorf("scan estimate item: %w", err)
		}
		if packageID.Valid {
			it.PackageID = &packageID.Int64
		}
		out[it.EstimateID] = append(out[it.EstimateID], it)
	}
	return out, rows.Err()
}
