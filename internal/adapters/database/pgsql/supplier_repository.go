package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSupplierRepository creates a new repository for supplier data.
func NewPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{pool: pool}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

// supplierSelect computes total_payable in the query itself; the core never
// recomputes that aggregate.
const supplierSelect = `
	SELECT s.supplier_id, s.name, s.contact_person, s.email, s.phone, s.address, s.is_active,
	       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by,
	       COALESCE(SUM(b.total_amount - b.paid_amount), 0) AS total_payable
	FROM suppliers s
	LEFT JOIN bills b ON b.supplier_id = s.supplier_id
`

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.ContactPerson,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.IsActive,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
		&s.TotalPayable,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, contact_person, email, phone, address, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.IsActive,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

// UpdateSupplier updates a supplier's contact details.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE supplier_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Email,
		supplier.Phone,
		supplier.Address,
		supplier.IsActive,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSupplierByID retrieves a supplier with its computed total payable.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := supplierSelect + `
	WHERE s.supplier_id = $1
	GROUP BY s.supplier_id;
	`
	supplier, err := scanSupplier(r.pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves a page of suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	query := supplierSelect + `
	GROUP BY s.supplier_id
	ORDER BY s.name
	LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}
