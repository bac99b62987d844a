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

type PgxBillRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBillRepository creates a new repository for bill data.
func NewPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{pool: pool}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billSelect = `
	SELECT bill_id, supplier_id, bill_number, bill_date, due_date, notes, total_amount, paid_amount, status,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM bills
`

func scanBill(row pgx.Row) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(
		&b.BillID,
		&b.SupplierID,
		&b.BillNumber,
		&b.BillDate,
		&b.DueDate,
		&b.Notes,
		&b.TotalAmount,
		&b.PaidAmount,
		&b.Status,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	query := `
		INSERT INTO bills (bill_id, supplier_id, bill_number, bill_date, due_date, notes, total_amount, paid_amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		bill.BillID,
		bill.SupplierID,
		bill.BillNumber,
		bill.BillDate,
		bill.DueDate,
		bill.Notes,
		bill.TotalAmount,
		bill.PaidAmount,
		bill.Status,
		bill.CreatedAt,
		bill.CreatedBy,
		bill.LastUpdatedAt,
		bill.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill %s: %w", bill.BillID, err)
	}
	return nil
}

// UpdateBill updates a bill's editable fields. Paid amount and status are
// deliberately excluded: they only move through the payment repository's
// transactional operations.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	query := `
		UPDATE bills
		SET bill_number = $2, bill_date = $3, due_date = $4, notes = $5, total_amount = $6, last_updated_at = $7, last_updated_by = $8
		WHERE bill_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		bill.BillID,
		bill.BillNumber,
		bill.BillDate,
		bill.DueDate,
		bill.Notes,
		bill.TotalAmount,
		bill.LastUpdatedAt,
		bill.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", bill.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBill removes a bill.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBillByID retrieves a bill by its ID.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := scanBill(r.pool.QueryRow(ctx, billSelect+` WHERE bill_id = $1;`, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}
	return bill, nil
}

// ListBillsBySupplier retrieves every bill for one supplier.
func (r *PgxBillRepository) ListBillsBySupplier(ctx context.Context, supplierID string) ([]domain.Bill, error) {
	rows, err := r.pool.Query(ctx, billSelect+` WHERE supplier_id = $1 ORDER BY bill_date, bill_id;`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()
	return collectBills(rows)
}

// ListBills retrieves a page of bills ordered by bill date.
func (r *PgxBillRepository) ListBills(ctx context.Context, limit int, offset int) ([]domain.Bill, error) {
	rows, err := r.pool.Query(ctx, billSelect+` ORDER BY bill_date DESC, bill_id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

func collectBills(rows pgx.Rows) ([]domain.Bill, error) {
	bills := []domain.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}
	return bills, nil
}
