package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPaymentRepository creates a new repository for payment data.
func NewPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentSelect = `
	SELECT p.payment_id, p.bill_id, p.amount, p.payment_date, p.method, p.reference, p.voided_at,
	       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
	FROM payments p
`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.BillID,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		&p.Reference,
		&p.VoidedAt,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// updateBillFinancials moves the bill's paid amount and status inside the
// caller's transaction so the payment and the bill can never drift apart.
func updateBillFinancials(ctx context.Context, tx pgx.Tx, bill domain.Bill) error {
	query := `
		UPDATE bills
		SET paid_amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE bill_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		bill.BillID,
		bill.PaidAmount,
		bill.Status,
		bill.LastUpdatedAt,
		bill.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s financials: %w", bill.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePayment inserts a payment and applies its effect to the bill within a
// single database transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, bill domain.Bill) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO payments (payment_id, bill_id, amount, payment_date, method, reference, voided_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		payment.PaymentID,
		payment.BillID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
		payment.Reference,
		payment.VoidedAt,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	if err := updateBillFinancials(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// MarkPaymentVoided stamps the payment's voided_at and restores the bill's
// paid amount and status in the same transaction. The payment row is never
// deleted.
func (r *PgxPaymentRepository) MarkPaymentVoided(ctx context.Context, paymentID string, voidedAt time.Time, bill domain.Bill) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		UPDATE payments
		SET voided_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE payment_id = $1 AND voided_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, paymentID, voidedAt, bill.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to void payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the payment is gone or it was voided concurrently.
		return apperrors.ErrNotFound
	}

	if err := updateBillFinancials(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit void of payment %s: %w", paymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := scanPayment(r.pool.QueryRow(ctx, paymentSelect+` WHERE p.payment_id = $1;`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPaymentsByBill retrieves every payment applied to a bill, voided ones
// included.
func (r *PgxPaymentRepository) ListPaymentsByBill(ctx context.Context, billID string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, paymentSelect+` WHERE p.bill_id = $1 ORDER BY p.payment_date, p.payment_id;`, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for bill %s: %w", billID, err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListPaymentsBySupplier retrieves every payment applied to the supplier's
// bills, voided ones included.
func (r *PgxPaymentRepository) ListPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.Payment, error) {
	query := paymentSelect + `
	JOIN bills b ON b.bill_id = p.bill_id
	WHERE b.supplier_id = $1
	ORDER BY p.payment_date, p.payment_id;
	`
	rows, err := r.pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
