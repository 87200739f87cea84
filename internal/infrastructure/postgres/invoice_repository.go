package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/finbot-api/internal/domain"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, number, document_type, issue_date, sale_date, due_date, payment_method,
	seller_name, seller_nip, seller_address, seller_account,
	buyer_name, buyer_nip, buyer_address,
	net_total, vat_total, gross_total, notes, processed_on, format_version,
	pdf, backup_id, created_at`

// Save inserta o reemplaza (por número) la cabecera y sus posiciones en una sola transacción.
func (r *InvoiceRepo) Save(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	notes := inv.Notes
	if notes == nil {
		notes = []string{}
	}

	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (number) DO UPDATE SET
			document_type  = EXCLUDED.document_type,
			issue_date     = EXCLUDED.issue_date,
			sale_date      = EXCLUDED.sale_date,
			due_date       = EXCLUDED.due_date,
			payment_method = EXCLUDED.payment_method,
			seller_name    = EXCLUDED.seller_name,
			seller_nip     = EXCLUDED.seller_nip,
			seller_address = EXCLUDED.seller_address,
			seller_account = EXCLUDED.seller_account,
			buyer_name     = EXCLUDED.buyer_name,
			buyer_nip      = EXCLUDED.buyer_nip,
			buyer_address  = EXCLUDED.buyer_address,
			net_total      = EXCLUDED.net_total,
			vat_total      = EXCLUDED.vat_total,
			gross_total    = EXCLUDED.gross_total,
			notes          = EXCLUDED.notes,
			processed_on   = EXCLUDED.processed_on,
			format_version = EXCLUDED.format_version,
			pdf            = EXCLUDED.pdf,
			backup_id      = EXCLUDED.backup_id,
			created_at     = EXCLUDED.created_at
		RETURNING id`
	err = tx.QueryRow(ctx, query,
		inv.ID, inv.Number, inv.DocumentType,
		dateOrToday(inv.IssueDate), dateOrToday(inv.SaleDate), dateOrToday(inv.DueDate), inv.PaymentMethod,
		inv.Seller.Name, inv.Seller.NIP, inv.Seller.Address, inv.Seller.BankAccount,
		inv.Buyer.Name, inv.Buyer.NIP, inv.Buyer.Address,
		inv.NetTotal, inv.VATTotal, inv.GrossTotal, notes, dateOrToday(inv.ProcessedOn), inv.FormatVersion,
		inv.PDF, inv.BackupID, inv.CreatedAt,
	).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice id %s already exists: %v", domain.ErrConflict, inv.ID, err)
		}
		return fmt.Errorf("upsert invoice: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("delete invoice lines: %w", err)
	}
	for i, l := range inv.Lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_lines (invoice_id, position, name, unit, quantity, unit_price_net, vat_rate, net_value, vat_amount, gross_value)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			inv.ID, i+1, l.Name, l.Unit, l.Quantity, l.UnitPriceNet, l.VATRate,
			l.NetValue, l.VATAmount, l.GrossValue,
		)
		if err != nil {
			return fmt.Errorf("insert invoice line %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByNumber obtiene un rachunek completo por número.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE number = $1`, number)
}

// Latest obtiene el último rachunek guardado.
func (r *InvoiceRepo) Latest(ctx context.Context) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC LIMIT 1`)
}

// Stats cuenta los rachunki y suma su bruto.
func (r *InvoiceRepo) Stats(ctx context.Context) (repository.InvoiceStats, error) {
	var s repository.InvoiceStats
	err := r.q.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(gross_total), 0) FROM invoices`).
		Scan(&s.Count, &s.GrossTotal)
	if err != nil {
		return repository.InvoiceStats{}, fmt.Errorf("invoice stats: %w", err)
	}
	return s, nil
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&inv.ID, &inv.Number, &inv.DocumentType, &inv.IssueDate, &inv.SaleDate, &inv.DueDate, &inv.PaymentMethod,
		&inv.Seller.Name, &inv.Seller.NIP, &inv.Seller.Address, &inv.Seller.BankAccount,
		&inv.Buyer.Name, &inv.Buyer.NIP, &inv.Buyer.Address,
		&inv.NetTotal, &inv.VATTotal, &inv.GrossTotal, &inv.Notes, &inv.ProcessedOn, &inv.FormatVersion,
		&inv.PDF, &inv.BackupID, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	lines, err := r.linesOf(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return &inv, nil
}

func (r *InvoiceRepo) linesOf(ctx context.Context, invoiceID string) ([]entity.InvoiceLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, unit, quantity, unit_price_net, vat_rate, net_value, vat_amount, gross_value
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY position`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var list []entity.InvoiceLine
	for rows.Next() {
		l := entity.InvoiceLine{VATRateSet: true}
		if err := rows.Scan(&l.Name, &l.Unit, &l.Quantity, &l.UnitPriceNet, &l.VATRate,
			&l.NetValue, &l.VATAmount, &l.GrossValue); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
