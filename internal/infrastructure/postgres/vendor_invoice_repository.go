package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

var _ repository.VendorInvoiceRepository = (*VendorInvoiceRepo)(nil)

// VendorInvoiceRepo implementación de VendorInvoiceRepository (usable con pool o tx).
type VendorInvoiceRepo struct {
	q Querier
}

// NewVendorInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorInvoiceRepository(q Querier) *VendorInvoiceRepo {
	return &VendorInvoiceRepo{q: q}
}

// Create persiste cabecera y líneas de la factura.
func (r *VendorInvoiceRepo) Create(invoice *entity.VendorInvoice) error {
	ctx := context.Background()
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vendor_invoices (id, invoice_id, manufacturer_order_id, vendor_name, sub_total, discount, cgst, sgst, total_amount, invoice_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.InvoiceID, invoice.ManufacturerOrderID, invoice.VendorName,
		invoice.SubTotal, invoice.Discount, invoice.CGST, invoice.SGST, invoice.TotalAmount,
		invoice.InvoiceDate, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor invoice: %w", err)
	}
	for i := range invoice.Items {
		it := &invoice.Items[i]
		itemQuery := `
			INSERT INTO vendor_invoice_items (id, invoice_id, position, product_id, product_name, quantity, cost_per_unit, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(ctx, itemQuery,
			uuid.New().String(), invoice.InvoiceID, i, it.ProductID, it.ProductName,
			it.Quantity, it.CostPerUnit, it.Total,
		)
		if err != nil {
			return fmt.Errorf("insert vendor invoice item: %w", err)
		}
	}
	return nil
}

// GetByInvoiceID obtiene una factura completa por su identificador de negocio.
func (r *VendorInvoiceRepo) GetByInvoiceID(invoiceID string) (*entity.VendorInvoice, error) {
	ctx := context.Background()
	query := `
		SELECT id, invoice_id, manufacturer_order_id, vendor_name, sub_total, discount, cgst, sgst, total_amount, invoice_date, status, created_at, updated_at
		FROM vendor_invoices WHERE invoice_id = $1`
	var inv entity.VendorInvoice
	err := r.q.QueryRow(ctx, query, invoiceID).Scan(
		&inv.ID, &inv.InvoiceID, &inv.ManufacturerOrderID, &inv.VendorName,
		&inv.SubTotal, &inv.Discount, &inv.CGST, &inv.SGST, &inv.TotalAmount,
		&inv.InvoiceDate, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor invoice: %w", err)
	}
	if err := r.loadItems(ctx, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *VendorInvoiceRepo) loadItems(ctx context.Context, inv *entity.VendorInvoice) error {
	query := `
		SELECT product_id, product_name, quantity, cost_per_unit, total
		FROM vendor_invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, inv.InvoiceID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InvoiceLine
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.CostPerUnit, &it.Total); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, it)
	}
	return rows.Err()
}

// List devuelve facturas de la más reciente a la más antigua, con filtros
// opcionales por estado exacto y subcadena del nombre del proveedor (ILIKE).
func (r *VendorInvoiceRepo) List(filter repository.InvoiceFilter, limit, offset int) ([]*entity.VendorInvoice, error) {
	ctx := context.Background()
	query := `
		SELECT invoice_id
		FROM vendor_invoices WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.VendorNameContains != "" {
		args = append(args, "%"+filter.VendorNameContains+"%")
		query += fmt.Sprintf(" AND vendor_name ILIKE $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendor invoices: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	list := make([]*entity.VendorInvoice, 0, len(ids))
	for _, id := range ids {
		inv, err := r.GetByInvoiceID(id)
		if err != nil {
			return nil, err
		}
		if inv != nil {
			list = append(list, inv)
		}
	}
	return list, nil
}

// UpdateStatus fija el estado de la factura.
func (r *VendorInvoiceRepo) UpdateStatus(invoiceID, status string) error {
	query := `
		UPDATE vendor_invoices SET status = $2, updated_at = now()
		WHERE invoice_id = $1`
	_, err := r.q.Exec(context.Background(), query, invoiceID, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}
