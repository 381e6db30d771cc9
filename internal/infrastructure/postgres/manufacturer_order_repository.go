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

var _ repository.ManufacturerOrderRepository = (*ManufacturerOrderRepo)(nil)

// ManufacturerOrderRepo implementación de ManufacturerOrderRepository (usable con pool o tx).
// La orden vive en cuatro tablas: cabecera, líneas, entregas por línea y
// bitácora de recepción de la orden.
type ManufacturerOrderRepo struct {
	q Querier
}

// NewManufacturerOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManufacturerOrderRepository(q Querier) *ManufacturerOrderRepo {
	return &ManufacturerOrderRepo{q: q}
}

// Create persiste cabecera y líneas de una orden nueva.
func (r *ManufacturerOrderRepo) Create(order *entity.ManufacturerOrder) error {
	ctx := context.Background()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO manufacturer_orders (id, order_id, vendor_id, order_date, expected_arrival, status, total_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderID, order.VendorID, order.OrderDate, order.ExpectedArrival,
		order.Status, order.TotalCost, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manufacturer order: %w", err)
	}
	for i := range order.Items {
		line := &order.Items[i]
		lineQuery := `
			INSERT INTO order_lines (id, order_id, position, product_id, product_name, quantity_ordered, quantity_received, cost_per_unit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err := r.q.Exec(ctx, lineQuery,
			uuid.New().String(), order.OrderID, i, line.ProductID, line.ProductName,
			line.QuantityOrdered, line.QuantityReceived, line.CostPerUnit,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByOrderID obtiene una orden completa por su identificador de negocio.
func (r *ManufacturerOrderRepo) GetByOrderID(orderID string) (*entity.ManufacturerOrder, error) {
	return r.get(orderID, false)
}

// GetByOrderIDForUpdate obtiene la orden bloqueando su fila de cabecera
// (SELECT FOR UPDATE): punto de serialización por orden para los lotes de recepción.
func (r *ManufacturerOrderRepo) GetByOrderIDForUpdate(orderID string) (*entity.ManufacturerOrder, error) {
	return r.get(orderID, true)
}

func (r *ManufacturerOrderRepo) get(orderID string, forUpdate bool) (*entity.ManufacturerOrder, error) {
	ctx := context.Background()
	query := `
		SELECT id, order_id, vendor_id, order_date, expected_arrival, status, total_cost, created_at, updated_at
		FROM manufacturer_orders WHERE order_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var o entity.ManufacturerOrder
	err := r.q.QueryRow(ctx, query, orderID).Scan(
		&o.ID, &o.OrderID, &o.VendorID, &o.OrderDate, &o.ExpectedArrival,
		&o.Status, &o.TotalCost, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer order: %w", err)
	}
	if err := r.loadLines(ctx, &o); err != nil {
		return nil, err
	}
	if err := r.loadHistory(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// loadLines carga las líneas (en el orden de creación) y sus entregas.
func (r *ManufacturerOrderRepo) loadLines(ctx context.Context, o *entity.ManufacturerOrder) error {
	query := `
		SELECT product_id, product_name, quantity_ordered, quantity_received, cost_per_unit
		FROM order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, o.OrderID)
	if err != nil {
		return fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	byProduct := make(map[string]*entity.OrderLine)
	for rows.Next() {
		var line entity.OrderLine
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.QuantityOrdered, &line.QuantityReceived, &line.CostPerUnit); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		o.Items = append(o.Items, line)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range o.Items {
		byProduct[o.Items[i].ProductID] = &o.Items[i]
	}

	dQuery := `
		SELECT product_id, received_quantity, received_date, received_by
		FROM order_deliveries WHERE order_id = $1 ORDER BY created_at, id`
	dRows, err := r.q.Query(ctx, dQuery, o.OrderID)
	if err != nil {
		return fmt.Errorf("list order deliveries: %w", err)
	}
	defer dRows.Close()
	for dRows.Next() {
		var productID string
		var d entity.Delivery
		if err := dRows.Scan(&productID, &d.ReceivedQuantity, &d.ReceivedDate, &d.ReceivedBy); err != nil {
			return fmt.Errorf("scan delivery: %w", err)
		}
		if line, ok := byProduct[productID]; ok {
			line.Deliveries = append(line.Deliveries, d)
		}
	}
	return dRows.Err()
}

// loadHistory carga la bitácora de recepción de la orden.
func (r *ManufacturerOrderRepo) loadHistory(ctx context.Context, o *entity.ManufacturerOrder) error {
	query := `
		SELECT product_id, quantity_received, received_date, cost_per_unit
		FROM order_receiving_history WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, o.OrderID)
	if err != nil {
		return fmt.Errorf("list receiving history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ev entity.ReceivingEvent
		if err := rows.Scan(&ev.ProductID, &ev.QuantityReceived, &ev.ReceivedDate, &ev.CostPerUnit); err != nil {
			return fmt.Errorf("scan receiving event: %w", err)
		}
		o.ReceivingHistory = append(o.ReceivingHistory, ev)
	}
	return rows.Err()
}

// List devuelve órdenes completas de la más reciente a la más antigua.
func (r *ManufacturerOrderRepo) List(limit, offset int) ([]*entity.ManufacturerOrder, error) {
	ctx := context.Background()
	query := `
		SELECT order_id
		FROM manufacturer_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list manufacturer orders: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	list := make([]*entity.ManufacturerOrder, 0, len(ids))
	for _, id := range ids {
		o, err := r.GetByOrderID(id)
		if err != nil {
			return nil, err
		}
		if o != nil {
			list = append(list, o)
		}
	}
	return list, nil
}

// UpdateLineReceived fija el acumulado recibido de una línea.
func (r *ManufacturerOrderRepo) UpdateLineReceived(orderID, productID string, quantityReceived int64) error {
	query := `
		UPDATE order_lines SET quantity_received = $3
		WHERE order_id = $1 AND product_id = $2`
	_, err := r.q.Exec(context.Background(), query, orderID, productID, quantityReceived)
	if err != nil {
		return fmt.Errorf("update line received: %w", err)
	}
	return nil
}

// AppendDelivery agrega un evento de recepción a la línea.
func (r *ManufacturerOrderRepo) AppendDelivery(orderID, productID string, d *entity.Delivery) error {
	query := `
		INSERT INTO order_deliveries (id, order_id, product_id, received_quantity, received_date, received_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), orderID, productID, d.ReceivedQuantity, d.ReceivedDate, d.ReceivedBy,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// AppendReceivingEvent agrega una entrada a la bitácora de la orden.
func (r *ManufacturerOrderRepo) AppendReceivingEvent(orderID string, ev *entity.ReceivingEvent) error {
	query := `
		INSERT INTO order_receiving_history (id, order_id, product_id, quantity_received, received_date, cost_per_unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), orderID, ev.ProductID, ev.QuantityReceived, ev.ReceivedDate, ev.CostPerUnit,
	)
	if err != nil {
		return fmt.Errorf("insert receiving event: %w", err)
	}
	return nil
}

// UpdateStatus fija el estado de la orden.
func (r *ManufacturerOrderRepo) UpdateStatus(orderID, status string) error {
	query := `
		UPDATE manufacturer_orders SET status = $2, updated_at = now()
		WHERE order_id = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
