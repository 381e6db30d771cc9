package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// ManufacturerOrderRepository define el puerto de persistencia para órdenes de compra.
//
// GetByOrderIDForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) y es el
// punto de serialización por orden: dos lotes de recepción concurrentes contra la
// misma orden se aplican en secuencia, nunca se pierden actualizaciones.
type ManufacturerOrderRepository interface {
	Create(order *entity.ManufacturerOrder) error
	GetByOrderID(orderID string) (*entity.ManufacturerOrder, error)
	GetByOrderIDForUpdate(orderID string) (*entity.ManufacturerOrder, error)
	// List devuelve órdenes de la más reciente a la más antigua.
	List(limit, offset int) ([]*entity.ManufacturerOrder, error)
	// UpdateLineReceived fija el acumulado recibido de una línea.
	UpdateLineReceived(orderID, productID string, quantityReceived int64) error
	// AppendDelivery agrega un evento de recepción a la línea (append-only).
	AppendDelivery(orderID, productID string, d *entity.Delivery) error
	// AppendReceivingEvent agrega una entrada a la bitácora de la orden (append-only).
	AppendReceivingEvent(orderID string, ev *entity.ReceivingEvent) error
	UpdateStatus(orderID, status string) error
}
