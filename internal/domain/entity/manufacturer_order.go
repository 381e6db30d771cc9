package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra al fabricante.
// Los valores viajan tal cual en la API y en la base de datos.
const (
	OrderStatusOrdered           = "Ordered"
	OrderStatusInTransit         = "In Transit"
	OrderStatusPartiallyReceived = "Partially Received"
	OrderStatusReceived          = "Received"
	OrderStatusCancelled         = "Cancelled"
)

// ValidOrderStatus indica si s es uno de los estados permitidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusOrdered, OrderStatusInTransit, OrderStatusPartiallyReceived,
		OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

// ManufacturerOrder representa una orden de compra colocada a un proveedor/fabricante.
// TotalCost se fija en la creación (valor ordenado, no el facturado).
// ReceivingHistory es la bitácora plana de todas las recepciones de la orden,
// independiente de las Deliveries por línea.
type ManufacturerOrder struct {
	ID               string // id interno (uuid)
	OrderID          string // identificador de negocio, único e inmutable (MFG-...)
	VendorID         string
	Items            []OrderLine
	OrderDate        time.Time
	ExpectedArrival  time.Time
	Status           string
	TotalCost        decimal.Decimal
	ReceivingHistory []ReceivingEvent
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderLine es una línea de la orden, única por ProductID dentro de la orden.
// Invariante: QuantityReceived == suma de Deliveries[].ReceivedQuantity.
type OrderLine struct {
	ProductID        string
	ProductName      string
	QuantityOrdered  int64
	QuantityReceived int64
	CostPerUnit      decimal.Decimal // fijado en la creación; el motor de recepción nunca re-precia
	Deliveries       []Delivery
}

// Delivery es un evento físico de recepción sobre una línea (append-only).
type Delivery struct {
	ReceivedQuantity int64
	ReceivedDate     time.Time
	ReceivedBy       string
}

// ReceivingEvent es una entrada de la bitácora de recepción a nivel de orden.
// CostPerUnit se captura en el momento de la recepción.
type ReceivingEvent struct {
	ProductID        string
	QuantityReceived int64
	ReceivedDate     time.Time
	CostPerUnit      decimal.Decimal
}

// FindLine devuelve la línea cuyo ProductID coincide, o nil.
func (o *ManufacturerOrder) FindLine(productID string) *OrderLine {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}

// RecomputeOrderStatus deriva el estado de la orden a partir de sus líneas.
// Se evalúa completo en cada llamada (no incremental), por lo que es
// autocorrectivo respecto al estado previo:
//   - Cancelled nunca se recalcula (terminal).
//   - todas las líneas completas  -> Received
//   - alguna línea con recepción  -> Partially Received
//   - sin recepciones             -> se conserva el estado actual
func RecomputeOrderStatus(current string, lines []OrderLine) string {
	if current == OrderStatusCancelled {
		return current
	}
	allReceived := len(lines) > 0
	someReceived := false
	for i := range lines {
		if lines[i].QuantityReceived < lines[i].QuantityOrdered {
			allReceived = false
		}
		if lines[i].QuantityReceived > 0 {
			someReceived = true
		}
	}
	switch {
	case allReceived:
		return OrderStatusReceived
	case someReceived:
		return OrderStatusPartiallyReceived
	default:
		return current
	}
}
