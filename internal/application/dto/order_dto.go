package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/manufacturer-orders.
type CreateOrderRequest struct {
	VendorID        string             `json:"vendor_id"`
	OrderDate       time.Time          `json:"order_date"`
	ExpectedArrival time.Time          `json:"expected_arrival"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest línea de la orden (producto, cantidad, costo unitario).
type OrderItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// ReceiveItemsRequest body para PUT /api/manufacturer-orders/:id/receive.
// Discount es monto fijo; CGST y SGST son porcentajes sobre el subtotal.
type ReceiveItemsRequest struct {
	ReceivedItems []ReceiptDeclaration `json:"received_items"`
	Discount      decimal.Decimal      `json:"discount"`
	CGST          decimal.Decimal      `json:"cgst"`
	SGST          decimal.Decimal      `json:"sgst"`
	ReceivedBy    string               `json:"received_by,omitempty"`
}

// ReceiptDeclaration una declaración de recepción dentro del lote.
// ReceivedDate opcional: si falta se usa la hora actual.
type ReceiptDeclaration struct {
	ProductID        string     `json:"product_id"`
	ReceivedQuantity int64      `json:"received_quantity"`
	ReceivedDate     *time.Time `json:"received_date,omitempty"`
}

// UpdateOrderStatusRequest body para PUT /api/manufacturer-orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse orden completa en respuestas.
type OrderResponse struct {
	OrderID          string                   `json:"order_id"`
	VendorID         string                   `json:"vendor_id"`
	VendorName       string                   `json:"vendor_name,omitempty"`
	Items            []OrderLineResponse      `json:"items"`
	OrderDate        time.Time                `json:"order_date"`
	ExpectedArrival  time.Time                `json:"expected_arrival"`
	Status           string                   `json:"status"`
	TotalCost        decimal.Decimal          `json:"total_cost"`
	ReceivingHistory []ReceivingEventResponse `json:"receiving_history"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// OrderLineResponse línea con su historial de entregas.
type OrderLineResponse struct {
	ProductID        string             `json:"product_id"`
	ProductName      string             `json:"product_name"`
	QuantityOrdered  int64              `json:"quantity"`
	QuantityReceived int64              `json:"quantity_received"`
	CostPerUnit      decimal.Decimal    `json:"cost"`
	Deliveries       []DeliveryResponse `json:"deliveries"`
}

// DeliveryResponse un evento de recepción de una línea.
type DeliveryResponse struct {
	ReceivedQuantity int64     `json:"received_quantity"`
	ReceivedDate     time.Time `json:"received_date"`
	ReceivedBy       string    `json:"received_by,omitempty"`
}

// ReceivingEventResponse una entrada de la bitácora de recepción de la orden.
type ReceivingEventResponse struct {
	ProductID        string          `json:"product_id"`
	QuantityReceived int64           `json:"quantity_received"`
	ReceivedDate     time.Time       `json:"received_date"`
	CostPerUnit      decimal.Decimal `json:"cost_per_unit"`
}

// ReceiptResultResponse resultado por declaración del lote: aplicada o motivo de omisión.
type ReceiptResultResponse struct {
	ProductID    string `json:"product_id"`
	Outcome      string `json:"outcome"` // Applied | SkippedUnmatched | SkippedZeroQuantity
	StockApplied bool   `json:"stock_applied"`
}

// ReceiveItemsResponse respuesta del lote de recepción: orden actualizada,
// factura generada (si hubo líneas válidas) y resultado por declaración.
type ReceiveItemsResponse struct {
	Order   *OrderResponse          `json:"order"`
	Invoice *InvoiceResponse        `json:"invoice,omitempty"`
	Results []ReceiptResultResponse `json:"results"`
}
