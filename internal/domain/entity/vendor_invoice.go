package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor.
const (
	InvoiceStatusPending = "Pending"
	InvoiceStatusPaid    = "Paid"
)

// VendorInvoice es el documento por pagar generado por un lote de recepción.
// Es una foto inmutable: referencia la orden por identificador pero no le
// pertenece, y no cambia cuando la orden muta después.
type VendorInvoice struct {
	ID                  string // id interno (uuid)
	InvoiceID           string // identificador de negocio, único e inmutable (INV-...)
	ManufacturerOrderID string // OrderID de la orden que la originó
	VendorName          string
	Items               []InvoiceLine
	SubTotal            decimal.Decimal
	Discount            decimal.Decimal // monto fijo, a nivel de lote
	CGST                decimal.Decimal // porcentaje sobre SubTotal
	SGST                decimal.Decimal // porcentaje sobre SubTotal
	TotalAmount         decimal.Decimal
	InvoiceDate         time.Time
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// InvoiceLine es una línea facturada: lo recibido en este lote, al costo de la
// línea de la orden, capturado al momento de generar la factura.
type InvoiceLine struct {
	ProductID   string
	ProductName string
	Quantity    int64
	CostPerUnit decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceTotal calcula el total a pagar: subtotal - descuento + impuestos.
// CGST y SGST se aplican cada uno sobre el subtotal (antes del descuento).
func InvoiceTotal(subTotal, discount, cgst, sgst decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return subTotal.
		Sub(discount).
		Add(subTotal.Mul(cgst).Div(hundred)).
		Add(subTotal.Mul(sgst).Div(hundred))
}
