package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceResponse factura de proveedor en respuestas.
type InvoiceResponse struct {
	InvoiceID           string                `json:"invoice_id"`
	ManufacturerOrderID string                `json:"manufacturer_order_id"`
	VendorName          string                `json:"vendor_name"`
	Items               []InvoiceLineResponse `json:"items"`
	SubTotal            decimal.Decimal       `json:"sub_total"`
	Discount            decimal.Decimal       `json:"discount"`
	CGST                decimal.Decimal       `json:"cgst"`
	SGST                decimal.Decimal       `json:"sgst"`
	TotalAmount         decimal.Decimal       `json:"total_amount"`
	InvoiceDate         time.Time             `json:"invoice_date"`
	Status              string                `json:"status"`
	CreatedAt           time.Time             `json:"created_at"`
}

// InvoiceLineResponse línea facturada (foto del lote recibido).
type InvoiceLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Total       decimal.Decimal `json:"total"`
}

// ListInvoicesRequest filtros de GET /api/vendor-invoices.
type ListInvoicesRequest struct {
	Status string `query:"status"`
	Vendor string `query:"vendor"`
	PageRequest
}
