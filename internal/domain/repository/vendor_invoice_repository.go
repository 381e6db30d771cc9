package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// InvoiceFilter filtros de listado de facturas de proveedor.
type InvoiceFilter struct {
	Status             string // coincidencia exacta (Pending | Paid); vacío = todas
	VendorNameContains string // subcadena, sin distinguir mayúsculas; vacío = todas
}

// VendorInvoiceRepository define el puerto de persistencia para facturas de proveedor.
// Las facturas son fotos históricas: se crean una vez y solo muta su estado de pago.
type VendorInvoiceRepository interface {
	Create(invoice *entity.VendorInvoice) error
	GetByInvoiceID(invoiceID string) (*entity.VendorInvoice, error)
	// List devuelve facturas de la más reciente a la más antigua.
	List(filter InvoiceFilter, limit, offset int) ([]*entity.VendorInvoice, error)
	UpdateStatus(invoiceID, status string) error
}
