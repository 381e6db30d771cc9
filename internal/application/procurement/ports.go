package procurement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el lote de recepción completo
// se confirma o se revierte como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.ManufacturerOrderRepository,
		invoiceRepo repository.VendorInvoiceRepository,
		stockRepo repository.ProductStockRepository,
	) error) error
}

// Clock abstrae la hora actual para que los defaults "ahora" sean
// deterministas en tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implementación de Clock con time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator produce identificadores de negocio únicos para órdenes y facturas.
// El formato es detalle de implementación; el contrato es solo unicidad
// (respaldada además por constraints UNIQUE en BD).
type IDGenerator interface {
	OrderID(now time.Time) string
	InvoiceID(now time.Time) string
}

// BusinessIDGenerator genera ids legibles MFG-/INV- con milisegundos y un
// fragmento de uuid para evitar colisiones bajo concurrencia.
type BusinessIDGenerator struct{}

func (BusinessIDGenerator) OrderID(now time.Time) string {
	return fmt.Sprintf("MFG-%d-%s", now.UnixMilli(), uuidFragment())
}

func (BusinessIDGenerator) InvoiceID(now time.Time) string {
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), uuidFragment())
}

func uuidFragment() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura
// de proveedor.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *InvoiceForPDF) ([]byte, error)
}
