package procurement

import (
	"context"
	"fmt"

	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// InvoiceForPDF factura enriquecida con los datos de contacto del proveedor
// para la representación gráfica.
type InvoiceForPDF struct {
	Invoice *entity.VendorInvoice
	Vendor  *entity.Vendor // nil si el proveedor ya no está en el directorio
}

// InvoicePDFUseCase genera el PDF de una factura de proveedor (documento por
// pagar del lote de recepción).
type InvoicePDFUseCase struct {
	invoiceRepo repository.VendorInvoiceRepository
	orderRepo   repository.ManufacturerOrderRepository
	vendorRepo  repository.VendorRepository
	generator   InvoicePDFGenerator
}

// NewInvoicePDFUseCase construye el caso de uso.
func NewInvoicePDFUseCase(
	invoiceRepo repository.VendorInvoiceRepository,
	orderRepo repository.ManufacturerOrderRepository,
	vendorRepo repository.VendorRepository,
	generator InvoicePDFGenerator,
) *InvoicePDFUseCase {
	return &InvoicePDFUseCase{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		vendorRepo:  vendorRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera la factura, resuelve el proveedor vía la orden
// de origen y genera el PDF.
//
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la factura no existe.
func (uc *InvoicePDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// El proveedor se alcanza a través de la orden de origen; si la orden o el
	// proveedor ya no existen, el PDF sale solo con el nombre guardado en la factura.
	var vendor *entity.Vendor
	if order, oErr := uc.orderRepo.GetByOrderID(inv.ManufacturerOrderID); oErr == nil && order != nil {
		if v, vErr := uc.vendorRepo.GetByID(order.VendorID); vErr == nil {
			vendor = v
		}
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, &InvoiceForPDF{Invoice: inv, Vendor: vendor})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.InvoiceID), nil
}
