package procurement

import (
	"context"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// InvoiceUseCase consultas y pago de facturas de proveedor.
type InvoiceUseCase struct {
	invoiceRepo repository.VendorInvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.VendorInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo}
}

// List lista facturas de la más reciente a la más antigua, con filtros
// opcionales por estado exacto y subcadena del nombre del proveedor.
func (uc *InvoiceUseCase) List(ctx context.Context, in dto.ListInvoicesRequest) ([]*dto.InvoiceResponse, error) {
	in.DefaultPage()
	filter := repository.InvoiceFilter{
		Status:             in.Status,
		VendorNameContains: in.Vendor,
	}
	invoices, err := uc.invoiceRepo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, InvoiceToResponse(inv))
	}
	return out, nil
}

// Get obtiene una factura por su identificador de negocio.
func (uc *InvoiceUseCase) Get(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return InvoiceToResponse(inv), nil
}

// Pay transiciona la factura a Paid. Re-pagar una factura ya pagada vuelve a
// fijar Paid (idempotente); Paid es terminal y no hay reversa.
func (uc *InvoiceUseCase) Pay(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.invoiceRepo.UpdateStatus(invoiceID, entity.InvoiceStatusPaid); err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatusPaid
	return InvoiceToResponse(inv), nil
}

// InvoiceToResponse mapea la entidad a DTO.
func InvoiceToResponse(inv *entity.VendorInvoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceLineResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceLineResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			CostPerUnit: it.CostPerUnit,
			Total:       it.Total,
		})
	}
	return &dto.InvoiceResponse{
		InvoiceID:           inv.InvoiceID,
		ManufacturerOrderID: inv.ManufacturerOrderID,
		VendorName:          inv.VendorName,
		Items:               items,
		SubTotal:            inv.SubTotal,
		Discount:            inv.Discount,
		CGST:                inv.CGST,
		SGST:                inv.SGST,
		TotalAmount:         inv.TotalAmount,
		InvoiceDate:         inv.InvoiceDate,
		Status:              inv.Status,
		CreatedAt:           inv.CreatedAt,
	}
}
