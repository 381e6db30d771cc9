package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
	"github.com/jhoicas/compras-api/pkg/logger"
)

// Resultado por declaración del lote de recepción. Las omisiones no son
// errores: el lote es best-effort y una línea mala no aborta el resto.
const (
	ReceiptApplied             = "Applied"
	ReceiptSkippedUnmatched    = "SkippedUnmatched"
	ReceiptSkippedZeroQuantity = "SkippedZeroQuantity"
)

// receivedByDefault se usa cuando el caller no identifica quién recibe.
const receivedByDefault = "admin"

// ReceiveItemsUseCase es el motor de recepción: aplica un lote de
// declaraciones contra una orden, alimenta las bitácoras, incrementa el stock
// y genera la factura de proveedor del lote. Todo dentro de una transacción
// con la fila de la orden bloqueada, de modo que dos lotes concurrentes contra
// la misma orden se serializan y ninguno pierde actualizaciones.
type ReceiveItemsUseCase struct {
	txRunner   TxRunner
	vendorRepo repository.VendorRepository
	clock      Clock
	ids        IDGenerator
	log        *logger.Logger
}

// NewReceiveItemsUseCase construye el caso de uso.
func NewReceiveItemsUseCase(
	txRunner TxRunner,
	vendorRepo repository.VendorRepository,
	clock Clock,
	ids IDGenerator,
	log *logger.Logger,
) *ReceiveItemsUseCase {
	return &ReceiveItemsUseCase{txRunner: txRunner, vendorRepo: vendorRepo, clock: clock, ids: ids, log: log}
}

// ReceiveItems procesa un lote de recepción contra la orden orderID.
//
// Reglas:
//   - Orden inexistente -> domain.ErrNotFound; orden Cancelled -> domain.ErrInvalidState.
//   - Declaración sin línea en la orden o con cantidad <= 0: se omite (no es error).
//   - La sobre-recepción se acepta tal cual (quantityReceived puede superar lo
//     ordenado); se deja registro en el log para el área de compras.
//   - El incremento de stock es best-effort por línea: producto no resuelto no
//     bloquea la contabilidad de la recepción.
//   - Si ninguna declaración aplicó, no se genera factura; el estado se
//     recalcula igual.
//   - La factura se fecha con el ReceivedDate de la primera declaración del
//     lote (o la hora actual si falta): documenta la recepción, no el proceso.
func (uc *ReceiveItemsUseCase) ReceiveItems(ctx context.Context, orderID string, in dto.ReceiveItemsRequest) (*dto.ReceiveItemsResponse, error) {
	if len(in.ReceivedItems) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.IsNegative() || in.CGST.IsNegative() || in.SGST.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	receivedBy := in.ReceivedBy
	if receivedBy == "" {
		receivedBy = receivedByDefault
	}

	var resp *dto.ReceiveItemsResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.ManufacturerOrderRepository,
		invoiceRepo repository.VendorInvoiceRepository,
		stockRepo repository.ProductStockRepository,
	) error {
		order, err := orderRepo.GetByOrderIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.OrderStatusCancelled {
			return fmt.Errorf("%w: la orden %s está cancelada", domain.ErrInvalidState, orderID)
		}

		now := uc.clock.Now()
		batchDate := now
		if first := in.ReceivedItems[0].ReceivedDate; first != nil {
			batchDate = *first
		}

		results := make([]dto.ReceiptResultResponse, 0, len(in.ReceivedItems))
		invoiceItems := make([]entity.InvoiceLine, 0, len(in.ReceivedItems))
		subTotal := decimal.Zero

		for _, decl := range in.ReceivedItems {
			line := order.FindLine(decl.ProductID)
			if line == nil {
				// Tolerancia a estado viejo del cliente: se omite sin fallar el lote.
				uc.log.Warn().Str("order_id", orderID).Str("product_id", decl.ProductID).
					Msg("declaración de recepción sin línea en la orden, omitida")
				results = append(results, dto.ReceiptResultResponse{ProductID: decl.ProductID, Outcome: ReceiptSkippedUnmatched})
				continue
			}
			if decl.ReceivedQuantity <= 0 {
				results = append(results, dto.ReceiptResultResponse{ProductID: decl.ProductID, Outcome: ReceiptSkippedZeroQuantity})
				continue
			}

			receivedDate := now
			if decl.ReceivedDate != nil {
				receivedDate = *decl.ReceivedDate
			}

			if line.QuantityReceived+decl.ReceivedQuantity > line.QuantityOrdered {
				uc.log.Warn().Str("order_id", orderID).Str("product_id", decl.ProductID).
					Int64("quantity_ordered", line.QuantityOrdered).
					Int64("quantity_received", line.QuantityReceived+decl.ReceivedQuantity).
					Msg("sobre-recepción registrada")
			}

			line.QuantityReceived += decl.ReceivedQuantity
			delivery := entity.Delivery{
				ReceivedQuantity: decl.ReceivedQuantity,
				ReceivedDate:     receivedDate,
				ReceivedBy:       receivedBy,
			}
			line.Deliveries = append(line.Deliveries, delivery)
			event := entity.ReceivingEvent{
				ProductID:        line.ProductID,
				QuantityReceived: decl.ReceivedQuantity,
				ReceivedDate:     receivedDate,
				CostPerUnit:      line.CostPerUnit,
			}
			order.ReceivingHistory = append(order.ReceivingHistory, event)

			if err := orderRepo.UpdateLineReceived(orderID, line.ProductID, line.QuantityReceived); err != nil {
				return err
			}
			if err := orderRepo.AppendDelivery(orderID, line.ProductID, &delivery); err != nil {
				return err
			}
			if err := orderRepo.AppendReceivingEvent(orderID, &event); err != nil {
				return err
			}

			// Línea de factura al costo fijado en la orden; el caller nunca re-precia.
			lineTotal := line.CostPerUnit.Mul(decimal.NewFromInt(decl.ReceivedQuantity))
			subTotal = subTotal.Add(lineTotal)
			invoiceItems = append(invoiceItems, entity.InvoiceLine{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    decl.ReceivedQuantity,
				CostPerUnit: line.CostPerUnit,
				Total:       lineTotal,
			})

			stockApplied, err := stockRepo.IncreaseOnHand(line.ProductID, decl.ReceivedQuantity)
			if err != nil {
				return err
			}
			if !stockApplied {
				uc.log.Warn().Str("order_id", orderID).Str("product_id", line.ProductID).
					Msg("producto sin registro de stock, recepción contabilizada sin incremento")
			}
			results = append(results, dto.ReceiptResultResponse{
				ProductID:    line.ProductID,
				Outcome:      ReceiptApplied,
				StockApplied: stockApplied,
			})
		}

		var invoice *entity.VendorInvoice
		if len(invoiceItems) > 0 {
			invoice = uc.buildInvoice(order, invoiceItems, subTotal, in, batchDate, now)
			if err := invoiceRepo.Create(invoice); err != nil {
				return err
			}
		}

		order.Status = entity.RecomputeOrderStatus(order.Status, order.Items)
		if err := orderRepo.UpdateStatus(orderID, order.Status); err != nil {
			return err
		}
		order.UpdatedAt = now

		resp = &dto.ReceiveItemsResponse{
			Order:   OrderToResponse(order, uc.vendorName(order.VendorID)),
			Results: results,
		}
		if invoice != nil {
			resp.Invoice = InvoiceToResponse(invoice)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// buildInvoice arma la factura del lote: subtotal de lo recibido, descuento
// fijo y ambos impuestos aplicados sobre el subtotal pre-descuento.
func (uc *ReceiveItemsUseCase) buildInvoice(
	order *entity.ManufacturerOrder,
	items []entity.InvoiceLine,
	subTotal decimal.Decimal,
	in dto.ReceiveItemsRequest,
	batchDate, now time.Time,
) *entity.VendorInvoice {
	return &entity.VendorInvoice{
		ID:                  uuid.New().String(),
		InvoiceID:           uc.ids.InvoiceID(now),
		ManufacturerOrderID: order.OrderID,
		VendorName:          uc.vendorName(order.VendorID),
		Items:               items,
		SubTotal:            subTotal,
		Discount:            in.Discount,
		CGST:                in.CGST,
		SGST:                in.SGST,
		TotalAmount:         entity.InvoiceTotal(subTotal, in.Discount, in.CGST, in.SGST),
		InvoiceDate:         batchDate,
		Status:              entity.InvoiceStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// vendorName resuelve el nombre del proveedor para rotular la factura.
func (uc *ReceiveItemsUseCase) vendorName(vendorID string) string {
	if v, err := uc.vendorRepo.GetByID(vendorID); err == nil && v != nil {
		return v.Name
	}
	return "Unknown Vendor"
}
