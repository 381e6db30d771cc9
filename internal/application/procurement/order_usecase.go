package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra: creación, listado y
// actualización explícita de estado (cancelación administrativa incluida).
type OrderUseCase struct {
	orderRepo  repository.ManufacturerOrderRepository
	vendorRepo repository.VendorRepository
	clock      Clock
	ids        IDGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.ManufacturerOrderRepository,
	vendorRepo repository.VendorRepository,
	clock Clock,
	ids IDGenerator,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, vendorRepo: vendorRepo, clock: clock, ids: ids}
}

// CreateOrder crea una orden: valida las líneas, calcula el costo total
// (cantidad × costo por línea, fijo desde aquí) e inicia en estado Ordered
// con acumulados de recepción en cero.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.clock.Now()
	totalCost := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Items))
	seen := make(map[string]bool, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || item.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if seen[item.ProductID] {
			return nil, domain.ErrInvalidInput
		}
		seen[item.ProductID] = true
		totalCost = totalCost.Add(item.Cost.Mul(decimal.NewFromInt(item.Quantity)))
		lines = append(lines, entity.OrderLine{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			QuantityOrdered: item.Quantity,
			CostPerUnit:     item.Cost,
		})
	}

	order := &entity.ManufacturerOrder{
		ID:              uuid.New().String(),
		OrderID:         uc.ids.OrderID(now),
		VendorID:        in.VendorID,
		Items:           lines,
		OrderDate:       in.OrderDate,
		ExpectedArrival: in.ExpectedArrival,
		Status:          entity.OrderStatusOrdered,
		TotalCost:       totalCost,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return uc.toResponse(order), nil
}

// ListOrders lista órdenes de la más reciente a la más antigua, con el nombre
// del proveedor resuelto desde el directorio.
func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	orders, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, uc.toResponse(o))
	}
	return out, nil
}

// GetOrder obtiene una orden por su identificador de negocio.
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(order), nil
}

// SetStatus fija el estado de la orden directamente (uso administrativo, ej.
// cancelación). Solo valida existencia y que el valor sea un estado conocido;
// la transición queda bajo responsabilidad del caller.
func (uc *OrderUseCase) SetStatus(ctx context.Context, orderID, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = uc.clock.Now()
	return uc.toResponse(order), nil
}

// toResponse mapea la entidad a DTO y resuelve el nombre del proveedor
// (tolerante: si el directorio no responde, el nombre queda vacío).
func (uc *OrderUseCase) toResponse(order *entity.ManufacturerOrder) *dto.OrderResponse {
	vendorName := ""
	if v, err := uc.vendorRepo.GetByID(order.VendorID); err == nil && v != nil {
		vendorName = v.Name
	}
	return OrderToResponse(order, vendorName)
}

// OrderToResponse mapea una orden (y nombre de proveedor ya resuelto) a DTO.
func OrderToResponse(order *entity.ManufacturerOrder, vendorName string) *dto.OrderResponse {
	items := make([]dto.OrderLineResponse, 0, len(order.Items))
	for i := range order.Items {
		line := &order.Items[i]
		deliveries := make([]dto.DeliveryResponse, 0, len(line.Deliveries))
		for _, d := range line.Deliveries {
			deliveries = append(deliveries, dto.DeliveryResponse{
				ReceivedQuantity: d.ReceivedQuantity,
				ReceivedDate:     d.ReceivedDate,
				ReceivedBy:       d.ReceivedBy,
			})
		}
		items = append(items, dto.OrderLineResponse{
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			QuantityOrdered:  line.QuantityOrdered,
			QuantityReceived: line.QuantityReceived,
			CostPerUnit:      line.CostPerUnit,
			Deliveries:       deliveries,
		})
	}
	history := make([]dto.ReceivingEventResponse, 0, len(order.ReceivingHistory))
	for _, ev := range order.ReceivingHistory {
		history = append(history, dto.ReceivingEventResponse{
			ProductID:        ev.ProductID,
			QuantityReceived: ev.QuantityReceived,
			ReceivedDate:     ev.ReceivedDate,
			CostPerUnit:      ev.CostPerUnit,
		})
	}
	return &dto.OrderResponse{
		OrderID:          order.OrderID,
		VendorID:         order.VendorID,
		VendorName:       vendorName,
		Items:            items,
		OrderDate:        order.OrderDate,
		ExpectedArrival:  order.ExpectedArrival,
		Status:           order.Status,
		TotalCost:        order.TotalCost,
		ReceivingHistory: history,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
