package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/procurement"
	"github.com/jhoicas/compras-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de órdenes de compra al fabricante.
type OrderHandler struct {
	orderUC   *procurement.OrderUseCase
	receiveUC *procurement.ReceiveItemsUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orderUC *procurement.OrderUseCase, receiveUC *procurement.ReceiveItemsUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, receiveUC: receiveUC}
}

// Create crea una orden de compra.
// POST /api/manufacturer-orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.CreateOrder(c.Context(), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List lista órdenes de la más reciente a la más antigua.
// GET /api/manufacturer-orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	orders, err := h.orderUC.ListOrders(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(orders)
}

// GetByID obtiene una orden por su identificador de negocio.
// GET /api/manufacturer-orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orderUC.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// Receive procesa un lote de recepción contra la orden: actualiza líneas,
// bitácoras y stock, y genera la factura de proveedor del lote.
// PUT /api/manufacturer-orders/:id/receive
func (h *OrderHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.receiveUC.ReceiveItems(c.Context(), c.Params("id"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(result)
}

// UpdateStatus fija el estado de la orden directamente (ej. cancelación).
// PUT /api/manufacturer-orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(order)
}

// orderError mapea errores de dominio a códigos HTTP.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	case errors.Is(err, domain.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
