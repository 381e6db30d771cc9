package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/procurement"
	"github.com/jhoicas/compras-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas de proveedor.
type InvoiceHandler struct {
	invoiceUC *procurement.InvoiceUseCase
	pdfUC     *procurement.InvoicePDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(invoiceUC *procurement.InvoiceUseCase, pdfUC *procurement.InvoicePDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, pdfUC: pdfUC}
}

// List lista facturas con filtros opcionales por estado y proveedor.
// GET /api/vendor-invoices?status=Pending&vendor=acme
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.ListInvoicesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	invoices, err := h.invoiceUC.List(c.Context(), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoices)
}

// GetByID obtiene una factura por su identificador de negocio.
// GET /api/vendor-invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.invoiceUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// Pay transiciona la factura a Paid.
// PUT /api/vendor-invoices/:id/pay
func (h *InvoiceHandler) Pay(c *fiber.Ctx) error {
	invoice, err := h.invoiceUC.Pay(c.Context(), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// DownloadPDF descarga la representación gráfica de la factura.
// GET /api/vendor-invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// invoiceError mapea errores de dominio a códigos HTTP.
func invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
