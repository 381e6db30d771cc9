package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-api/internal/application/procurement"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC      *procurement.OrderUseCase
	ReceiveUC    *procurement.ReceiveItemsUseCase
	InvoiceUC    *procurement.InvoiceUseCase
	InvoicePDFUC *procurement.InvoicePDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Órdenes de compra al fabricante
	orders := api.Group("/manufacturer-orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiveUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/receive", orderHandler.Receive)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Facturas de proveedor (una por lote de recepción)
	invoices := api.Group("/vendor-invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/pay", invoiceHandler.Pay)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
