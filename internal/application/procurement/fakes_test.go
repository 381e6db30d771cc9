package procurement_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/compras-api/internal/domain/entity"
	"github.com/jhoicas/compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso. Los Get devuelven clones, como haría
// una BD real: las mutaciones en memoria del caso de uso no tocan lo "persistido"
// hasta que pasan por los métodos de escritura del repositorio.
// ──────────────────────────────────────────────────────────────────────────────

// ── reloj y generador de ids deterministas ────────────────────────────────────

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct{ n int }

func (g *seqIDs) OrderID(time.Time) string {
	g.n++
	return fmt.Sprintf("MFG-TEST-%03d", g.n)
}

func (g *seqIDs) InvoiceID(time.Time) string {
	g.n++
	return fmt.Sprintf("INV-TEST-%03d", g.n)
}

// ── órdenes ───────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []*entity.ManufacturerOrder // orden de inserción
}

func (r *fakeOrderRepo) find(orderID string) *entity.ManufacturerOrder {
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return o
		}
	}
	return nil
}

func cloneOrder(o *entity.ManufacturerOrder) *entity.ManufacturerOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = make([]entity.OrderLine, len(o.Items))
	for i, l := range o.Items {
		c.Items[i] = l
		c.Items[i].Deliveries = append([]entity.Delivery(nil), l.Deliveries...)
	}
	c.ReceivingHistory = append([]entity.ReceivingEvent(nil), o.ReceivingHistory...)
	return &c
}

func (r *fakeOrderRepo) Create(order *entity.ManufacturerOrder) error {
	r.orders = append(r.orders, cloneOrder(order))
	return nil
}

func (r *fakeOrderRepo) GetByOrderID(orderID string) (*entity.ManufacturerOrder, error) {
	return cloneOrder(r.find(orderID)), nil
}

func (r *fakeOrderRepo) GetByOrderIDForUpdate(orderID string) (*entity.ManufacturerOrder, error) {
	return cloneOrder(r.find(orderID)), nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.ManufacturerOrder, error) {
	out := make([]*entity.ManufacturerOrder, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- { // más reciente primero
		out = append(out, cloneOrder(r.orders[i]))
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateLineReceived(orderID, productID string, quantityReceived int64) error {
	o := r.find(orderID)
	if o == nil {
		return fmt.Errorf("orden %s no existe", orderID)
	}
	line := o.FindLine(productID)
	if line == nil {
		return fmt.Errorf("línea %s no existe en %s", productID, orderID)
	}
	line.QuantityReceived = quantityReceived
	return nil
}

func (r *fakeOrderRepo) AppendDelivery(orderID, productID string, d *entity.Delivery) error {
	o := r.find(orderID)
	if o == nil {
		return fmt.Errorf("orden %s no existe", orderID)
	}
	line := o.FindLine(productID)
	if line == nil {
		return fmt.Errorf("línea %s no existe en %s", productID, orderID)
	}
	line.Deliveries = append(line.Deliveries, *d)
	return nil
}

func (r *fakeOrderRepo) AppendReceivingEvent(orderID string, ev *entity.ReceivingEvent) error {
	o := r.find(orderID)
	if o == nil {
		return fmt.Errorf("orden %s no existe", orderID)
	}
	o.ReceivingHistory = append(o.ReceivingHistory, *ev)
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(orderID, status string) error {
	o := r.find(orderID)
	if o == nil {
		return fmt.Errorf("orden %s no existe", orderID)
	}
	o.Status = status
	return nil
}

// ── facturas ──────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []*entity.VendorInvoice
}

func cloneInvoice(inv *entity.VendorInvoice) *entity.VendorInvoice {
	if inv == nil {
		return nil
	}
	c := *inv
	c.Items = append([]entity.InvoiceLine(nil), inv.Items...)
	return &c
}

func (r *fakeInvoiceRepo) find(invoiceID string) *entity.VendorInvoice {
	for _, inv := range r.invoices {
		if inv.InvoiceID == invoiceID {
			return inv
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) Create(invoice *entity.VendorInvoice) error {
	r.invoices = append(r.invoices, cloneInvoice(invoice))
	return nil
}

func (r *fakeInvoiceRepo) GetByInvoiceID(invoiceID string) (*entity.VendorInvoice, error) {
	return cloneInvoice(r.find(invoiceID)), nil
}

func (r *fakeInvoiceRepo) List(filter repository.InvoiceFilter, limit, offset int) ([]*entity.VendorInvoice, error) {
	out := make([]*entity.VendorInvoice, 0, len(r.invoices))
	for i := len(r.invoices) - 1; i >= 0; i-- { // más reciente primero
		inv := r.invoices[i]
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.VendorNameContains != "" &&
			!strings.Contains(strings.ToLower(inv.VendorName), strings.ToLower(filter.VendorNameContains)) {
			continue
		}
		out = append(out, cloneInvoice(inv))
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(invoiceID, status string) error {
	inv := r.find(invoiceID)
	if inv == nil {
		return fmt.Errorf("factura %s no existe", invoiceID)
	}
	inv.Status = status
	return nil
}

// ── stock ─────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	stock map[string]int64 // productos conocidos; ausente => IncreaseOnHand devuelve false
	err   error            // fuerza un fallo de infraestructura
}

func newFakeStockRepo(productIDs ...string) *fakeStockRepo {
	r := &fakeStockRepo{stock: make(map[string]int64)}
	for _, id := range productIDs {
		r.stock[id] = 0
	}
	return r
}

func (r *fakeStockRepo) IncreaseOnHand(productID string, quantity int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.stock[productID]; !ok {
		return false, nil
	}
	r.stock[productID] += quantity
	return true, nil
}

// ── proveedores ───────────────────────────────────────────────────────────────

type fakeVendorRepo struct {
	vendors map[string]*entity.Vendor
}

func newFakeVendorRepo(vendors ...*entity.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: make(map[string]*entity.Vendor)}
	for _, v := range vendors {
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	out := make([]*entity.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, v)
	}
	return out, nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

// fakeTxRunner pasa siempre los mismos repos en memoria. No hay rollback real:
// los tests que esperan aborto verifican efectos puntuales, no atomicidad.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	invoiceRepo *fakeInvoiceRepo
	stockRepo   *fakeStockRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ManufacturerOrderRepository,
	invoiceRepo repository.VendorInvoiceRepository,
	stockRepo repository.ProductStockRepository,
) error) error {
	return fn(tr.orderRepo, tr.invoiceRepo, tr.stockRepo)
}
