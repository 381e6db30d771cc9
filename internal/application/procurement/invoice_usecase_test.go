package procurement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-api/internal/application/dto"
	"github.com/jhoicas/compras-api/internal/application/procurement"
	"github.com/jhoicas/compras-api/internal/domain"
	"github.com/jhoicas/compras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Facturas de proveedor: listado con filtros y pago.
// ──────────────────────────────────────────────────────────────────────────────

func seedInvoices(repo *fakeInvoiceRepo) {
	_ = repo.Create(&entity.VendorInvoice{
		InvoiceID: "INV-001", VendorName: "Textiles del Norte S.A.",
		Status: entity.InvoiceStatusPending, SubTotal: d(400), TotalAmount: d(400),
	})
	_ = repo.Create(&entity.VendorInvoice{
		InvoiceID: "INV-002", VendorName: "Insumos Andinos Ltda.",
		Status: entity.InvoiceStatusPaid, SubTotal: d(600), TotalAmount: d(658),
	})
	_ = repo.Create(&entity.VendorInvoice{
		InvoiceID: "INV-003", VendorName: "Textiles del Norte S.A.",
		Status: entity.InvoiceStatusPaid, SubTotal: d(100), TotalAmount: d(100),
	})
}

func TestListInvoices_SinFiltros_MasRecientePrimero(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	seedInvoices(repo)
	uc := procurement.NewInvoiceUseCase(repo)

	list, err := uc.List(context.Background(), dto.ListInvoicesRequest{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "INV-003", list[0].InvoiceID)
	assert.Equal(t, "INV-001", list[2].InvoiceID)
}

func TestListInvoices_FiltroPorEstado(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	seedInvoices(repo)
	uc := procurement.NewInvoiceUseCase(repo)

	list, err := uc.List(context.Background(), dto.ListInvoicesRequest{Status: entity.InvoiceStatusPending})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "INV-001", list[0].InvoiceID)
}

func TestListInvoices_FiltroPorProveedor_Subcadena(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	seedInvoices(repo)
	uc := procurement.NewInvoiceUseCase(repo)

	// Subcadena sin distinguir mayúsculas.
	list, err := uc.List(context.Background(), dto.ListInvoicesRequest{Vendor: "textiles"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List(context.Background(), dto.ListInvoicesRequest{
		Status: entity.InvoiceStatusPaid,
		Vendor: "textiles",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "INV-003", list[0].InvoiceID, "los filtros se combinan")
}

func TestGetInvoice_NoExiste(t *testing.T) {
	uc := procurement.NewInvoiceUseCase(&fakeInvoiceRepo{})
	_, err := uc.Get(context.Background(), "INV-NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayInvoice_TransicionaAPaid(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	seedInvoices(repo)
	uc := procurement.NewInvoiceUseCase(repo)

	resp, err := uc.Pay(context.Background(), "INV-001")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, resp.Status)
	assert.Equal(t, entity.InvoiceStatusPaid, repo.find("INV-001").Status, "persistido")
}

func TestPayInvoice_Idempotente(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	seedInvoices(repo)
	uc := procurement.NewInvoiceUseCase(repo)

	// INV-002 ya está pagada: re-pagar no es error y queda Paid.
	resp, err := uc.Pay(context.Background(), "INV-002")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, resp.Status)
}

func TestPayInvoice_NoExiste(t *testing.T) {
	uc := procurement.NewInvoiceUseCase(&fakeInvoiceRepo{})
	_, err := uc.Pay(context.Background(), "INV-NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF de la factura
// ──────────────────────────────────────────────────────────────────────────────

type stubPDFGenerator struct {
	got *procurement.InvoiceForPDF
	err error
}

func (g *stubPDFGenerator) GenerateInvoicePDF(_ context.Context, in *procurement.InvoiceForPDF) ([]byte, error) {
	g.got = in
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func TestDownloadInvoicePDF_ResuelveProveedorViaOrden(t *testing.T) {
	invoiceRepo := &fakeInvoiceRepo{}
	_ = invoiceRepo.Create(&entity.VendorInvoice{
		InvoiceID: "INV-010", ManufacturerOrderID: "MFG-SEED-001",
		VendorName: "Textiles del Norte S.A.", Status: entity.InvoiceStatusPending,
	})
	orderRepo := &fakeOrderRepo{}
	_ = orderRepo.Create(&entity.ManufacturerOrder{OrderID: "MFG-SEED-001", VendorID: "v1"})
	vendorRepo := newFakeVendorRepo(&entity.Vendor{ID: "v1", Name: "Textiles del Norte S.A.", Phone: "300"})
	gen := &stubPDFGenerator{}

	uc := procurement.NewInvoicePDFUseCase(invoiceRepo, orderRepo, vendorRepo, gen)
	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "INV-010")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "factura_INV-010.pdf", filename)
	require.NotNil(t, gen.got)
	require.NotNil(t, gen.got.Vendor, "el proveedor se resuelve vía la orden de origen")
	assert.Equal(t, "300", gen.got.Vendor.Phone)
}

func TestDownloadInvoicePDF_ProveedorAusente_GeneraIgual(t *testing.T) {
	invoiceRepo := &fakeInvoiceRepo{}
	_ = invoiceRepo.Create(&entity.VendorInvoice{
		InvoiceID: "INV-011", ManufacturerOrderID: "MFG-BORRADA",
		VendorName: "Unknown Vendor", Status: entity.InvoiceStatusPending,
	})
	gen := &stubPDFGenerator{}

	uc := procurement.NewInvoicePDFUseCase(invoiceRepo, &fakeOrderRepo{}, newFakeVendorRepo(), gen)
	_, _, err := uc.DownloadInvoicePDF(context.Background(), "INV-011")
	require.NoError(t, err, "orden o proveedor ausentes no bloquean el PDF")
	assert.Nil(t, gen.got.Vendor)
}

func TestDownloadInvoicePDF_FacturaNoExiste(t *testing.T) {
	uc := procurement.NewInvoicePDFUseCase(&fakeInvoiceRepo{}, &fakeOrderRepo{}, newFakeVendorRepo(), &stubPDFGenerator{})
	_, _, err := uc.DownloadInvoicePDF(context.Background(), "INV-NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadInvoicePDF_GeneradorFalla(t *testing.T) {
	invoiceRepo := &fakeInvoiceRepo{}
	_ = invoiceRepo.Create(&entity.VendorInvoice{InvoiceID: "INV-012", Status: entity.InvoiceStatusPending})
	gen := &stubPDFGenerator{err: errors.New("sin fuente")}

	uc := procurement.NewInvoicePDFUseCase(invoiceRepo, &fakeOrderRepo{}, newFakeVendorRepo(), gen)
	_, _, err := uc.DownloadInvoicePDF(context.Background(), "INV-012")
	assert.Error(t, err)
}
