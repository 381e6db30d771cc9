package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// InvoiceTotal — total = subtotal - descuento + CGST% + SGST%, ambos impuestos
// sobre el subtotal ANTES del descuento.
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceTotal_CasoCompleto(t *testing.T) {
	// 60 uds × 10 = 600; descuento 50; CGST 9% y SGST 9% sobre 600 = 54 + 54.
	got := entity.InvoiceTotal(d(600), d(50), d(9), d(9))
	assert.True(t, d(658).Equal(got),
		"600 - 50 + 54 + 54 = 658, obtuve %s", got)
}

func TestInvoiceTotal_SinDescuentoNiImpuestos(t *testing.T) {
	got := entity.InvoiceTotal(d(400), decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, d(400).Equal(got), "sin descuento ni impuestos total == subtotal")
}

func TestInvoiceTotal_ImpuestosSobreSubtotalPreDescuento(t *testing.T) {
	// Con impuestos sobre el neto (950) el total sería 1 121; sobre el bruto
	// (1 000) debe ser 1 130.
	got := entity.InvoiceTotal(d(1000), d(50), d(9), d(9))
	assert.True(t, d(1130).Equal(got),
		"los impuestos se calculan sobre el subtotal pre-descuento, obtuve %s", got)
}

func TestInvoiceTotal_ImpuestosFraccionarios(t *testing.T) {
	// 2.5% + 2.5% sobre 100 = 5.
	got := entity.InvoiceTotal(d(100), decimal.Zero, decimal.NewFromFloat(2.5), decimal.NewFromFloat(2.5))
	assert.True(t, d(105).Equal(got), "obtuve %s", got)
}

func TestInvoiceTotal_DescuentoMayorQueSubtotal(t *testing.T) {
	// El cálculo es aritmética pura: un descuento mayor que el subtotal produce
	// total negativo y es responsabilidad del caller validarlo si le importa.
	got := entity.InvoiceTotal(d(100), d(150), decimal.Zero, decimal.Zero)
	assert.True(t, d(-50).Equal(got))
}
