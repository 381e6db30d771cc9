package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/compras-api/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*ProductStockRepo)(nil)

// ProductStockRepo adaptador al libro de existencias (tabla products).
type ProductStockRepo struct {
	q Querier
}

// NewProductStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductStockRepository(q Querier) *ProductStockRepo {
	return &ProductStockRepo{q: q}
}

// IncreaseOnHand suma quantity al disponible del producto con un UPDATE
// atómico (nunca leer-luego-escribir), de modo que recepciones concurrentes
// del mismo producto no pierden incrementos. Devuelve false si el producto
// no existe.
func (r *ProductStockRepo) IncreaseOnHand(productID string, quantity int64) (bool, error) {
	query := `
		UPDATE products SET stock = stock + $2, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, productID, quantity)
	if err != nil {
		return false, fmt.Errorf("increase stock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
