package repository

// ProductStockRepository define el puerto hacia el libro de existencias.
//
// IncreaseOnHand debe implementarse como incremento atómico (no leer-luego-escribir)
// para que recepciones concurrentes del mismo producto desde órdenes distintas no
// pierdan actualizaciones. Devuelve false si el producto no existe; el caller
// decide si lo tolera.
type ProductStockRepository interface {
	IncreaseOnHand(productID string, quantity int64) (bool, error)
}
