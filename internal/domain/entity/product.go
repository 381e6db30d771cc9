package entity

import "time"

// Product es la vista del libro de existencias que usa este núcleo:
// cantidad disponible por producto, incrementada al recibir mercancía.
type Product struct {
	ID        string
	Name      string
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
