package repository

import "github.com/jhoicas/compras-api/internal/domain/entity"

// VendorRepository define el puerto de solo lectura al directorio de proveedores.
type VendorRepository interface {
	GetByID(id string) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, error)
}
