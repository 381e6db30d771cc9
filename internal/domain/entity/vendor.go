package entity

import "time"

// Vendor representa un proveedor/fabricante. Este núcleo solo lo consulta
// (directorio de proveedores); el mantenimiento del registro es externo.
type Vendor struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	Country       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
