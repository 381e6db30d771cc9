// seed puebla la base con proveedores y productos de demostración para
// probar el flujo completo: crear orden → recibir lotes → pagar facturas.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/compras-api/internal/infrastructure/postgres"
	"github.com/jhoicas/compras-api/pkg/config"
)

type vendorSeed struct {
	name, contact, email, phone, address, city, postal, country string
}

type productSeed struct {
	name  string
	stock int64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	vendors := []vendorSeed{
		{"Textiles del Norte S.A.", "María Gómez", "compras@textilesnorte.co", "+57 300 111 2233", "Cra 45 #12-30", "Medellín", "050001", "CO"},
		{"Insumos Andinos Ltda.", "Carlos Pérez", "ventas@insumosandinos.co", "+57 310 444 5566", "Calle 80 #20-15", "Bogotá", "110111", "CO"},
		{"Global Fabrics Co.", "Priya Sharma", "orders@globalfabrics.in", "+91 98200 12345", "MG Road 221", "Mumbai", "400001", "IN"},
	}

	products := []productSeed{
		{"Camiseta algodón blanca M", 40},
		{"Camiseta algodón negra L", 25},
		{"Pantalón dril azul 32", 12},
		{"Chaqueta impermeable S", 0},
		{"Gorra bordada unitalla", 80},
	}

	for _, v := range vendors {
		_, err := pool.Exec(ctx, `
			INSERT INTO vendors (id, name, contact_person, email, phone, address, city, postal_code, country, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT DO NOTHING`,
			uuid.New().String(), v.name, v.contact, v.email, v.phone, v.address, v.city, v.postal, v.country,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar proveedor %q: %v\n", v.name, err)
			os.Exit(1)
		}
		fmt.Printf("proveedor listo: %s\n", v.name)
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, stock, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			ON CONFLICT DO NOTHING`,
			uuid.New().String(), p.name, p.stock,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar producto %q: %v\n", p.name, err)
			os.Exit(1)
		}
		fmt.Printf("producto listo: %s (stock %d)\n", p.name, p.stock)
	}

	fmt.Println("seed completado")
}
