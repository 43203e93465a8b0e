// seed aplica el esquema (migrations/schema.sql) y siembra datos maestros de
// demostración: categorías, proveedores, ubicaciones y productos.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Por defecto busca migrations/schema.sql en el directorio actual.
// Idempotente: los maestros se insertan con ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	schemaPath := "migrations/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("leer schema.sql")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("schema", schemaPath).Msg("esquema aplicado")

	demo := []string{
		`INSERT INTO categories (name, description) VALUES
			('Electronics', 'Dispositivos y accesorios electrónicos'),
			('Office Supplies', 'Papelería y suministros de oficina')
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO suppliers (name, contact_person, email) VALUES
			('Acme Distribución', 'Laura Pérez', 'ventas@acme.example'),
			('Global Parts', 'Carlos Ruiz', 'contacto@globalparts.example')
		ON CONFLICT DO NOTHING`,
		`INSERT INTO locations (name, description) VALUES
			('Bodega Principal', 'Bodega central de despacho'),
			('Tienda Norte', 'Punto de venta zona norte')
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO products (sku, name, description, category_id, supplier_id, unit_price, min_stock_level, max_stock_level)
		SELECT 'ELEC-001', 'Teclado inalámbrico', 'Teclado bluetooth', c.category_id, s.supplier_id, 89.90, 10, 50
		FROM categories c, suppliers s
		WHERE c.name = 'Electronics' AND s.name = 'Acme Distribución'
		ON CONFLICT (sku) DO NOTHING`,
		`INSERT INTO products (sku, name, description, category_id, supplier_id, unit_price, min_stock_level, max_stock_level)
		SELECT 'OFIC-001', 'Resma papel carta', 'Resma 500 hojas 75g', c.category_id, s.supplier_id, 12.50, 20, 200
		FROM categories c, suppliers s
		WHERE c.name = 'Office Supplies' AND s.name = 'Global Parts'
		ON CONFLICT (sku) DO NOTHING`,
	}
	for _, stmt := range demo {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
	}

	log.Info().Msg("datos de demostración sembrados")
}
