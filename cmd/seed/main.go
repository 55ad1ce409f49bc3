// seed genera un script SQL para poblar el catálogo inicial (productos y
// áreas) a partir de los CSV exportados del control en Excel del restaurante.
//
// Uso: go run ./cmd/seed [productos.csv] [areas.csv]
//
// Los CSV vienen de "Guardar como CSV" en Excel en Windows: separador punto y
// coma y codificación Windows-1252 (los nombres traen acentos y ñ).
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalogo.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed_catalogo.sql"

func main() {
	productosCSV := "productos.csv"
	areasCSV := "areas.csv"
	if len(os.Args) > 1 {
		productosCSV = os.Args[1]
	}
	if len(os.Args) > 2 {
		areasCSV = os.Args[2]
	}

	productos, err := leerCSV(productosCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", productosCSV, err)
		os.Exit(1)
	}
	areas, err := leerCSV(areasCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer %s: %v\n", areasCSV, err)
		os.Exit(1)
	}

	var sb strings.Builder
	sb.WriteString("-- Generado por cmd/seed. No editar a mano.\n\n")

	vistos := make(map[string]bool)
	for _, fila := range productos {
		nombre := strings.ToUpper(strings.TrimSpace(fila[0]))
		if nombre == "" || vistos[nombre] {
			continue
		}
		vistos[nombre] = true
		um := ""
		if len(fila) > 1 {
			um = strings.TrimSpace(fila[1])
		}
		fmt.Fprintf(&sb,
			"INSERT INTO productos (id, nombre, unidad_medida) VALUES ('%s', '%s', '%s') ON CONFLICT (nombre) DO NOTHING;\n",
			uuid.New().String(), escapar(nombre), escapar(um))
	}

	sb.WriteString("\n")
	vistos = make(map[string]bool)
	for _, fila := range areas {
		nombre := strings.ToUpper(strings.TrimSpace(fila[0]))
		if nombre == "" || vistos[nombre] {
			continue
		}
		vistos[nombre] = true
		codigo := ""
		if len(fila) > 1 {
			codigo = strings.TrimSpace(fila[1])
		}
		fmt.Fprintf(&sb,
			"INSERT INTO areas (id, nombre, codigo) VALUES ('%s', '%s', '%s') ON CONFLICT (nombre) DO NOTHING;\n",
			uuid.New().String(), escapar(nombre), escapar(codigo))
	}

	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("OK: %s (%d productos, %d áreas)\n", outPath, len(productos), len(areas))
}

// leerCSV lee un CSV separado por punto y coma en Windows-1252 y descarta la
// fila de encabezado.
func leerCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	filas, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(filas) > 0 {
		filas = filas[1:]
	}
	return filas, nil
}

func escapar(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
