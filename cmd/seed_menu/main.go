// seed_menu genera un script SQL para poblar el menú (categorías, opciones de
// personalización y productos con precios) a partir de un export menu.json.
//
// Uso: go run ./cmd/seed_menu [ruta/menu.json]
// Por defecto busca menu.json en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_menu.sql
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

type menuExport struct {
	Categories []struct {
		Name         string `json:"name"`
		DisplayOrder int    `json:"displayOrder"`
	} `json:"categories"`
	CustomizationOptions []struct {
		OptionCode   string          `json:"optionCode"`
		NameEn       string          `json:"nameEn"`
		NameAr       string          `json:"nameAr"`
		Price        decimal.Decimal `json:"price"`
		DisplayOrder int             `json:"displayOrder"`
	} `json:"customizationOptions"`
	Products []struct {
		ProductCode    string   `json:"productCode"`
		NameEn         string   `json:"nameEn"`
		NameAr         string   `json:"nameAr"`
		Category       string   `json:"category"`
		CaffeineIndex  int      `json:"caffeineIndex"`
		IsCustomizable bool     `json:"isCustomizable"`
		Tags           []string `json:"tags"`
		Flavors        []string `json:"flavors"`
		Prices         []struct {
			Size  string          `json:"size"`
			Price decimal.Decimal `json:"price"`
		} `json:"prices"`
	} `json:"products"`
}

func main() {
	jsonPath := "menu.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer JSON: %v\n", err)
		os.Exit(1)
	}

	var m menuExport
	if err := json.Unmarshal(raw, &m); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_menu.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Menú Dr.Coffee: categorías, opciones de personalización y productos\n")
	out.WriteString("-- Generado desde menu.json (cmd/seed_menu)\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, c := range m.Categories {
		fmt.Fprintf(out, "INSERT INTO categories (name, display_order) VALUES ('%s', %d)\n",
			escapeSQL(c.Name), c.DisplayOrder)
		out.WriteString("ON CONFLICT (name) DO UPDATE SET display_order = EXCLUDED.display_order;\n")
	}

	out.WriteString("\n-- 2. Opciones de personalización\n")
	for _, o := range m.CustomizationOptions {
		fmt.Fprintf(out, "INSERT INTO customization_options (option_code, name_en, name_ar, price, display_order)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, %d)\n",
			escapeSQL(o.OptionCode), escapeSQL(o.NameEn), escapeSQL(o.NameAr), o.Price.String(), o.DisplayOrder)
		out.WriteString("ON CONFLICT (option_code) DO UPDATE SET price = EXCLUDED.price, display_order = EXCLUDED.display_order;\n")
	}

	out.WriteString("\n-- 3. Productos (la categoría se resuelve por nombre)\n")
	prices := 0
	for _, p := range m.Products {
		fmt.Fprintf(out, "INSERT INTO products (product_code, name_en, name_ar, category_id, caffeine_index, is_customizable)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s', '%s', id, %d, %t FROM categories WHERE name = '%s'\n",
			escapeSQL(p.ProductCode), escapeSQL(p.NameEn), escapeSQL(p.NameAr),
			p.CaffeineIndex, p.IsCustomizable, escapeSQL(p.Category))
		out.WriteString("ON CONFLICT (product_code) DO NOTHING;\n")

		for _, pr := range p.Prices {
			fmt.Fprintf(out, "INSERT INTO product_prices (product_id, size, price)\n")
			fmt.Fprintf(out, "SELECT id, '%s', %s FROM products WHERE product_code = '%s'\n",
				escapeSQL(pr.Size), pr.Price.String(), escapeSQL(p.ProductCode))
			out.WriteString("ON CONFLICT (product_id, size) DO UPDATE SET price = EXCLUDED.price;\n")
			prices++
		}
		for _, tag := range p.Tags {
			fmt.Fprintf(out, "INSERT INTO product_tags (product_id, tag)\n")
			fmt.Fprintf(out, "SELECT id, '%s' FROM products WHERE product_code = '%s'\n",
				escapeSQL(tag), escapeSQL(p.ProductCode))
			out.WriteString("ON CONFLICT DO NOTHING;\n")
		}
		for _, flavor := range p.Flavors {
			fmt.Fprintf(out, "INSERT INTO product_flavors (product_id, flavor_name)\n")
			fmt.Fprintf(out, "SELECT id, '%s' FROM products WHERE product_code = '%s'\n",
				escapeSQL(flavor), escapeSQL(p.ProductCode))
			out.WriteString("ON CONFLICT DO NOTHING;\n")
		}
	}

	fmt.Printf("Generado %s: %d categorías, %d opciones, %d productos, %d precios\n",
		outPath, len(m.Categories), len(m.CustomizationOptions), len(m.Products), prices)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
