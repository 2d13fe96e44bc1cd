package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"smart-negotiator-be/internal/model"
	"smart-negotiator-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Seeds the product catalog from a CSV file (columns: name, mrp, stock).
// Existing rows are updated in place, keyed by product name. Embeddings are
// not built here; run cmd/reindex afterwards or let the API rebuild them.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	csvPath := os.Getenv("PRODUCTS_CSV")
	if csvPath == "" {
		csvPath = "data/products.csv"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("Error: Failed to open %s: %v", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Error: Failed to parse %s: %v", csvPath, err)
	}
	if len(rows) < 2 {
		log.Fatal("Error: CSV has no data rows")
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[name] = i
	}
	for _, required := range []string{"name", "mrp", "stock"} {
		if _, ok := cols[required]; !ok {
			log.Fatalf("Error: CSV is missing column '%s'", required)
		}
	}

	log.Printf("Seeding %d products from %s...", len(rows)-1, csvPath)

	seeded := 0
	for _, row := range rows[1:] {
		name := row[cols["name"]]

		price, err := strconv.ParseFloat(row[cols["mrp"]], 64)
		if err != nil {
			log.Printf("Skipping '%s': bad mrp value %q", name, row[cols["mrp"]])
			continue
		}
		stock, err := strconv.Atoi(row[cols["stock"]])
		if err != nil {
			log.Printf("Skipping '%s': bad stock value %q", name, row[cols["stock"]])
			continue
		}

		priceStr := strconv.FormatFloat(price, 'f', -1, 64)
		product := model.Product{
			Name:        name,
			Price:       price,
			Description: fmt.Sprintf("High-quality %s with excellent features. MRP: ₹%s, Current Price: ₹%s", strings.ToLower(name), row[cols["mrp"]], priceStr),
			Stock:       stock,
		}

		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "description", "stock", "updated_at"}),
		}).Create(&product).Error
		if err != nil {
			log.Printf("Error seeding '%s': %v", name, err)
			continue
		}
		seeded++
	}

	log.Printf("✅ Seeded %d products.", seeded)
}
