package main

import (
	"context"
	"log"

	"smart-negotiator-be/internal/config"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/implementation"
	"smart-negotiator-be/pkg/database"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/rag/retrieval"

	"github.com/fatih/color"
)

// Rebuilds the vector index for every product in the catalog from the CLI.
// Same per-product semantics as the admin reindex endpoint: failures are
// reported and skipped.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	ctx := context.Background()
	productRepo := implementation.NewProductRepository(db)
	embeddingRepo := implementation.NewProductEmbeddingRepository(db)

	products, err := productRepo.FindAll(ctx)
	if err != nil {
		log.Fatalf("Error: Failed to list products: %v", err)
	}

	color.Cyan("🚀 Reindexing %d products (provider: %s)\n", len(products), cfg.Ai.EmbeddingProvider)

	records := make([]*entity.ProductEmbedding, 0, len(products))
	failed := 0
	for _, product := range products {
		document := retrieval.BuildDocument(product.Name, product.Price, product.Description)

		res, err := provider.Generate(document, retrieval.TaskTypeDocument)
		if err != nil {
			color.Red("✗ %s: embedding failed: %v", product.Name, err)
			failed++
			continue
		}

		color.Green("✓ %s", product.Name)
		records = append(records, &entity.ProductEmbedding{
			ProductId:      product.Id,
			EmbeddingValue: res.Embedding.Values,
			Document:       document,
			Metadata: entity.ProductMetadata{
				Name:        product.Name,
				Price:       product.Price,
				Description: product.Description,
				Stock:       product.Stock,
			},
		})
	}

	indexed, err := embeddingRepo.UpsertBulk(ctx, records)
	if err != nil {
		color.Red("✗ bulk write skipped %d records: %v", len(records)-indexed, err)
	}
	failed += len(records) - indexed

	if failed > 0 {
		color.Yellow("\nDone with errors: %d indexed, %d failed", indexed, failed)
		return
	}
	color.Green("\nDone: %d products indexed", indexed)
}
