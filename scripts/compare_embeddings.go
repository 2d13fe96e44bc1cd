//go:build ignore

package main

import (
	"fmt"
	"log"
	"math"

	"smart-negotiator-be/internal/config"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/rag/retrieval"
)

// CosineSimilarity calculates similarity between two vectors
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

func main() {
	cfg := config.Load()

	// 1. Initialize Providers
	fmt.Println("--- Initializing Providers ---")
	gemini := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	nomic := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)

	// 2. Define Test Cases: catalog documents the way the indexer writes them
	doc1 := retrieval.BuildDocument("Laptop", 55000, "Fast ultrabook with 16GB RAM")
	doc2 := retrieval.BuildDocument("Notebook Computer", 52000, "Portable machine with 16GB memory")
	doc3 := retrieval.BuildDocument("Bluetooth Speaker", 2500, "Portable speaker with deep bass")

	fmt.Println("\n--- Generating Embeddings ---")

	generate := func(name string, p embedding.EmbeddingProvider, t1, t2, t3 string) ([]float32, []float32, []float32) {
		fmt.Printf("\n[%s] Generating...\n", name)

		v1, err := p.Generate(t1, retrieval.TaskTypeDocument)
		if err != nil {
			log.Printf("Error %s (Doc 1): %v", name, err)
			return nil, nil, nil
		}
		fmt.Printf("[%s] Doc 1 Dimensions: %d\n", name, len(v1.Embedding.Values))

		v2, err := p.Generate(t2, retrieval.TaskTypeDocument)
		if err != nil {
			log.Printf("Error %s (Doc 2): %v", name, err)
			return nil, nil, nil
		}

		v3, err := p.Generate(t3, retrieval.TaskTypeDocument)
		if err != nil {
			log.Printf("Error %s (Doc 3): %v", name, err)
			return nil, nil, nil
		}

		return v1.Embedding.Values, v2.Embedding.Values, v3.Embedding.Values
	}

	report := func(name string, v1, v2, v3 []float32) {
		if v1 == nil {
			fmt.Printf("[%s] Skipped (generation failed)\n", name)
			return
		}
		fmt.Printf("\n[%s] Similar docs (laptop vs laptop):   %.4f\n", name, CosineSimilarity(v1, v2))
		fmt.Printf("[%s] Different docs (laptop vs speaker): %.4f\n", name, CosineSimilarity(v1, v3))
	}

	g1, g2, g3 := generate("Gemini", gemini, doc1, doc2, doc3)
	n1, n2, n3 := generate("Nomic/Ollama", nomic, doc1, doc2, doc3)

	fmt.Println("\n--- Results ---")
	report("Gemini", g1, g2, g3)
	report("Nomic/Ollama", n1, n2, n3)
}
