package embedding

import "errors"

// ErrUnavailable means the backing model could not produce a vector. Fatal
// for the calling rebuild/query operation; callers surface it instead of
// degrading silently.
var ErrUnavailable = errors.New("embedding provider unavailable")

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
