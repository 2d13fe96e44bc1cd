package retrieval

import (
	"context"
	"errors"
	"fmt"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/pkg/embedding"
)

const (
	// DefaultTopK is how many candidates the index stage pulls before the
	// selection stage picks the best one.
	DefaultTopK = 3

	// NoMatchAnswer is returned verbatim when the index has nothing for the
	// query. An empty index is a valid state, not an error.
	NoMatchAnswer = "No matching products found 😔"
)

var (
	// ErrRetrievalFailed wraps embedding failures during query handling.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrIndexUnavailable wraps index query failures.
	ErrIndexUnavailable = errors.New("vector index unavailable")
)

// Result is the outcome of one retrieval run. Matched is false when the
// answer is the no-match message.
type Result struct {
	Answer    string
	ProductID *uint
	Matched   bool
}

// Pipeline answers a free-text product question in four fixed stages:
// embed the query, search the index, select the best candidate, format the
// answer. Stages always run in this order and the pipeline never writes to
// the index.
type Pipeline struct {
	provider embedding.EmbeddingProvider
	index    contract.ProductEmbeddingRepository
	logger   logger.ILogger
	topK     int
}

func NewPipeline(provider embedding.EmbeddingProvider, index contract.ProductEmbeddingRepository, log logger.ILogger, topK int) *Pipeline {
	if topK < 1 {
		topK = DefaultTopK
	}
	return &Pipeline{
		provider: provider,
		index:    index,
		logger:   log,
		topK:     topK,
	}
}

// pipelineState carries intermediate values between stages.
type pipelineState struct {
	query      string
	queryVec   []float32
	candidates []*entity.SearchResult
	best       *entity.SearchResult
}

// Answer runs the full pipeline for one query.
func (p *Pipeline) Answer(ctx context.Context, query string) (*Result, error) {
	state := &pipelineState{query: query}

	if err := p.embedQuery(state); err != nil {
		return nil, err
	}
	if err := p.queryIndex(ctx, state); err != nil {
		return nil, err
	}
	p.selectBest(state)
	return p.formatAnswer(state), nil
}

func (p *Pipeline) embedQuery(state *pipelineState) error {
	resp, err := p.provider.Generate(state.query, TaskTypeQuery)
	if err != nil {
		p.logger.Error("retrieval", "Query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}
	state.queryVec = resp.Embedding.Values
	return nil
}

func (p *Pipeline) queryIndex(ctx context.Context, state *pipelineState) error {
	results, err := p.index.SearchSimilarWithScore(ctx, state.queryVec, p.topK)
	if err != nil {
		p.logger.Error("retrieval", "Index query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	state.candidates = results
	return nil
}

func (p *Pipeline) selectBest(state *pipelineState) {
	if len(state.candidates) == 0 {
		return
	}
	// Candidates arrive sorted by similarity descending.
	state.best = state.candidates[0]
}

func (p *Pipeline) formatAnswer(state *pipelineState) *Result {
	if state.best == nil {
		p.logger.Debug("retrieval", "No candidates for query", map[string]interface{}{
			"query": state.query,
		})
		return &Result{Answer: NoMatchAnswer}
	}

	meta := state.best.Embedding.Metadata
	productId := state.best.Embedding.ProductId
	return &Result{
		Answer:    FormatAnswer(meta.Name, meta.Price, meta.Description),
		ProductID: &productId,
		Matched:   true,
	}
}
