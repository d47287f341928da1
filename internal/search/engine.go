package search

import (
	"context"
	"strings"

	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/session"
	logx "github.com/storefront-support/server/pkg/logger"
)

// DefaultLimit is the result count used when the caller does not specify one.
const DefaultLimit = 5

// candidateMultiplier widens the similarity cut before filtering so the
// category filter has enough candidates to work with.
const candidateMultiplier = 3

// Engine runs semantic product search: embed the query, rank the catalog by
// cosine similarity, then narrow by category keywords and price ceiling.
// Every filter degrades instead of emptying the result set, and the outcome
// of each search is written into the conversation's product memory so
// follow-up turns can resolve references like "tell me more".
type Engine struct {
	catalog  catalog.Store
	embedder Embedder
	sessions session.MemoryStore
}

func NewEngine(cat catalog.Store, embedder Embedder, sessions session.MemoryStore) *Engine {
	return &Engine{catalog: cat, embedder: embedder, sessions: sessions}
}

// SemanticEnabled reports whether an embedding provider is configured.
// Deployments without one use KeywordSearch only.
func (e *Engine) SemanticEnabled() bool {
	return e.embedder != nil
}

// Search returns at most limit products ranked by relevance to the query.
// A maxPrice of zero or less means "extract the ceiling from the query".
// Embedding failures degrade to an empty result rather than an error; the
// caller may then fall back to KeywordSearch.
func (e *Engine) Search(ctx context.Context, turn session.TurnContext, query string, limit int, maxPrice float64) ([]Candidate, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if maxPrice <= 0 {
		if ceiling, ok := ExtractPriceCeiling(query); ok {
			maxPrice = ceiling
			logx.Debug().Float64("max_price", maxPrice).Msg("price constraint extracted from query")
		}
	}

	if !e.SemanticEnabled() {
		logx.Warn().Msg("no embedding provider configured, semantic search unavailable")
		return nil, nil
	}

	queryVec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		// Transient provider exhaustion degrades to "no results".
		logx.Warn().Err(err).Str("query", query).Msg("query embedding unavailable, returning empty result")
		return nil, nil
	}

	products, err := e.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	ranked := RankBySimilarity(products, queryVec)

	topK := ranked
	if len(topK) > limit*candidateMultiplier {
		topK = topK[:limit*candidateMultiplier]
	}

	keywords := ExtractCategoryKeywords(query)
	results := FilterByCategory(topK, keywords)
	if len(results) == 0 && len(topK) > 0 {
		logx.Debug().Strs("keywords", keywords).Msg("category filter emptied results, using unfiltered candidates")
		results = topK
	}

	if maxPrice > 0 {
		priced := FilterByPrice(results, maxPrice)
		if len(priced) == 0 && len(results) > 0 {
			logx.Debug().Float64("max_price", maxPrice).Msg("price filter emptied results, keeping pre-filter candidates")
		} else {
			results = priced
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}

	e.rememberResults(ctx, turn, query, results)
	return results, nil
}

// KeywordSearch is the embedding-free fallback: query terms (with naive
// singular/plural normalization) matched against product name, category and
// keyword fields. It writes the same product memory as the semantic path.
func (e *Engine) KeywordSearch(ctx context.Context, turn session.TurnContext, query string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	term := strings.ToLower(strings.TrimSpace(query))
	terms := []string{term}
	if strings.HasSuffix(term, "s") {
		terms = append(terms, strings.TrimSuffix(term, "s"))
	} else {
		terms = append(terms, term+"s")
	}

	products, err := e.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	var results []Candidate
	for _, p := range products {
		if !matchesKeywordTerms(p, terms) {
			continue
		}
		results = append(results, Candidate{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
		})
	}

	if len(results) > limit {
		results = results[:limit]
	}

	e.rememberResults(ctx, turn, query, results)
	return results, nil
}

func matchesKeywordTerms(p catalog.Product, terms []string) bool {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)
	for _, t := range terms {
		if strings.Contains(name, t) || strings.Contains(category, t) {
			return true
		}
		for _, kw := range p.Keywords {
			if strings.ToLower(kw) == t {
				return true
			}
		}
	}
	return false
}

// rememberResults overwrites the conversation's product memory with this
// search's outcome: the top hit for "tell me more" follow-ups and the full
// ordered id list for "all of them", with the detailed-ids tracking reset.
// A memory write failure is logged but never fails the search itself.
func (e *Engine) rememberResults(ctx context.Context, turn session.TurnContext, query string, results []Candidate) {
	if len(results) == 0 {
		return
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	mem := session.ProductMemory{
		LastProductID:   results[0].ID,
		LastProductName: results[0].Name,
		LastQuery:       query,
		ProductIDs:      ids,
		DetailedIDs:     []string{},
	}

	if err := e.sessions.Save(ctx, turn.ConversationID, mem); err != nil {
		logx.Error().Err(err).Str("conversation_id", turn.ConversationID).Msg("failed to save product memory")
		return
	}
	logx.Debug().
		Str("conversation_id", turn.ConversationID).
		Str("last_product_id", mem.LastProductID).
		Int("result_count", len(ids)).
		Msg("product memory saved")
}
