package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hotelzify/concierge/internal/hotelzify"
	"github.com/hotelzify/concierge/internal/normalize"
	"github.com/hotelzify/concierge/internal/schema"
)

// defaultSearchLimit caps result counts when the caller does not ask for
// a specific number of hits.
const defaultSearchLimit = 5

// SearchHotelsTool ranks chain hotels against a free-text query and
// enriches the hits with catalog imagery and ratings.
type SearchHotelsTool struct {
	client *hotelzify.Client
	log    *zap.Logger
}

func NewSearchHotelsTool(client *hotelzify.Client, log *zap.Logger) *SearchHotelsTool {
	return &SearchHotelsTool{client: client, log: log.Named("search_hotels")}
}

func (t *SearchHotelsTool) Name() ToolName { return ToolSearchHotels }

func (t *SearchHotelsTool) Description() string {
	return "Search the hotel chain for properties matching a natural-language query " +
		"(location, amenities, vibe). Returns ranked hotels with photos, ratings and addresses."
}

func (t *SearchHotelsTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Free-text description of what the guest is looking for, e.g. \"beach resort in Goa with a pool\".",
			},
			"k": {
				Type:        "integer",
				Description: "Maximum number of hotels to return. Defaults to 5.",
			},
		},
		Required: []string{"query"},
	}
}

// Execute runs the semantic search and the chain-catalog fetch
// concurrently. The catalog is decorative (images, rating fallback) and
// degrades to empty on failure; only a search failure fails the tool.
func (t *SearchHotelsTool) Execute(ctx context.Context, args map[string]any) Result {
	query := stringArg(args, "query")
	k := intArg(args, "k", defaultSearchLimit)
	if k <= 0 {
		k = defaultSearchLimit
	}

	var (
		hits    []hotelzify.SearchHotel
		catalog *hotelzify.ChainCatalog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hits, err = t.client.SearchHotels(gctx, query, k)
		return err
	})
	g.Go(func() error {
		catalog = t.client.ChainHotelsBestEffort(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		t.log.Warn("hotel search failed", zap.String("query", query), zap.Error(err))
		return searchFailure(query, catalog, err)
	}

	hotels := normalize.MergeHotels(hits, catalog)
	result := schema.SearchResult{
		Query:     query,
		Hotels:    hotels,
		Count:     len(hotels),
		ChainName: catalog.ChainName,
		Status:    schema.StatusLoaded,
	}

	text := fmt.Sprintf("Found %d hotels matching %q.", result.Count, query)
	if result.Count == 0 {
		text = fmt.Sprintf("No hotels matched %q.", query)
	}
	return Result{Text: text, Structured: result}
}

func searchFailure(query string, catalog *hotelzify.ChainCatalog, err error) Result {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	chainName := ""
	if catalog != nil {
		chainName = catalog.ChainName
	}
	result := schema.SearchResult{
		Query:     query,
		Hotels:    []schema.HotelSummary{},
		Count:     0,
		ChainName: chainName,
		Status:    schema.StatusFailed,
		Error:     true,
	}
	return Result{Text: "Error searching hotels: " + msg, Structured: result}
}
