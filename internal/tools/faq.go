package tools

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hotelzify/concierge/internal/schema"
)

//go:embed faq.yaml
var faqYAML []byte

type faqEntry struct {
	Topic    string   `yaml:"topic"`
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
}

type faqKnowledgeBase struct {
	Fallback string     `yaml:"fallback"`
	Entries  []faqEntry `yaml:"entries"`
}

// QueryHotelInfoTool answers general questions about the chain's policies
// from an embedded knowledge base. No upstream calls are involved.
type QueryHotelInfoTool struct {
	kb  faqKnowledgeBase
	log *zap.Logger
}

func NewQueryHotelInfoTool(log *zap.Logger) (*QueryHotelInfoTool, error) {
	var kb faqKnowledgeBase
	if err := yaml.Unmarshal(faqYAML, &kb); err != nil {
		return nil, fmt.Errorf("load faq knowledge base: %w", err)
	}
	return &QueryHotelInfoTool{kb: kb, log: log.Named("query_hotel_info")}, nil
}

func (t *QueryHotelInfoTool) Name() ToolName { return ToolQueryHotelInfo }

func (t *QueryHotelInfoTool) Description() string {
	return "Answer general questions about hotel policies: check-in and check-out times, " +
		"cancellation, payment, pets, children and amenities."
}

func (t *QueryHotelInfoTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "The guest's question, e.g. \"what time is check-in?\".",
			},
		},
		Required: []string{"query"},
	}
}

// Execute matches the query against each entry's keywords,
// case-insensitively. The first entry with any keyword contained in the
// query wins; entry order in the knowledge base is the priority order.
func (t *QueryHotelInfoTool) Execute(_ context.Context, args map[string]any) Result {
	query := stringArg(args, "query")
	lowered := strings.ToLower(query)

	for _, entry := range t.kb.Entries {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				result := schema.FAQResult{
					Query:   query,
					Matched: true,
					Topic:   entry.Topic,
					Answer:  entry.Answer,
					Status:  schema.StatusLoaded,
				}
				return Result{Text: entry.Answer, Structured: result}
			}
		}
	}

	result := schema.FAQResult{
		Query:   query,
		Matched: false,
		Answer:  t.kb.Fallback,
		Status:  schema.StatusLoaded,
	}
	return Result{Text: t.kb.Fallback, Structured: result}
}
