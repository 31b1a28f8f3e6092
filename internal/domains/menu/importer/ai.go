package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"carre/infras/llm"
	"carre/shared/constant"
	"carre/shared/failure"

	"github.com/rs/zerolog/log"
)

const extractionSystemPrompt = `You extract beverage menu items from raw text.
Respond with a raw JSON array only, no prose and no code fences.
Each element: {"name": string, "price": number, "category": string,
"format": string, "volume": string, "description": string}.
category must be one of: champagne, aperitif, biere, energy, spiritueux,
vin, soft. Use "soft" when unsure. format defaults to "Bouteille".`

// aiItem is the shape the completion is instructed to return.
type aiItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Format      string  `json:"format"`
	Volume      string  `json:"volume"`
	Description string  `json:"description"`
}

// AIExtractor delegates extraction to a chat-completion backend and maps
// the structured reply onto drafts.
type AIExtractor struct {
	client llm.Client
}

func NewAI(client llm.Client) *AIExtractor {
	return &AIExtractor{client: client}
}

func (e *AIExtractor) Extract(ctx context.Context, doc Document) ([]Draft, error) {
	content, err := e.client.Complete(ctx, extractionSystemPrompt, doc.Text)
	if err != nil {
		log.Error().Err(err).Msg("menu extraction completion failed")

		return nil, fmt.Errorf("menu extraction completion failed: %w", err)
	}

	var items []aiItem

	if err := json.Unmarshal([]byte(stripFences(content)), &items); err != nil {
		log.Error().Err(err).Msg("failed to parse extraction response")

		return nil, failure.BadRequestFromString(fmt.Sprintf("failed to parse extraction response: %v", err)) // nolint:wrapcheck
	}

	drafts := make([]Draft, 0, len(items))

	for _, item := range items {
		if item.Name == constant.Empty {
			continue
		}

		category := normalizeCategory(item.Category)

		drafts = append(drafts, newDraft(item.Name, item.Price, category, item.Format, item.Volume, item.Description))
	}

	return drafts, nil
}

// stripFences tolerates completions wrapped in a fenced code block despite
// the instruction not to.
func stripFences(content string) string {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
