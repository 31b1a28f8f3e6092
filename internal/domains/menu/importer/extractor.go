// Package importer turns uploaded menu documents into reviewable drafts.
// Two interchangeable strategies exist: a keyword heuristic and a
// delegated chat-completion extraction.
package importer

//go:generate go run go.uber.org/mock/mockgen -source=./extractor.go -destination=./mocks/extractor_mock.go -package=mocks

import (
	"context"

	"carre/shared/constant"

	"github.com/google/uuid"
)

// Draft is a candidate menu item awaiting staff review before insertion.
type Draft struct {
	TempID      string  `json:"temp_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Format      string  `json:"format"`
	Volume      string  `json:"volume"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

// Document is the extracted content of an uploaded file: tabular rows for
// structured formats, plus a flattened text rendering.
type Document struct {
	Rows [][]string
	Text string
}

// Extractor maps an extracted document onto menu item drafts.
type Extractor interface {
	Extract(ctx context.Context, doc Document) ([]Draft, error)
}

// newDraft applies the shared draft defaults.
func newDraft(name string, price float64, category, format, volume, description string) Draft {
	if category == constant.Empty {
		category = constant.CategorySoft
	}

	if format == constant.Empty {
		format = constant.DefaultMenuFormat
	}

	return Draft{
		TempID:      uuid.NewString(),
		Name:        name,
		Category:    category,
		Price:       price,
		Format:      format,
		Volume:      volume,
		Description: description,
		Available:   true,
	}
}
