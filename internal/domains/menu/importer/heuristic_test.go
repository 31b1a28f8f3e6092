package importer

import (
	"context"
	"testing"

	"carre/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExtract_WithHeader(t *testing.T) {
	doc := Document{Rows: [][]string{
		{"Nom", "Prix", "Catégorie"},
		{"Heineken", "8", "biere"},
		{"Vodka Grey Goose Magnum", "450.50", ""},
		{"", "12", "soft"},
	}}

	drafts, err := NewHeuristic().Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Heineken", drafts[0].Name)
	assert.Equal(t, constant.CategoryBiere, drafts[0].Category)
	assert.InDelta(t, 8, drafts[0].Price, 0.001)
	assert.Equal(t, constant.DefaultMenuFormat, drafts[0].Format)
	assert.NotEmpty(t, drafts[0].TempID)
	assert.True(t, drafts[0].Available)

	// No category cell: inferred from the name, format from the row text.
	assert.Equal(t, "Vodka Grey Goose Magnum", drafts[1].Name)
	assert.Equal(t, constant.CategorySpirits, drafts[1].Category)
	assert.Equal(t, "Magnum", drafts[1].Format)
	assert.InDelta(t, 450.50, drafts[1].Price, 0.001)
}

func TestHeuristicExtract_NoHeader(t *testing.T) {
	doc := Document{Rows: [][]string{
		{"Champagne Ruinart 75cl", "180,00"},
		{"juste du texte sans prix"},
	}}

	drafts, err := NewHeuristic().Extract(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Champagne Ruinart 75cl", drafts[0].Name)
	assert.Equal(t, constant.CategoryChampagne, drafts[0].Category)
	assert.InDelta(t, 180, drafts[0].Price, 0.001)
	assert.Equal(t, "75cl", drafts[0].Volume)
}

func TestHeuristicExtract_Empty(t *testing.T) {
	drafts, err := NewHeuristic().Extract(context.Background(), Document{})
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"biere", constant.CategoryBiere},
		{"Bières", constant.CategoryBiere},
		{"spiritueux", constant.CategorySpirits},
		{"Sans alcool", constant.CategorySoft},
		{"wines", constant.CategoryVin},
		{"nourriture", constant.Empty},
		{"", constant.Empty},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, normalizeCategory(test.raw), test.raw)
	}
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, constant.CategoryChampagne, inferCategory("Moët & Chandon"))
	assert.Equal(t, constant.CategoryEnergy, inferCategory("Red Bull"))
	assert.Equal(t, constant.CategoryAperitif, inferCategory("Aperol Spritz"))
	assert.Equal(t, constant.CategorySoft, inferCategory("quelque chose d'inconnu"))
}

func TestInferVolume(t *testing.T) {
	assert.Equal(t, "70cl", inferVolume("Vodka 70 cl"))
	assert.Equal(t, "1.5l", inferVolume("Magnum 1,5L"))
	assert.Equal(t, constant.Empty, inferVolume("sans contenance"))
}
