package importer

import (
	"context"
	"errors"
	"testing"

	"carre/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	content string
	err     error
}

func (c *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return c.content, c.err
}

func TestAIExtract(t *testing.T) {
	client := &stubClient{content: `[
		{"name": "Belvedere", "price": 420, "category": "spiritueux", "format": "Magnum", "volume": "1.75l"},
		{"name": "", "price": 10, "category": "soft"},
		{"name": "Coca-Cola", "price": 6, "category": "nourriture"}
	]`}

	drafts, err := NewAI(client).Extract(context.Background(), Document{Text: "menu"})
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Belvedere", drafts[0].Name)
	assert.Equal(t, constant.CategorySpirits, drafts[0].Category)
	assert.Equal(t, "Magnum", drafts[0].Format)

	// Unknown categories fall back to the draft default.
	assert.Equal(t, constant.CategorySoft, drafts[1].Category)
	assert.Equal(t, constant.DefaultMenuFormat, drafts[1].Format)
}

func TestAIExtract_FencedResponse(t *testing.T) {
	client := &stubClient{content: "```json\n[{\"name\": \"Heineken\", \"price\": 8, \"category\": \"biere\"}]\n```"}

	drafts, err := NewAI(client).Extract(context.Background(), Document{Text: "menu"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, constant.CategoryBiere, drafts[0].Category)
}

func TestAIExtract_MalformedResponse(t *testing.T) {
	client := &stubClient{content: "sorry, I cannot do that"}

	drafts, err := NewAI(client).Extract(context.Background(), Document{Text: "menu"})
	assert.Error(t, err)
	assert.Nil(t, drafts)
}

func TestAIExtract_CompletionError(t *testing.T) {
	client := &stubClient{err: errors.New("backend unavailable")}

	_, err := NewAI(client).Extract(context.Background(), Document{Text: "menu"})
	assert.Error(t, err)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[]", stripFences("[]"))
	assert.Equal(t, "[]", stripFences("```json\n[]\n```"))
	assert.Equal(t, "[]", stripFences("```\n[]\n```"))
	assert.Equal(t, "[]", stripFences("  []  "))
}
