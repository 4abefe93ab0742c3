package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePageBareArray(t *testing.T) {
	items, total := decodePage([]any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
	}, "products")
	assert.Len(t, items, 2)
	assert.Equal(t, 2, total)
}

func TestDecodePageEntityKey(t *testing.T) {
	items, total := decodePage(map[string]any{
		"products": []any{map[string]any{"id": "1"}},
		"total":    25.0,
	}, "products")
	assert.Len(t, items, 1)
	assert.Equal(t, 25, total)
}

func TestDecodePageItemsKey(t *testing.T) {
	items, total := decodePage(map[string]any{
		"items": []any{map[string]any{"id": "1"}},
	}, "products")
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)
}

func TestDecodePageDoubleWrapped(t *testing.T) {
	items, total := decodePage(map[string]any{
		"data": map[string]any{
			"orders": []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}},
			"total":  "40",
		},
	}, "orders")
	assert.Len(t, items, 2)
	assert.Equal(t, 40, total)
}

func TestDecodePageInnerBareArray(t *testing.T) {
	items, total := decodePage(map[string]any{
		"data": []any{map[string]any{"id": "1"}},
	}, "customers")
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)
}

func TestDecodePageUnrecognizedShape(t *testing.T) {
	items, total := decodePage("oops", "products")
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, total)

	items, total = decodePage(map[string]any{"message": "nothing here"}, "products")
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestNormalizeItemPromotesMongoID(t *testing.T) {
	m := normalizeItem(map[string]any{"_id": "abc", "name": "Tea"})
	assert.Equal(t, "abc", m["id"])
}

func TestNormalizeItemCollapsesCategoryObject(t *testing.T) {
	m := normalizeItem(map[string]any{
		"category": map[string]any{"name": "Drinks", "id": "c1"},
	})
	assert.Equal(t, "Drinks", m["category"])

	m = normalizeItem(map[string]any{
		"category": map[string]any{"_id": "c2"},
	})
	assert.Equal(t, "c2", m["category"])
}

func TestDecodeItemsWeaklyTyped(t *testing.T) {
	var out []struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}
	err := decodeItems([]map[string]any{
		{"id": 7, "price": "12.5"},
	}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "7", out[0].ID)
	assert.Equal(t, 12.5, out[0].Price)
}
