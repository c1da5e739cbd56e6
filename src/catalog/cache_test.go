package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedWithoutRedisFallsThrough(t *testing.T) {
	c := NewCached(NewStatic("ECOMSURFER"), nil)

	products, err := c.Search(context.Background(), "coffee machine")
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestCacheKeyNormalizesQuery(t *testing.T) {
	assert.Equal(t, cacheKey("Coffee Machine"), cacheKey("  coffee machine "))
	assert.NotEqual(t, cacheKey("coffee machine"), cacheKey("gaming laptop"))
	assert.Contains(t, cacheKey("coffee machine"), "catalog:search:")
}
