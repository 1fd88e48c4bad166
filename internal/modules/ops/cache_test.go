package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kishansuresh/pds-track/internal/modules/ops"
)

func TestCache_StartsFullyStale(t *testing.T) {
	c := ops.NewCache()
	assert.Equal(t, ops.AllCollections, c.Stale())
}

func TestCache_MarkFreshAndInvalidate(t *testing.T) {
	c := ops.NewCache()
	c.MarkFresh(ops.AllCollections...)
	assert.Empty(t, c.Stale())

	c.Invalidate(ops.CollectionSales, ops.CollectionStock)
	assert.Equal(t, []ops.Collection{ops.CollectionStock, ops.CollectionSales}, c.Stale(),
		"stale collections come back in declaration order")

	c.MarkFresh(ops.CollectionStock)
	assert.Equal(t, []ops.Collection{ops.CollectionSales}, c.Stale())
}

func TestCache_UpdateMutatesSnapshot(t *testing.T) {
	c := ops.NewCache()
	c.Update(func(s *ops.Snapshot) { s.Stock.ShopRiceKg = 120 })
	assert.Equal(t, 120.0, c.Snapshot().Stock.ShopRiceKg)
}
