package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementRate(t *testing.T) {
	assert.Equal(t, 0.0, EngagementRate(10, 5, 5, 0))
	assert.Equal(t, 20.0, EngagementRate(10, 5, 5, 100))

	p := &Pin{SavesCount: 1, LikesCount: 1, ClicksCount: 2, ImpressionsCount: 8}
	assert.Equal(t, 50.0, p.EngagementRate())
}

func TestClickThroughRate(t *testing.T) {
	assert.Equal(t, 0.0, ClickThroughRate(3, 0))
	assert.Equal(t, 10.0, ClickThroughRate(5, 50))

	q := &SearchQuery{ClickedResults: 1, ResultsCount: 4}
	assert.Equal(t, 25.0, q.ClickThroughRate())
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 10)
	for _, c := range Categories {
		assert.True(t, IsCategory(c))
		assert.Len(t, Subcategories[c], 6, c)
	}
	assert.False(t, IsCategory("Cars"))
	assert.Len(t, All(), 7)
}
