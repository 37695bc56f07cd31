package db

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/core/domain"
)

func TestSeedCatalog(t *testing.T) {
	catalog := seedCatalog()

	require.Len(t, catalog, len(seedSubjects)*seedArticlesPerSubject)
	assert.Equal(t, seedSubjects, domain.SubjectNames(catalog), "subjects keep their order")

	seen := map[int64]bool{}
	for _, p := range catalog {
		assert.False(t, seen[p.Article], "article %d repeated", p.Article)
		seen[p.Article] = true
	}
}

func TestSeedCampaign(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var articles []int64
	for _, p := range seedCatalog() {
		articles = append(articles, p.Article)
	}

	for id := int64(1); id <= 200; id++ {
		c := seedCampaign(r, id, articles)

		assert.Equal(t, id, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Nms)
		assert.LessOrEqual(t, len(c.Nms), 3)
		for _, nm := range c.Nms {
			assert.Contains(t, articles, nm)
		}

		if c.StatusID == domain.StatusCodeReady {
			assert.Nil(t, c.Views, "campaign %d never ran", id)
			assert.Nil(t, c.Ctr)
		} else {
			require.NotNil(t, c.Views)
			require.NotNil(t, c.Clicks)
			require.NotNil(t, c.Ctr)
			assert.InDelta(t, float64(*c.Clicks)/float64(*c.Views)*100, *c.Ctr, 1e-9)
			assert.Equal(t, *c.Clicks > 0, c.Cpc != nil)
		}

		if c.Budget != nil {
			assert.InDelta(t, c.Budget.Budget/10, c.Budget.DailyBudget, 1e-9)
		}
	}
}
