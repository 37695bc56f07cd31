package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/domain"
)

var seedSubjects = []string{"Кроссовки", "Футболки", "Шапки", "Рюкзаки"}

var seedStatuses = []int{4, 7, 8, 9, 9, 9, 11, 11}

var seedTypes = []int{4, 5, 6, 7, 8, 9}

// Seed replaces the catalog and campaigns with demo data: a catalog of
// articles spread over a few subjects and campaigns advertising random
// subsets of them. Campaigns that "never ran" get no metrics.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `TRUNCATE campaigns, products RESTART IDENTITY`); err != nil {
		return err
	}

	catalog := seedCatalog()
	articles := make([]int64, 0, len(catalog))
	for _, p := range catalog {
		articles = append(articles, p.Article)
		if _, err = tx.Exec(ctx, `INSERT INTO products (article, subj_name) VALUES ($1, $2)`, p.Article, p.SubjName); err != nil {
			return err
		}
	}

	for id := int64(1); id <= seedCampaigns; id++ {
		c := seedCampaign(r, id, articles)
		var budget, dailyBudget *float64
		if c.Budget != nil {
			budget, dailyBudget = &c.Budget.Budget, &c.Budget.DailyBudget
		}

		_, err = tx.Exec(ctx, `INSERT INTO campaigns
    (id, name, status_id, type, nms, views, clicks, ctr, cpc, cpm, spent, orders, target, budget, daily_budget)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
			c.ID, c.Name, c.StatusID, c.Type, c.Nms, c.Views, c.Clicks, c.Ctr, c.Cpc, c.Cpm, c.Spent, c.Orders, c.Target, budget, dailyBudget)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const (
	seedArticlesPerSubject = 5
	seedCampaigns          = 30
)

// seedCatalog returns the demo catalog in insertion order.
func seedCatalog() []domain.Product {
	catalog := make([]domain.Product, 0, len(seedSubjects)*seedArticlesPerSubject)
	for i, subj := range seedSubjects {
		for j := 1; j <= seedArticlesPerSubject; j++ {
			catalog = append(catalog, domain.Product{Article: int64(100000*(i+1) + j), SubjName: subj})
		}
	}
	return catalog
}

// seedCampaign generates one demo campaign advertising one to three of
// articles. Derived metrics are consistent with the raw counters.
func seedCampaign(r *rand.Rand, id int64, articles []int64) domain.Campaign {
	c := domain.Campaign{
		ID:       id,
		Name:     fmt.Sprintf("Кампания %d", id),
		StatusID: seedStatuses[r.Intn(len(seedStatuses))],
		Type:     seedTypes[r.Intn(len(seedTypes))],
	}
	for _, k := range r.Perm(len(articles))[:1+r.Intn(min(3, len(articles)))] {
		c.Nms = append(c.Nms, articles[k])
	}

	if c.StatusID != domain.StatusCodeReady {
		v := int64(1000 + r.Intn(50000))
		clicks := int64(r.Intn(int(v / 20)))
		o := int64(r.Intn(int(clicks/10) + 1))
		m := float64(150 + r.Intn(400))
		spent := float64(v) / 1000 * m
		target := spent * 1.2
		c.Views, c.Clicks, c.Orders, c.Cpm, c.Spent, c.Target = &v, &clicks, &o, &m, &spent, &target

		ctr := float64(clicks) / float64(v) * 100
		c.Ctr = &ctr
		if clicks > 0 {
			cpc := spent / float64(clicks)
			c.Cpc = &cpc
		}
	}

	if r.Intn(2) == 0 {
		b := float64(5000 * (1 + r.Intn(10)))
		c.Budget = &domain.Budget{Budget: b, DailyBudget: b / 10}
	}
	return c
}
