package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-campaigns/internal/core/domain"
)

// CampaignRepository implements port.CampaignSource using pgxpool for
// PostgreSQL. It only reads; the tables are filled by the campaign sync
// job or by the seed command.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT
            id,
            name,
            status_id,
            type,
            nms,
            views,
            clicks,
            ctr,
            cpc,
            cpm,
            spent,
            orders,
            target,
            budget,
            daily_budget
        FROM campaigns
        ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c           domain.Campaign
			budget      *float64
			dailyBudget *float64
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.StatusID,
			&c.Type,
			&c.Nms,
			&c.Views,
			&c.Clicks,
			&c.Ctr,
			&c.Cpc,
			&c.Cpm,
			&c.Spent,
			&c.Orders,
			&c.Target,
			&budget,
			&dailyBudget,
		)
		c.Budget = budgetOf(budget, dailyBudget)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

// budgetOf builds the budget record from its nullable columns. A campaign
// without either column has no budget; a missing half reads as zero.
func budgetOf(budget, dailyBudget *float64) *domain.Budget {
	if budget == nil && dailyBudget == nil {
		return nil
	}
	b := &domain.Budget{}
	if budget != nil {
		b.Budget = *budget
	}
	if dailyBudget != nil {
		b.DailyBudget = *dailyBudget
	}
	return b
}

// ListProducts returns the catalog in insertion order.
func (r *CampaignRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT article, subj_name FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.Article, &p.SubjName)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}
