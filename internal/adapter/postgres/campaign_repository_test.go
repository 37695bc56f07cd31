package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa-campaigns/internal/core/domain"
)

func TestBudgetOf(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name        string
		budget      *float64
		dailyBudget *float64
		want        *domain.Budget
	}{
		{name: "no budget columns", want: nil},
		{name: "both columns", budget: f(5000), dailyBudget: f(500), want: &domain.Budget{Budget: 5000, DailyBudget: 500}},
		{name: "only total", budget: f(5000), want: &domain.Budget{Budget: 5000}},
		{name: "only daily", dailyBudget: f(300), want: &domain.Budget{DailyBudget: 300}},
		{name: "zero is still a budget", budget: f(0), want: &domain.Budget{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetOf(tt.budget, tt.dailyBudget))
		})
	}
}
