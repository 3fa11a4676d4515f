package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/dashboard"
)

// StatsRepository is the sqlx read side for dashboard aggregates. Raw SQL
// keeps the multi-table rollups in one round trip each.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) dashboard.Repository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) StatsForRep(repID string) (*dashboard.Stats, error) {
	const query = `
SELECT
  COALESCE((SELECT SUM(total_amount) FROM sales_orders WHERE rep_id = $1 AND status <> 'cancelled'), 0) AS total_revenue,
  (SELECT COUNT(*) FROM sales_orders WHERE rep_id = $1 AND status <> 'cancelled') AS total_orders,
  (SELECT COUNT(*) FROM customers WHERE rep_id = $1) AS assigned_customers,
  (SELECT COUNT(*) FROM sales_targets WHERE rep_id = $1 AND status = 'active') AS active_targets,
  (SELECT COUNT(*) FROM sales_targets WHERE rep_id = $1 AND status = 'completed') AS completed_targets,
  (SELECT COUNT(*) FROM activities WHERE rep_id = $1 AND type = 'call' AND status = 'completed'
     AND completed_date >= date_trunc('month', now())) AS this_month_calls,
  COALESCE((SELECT SUM(total_amount) FROM sales_orders WHERE rep_id = $1 AND status <> 'cancelled'
     AND order_date >= date_trunc('month', now())), 0) AS this_month_revenue,
  (SELECT COUNT(*) FROM sales_orders WHERE rep_id = $1 AND status <> 'cancelled'
     AND order_date >= date_trunc('month', now())) AS this_month_orders`

	ctx, cancel := internal.WithTimeout(context.Background(), 0)
	defer cancel()

	var stats dashboard.Stats
	if err := r.db.GetContext(ctx, &stats, query, repID); err != nil {
		return nil, fmt.Errorf("dashboard stats for rep %s: %w", repID, err)
	}
	return &stats, nil
}

func (r *StatsRepository) PerformanceForRep(repID string, months int) ([]*dashboard.MonthlyPerformance, error) {
	const query = `
WITH month_series AS (
  SELECT date_trunc('month', now()) - (INTERVAL '1 month' * gs) AS month_start
  FROM generate_series(0, $2 - 1) AS gs
)
SELECT
  to_char(ms.month_start, 'YYYY-MM') AS month,
  COALESCE(SUM(o.total_amount) FILTER (WHERE o.status <> 'cancelled'), 0) AS revenue,
  COUNT(o.id) FILTER (WHERE o.status <> 'cancelled') AS orders,
  (SELECT COUNT(*) FROM activities a
    WHERE a.rep_id = $1 AND a.type = 'call' AND a.status = 'completed'
      AND date_trunc('month', a.completed_date) = ms.month_start) AS completed_calls
FROM month_series ms
LEFT JOIN sales_orders o
  ON o.rep_id = $1 AND date_trunc('month', o.order_date) = ms.month_start
GROUP BY ms.month_start
ORDER BY ms.month_start`

	ctx, cancel := internal.WithTimeout(context.Background(), 0)
	defer cancel()

	var rows []*dashboard.MonthlyPerformance
	if err := r.db.SelectContext(ctx, &rows, query, repID, months); err != nil {
		return nil, fmt.Errorf("performance report for rep %s: %w", repID, err)
	}
	return rows, nil
}
