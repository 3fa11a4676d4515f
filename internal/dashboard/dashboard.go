package dashboard

// Stats is the dashboard summary for a representative. Month-scoped fields
// cover the current calendar month.
type Stats struct {
	TotalRevenue      int64 `json:"totalRevenue" db:"total_revenue"`
	TotalOrders       int   `json:"totalOrders" db:"total_orders"`
	AssignedCustomers int   `json:"assignedCustomers" db:"assigned_customers"`
	ActiveTargets     int   `json:"activeTargets" db:"active_targets"`
	CompletedTargets  int   `json:"completedTargets" db:"completed_targets"`
	ThisMonthCalls    int   `json:"thisMonthCalls" db:"this_month_calls"`
	ThisMonthRevenue  int64 `json:"thisMonthRevenue" db:"this_month_revenue"`
	ThisMonthOrders   int   `json:"thisMonthOrders" db:"this_month_orders"`
}

// MonthlyPerformance is one row of the performance report.
type MonthlyPerformance struct {
	Month          string `json:"month" db:"month"`
	Revenue        int64  `json:"revenue" db:"revenue"`
	Orders         int    `json:"orders" db:"orders"`
	CompletedCalls int    `json:"completedCalls" db:"completed_calls"`
}
