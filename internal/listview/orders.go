package listview

import (
	"github.com/salesdesk/crm-portal/internal/order"
)

// OrderView lists the rep's sales orders. Search covers order number,
// customer name and customer email; status is the categorical filter.
type OrderView struct {
	*View[order.SalesOrder]
}

func NewOrderView(loader Loader[order.SalesOrder]) *OrderView {
	return &OrderView{View: newView(loader,
		func(o order.SalesOrder) []string {
			return []string{o.OrderNumber, o.CustomerName, o.CustomerEmail}
		},
		map[string]func(order.SalesOrder) string{
			"status": func(o order.SalesOrder) string { return o.Status },
		},
	)}
}

type OrderStats struct {
	Total        int   `json:"total"`
	TotalRevenue int64 `json:"totalRevenue"`
	Pending      int   `json:"pending"`
	Delivered    int   `json:"delivered"`
}

func (v *OrderView) Stats() OrderStats {
	var stats OrderStats
	for _, o := range v.All() {
		stats.Total++
		stats.TotalRevenue += o.TotalAmount
		switch o.Status {
		case order.StatusPending:
			stats.Pending++
		case order.StatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}
