package listview

import (
	"github.com/salesdesk/crm-portal/internal/customer"
)

// CustomerView lists assigned customers. Search covers name, email and
// company; the one categorical filter is status.
type CustomerView struct {
	*View[customer.Customer]
}

func NewCustomerView(loader Loader[customer.Customer]) *CustomerView {
	return &CustomerView{View: newView(loader,
		func(c customer.Customer) []string {
			fields := []string{c.Name, c.Email}
			if c.Company != nil {
				fields = append(fields, *c.Company)
			}
			return fields
		},
		map[string]func(customer.Customer) string{
			"status": func(c customer.Customer) string { return c.Status },
		},
	)}
}

type CustomerStats struct {
	Total        int   `json:"total"`
	Active       int   `json:"active"`
	TotalRevenue int64 `json:"totalRevenue"`
	TotalOrders  int   `json:"totalOrders"`
}

func (v *CustomerView) Stats() CustomerStats {
	var stats CustomerStats
	for _, c := range v.All() {
		stats.Total++
		if c.Status == customer.StatusActive {
			stats.Active++
		}
		stats.TotalRevenue += c.TotalRevenue
		stats.TotalOrders += c.TotalOrders
	}
	return stats
}
