package apiclient

import (
	"context"
	"fmt"

	"github.com/salesdesk/crm-portal/internal/activity"
	"github.com/salesdesk/crm-portal/internal/customer"
	"github.com/salesdesk/crm-portal/internal/dashboard"
	"github.com/salesdesk/crm-portal/internal/order"
	"github.com/salesdesk/crm-portal/internal/target"
)

// Named CRM endpoints. Thin wrappers over the generic verbs so callers
// work with typed records instead of paths.

func (c *Client) SalesTargets(ctx context.Context) ([]target.SalesTarget, error) {
	var out []target.SalesTarget
	if err := c.Get(ctx, "/crm/sales-team/targets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesPerformance(ctx context.Context) ([]dashboard.MonthlyPerformance, error) {
	var out []dashboard.MonthlyPerformance
	if err := c.Get(ctx, "/crm/sales-team/performance", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (dashboard.Stats, error) {
	var out dashboard.Stats
	if err := c.Get(ctx, "/crm/sales-team/dashboard-stats", &out); err != nil {
		return dashboard.Stats{}, err
	}
	return out, nil
}

func (c *Client) AssignedCustomers(ctx context.Context) ([]customer.Customer, error) {
	var out []customer.Customer
	if err := c.Get(ctx, "/crm/customers/assigned", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesOrders(ctx context.Context) ([]order.SalesOrder, error) {
	var out []order.SalesOrder
	if err := c.Get(ctx, "/crm/sales-orders/my-orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SalesActivities(ctx context.Context) ([]activity.Activity, error) {
	var out []activity.Activity
	if err := c.Get(ctx, "/crm/activities/my-activities", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSalesOrder(ctx context.Context, dto order.CreateOrderDTO) (order.SalesOrder, error) {
	var out order.SalesOrder
	if err := c.Post(ctx, "/crm/sales-orders", dto, &out); err != nil {
		return order.SalesOrder{}, err
	}
	return out, nil
}

func (c *Client) CreateActivity(ctx context.Context, dto activity.CreateActivityDTO) (activity.Activity, error) {
	var out activity.Activity
	if err := c.Post(ctx, "/crm/activities", dto, &out); err != nil {
		return activity.Activity{}, err
	}
	return out, nil
}

func (c *Client) UpdateActivity(ctx context.Context, id string, dto activity.UpdateActivityDTO) (activity.Activity, error) {
	var out activity.Activity
	if err := c.Put(ctx, fmt.Sprintf("/crm/activities/%s", id), dto, &out); err != nil {
		return activity.Activity{}, err
	}
	return out, nil
}

func (c *Client) CompleteActivity(ctx context.Context, id string, dto activity.CompleteActivityDTO) (activity.Activity, error) {
	var out activity.Activity
	if err := c.Patch(ctx, fmt.Sprintf("/crm/activities/%s/complete", id), dto, &out); err != nil {
		return activity.Activity{}, err
	}
	return out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, dto customer.UpdateCustomerDTO) (customer.Customer, error) {
	var out customer.Customer
	if err := c.Put(ctx, fmt.Sprintf("/crm/customers/%s", id), dto, &out); err != nil {
		return customer.Customer{}, err
	}
	return out, nil
}
