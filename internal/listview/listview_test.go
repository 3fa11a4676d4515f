package listview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/salesdesk/crm-portal/internal/activity"
	"github.com/salesdesk/crm-portal/internal/customer"
	"github.com/salesdesk/crm-portal/internal/listview"
	"github.com/salesdesk/crm-portal/internal/order"
	"github.com/salesdesk/crm-portal/internal/target"
)

func TestListView(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ListView Suite")
}

func fixedLoader[T any](records []T) listview.Loader[T] {
	return func(ctx context.Context) ([]T, error) {
		return records, nil
	}
}

var _ = Describe("CustomerView", func() {
	var view *listview.CustomerView

	abc := "ABC Teknoloji"
	xyz := "XYZ Ltd."
	customers := []customer.Customer{
		{ID: "1", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", Company: &abc, Status: customer.StatusActive, TotalOrders: 15, TotalRevenue: 45000},
		{ID: "2", Name: "Fatma Demir", Email: "fatma@example.com", Company: &xyz, Status: customer.StatusActive, TotalOrders: 8, TotalRevenue: 22000},
		{ID: "3", Name: "Mehmet Kaya", Email: "mehmet@example.com", Status: customer.StatusPotential, TotalOrders: 3, TotalRevenue: 8500},
		{ID: "4", Name: "Ayşe Özkan", Email: "ayse@example.com", Status: customer.StatusInactive},
	}

	BeforeEach(func() {
		view = listview.NewCustomerView(fixedLoader(customers))
		Expect(view.Load(context.Background())).To(Succeed())
	})

	Describe("search", func() {
		It("matches a lowercase substring of the name", func() {
			view.SetSearch("ahmet")

			names := namesOf(view.Visible())
			Expect(names).To(ContainElement("Ahmet Yılmaz"))
			Expect(names).NotTo(ContainElement("Fatma Demir"))
		})

		It("is case-insensitive", func() {
			view.SetSearch("AHMET")

			names := namesOf(view.Visible())
			Expect(names).To(ContainElement("Ahmet Yılmaz"))
			Expect(names).NotTo(ContainElement("Fatma Demir"))
		})

		It("matches email and company too", func() {
			view.SetSearch("xyz")
			Expect(namesOf(view.Visible())).To(ConsistOf("Fatma Demir"))

			view.SetSearch("ayse@")
			Expect(namesOf(view.Visible())).To(ConsistOf("Ayşe Özkan"))
		})

		It("shows everything again when the term is cleared", func() {
			view.SetSearch("ahmet")
			view.SetSearch("")
			Expect(view.Visible()).To(HaveLen(len(customers)))
		})
	})

	Describe("status filter", func() {
		It("narrows to the selected status", func() {
			view.SetFilter("status", customer.StatusActive)
			Expect(view.Visible()).To(HaveLen(2))
		})

		It("treats the all sentinel as no filter", func() {
			view.SetFilter("status", customer.StatusActive)
			view.SetFilter("status", listview.FilterAll)
			Expect(view.Visible()).To(HaveLen(len(customers)))
		})

		It("combines with search", func() {
			view.SetFilter("status", customer.StatusActive)
			view.SetSearch("fatma")
			Expect(namesOf(view.Visible())).To(ConsistOf("Fatma Demir"))
		})
	})

	Describe("stats", func() {
		It("summarizes the full collection", func() {
			stats := view.Stats()
			Expect(stats.Total).To(Equal(4))
			Expect(stats.Active).To(Equal(2))
			Expect(stats.TotalRevenue).To(Equal(int64(75500)))
			Expect(stats.TotalOrders).To(Equal(26))
		})

		It("is unaffected by search and filters", func() {
			view.SetSearch("ahmet")
			view.SetFilter("status", customer.StatusInactive)

			stats := view.Stats()
			Expect(stats.Total).To(Equal(4))
			Expect(stats.TotalRevenue).To(Equal(int64(75500)))
		})
	})

	Describe("empty state", func() {
		It("reports empty when nothing matches", func() {
			view.SetSearch("no such customer")
			Expect(view.Empty()).To(BeTrue())
		})
	})

	It("propagates loader failures", func() {
		failing := listview.NewCustomerView(func(ctx context.Context) ([]customer.Customer, error) {
			return nil, errors.New("backend unavailable")
		})
		Expect(failing.Load(context.Background())).To(HaveOccurred())
		Expect(failing.Loaded()).To(BeFalse())
	})
})

var _ = Describe("OrderView", func() {
	var view *listview.OrderView

	orders := []order.SalesOrder{
		{ID: "1", OrderNumber: "SO-2024-001", CustomerName: "Ahmet Yılmaz", CustomerEmail: "ahmet@example.com", TotalAmount: 15000, Status: order.StatusDelivered},
		{ID: "2", OrderNumber: "SO-2024-002", CustomerName: "Fatma Demir", CustomerEmail: "fatma@example.com", TotalAmount: 8500, Status: order.StatusShipped},
		{ID: "3", OrderNumber: "SO-2024-005", CustomerName: "Ali Veli", CustomerEmail: "ali@example.com", TotalAmount: 12000, Status: order.StatusPending},
	}

	BeforeEach(func() {
		view = listview.NewOrderView(fixedLoader(orders))
		Expect(view.Load(context.Background())).To(Succeed())
	})

	It("searches across order number, customer name and email", func() {
		view.SetSearch("so-2024-002")
		Expect(view.Visible()).To(HaveLen(1))

		view.SetSearch("ali@")
		Expect(view.Visible()).To(HaveLen(1))
	})

	It("filters by status", func() {
		view.SetFilter("status", order.StatusPending)
		Expect(view.Visible()).To(HaveLen(1))
		Expect(view.Visible()[0].OrderNumber).To(Equal("SO-2024-005"))
	})

	It("computes stats over the full collection", func() {
		view.SetFilter("status", order.StatusPending)

		stats := view.Stats()
		Expect(stats.Total).To(Equal(3))
		Expect(stats.TotalRevenue).To(Equal(int64(35500)))
		Expect(stats.Pending).To(Equal(1))
		Expect(stats.Delivered).To(Equal(1))
	})
})

var _ = Describe("ActivityView", func() {
	var view *listview.ActivityView

	now := time.Date(2024, 1, 24, 12, 0, 0, 0, time.UTC)
	activities := []activity.Activity{
		{ID: "1", Type: activity.TypeCall, Title: "Ürün Tanıtım Görüşmesi", CustomerName: "Ahmet Yılmaz", Description: "Yeni ürün serisini tanıtmak için arama", Status: activity.StatusCompleted, ScheduledDate: now.Add(-2 * time.Hour)},
		{ID: "2", Type: activity.TypeMeeting, Title: "Sözleşme Görüşmesi", CustomerName: "Fatma Demir", Status: activity.StatusScheduled, ScheduledDate: now.Add(26 * time.Hour)},
		{ID: "3", Type: activity.TypeVisit, Title: "Sahada Ziyaret", CustomerName: "Ayşe Özkan", Status: activity.StatusInProgress, ScheduledDate: now.Add(time.Hour)},
	}

	BeforeEach(func() {
		view = listview.NewActivityView(fixedLoader(activities))
		view.SetNow(func() time.Time { return now })
		Expect(view.Load(context.Background())).To(Succeed())
	})

	It("searches title, customer name and description", func() {
		view.SetSearch("sözleşme")
		Expect(view.Visible()).To(HaveLen(1))

		view.SetSearch("tanıtmak")
		Expect(view.Visible()).To(HaveLen(1))
	})

	It("filters type and status independently", func() {
		view.SetFilter("type", activity.TypeCall)
		Expect(view.Visible()).To(HaveLen(1))

		view.SetFilter("type", listview.FilterAll)
		view.SetFilter("status", activity.StatusScheduled)
		Expect(view.Visible()).To(HaveLen(1))
	})

	It("counts today's activities by calendar day", func() {
		stats := view.Stats()
		Expect(stats.Total).To(Equal(3))
		Expect(stats.Completed).To(Equal(1))
		Expect(stats.Scheduled).To(Equal(1))
		Expect(stats.Today).To(Equal(2))
	})
})

var _ = Describe("TargetView", func() {
	var view *listview.TargetView

	targets := []target.SalesTarget{
		{ID: "1", TargetValue: 50000, CurrentValue: 35000, Period: target.PeriodMonthly, Status: target.StatusActive},
		{ID: "2", TargetValue: 40000, CurrentValue: 42000, Period: target.PeriodMonthly, Status: target.StatusCompleted},
		{ID: "3", TargetValue: 5, CurrentValue: 3, Period: target.PeriodWeekly, Status: target.StatusActive},
	}

	BeforeEach(func() {
		view = listview.NewTargetView(fixedLoader(targets))
		Expect(view.Load(context.Background())).To(Succeed())
	})

	It("filters status and period independently", func() {
		view.SetFilter("status", target.StatusActive)
		Expect(view.Visible()).To(HaveLen(2))

		view.SetFilter("period", target.PeriodWeekly)
		Expect(view.Visible()).To(HaveLen(1))
	})

	It("averages progress over the full collection", func() {
		view.SetFilter("status", target.StatusCompleted)

		stats := view.Stats()
		Expect(stats.Total).To(Equal(3))
		Expect(stats.Active).To(Equal(2))
		Expect(stats.Completed).To(Equal(1))
		// (70 + 105 + 60) / 3 rounded
		Expect(stats.AverageProgress).To(Equal(78))
	})

	It("treats a zero-value target as zero progress instead of dividing", func() {
		zeroView := listview.NewTargetView(fixedLoader([]target.SalesTarget{
			{ID: "z", TargetValue: 0, CurrentValue: 10, Status: target.StatusActive},
		}))
		Expect(zeroView.Load(context.Background())).To(Succeed())

		Expect(zeroView.Stats().AverageProgress).To(Equal(0))
	})
})

func namesOf(customers []customer.Customer) []string {
	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.Name)
	}
	return names
}
