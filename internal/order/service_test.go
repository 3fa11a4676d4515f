package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/core/events"
	"github.com/salesdesk/crm-portal/internal/customer"
)

func TestOrder(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Order Module Suite")
}

type mockRepo struct {
	created   []*SalesOrder
	yearCount int
	createErr error
}

func (m *mockRepo) Create(o *SalesOrder) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, o)
	return nil
}

func (m *mockRepo) GetByRepID(repID string) ([]*SalesOrder, error) {
	return m.created, nil
}

func (m *mockRepo) CountForYear(year int) (int, error) {
	return m.yearCount, nil
}

type mockCustomers struct {
	byID map[string]*customer.Customer
}

func (m *mockCustomers) GetByID(id string) (*customer.Customer, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, errors.New("record not found")
}

var _ = ginkgo.Describe("OrderService", func() {
	var (
		repo      *mockRepo
		customers *mockCustomers
		bus       *events.EventBus
		service   *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockRepo{yearCount: 5}
		customers = &mockCustomers{byID: map[string]*customer.Customer{
			"1": {ID: "1", RepID: "123", Name: "Ahmet Yılmaz", Email: "ahmet@example.com"},
			"2": {ID: "2", RepID: "999", Name: "Fatma Demir", Email: "fatma@example.com"},
		}}
		bus = events.NewEventBus(slog.Default())
		service = NewService(repo, customers, bus, slog.Default())
	})

	ginkgo.Describe("CreateOrder", func() {
		ginkgo.It("creates a pending order with the customer snapshot", func() {
			o, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "1",
				TotalAmount: 12000,
				ItemCount:   4,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(o.Status).To(gomega.Equal(StatusPending))
			gomega.Expect(o.CustomerName).To(gomega.Equal("Ahmet Yılmaz"))
			gomega.Expect(o.CustomerEmail).To(gomega.Equal("ahmet@example.com"))
			gomega.Expect(o.ID).ToNot(gomega.BeEmpty())
			gomega.Expect(repo.created).To(gomega.HaveLen(1))
		})

		ginkgo.It("numbers the order after the existing count for the year", func() {
			o, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "1",
				TotalAmount: 100,
				ItemCount:   1,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			expected := fmt.Sprintf("SO-%d-006", time.Now().Year())
			gomega.Expect(o.OrderNumber).To(gomega.Equal(expected))
		})

		ginkgo.It("publishes order.created for subscribers", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe(events.EventTypeOrderCreated, func(ctx context.Context, e events.Event) error {
				received <- e
				return nil
			})

			o, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "1",
				TotalAmount: 12000,
				ItemCount:   4,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			var event events.Event
			gomega.Eventually(received).Should(gomega.Receive(&event))
			created, ok := event.(*events.OrderCreatedEvent)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(created.OrderID).To(gomega.Equal(o.ID))
			gomega.Expect(created.Amount).To(gomega.Equal(int64(12000)))
		})

		ginkgo.It("rejects a customer assigned to another representative", func() {
			_, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "2",
				TotalAmount: 100,
				ItemCount:   1,
			})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthorizedAccess))
			gomega.Expect(repo.created).To(gomega.BeEmpty())
		})

		ginkgo.It("rejects an unknown customer", func() {
			_, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "missing",
				TotalAmount: 100,
				ItemCount:   1,
			})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrCustomerNotFound))
		})

		ginkgo.It("rejects a non-positive amount", func() {
			_, err := service.CreateOrder(context.Background(), "123", CreateOrderDTO{
				CustomerID:  "1",
				TotalAmount: 0,
				ItemCount:   1,
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})

var _ = ginkgo.Describe("FormatOrderNumber", func() {
	ginkgo.It("zero-pads the sequence to three digits", func() {
		gomega.Expect(FormatOrderNumber(2024, 1)).To(gomega.Equal("SO-2024-001"))
		gomega.Expect(FormatOrderNumber(2024, 42)).To(gomega.Equal("SO-2024-042"))
		gomega.Expect(FormatOrderNumber(2024, 1042)).To(gomega.Equal("SO-2024-1042"))
	})
})
