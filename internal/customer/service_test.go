package customer

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/salesdesk/crm-portal/internal"
)

func TestCustomer(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Customer Module Suite")
}

type mockRepo struct {
	customers map[string]*Customer
	updateErr error
	updated   *Customer
}

func (m *mockRepo) GetAssigned(repID string) ([]*Customer, error) {
	var out []*Customer
	for _, c := range m.customers {
		if c.RepID == repID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) GetByID(id string) (*Customer, error) {
	if c, ok := m.customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) Update(c *Customer) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = c
	m.customers[c.ID] = c
	return nil
}

var _ = ginkgo.Describe("CustomerService", func() {
	var (
		repo    *mockRepo
		service *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockRepo{customers: map[string]*Customer{
			"1": {ID: "1", RepID: "123", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", Status: StatusActive, TotalOrders: 15, TotalRevenue: 45000},
			"2": {ID: "2", RepID: "999", Name: "Fatma Demir", Email: "fatma@example.com", Status: StatusActive},
		}}
		service = NewService(repo, slog.Default())
	})

	ginkgo.Describe("UpdateCustomer", func() {
		ginkgo.It("applies the requested fields", func() {
			updated, err := service.UpdateCustomer("1", "123", UpdateCustomerDTO{
				Phone:  "+90 532 000 0000",
				Status: StatusPotential,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Phone).To(gomega.Equal("+90 532 000 0000"))
			gomega.Expect(updated.Status).To(gomega.Equal(StatusPotential))
			gomega.Expect(updated.Name).To(gomega.Equal("Ahmet Yılmaz"), "untouched fields survive")
		})

		ginkgo.It("rejects a customer assigned to another representative", func() {
			_, err := service.UpdateCustomer("2", "123", UpdateCustomerDTO{Phone: "x"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthorizedAccess))
			gomega.Expect(repo.updated).To(gomega.BeNil())
		})

		ginkgo.It("rejects an unknown customer", func() {
			_, err := service.UpdateCustomer("missing", "123", UpdateCustomerDTO{Phone: "x"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrCustomerNotFound))
		})

		ginkgo.It("rejects an invalid status", func() {
			_, err := service.UpdateCustomer("1", "123", UpdateCustomerDTO{Status: "archived"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("rejects an empty update", func() {
			_, err := service.UpdateCustomer("1", "123", UpdateCustomerDTO{})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("RecordOrder", func() {
		ginkgo.It("rolls the order into the customer's totals", func() {
			orderDate := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

			err := service.RecordOrder("1", 12000, orderDate)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(repo.updated.TotalOrders).To(gomega.Equal(16))
			gomega.Expect(repo.updated.TotalRevenue).To(gomega.Equal(int64(57000)))
			gomega.Expect(repo.updated.LastOrderDate).ToNot(gomega.BeNil())
			gomega.Expect(*repo.updated.LastOrderDate).To(gomega.Equal(orderDate))
		})

		ginkgo.It("keeps a later last-order date when an older order arrives", func() {
			later := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

			gomega.Expect(service.RecordOrder("1", 100, later)).To(gomega.Succeed())
			gomega.Expect(service.RecordOrder("1", 100, earlier)).To(gomega.Succeed())

			gomega.Expect(*repo.updated.LastOrderDate).To(gomega.Equal(later))
		})

		ginkgo.It("fails for an unknown customer", func() {
			err := service.RecordOrder("missing", 100, time.Now())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrCustomerNotFound))
		})
	})
})
