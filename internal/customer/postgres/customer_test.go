package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/salesdesk/crm-portal/internal/customer"
	customerPostgres "github.com/salesdesk/crm-portal/internal/customer/postgres"
)

func TestCustomerPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Customer Postgres Suite")
}

var _ = Describe("Customer Repository", func() {
	var (
		db   *gorm.DB
		repo customer.Repository
	)

	BeforeEach(func() {
		var err error
		// SQLite in-memory database stands in for Postgres here
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&customer.Customer{})).To(Succeed())

		repo = customerPostgres.NewCustomerRepository(db)
	})

	seed := func(c customer.Customer) {
		Expect(db.Create(&c).Error).To(Succeed())
	}

	Describe("GetAssigned", func() {
		It("returns only the representative's customers, newest assignment first", func() {
			seed(customer.Customer{ID: "1", RepID: "123", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", AssignedDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)})
			seed(customer.Customer{ID: "2", RepID: "123", Name: "Mehmet Kaya", Email: "mehmet@example.com", AssignedDate: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)})
			seed(customer.Customer{ID: "3", RepID: "999", Name: "Fatma Demir", Email: "fatma@example.com", AssignedDate: time.Date(2023, 8, 20, 0, 0, 0, 0, time.UTC)})

			customers, err := repo.GetAssigned("123")

			Expect(err).NotTo(HaveOccurred())
			Expect(customers).To(HaveLen(2))
			Expect(customers[0].Name).To(Equal("Mehmet Kaya"))
			Expect(customers[1].Name).To(Equal("Ahmet Yılmaz"))
		})

		It("returns an empty slice for a representative with no customers", func() {
			customers, err := repo.GetAssigned("123")
			Expect(err).NotTo(HaveOccurred())
			Expect(customers).To(BeEmpty())
		})
	})

	Describe("GetByID", func() {
		It("finds a customer by id", func() {
			seed(customer.Customer{ID: "1", RepID: "123", Name: "Ahmet Yılmaz", Email: "ahmet@example.com"})

			c, err := repo.GetByID("1")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Name).To(Equal("Ahmet Yılmaz"))
		})

		It("reports a missing customer", func() {
			_, err := repo.GetByID("missing")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("persists changed fields", func() {
			seed(customer.Customer{ID: "1", RepID: "123", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", Status: customer.StatusPotential})

			c, err := repo.GetByID("1")
			Expect(err).NotTo(HaveOccurred())

			c.Status = customer.StatusActive
			c.TotalOrders = 1
			c.TotalRevenue = 15000
			Expect(repo.Update(c)).To(Succeed())

			reloaded, err := repo.GetByID("1")
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Status).To(Equal(customer.StatusActive))
			Expect(reloaded.TotalRevenue).To(Equal(int64(15000)))
		})
	})
})
