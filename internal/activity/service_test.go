package activity

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/customer"
)

func TestActivity(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Activity Module Suite")
}

type mockRepo struct {
	activities map[string]*Activity
	created    *Activity
	updated    *Activity
}

func (m *mockRepo) Create(a *Activity) error {
	m.created = a
	m.activities[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(id string) (*Activity, error) {
	if a, ok := m.activities[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) GetByRepID(repID string) ([]*Activity, error) {
	var out []*Activity
	for _, a := range m.activities {
		if a.RepID == repID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(a *Activity) error {
	m.updated = a
	m.activities[a.ID] = a
	return nil
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

var _ = ginkgo.Describe("ActivityService", func() {
	var (
		repo      *mockRepo
		customers *mockCustomers
		service   *Service
	)

	ginkgo.BeforeEach(func() {
		repo = &mockRepo{activities: map[string]*Activity{
			"scheduled": {ID: "scheduled", RepID: "123", Type: TypeCall, Title: "Arama", Status: StatusScheduled},
			"running":   {ID: "running", RepID: "123", Type: TypeVisit, Title: "Ziyaret", Status: StatusInProgress},
			"done":      {ID: "done", RepID: "123", Type: TypeEmail, Title: "Mail", Status: StatusCompleted},
			"cancelled": {ID: "cancelled", RepID: "123", Type: TypeTask, Title: "Görev", Status: StatusCancelled},
			"foreign":   {ID: "foreign", RepID: "999", Type: TypeCall, Title: "Arama", Status: StatusScheduled},
		}}
		customers = &mockCustomers{byID: map[string]*customer.Customer{
			"1": {ID: "1", RepID: "123", Name: "Ahmet Yılmaz"},
			"2": {ID: "2", RepID: "999", Name: "Fatma Demir"},
		}}
		service = NewService(repo, customers, nil, slog.Default())
	})

	ginkgo.Describe("CreateActivity", func() {
		ginkgo.It("schedules the activity with the customer name resolved", func() {
			a, err := service.CreateActivity("123", CreateActivityDTO{
				Type:          TypeMeeting,
				Title:         "Sözleşme Görüşmesi",
				CustomerID:    "1",
				ScheduledDate: time.Now().Add(24 * time.Hour),
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.Status).To(gomega.Equal(StatusScheduled))
			gomega.Expect(a.CustomerName).To(gomega.Equal("Ahmet Yılmaz"))
			gomega.Expect(a.Priority).To(gomega.Equal(PriorityMedium), "priority defaults to medium")
		})

		ginkgo.It("allows an activity with no customer", func() {
			a, err := service.CreateActivity("123", CreateActivityDTO{
				Type:          TypeNote,
				Title:         "Genel Not",
				ScheduledDate: time.Now(),
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.CustomerName).To(gomega.BeEmpty())
		})

		ginkgo.It("rejects a customer owned by another representative", func() {
			_, err := service.CreateActivity("123", CreateActivityDTO{
				Type:          TypeCall,
				Title:         "Arama",
				CustomerID:    "2",
				ScheduledDate: time.Now(),
			})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthorizedAccess))
		})

		ginkgo.It("rejects an unknown type", func() {
			_, err := service.CreateActivity("123", CreateActivityDTO{
				Type:          "fax",
				Title:         "Faks",
				ScheduledDate: time.Now(),
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("CompleteActivity", func() {
		ginkgo.It("completes a scheduled activity and stamps the outcome", func() {
			duration := 15
			outcome := "Teklif hazırlanacak"

			a, err := service.CompleteActivity("scheduled", "123", CompleteActivityDTO{
				Duration: &duration,
				Outcome:  &outcome,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.Status).To(gomega.Equal(StatusCompleted))
			gomega.Expect(a.CompletedDate).ToNot(gomega.BeNil())
			gomega.Expect(*a.Duration).To(gomega.Equal(15))
			gomega.Expect(*a.Outcome).To(gomega.Equal(outcome))
		})

		ginkgo.It("completes an in-progress activity", func() {
			a, err := service.CompleteActivity("running", "123", CompleteActivityDTO{})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.Status).To(gomega.Equal(StatusCompleted))
		})

		ginkgo.It("refuses to complete twice", func() {
			_, err := service.CompleteActivity("done", "123", CompleteActivityDTO{})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrActivityAlreadyDone))
		})

		ginkgo.It("refuses a cancelled activity", func() {
			_, err := service.CompleteActivity("cancelled", "123", CompleteActivityDTO{})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidActivityStatus))
		})

		ginkgo.It("refuses an activity owned by another representative", func() {
			_, err := service.CompleteActivity("foreign", "123", CompleteActivityDTO{})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthorizedAccess))
		})
	})

	ginkgo.Describe("UpdateActivity", func() {
		ginkgo.It("applies partial updates", func() {
			newDate := time.Now().Add(48 * time.Hour)
			a, err := service.UpdateActivity("scheduled", "123", UpdateActivityDTO{
				Priority:      PriorityHigh,
				ScheduledDate: &newDate,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.Priority).To(gomega.Equal(PriorityHigh))
			gomega.Expect(a.Title).To(gomega.Equal("Arama"), "untouched fields survive")
		})

		ginkgo.It("rejects an empty update", func() {
			_, err := service.UpdateActivity("scheduled", "123", UpdateActivityDTO{})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
