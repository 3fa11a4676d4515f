package target

import (
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestTarget(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Target Module Suite")
}

type mockRepo struct {
	targets []*SalesTarget
}

func (m *mockRepo) GetByRepID(repID string) ([]*SalesTarget, error) {
	return m.targets, nil
}

var _ = ginkgo.Describe("SalesTarget", func() {
	ginkgo.Describe("Progress", func() {
		ginkgo.It("computes the percentage from current and target values", func() {
			t := SalesTarget{TargetValue: 50000, CurrentValue: 35000}
			gomega.Expect(t.Progress()).To(gomega.Equal(70.0))
		})

		ginkgo.It("can exceed one hundred percent", func() {
			t := SalesTarget{TargetValue: 40000, CurrentValue: 42000}
			gomega.Expect(t.Progress()).To(gomega.Equal(105.0))
		})

		ginkgo.It("returns zero for a zero-value target instead of dividing", func() {
			t := SalesTarget{TargetValue: 0, CurrentValue: 10}
			gomega.Expect(t.Progress()).To(gomega.Equal(0.0))
		})

		ginkgo.It("rounds to two decimals", func() {
			t := SalesTarget{TargetValue: 3, CurrentValue: 1}
			gomega.Expect(t.Progress()).To(gomega.Equal(33.33))
		})
	})
})

var _ = ginkgo.Describe("TargetService", func() {
	ginkgo.It("stamps the progress percentage on each target", func() {
		repo := &mockRepo{targets: []*SalesTarget{
			{ID: "1", TargetValue: 50000, CurrentValue: 35000},
			{ID: "2", TargetValue: 0, CurrentValue: 10},
		}}
		service := NewService(repo, slog.Default())

		targets, err := service.GetMyTargets("123")

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(targets[0].ProgressPercentage).To(gomega.Equal(70.0))
		gomega.Expect(targets[1].ProgressPercentage).To(gomega.Equal(0.0))
	})
})
