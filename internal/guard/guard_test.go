package guard_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/salesdesk/crm-portal/internal/guard"
)

func TestGuard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Guard Suite")
}

var _ = Describe("Check", func() {
	It("reports pending while the auth state is loading", func() {
		Expect(guard.Check(true, false)).To(Equal(guard.Pending))
	})

	It("keeps reporting pending even if a session already exists", func() {
		Expect(guard.Check(true, true)).To(Equal(guard.Pending))
	})

	It("allows an authenticated user", func() {
		Expect(guard.Check(false, true)).To(Equal(guard.Allow))
	})

	It("redirects an unauthenticated user to login", func() {
		Expect(guard.Check(false, false)).To(Equal(guard.RedirectToLogin))
	})

	It("never allows while loading regardless of order of checks", func() {
		// The same inputs must always produce the same decision.
		for i := 0; i < 3; i++ {
			Expect(guard.Check(true, true)).To(Equal(guard.Pending))
			Expect(guard.Check(false, true)).To(Equal(guard.Allow))
		}
	})
})
