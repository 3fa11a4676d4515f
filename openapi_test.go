package main_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/getkin/kin-openapi/openapi3"
)

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("describes every portal endpoint", func() {
		for _, path := range []string{
			"/auth/login",
			"/auth/logout",
			"/crm/sales-team/targets",
			"/crm/sales-team/performance",
			"/crm/sales-team/dashboard-stats",
			"/crm/customers/assigned",
			"/crm/customers/{id}",
			"/crm/sales-orders/my-orders",
			"/crm/sales-orders",
			"/crm/activities/my-activities",
			"/crm/activities",
			"/crm/activities/{id}",
			"/crm/activities/{id}/complete",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("requires a bearer token on the CRM tree", func() {
		item := doc.Paths.Find("/crm/customers/assigned")
		Expect(item).NotTo(BeNil())
		Expect(item.Get.Security).NotTo(BeNil())
	})
})
