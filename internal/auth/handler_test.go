package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		mockRepo *mockRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", 15*time.Minute)
		handler = NewHandler(NewService(mockRepo, tokenGen, bcrypt.DefaultCost))
	})

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("returns the token and user on valid credentials", func() {
			rec := login(`{"email":"rep@crm.com","password":"correct_password"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			var result LoginResult
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &result)).To(gomega.Succeed())
			gomega.Expect(result.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(result.User.Role).To(gomega.Equal(RoleSalesRepresentative))
		})

		ginkgo.It("returns 401 with a message on bad credentials", func() {
			rec := login(`{"email":"rep@crm.com","password":"wrong"}`)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))

			var body map[string]string
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["message"]).To(gomega.Equal("invalid credentials"))
		})

		ginkgo.It("returns 400 on a malformed body", func() {
			rec := login(`{not json`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("returns 400 when the email is missing", func() {
			rec := login(`{"password":"correct_password"}`)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := UserFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(user.ID).To(gomega.Equal("123"))
				w.WriteHeader(http.StatusOK)
			}))
		})

		ginkgo.It("rejects a request without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/crm/customers/assigned", nil)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("rejects a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/crm/customers/assigned", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("loads the user into the request context for a valid token", func() {
			token, err := tokenGen.GenerateAccessToken("123", "rep@crm.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/crm/customers/assigned", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("rejects a valid token whose user no longer exists", func() {
			token, err := tokenGen.GenerateAccessToken("deleted-user", "gone@crm.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/crm/customers/assigned", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})
})
