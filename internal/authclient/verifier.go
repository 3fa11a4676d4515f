package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salesdesk/crm-portal/internal/auth"
)

const defaultLoginErrMessage = "Login failed"

// Fixed identity handed out by the static verifier. Matches the seeded
// demo account so the rest of the portal behaves identically either way.
var staticLoginResult = auth.LoginResult{
	Token: "mock-jwt-token",
	User: auth.User{
		ID:       "123",
		Name:     "Test Satış Temsilcisi",
		Email:    "test@crm.com",
		Role:     auth.RoleSalesRepresentative,
		TenantID: "6855a4bed102a469d3598524",
	},
}

// StaticVerifier accepts one configured credential pair without touching
// the network and delegates everything else to Next.
type StaticVerifier struct {
	Email    string
	Password string
	Next     CredentialVerifier
}

func (v *StaticVerifier) Verify(ctx context.Context, email, password string) (auth.LoginResult, error) {
	if email == v.Email && password == v.Password {
		result := staticLoginResult
		result.User.Email = email
		return result, nil
	}
	if v.Next == nil {
		return auth.LoginResult{}, &AuthenticationError{Message: defaultLoginErrMessage}
	}
	return v.Next.Verify(ctx, email, password)
}

// HTTPVerifier checks credentials against the auth endpoint.
type HTTPVerifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPVerifier(baseURL string, client *http.Client) *HTTPVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPVerifier{baseURL: baseURL, client: client}
}

func (v *HTTPVerifier) Verify(ctx context.Context, email, password string) (auth.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return auth.LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return auth.LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return auth.LoginResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Prefer the server's own message; fall back when the body is
		// not the usual error shape.
		var body struct {
			Message string `json:"message"`
		}
		message := defaultLoginErrMessage
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			message = body.Message
		}
		return auth.LoginResult{}, &AuthenticationError{Message: message}
	}

	var result auth.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return auth.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	return result, nil
}
