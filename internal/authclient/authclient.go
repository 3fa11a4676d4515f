// Package authclient implements the portal side of the login lifecycle:
// verifying credentials, committing the result to the session store, and
// tearing the session down on logout.
package authclient

import (
	"context"

	"github.com/salesdesk/crm-portal/internal"
	"github.com/salesdesk/crm-portal/internal/auth"
	"github.com/salesdesk/crm-portal/internal/session"
)

// AuthenticationError is a failed credential check. Message carries the
// server's explanation when one was given, or a generic fallback.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// CredentialVerifier turns an email and password into an authenticated
// user plus token, or an error.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (auth.LoginResult, error)
}

// Navigator is how the client asks the surrounding app to move somewhere.
type Navigator interface {
	ToLogin()
}

// Client drives login and logout against a verifier and session store.
type Client struct {
	verifier CredentialVerifier
	sessions *session.Store
	nav      Navigator
}

func New(verifier CredentialVerifier, sessions *session.Store, nav Navigator) *Client {
	return &Client{verifier: verifier, sessions: sessions, nav: nav}
}

// NewVerifierFromConfig assembles the verifier chain the portal runs with.
// When the mock login is enabled, the configured account short-circuits in
// front of the HTTP verifier; every other credential still goes to the
// server.
func NewVerifierFromConfig(cfg internal.ClientConfig) CredentialVerifier {
	httpVerifier := NewHTTPVerifier(cfg.APIURL, nil)
	if !cfg.MockLoginEnable {
		return httpVerifier
	}
	return &StaticVerifier{
		Email:    cfg.MockLoginEmail,
		Password: cfg.MockLoginPass,
		Next:     httpVerifier,
	}
}

// Login verifies the credentials and, on success, commits the session
// before returning the user. A failed commit surfaces as an error and
// leaves no session behind.
func (c *Client) Login(ctx context.Context, email, password string) (auth.User, error) {
	result, err := c.verifier.Verify(ctx, email, password)
	if err != nil {
		return auth.User{}, err
	}
	if err := c.sessions.Set(result.Token, result.User); err != nil {
		c.sessions.Clear()
		return auth.User{}, err
	}
	return result.User, nil
}

// Logout clears the session and sends the app back to the login screen.
func (c *Client) Logout() {
	c.sessions.Clear()
	if c.nav != nil {
		c.nav.ToLogin()
	}
}

// Sessions exposes the underlying store for collaborators that need to
// read the current session.
func (c *Client) Sessions() *session.Store {
	return c.sessions
}
