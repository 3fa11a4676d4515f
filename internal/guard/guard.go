// Package guard decides whether a protected view may render. It is a pure
// gate: callers feed it the auth state and interpret the decision, the
// guard itself never navigates.
package guard

// Decision is the outcome of a route check.
type Decision int

const (
	// Pending means the auth state is still being restored; render a
	// loading state and check again.
	Pending Decision = iota
	// Allow means the user may see the protected content.
	Allow
	// RedirectToLogin means there is no usable session.
	RedirectToLogin
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	default:
		return "unknown"
	}
}

// Check maps auth state to a decision. loading wins over everything so a
// restore in flight never bounces an authenticated user to login.
func Check(loading, authenticated bool) Decision {
	if loading {
		return Pending
	}
	if !authenticated {
		return RedirectToLogin
	}
	return Allow
}
