// Package session holds the authenticated identity for the client.
//
// The store is the single source of truth for "is logged in" and "what
// role". It is mutated only by the login/signup/logout flows and read
// by the access guards and the API gateway. It performs no network or
// validation work.
package session

// Role is the authorization role carried by a session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session is the identity held for the current client context.
// Token, Role, UserID and Email are set and cleared together; a session
// with an empty token is the logged-out state.
type Session struct {
	Token  string `json:"token"`
	Role   Role   `json:"role"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// IsZero reports whether the session is the logged-out state.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// Reader is the read-only view used by guards and the API gateway.
type Reader interface {
	// Get returns the current session, zero when logged out.
	Get() Session

	// Token returns the bearer token, empty when logged out.
	Token() string

	// Role returns the session role, empty when logged out.
	Role() Role

	// IsAuthenticated reports whether a token is present.
	IsAuthenticated() bool
}

// Store adds the mutations reserved for the auth flows.
type Store interface {
	Reader

	// Set replaces the session. All four fields are stored together;
	// subsequent reads reflect the new values immediately.
	Set(s Session) error

	// Clear removes the session. All four fields are removed together.
	Clear() error
}
