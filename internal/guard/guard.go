// Package guard implements the route access guards.
//
// Both guards are stateless: they read the session store on every
// evaluation and never cache a decision, so a logout flips the next
// evaluation immediately. They only answer "authenticated or not";
// role gating belongs to the page, via authz.
package guard

import (
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// Well-known routes guards redirect to.
const (
	RouteLanding = "/"
	RouteLogin   = "/login"
)

// Decision is the outcome of evaluating a guard.
type Decision struct {
	// Allowed reports whether the wrapped content may render.
	Allowed bool

	// RedirectTo is the route to navigate to instead, when not allowed.
	RedirectTo string
}

// EvaluateOpen decides access to auth pages (login, signup).
// Authenticated visitors are sent back to the landing route.
func EvaluateOpen(sess session.Reader) Decision {
	if sess.IsAuthenticated() {
		return Decision{Allowed: false, RedirectTo: RouteLanding}
	}
	return Decision{Allowed: true}
}

// EvaluatePrivate decides access to protected pages.
// Unauthenticated visitors are sent to the login route.
func EvaluatePrivate(sess session.Reader) Decision {
	if !sess.IsAuthenticated() {
		return Decision{Allowed: false, RedirectTo: RouteLogin}
	}
	return Decision{Allowed: true}
}

// Open wraps content for an auth page. When the visitor is already
// authenticated, redirect is rendered with the landing route instead.
func Open[T any](sess session.Reader, content func() T, redirect func(route string) T) T {
	d := EvaluateOpen(sess)
	if !d.Allowed {
		return redirect(d.RedirectTo)
	}
	return content()
}

// Private wraps content for a protected page. When the visitor is not
// authenticated, redirect is rendered with the login route instead.
func Private[T any](sess session.Reader, content func() T, redirect func(route string) T) T {
	d := EvaluatePrivate(sess)
	if !d.Allowed {
		return redirect(d.RedirectTo)
	}
	return content()
}
