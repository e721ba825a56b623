package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devduttshar/eventPlanner/internal/session"
)

func authedStore(t *testing.T) session.Store {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(session.Session{
		Token: "tok", Role: session.RoleUser, UserID: "u", Email: "e@x",
	}))
	return store
}

func TestEvaluateOpen(t *testing.T) {
	// Logged out: auth pages render.
	d := EvaluateOpen(session.NewMemoryStore())
	assert.True(t, d.Allowed)

	// Logged in: redirected to the landing route.
	d = EvaluateOpen(authedStore(t))
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteLanding, d.RedirectTo)
}

func TestEvaluatePrivate(t *testing.T) {
	// Logged out: redirected to login.
	d := EvaluatePrivate(session.NewMemoryStore())
	assert.False(t, d.Allowed)
	assert.Equal(t, RouteLogin, d.RedirectTo)

	// Logged in: protected pages render.
	d = EvaluatePrivate(authedStore(t))
	assert.True(t, d.Allowed)
}

func TestOpenNeverRendersContentWhenAuthenticated(t *testing.T) {
	store := authedStore(t)

	got := Open(store,
		func() string { return "login-page" },
		func(route string) string { return "redirect:" + route },
	)
	assert.Equal(t, "redirect:/", got)
}

func TestPrivateNeverRendersContentWhenLoggedOut(t *testing.T) {
	got := Private(session.NewMemoryStore(),
		func() string { return "create-event-page" },
		func(route string) string { return "redirect:" + route },
	)
	assert.Equal(t, "redirect:/login", got)
}

func TestGuardsReevaluateAfterLogout(t *testing.T) {
	store := authedStore(t)

	render := func() string { return "content" }
	redirect := func(route string) string { return "redirect:" + route }

	assert.Equal(t, "content", Private(store, render, redirect))

	// Logout must flip the very next evaluation; no cached decisions.
	require.NoError(t, store.Clear())
	assert.Equal(t, "redirect:/login", Private(store, render, redirect))
	assert.Equal(t, "content", Open(store, render, redirect))
}

func TestGuardsForAllSessionStates(t *testing.T) {
	states := []session.Session{
		{},
		{Token: "t", Role: session.RoleUser, UserID: "u", Email: "e@x"},
		{Token: "t", Role: session.RoleAdmin, UserID: "a", Email: "a@x"},
	}

	for _, s := range states {
		store := session.NewMemoryStore()
		if !s.IsZero() {
			require.NoError(t, store.Set(s))
		}

		open := EvaluateOpen(store)
		private := EvaluatePrivate(store)

		// The guards partition every state: exactly one of them allows.
		assert.NotEqual(t, open.Allowed, private.Allowed)
		assert.Equal(t, store.IsAuthenticated(), private.Allowed)
	}
}
