package auth

import (
	"context"
	"fmt"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/exceptions"
)

type loginState int

const (
	loginStateUnauthenticated loginState = iota
	loginStateAuthenticated
	loginStateAuthorized
	loginStateRevoked
)

func (s loginState) String() string {
	switch s {
	case loginStateUnauthenticated:
		return "unauthenticated"
	case loginStateAuthenticated:
		return "authenticated"
	case loginStateAuthorized:
		return "authorized"
	case loginStateRevoked:
		return "revoked"
	}
	return "unknown"
}

var allowedLoginTransitions = map[loginState][]loginState{
	loginStateUnauthenticated: {loginStateAuthenticated},
	loginStateAuthenticated:   {loginStateAuthorized, loginStateRevoked},
}

type signOutFunc func(ctx context.Context, accessToken string) error

// loginAttempt tracks one sign in. A session issued for a user whose profile
// role differs from the requested one is signed out exactly once on the
// Authenticated to Revoked transition.
type loginAttempt struct {
	state     loginState
	result    *models.SignInResult
	profile   *models.Profile
	signOut   signOutFunc
	revokeErr error
}

func newLoginAttempt(signOut signOutFunc) *loginAttempt {
	return &loginAttempt{
		state:   loginStateUnauthenticated,
		signOut: signOut,
	}
}

func (a *loginAttempt) transition(to loginState) error {
	for _, allowed := range allowedLoginTransitions[a.state] {
		if allowed == to {
			a.state = to
			return nil
		}
	}
	return fmt.Errorf("invalid login transition from %s to %s", a.state, to)
}

func (a *loginAttempt) authenticate(result *models.SignInResult) error {
	err := a.transition(loginStateAuthenticated)
	if err != nil {
		return err
	}
	a.result = result
	return nil
}

// authorize compares the stored role with the requested one. On mismatch the
// session is revoked and the returned error carries the requested role; a
// failed sign out is kept in revokeErr and does not change the outcome.
func (a *loginAttempt) authorize(ctx context.Context, profile *models.Profile, requested models.Role) error {
	if a.state != loginStateAuthenticated {
		return fmt.Errorf("cannot authorize a login in state %s", a.state)
	}

	if profile.Role != requested {
		a.revoke(ctx)
		return exceptions.ErrRoleForbidden(requested.String())
	}

	a.profile = profile
	return a.transition(loginStateAuthorized)
}

func (a *loginAttempt) revoke(ctx context.Context) {
	if a.transition(loginStateRevoked) != nil {
		return
	}
	if a.result == nil || a.result.Session == nil {
		return
	}
	a.revokeErr = a.signOut(ctx, a.result.Session.AccessToken)
}
