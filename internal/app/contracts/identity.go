package contracts

import (
	"context"
	"telemedicina-service/internal/app/models"
)

// IdentityBackend is the external authentication service holding credentials
// and issuing sessions.
type IdentityBackend interface {
	SignUp(ctx context.Context, email, password string) (*models.Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*models.SignInResult, error)
	SignOut(ctx context.Context, accessToken string) error
	DeleteIdentity(ctx context.Context, identityID string) error
	UpdatePassword(ctx context.Context, identityID, newPassword string) error
}
