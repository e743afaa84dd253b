package contracts

import (
	"context"
	"telemedicina-service/internal/app/models"
)

// ProfileRepository stores portal profiles. Finders return nil, nil when no
// profile matches.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, identityID string) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
}
