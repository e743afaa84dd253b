package contracts

import (
	"context"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, accessToken string) error
	RecoverPassword(ctx context.Context, request *requests.RecoverPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	GetSessionUser(ctx context.Context, identityID string) (*responses.Me, error)
}
