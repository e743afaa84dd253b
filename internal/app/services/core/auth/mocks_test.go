package auth

import (
	"context"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockIdentityBackend struct {
	mock.Mock
}

func (m *MockIdentityBackend) SignUp(ctx context.Context, email, password string) (*models.Identity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(*models.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityBackend) SignInWithPassword(ctx context.Context, email, password string) (*models.SignInResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*models.SignInResult)
	return result, args.Error(1)
}

func (m *MockIdentityBackend) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockIdentityBackend) DeleteIdentity(ctx context.Context, identityID string) error {
	args := m.Called(ctx, identityID)
	return args.Error(0)
}

func (m *MockIdentityBackend) UpdatePassword(ctx context.Context, identityID, newPassword string) error {
	args := m.Called(ctx, identityID, newPassword)
	return args.Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, identityID string) (*models.Profile, error) {
	args := m.Called(ctx, identityID)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetDelete(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, request *requests.UploadFile) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}
