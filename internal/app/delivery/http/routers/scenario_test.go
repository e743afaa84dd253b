package routers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"telemedicina-service/internal/app/delivery/http/controllers"
	"telemedicina-service/internal/app/delivery/http/middlewares"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/app/services/core/auth"
	"telemedicina-service/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type inMemoryIdentityBackend struct {
	mu         sync.Mutex
	passwords  map[string]string
	ids        map[string]string
	signOuts   []string
	deletedIDs []string
}

func newInMemoryIdentityBackend() *inMemoryIdentityBackend {
	return &inMemoryIdentityBackend{passwords: map[string]string{}, ids: map[string]string{}}
}

func (b *inMemoryIdentityBackend) SignUp(ctx context.Context, email, password string) (*models.Identity, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.ids[email]; exists {
		return nil, exceptions.ErrBackend(errors.New("User already registered"))
	}
	id := uuid.NewString()
	b.ids[email] = id
	b.passwords[email] = password
	return &models.Identity{ID: id, Email: email}, nil
}

func (b *inMemoryIdentityBackend) SignInWithPassword(ctx context.Context, email, password string) (*models.SignInResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.passwords[email] != password || password == "" {
		return nil, exceptions.ErrBackend(errors.New("Invalid login credentials"))
	}
	return &models.SignInResult{
		Identity: &models.Identity{ID: b.ids[email], Email: email},
		Session:  &models.Session{AccessToken: "access-" + b.ids[email], TokenType: "bearer", ExpiresIn: 3600},
	}, nil
}

func (b *inMemoryIdentityBackend) SignOut(ctx context.Context, accessToken string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.signOuts = append(b.signOuts, accessToken)
	return nil
}

func (b *inMemoryIdentityBackend) DeleteIdentity(ctx context.Context, identityID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deletedIDs = append(b.deletedIDs, identityID)
	return nil
}

func (b *inMemoryIdentityBackend) UpdatePassword(ctx context.Context, identityID, newPassword string) error {
	return nil
}

type inMemoryProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func (r *inMemoryProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *inMemoryProfileRepository) FindByID(ctx context.Context, identityID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profiles[identityID], nil
}

func (r *inMemoryProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, profile := range r.profiles {
		if profile.Email == email {
			return profile, nil
		}
	}
	return nil, nil
}

func TestScenario_RegisterPatientThenLoginAsDoctor(t *testing.T) {
	logger := zap.NewNop()
	internalConfig, driverConfig := testConfigs()
	identity := newInMemoryIdentityBackend()
	profiles := &inMemoryProfileRepository{profiles: map[string]*models.Profile{}}

	usecase := auth.NewAuthUsecase(identity, profiles, nil, nil, nil, internalConfig, driverConfig, logger)
	router := chi.NewRouter()
	SetupRoutes(router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig, driverConfig),
		controllers.NewAuthController(logger, usecase, internalConfig),
	)

	apitest.New().
		Handler(router).
		Post("/api/register").
		JSON(`{"email":"ana@example.com","password":"secret1","fullName":"Ana Souza","role":"patient","birthDate":"1990-01-01"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(router).
		Post("/api/login").
		JSON(`{"email":"ana@example.com","password":"secret1","role":"doctor"}`).
		Expect(t).
		Status(http.StatusForbidden).
		Body(`{"success":false,"message":"you are not allowed to sign in as doctor"}`).
		End()

	assert.Len(t, identity.signOuts, 1)

	apitest.New().
		Handler(router).
		Post("/api/login").
		JSON(`{"email":"ana@example.com","password":"secret1","role":"patient"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(router).
		Post("/api/login").
		JSON(`{"email":"ana@example.com","password":"wrong","role":"patient"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Body(`{"success":false,"message":"invalid credentials"}`).
		End()

	assert.Len(t, identity.signOuts, 1)
	assert.Empty(t, identity.deletedIDs)
}

func TestScenario_RegisterRejectsRoleOutsideTheSet(t *testing.T) {
	logger := zap.NewNop()
	internalConfig, driverConfig := testConfigs()
	identity := newInMemoryIdentityBackend()
	profiles := &inMemoryProfileRepository{profiles: map[string]*models.Profile{}}

	usecase := auth.NewAuthUsecase(identity, profiles, nil, nil, nil, internalConfig, driverConfig, logger)
	router := chi.NewRouter()
	SetupRoutes(router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig, driverConfig),
		controllers.NewAuthController(logger, usecase, internalConfig),
	)

	for _, role := range []string{"PATIENT", "Doctor", " admin "} {
		apitest.New().
			Handler(router).
			Post("/api/register").
			JSON(`{"email":"ana@example.com","password":"secret1","fullName":"Ana Souza","role":"` + role + `"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Body(`{"success":false,"message":"role must be one of [patient, doctor, admin]"}`).
			End()
	}

	assert.Empty(t, identity.ids)
	assert.Empty(t, profiles.profiles)
}
