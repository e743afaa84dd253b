package auth

import (
	"context"
	"errors"
	"fmt"
	"telemedicina-service/internal/app/config"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/dto/responses"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultCleanupTimeout = 10 * time.Second

type authUsecase struct {
	IdentityBackend   contracts.IdentityBackend
	ProfileRepository contracts.ProfileRepository
	RedisRepository   contracts.RedisRepository
	MailerService     contracts.MailerService
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

// NewAuthUsecase wires the auth flows. storage may be nil, in which case a
// doctor's cv is stored as sent.
func NewAuthUsecase(
	identityBackend contracts.IdentityBackend,
	profileRepository contracts.ProfileRepository,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		IdentityBackend:   identityBackend,
		ProfileRepository: profileRepository,
		RedisRepository:   redisRepository,
		MailerService:     mailerService,
		Storage:           storage,
		InternalConfig:    internalConfig,
		DriverConfig:      driverConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	role, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	identity, err := uc.IdentityBackend.SignUp(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error signing up identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if identity == nil {
		uc.Log.Error("authUsecase.RegisterUser identity backend returned no user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBackendNoUserReturned()
	}

	profile := buildProfile(identity.ID, role, request)

	if role == models.RoleDoctor && profile.CV != "" {
		profile.CV, err = uc.storeCV(ctx, identity.ID, profile.CV)
		if err != nil {
			uc.compensateRegistration(ctx, identity.ID)
			return nil, exceptions.ErrProfileInsert(err)
		}
	}

	err = uc.ProfileRepository.Insert(ctx, profile)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error inserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, identity.ID),
			zap.Error(err),
		)
		uc.compensateRegistration(ctx, identity.ID)
		return nil, exceptions.ErrProfileInsert(err)
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.ID),
	)
	return &responses.RegisterUser{
		ID:    identity.ID,
		Email: identity.Email,
		Role:  role,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	requestedRole, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	attempt := newLoginAttempt(uc.IdentityBackend.SignOut)

	result, err := uc.IdentityBackend.SignInWithPassword(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error signing in",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, exceptions.ErrInvalidCredentials(err)
	}

	err = attempt.authenticate(result)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	profile, err := uc.ProfileRepository.FindByID(ctx, result.Identity.ID)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error finding profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, result.Identity.ID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, exceptions.ErrProfileNotFound(err)
	}
	if profile == nil {
		uc.Log.Error("authUsecase.LoginUser profile not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, result.Identity.ID),
		)
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	revokeCtx, cancel := uc.detachedContext(ctx)
	defer cancel()
	err = attempt.authorize(revokeCtx, profile, requestedRole)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser role mismatch, session revoked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, result.Identity.ID),
			zap.String(constvars.LoggingRoleKey, requestedRole.String()),
			zap.NamedError("revoke_error", attempt.revokeErr),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return &responses.LoginUser{
		User: &responses.AuthorizedUser{
			ID:       result.Identity.ID,
			Email:    result.Identity.Email,
			FullName: profile.FullName,
			Role:     profile.Role,
		},
		Session: result.Session,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if accessToken == "" {
		uc.Log.Info("authUsecase.LogoutUser no session to revoke",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	err := uc.IdentityBackend.SignOut(ctx, accessToken)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error signing out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) RecoverPassword(ctx context.Context, request *requests.RecoverPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RecoverPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	profile, err := uc.ProfileRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.RecoverPassword error finding profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRecoveryFailed(err)
	}
	if profile == nil {
		uc.Log.Info("authUsecase.RecoverPassword no account for email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrAccountNotFound(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.ResetPasswordTokenExpiredTimeInMinutes) * time.Minute
	token := utils.GenerateResetPasswordToken()
	key := fmt.Sprintf(constvars.RedisResetPasswordKeyFormat, token)

	err = uc.RedisRepository.Set(ctx, key, &models.ResetPasswordTicket{
		IdentityID: profile.ID,
		Email:      request.Email,
	}, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.RecoverPassword error storing reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRecoveryFailed(err)
	}

	recipient := profile.Email
	if recipient == "" {
		recipient = request.Email
	}
	emailPayload := utils.BuildResetPasswordEmailPayload(
		uc.InternalConfig.Mailer.EmailSender,
		recipient,
		utils.BuildResetPasswordLink(uc.InternalConfig.App.ResetPasswordUrl, token),
		profile.FullName,
		time.Now().Add(ttl).Format(time.RFC1123),
	)

	err = uc.MailerService.SendEmail(ctx, emailPayload)
	if err != nil {
		uc.Log.Error("authUsecase.RecoverPassword error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		cleanupCtx, cancel := uc.detachedContext(ctx)
		defer cancel()
		if deleteErr := uc.RedisRepository.Delete(cleanupCtx, key); deleteErr != nil {
			uc.Log.Warn("authUsecase.RecoverPassword error discarding unsent reset token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(deleteErr),
			)
		}
		return exceptions.ErrRecoveryFailed(err)
	}

	uc.Log.Info("authUsecase.RecoverPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// The token is consumed before the password changes, so it works once even
	// when the update fails.
	key := fmt.Sprintf(constvars.RedisResetPasswordKeyFormat, request.Token)
	value, err := uc.RedisRepository.GetDelete(ctx, key)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error reading reset token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if value == "" {
		uc.Log.Info("authUsecase.ResetPassword reset token unknown or expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrResetTokenExpired(nil)
	}

	var ticket models.ResetPasswordTicket
	err = json.Unmarshal([]byte(value), &ticket)
	if err != nil || ticket.IdentityID == "" {
		uc.Log.Error("authUsecase.ResetPassword error decoding reset ticket",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrServerProcess(err)
	}

	err = uc.IdentityBackend.UpdatePassword(ctx, ticket.IdentityID, request.NewPassword)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error updating password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, ticket.IdentityID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ticket.IdentityID),
	)
	return nil
}

func (uc *authUsecase) GetSessionUser(ctx context.Context, identityID string) (*responses.Me, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.GetSessionUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, identityID)
	if err != nil {
		uc.Log.Error("authUsecase.GetSessionUser error finding profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, exceptions.ErrProfileNotFound(err)
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	uc.Log.Info("authUsecase.GetSessionUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return &responses.Me{
		ID:            profile.ID,
		Email:         profile.Email,
		FullName:      profile.FullName,
		Role:          profile.Role,
		Phone:         profile.Phone,
		BirthDate:     profile.BirthDate,
		Specialty:     profile.Specialty,
		LicenseNumber: profile.LicenseNumber,
		CV:            profile.CV,
	}, nil
}

// compensateRegistration removes an identity whose profile could not be stored.
// It runs detached from the request deadline so a timed out insert still
// gets cleaned up.
func (uc *authUsecase) compensateRegistration(ctx context.Context, identityID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	compensationCtx, cancel := uc.detachedContext(ctx)
	defer cancel()

	err := uc.IdentityBackend.DeleteIdentity(compensationCtx, identityID)
	if err != nil {
		uc.Log.Error("authUsecase.compensateRegistration error deleting orphaned identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, identityID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("authUsecase.compensateRegistration deleted orphaned identity",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)
}

// detachedContext keeps the request values but not its deadline, bounded by
// the backend timeout instead.
func (uc *authUsecase) detachedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(uc.DriverConfig.Supabase.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultCleanupTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

// storeCV uploads a data URL cv to object storage and returns the object key.
// Anything else is kept as sent.
func (uc *authUsecase) storeCV(ctx context.Context, identityID, cv string) (string, error) {
	if uc.Storage == nil || !utils.IsDataURL(cv) {
		return cv, nil
	}

	contentType, extension, data, err := utils.ParseDataURL(cv)
	if err != nil {
		return "", exceptions.ErrInvalidDataURL(err)
	}

	maxSizeInMB := uc.InternalConfig.Minio.CVMaxUploadSizeInMB
	if maxSizeInMB > 0 && len(data) > maxSizeInMB*1024*1024 {
		return "", exceptions.ErrCVTooLarge(maxSizeInMB)
	}

	return uc.Storage.UploadFile(ctx, &requests.UploadFile{
		ObjectName:  utils.GenerateFileName(constvars.CVObjectPrefix, identityID, extension),
		ContentType: contentType,
		Data:        data,
	})
}

// buildProfile keeps only the fields collected for the role.
func buildProfile(identityID string, role models.Role, request *requests.RegisterUser) *models.Profile {
	profile := &models.Profile{
		ID:       identityID,
		Email:    request.Email,
		FullName: request.FullName,
		Role:     role,
	}

	switch role {
	case models.RolePatient:
		profile.Phone = request.Phone
		profile.BirthDate = request.BirthDate
	case models.RoleDoctor:
		profile.Phone = request.Phone
		profile.Specialty = request.Specialty
		profile.LicenseNumber = request.LicenseNumber
		profile.CV = request.CV
	case models.RoleAdmin:
		profile.Phone = request.Phone
	}
	return profile
}
