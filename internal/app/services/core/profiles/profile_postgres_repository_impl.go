package profiles

import (
	"context"
	"database/sql"
	"errors"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type profilePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewProfilePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ProfileRepository {
	return &profilePostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *profilePostgresRepository) Insert(ctx context.Context, profile *models.Profile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("profilePostgresRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)

	_, err := r.DB.ExecContext(ctx, queries.InsertProfile,
		profile.ID, profile.Email, profile.FullName, profile.Role.String(),
		profile.Phone, profile.BirthDate, profile.Specialty, profile.LicenseNumber, profile.CV,
	)
	if err != nil {
		r.Log.Error("profilePostgresRepository.Insert error inserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("profilePostgresRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return nil
}

func (r *profilePostgresRepository) FindByID(ctx context.Context, identityID string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("profilePostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)
	return r.findOne(ctx, queries.GetProfileByID, identityID)
}

func (r *profilePostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("profilePostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return r.findOne(ctx, queries.GetProfileByEmail, email)
}

func (r *profilePostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var (
		profile                                             models.Profile
		role                                                string
		phone, birthDate, specialty, licenseNumber, cvValue sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&profile.ID, &profile.Email, &profile.FullName, &role,
		&phone, &birthDate, &specialty, &licenseNumber, &cvValue,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.Log.Info("profilePostgresRepository.findOne no profile found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}
	if err != nil {
		r.Log.Error("profilePostgresRepository.findOne error querying profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	profile.Role = models.Role(role)
	profile.Phone = phone.String
	profile.BirthDate = birthDate.String
	profile.Specialty = specialty.String
	profile.LicenseNumber = licenseNumber.String
	profile.CV = cvValue.String

	r.Log.Info("profilePostgresRepository.findOne succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return &profile, nil
}
