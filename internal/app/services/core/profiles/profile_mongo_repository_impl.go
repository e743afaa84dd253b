package profiles

import (
	"context"
	"errors"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type profileMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

// NewProfileMongoRepository keeps profiles in a collection keyed by identity id.
func NewProfileMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ProfileRepository {
	return &profileMongoRepository{
		Collection: db.Collection(constvars.ProfilesCollection),
		Log:        logger,
	}
}

func (r *profileMongoRepository) Insert(ctx context.Context, profile *models.Profile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("profileMongoRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)

	_, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		r.Log.Error("profileMongoRepository.Insert error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	r.Log.Info("profileMongoRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return nil
}

func (r *profileMongoRepository) FindByID(ctx context.Context, identityID string) (*models.Profile, error) {
	return r.findOne(ctx, "profileMongoRepository.FindByID", bson.M{"_id": identityID})
}

func (r *profileMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return r.findOne(ctx, "profileMongoRepository.FindByEmail", bson.M{"email": email})
}

func (r *profileMongoRepository) findOne(ctx context.Context, operation string, filter bson.M) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var profile models.Profile
	err := r.Collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.Log.Error(operation+" error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	r.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return &profile, nil
}
