package controllers

import (
	"context"
	"errors"
	"net/http"
	"telemedicina-service/internal/app/config"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.RegisterUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeRegisterUserRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.RegisterUser(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegisterSuccessMessage, response, nil)
}

func (ctrl *AuthController) LoginUser(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.LoginUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeLoginUserRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.LoginUser(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response.User, response.Session)
}

func (ctrl *AuthController) LogoutUser(w http.ResponseWriter, r *http.Request) {
	accessToken := utils.ExtractBearerToken(r)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.AuthUsecase.LogoutUser(ctx, accessToken)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil, nil)
}

func (ctrl *AuthController) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.RecoverPassword)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeRecoverPasswordRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	// Send it to be processed by usecase
	err = ctrl.AuthUsecase.RecoverPassword(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecoverSuccessMessage, nil, nil)
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ResetPassword)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeResetPasswordRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	// Send it to be processed by usecase
	err = ctrl.AuthUsecase.ResetPassword(ctx, request)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetPasswordSuccessMessage, nil, nil)
}

// GetSessionUser expects the Authenticate middleware in front of it.
func (ctrl *AuthController) GetSessionUser(w http.ResponseWriter, r *http.Request) {
	uid, _ := r.Context().Value(constvars.CONTEXT_UID_KEY).(string)
	if uid == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.GetSessionUser(ctx, uid)
	if err != nil {
		ctrl.buildUsecaseErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionVerifiedSuccessMessage, response, nil)
}

func (ctrl *AuthController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
}

func (ctrl *AuthController) buildUsecaseErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
