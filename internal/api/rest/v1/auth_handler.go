package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// AuthHandler defines the interface for the self-service endpoints
type AuthHandler interface {
	Signup(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	authenticationService accounts.AuthenticationService
	logger                logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authenticationService accounts.AuthenticationService, logger logger.Logger) AuthHandler {
	return &authHandler{
		authenticationService: authenticationService,
		logger:                logger,
	}
}

// Signup handles the POST request registering a new login
// @Summary Register a new user
// @Description The first user becomes administrator, every later one a plain user.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body SignupRequest true "Signup data"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/signup [post]
func (handler *authHandler) Signup(ctx *gin.Context) {
	var request SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid signup data: "+err.Error())
		return
	}

	messages, err := request.Validate()
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}
	if len(messages) > 0 {
		abortWithError(ctx, http.StatusBadRequest, strings.Join(messages, " && "))
		return
	}

	login, err := handler.authenticationService.Signup(ctx.Request.Context(), request.ToSignup())
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(login))
}

// ChangePassword handles the POST request replacing the password of the authenticated user
// @Summary Change own password
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body ChangePasswordRequest true "New password"
// @Success 200 {object} PasswordChangedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/changepass [post]
func (handler *authHandler) ChangePassword(ctx *gin.Context) {
	var request ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid password data: "+err.Error())
		return
	}

	principal := Principal(ctx)
	login, err := handler.authenticationService.ChangePassword(ctx.Request.Context(), principal.Email, request.NewPassword)
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, PasswordChangedResponse{
		Email:  login.Email,
		Status: accounts.MsgPasswordUpdated,
	})
}
