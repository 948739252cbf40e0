package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// AdminHandler defines the interface for the user management endpoints
type AdminHandler interface {
	ListUsers(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
	ChangeRole(ctx *gin.Context)
	ChangeAccess(ctx *gin.Context)
}

// adminHandler struct holds the services
type adminHandler struct {
	adminService accounts.AdminService
	logger       logger.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService accounts.AdminService, logger logger.Logger) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles the GET request listing all users
// @Summary List users with their roles
// @Tags Admin
// @Produce json
// @Success 200 {array} LoginResponse
// @Router /api/admin/user [get]
func (handler *adminHandler) ListUsers(ctx *gin.Context) {
	logins, err := handler.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	listResponse := make([]LoginResponse, 0, len(logins))
	for _, login := range logins {
		listResponse = append(listResponse, newLoginResponse(login))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// DeleteUser handles the DELETE request removing a user with all its data
// @Summary Delete a user
// @Tags Admin
// @Produce json
// @Param email path string true "Email of the user"
// @Success 200 {object} UserDeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/user/{email} [delete]
func (handler *adminHandler) DeleteUser(ctx *gin.Context) {
	email := ctx.Param("email")

	if err := handler.adminService.DeleteUser(ctx.Request.Context(), Principal(ctx).Email, email); err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, UserDeletedResponse{User: email, Status: accounts.MsgDeleted})
}

// ChangeRole handles the PUT request granting or removing a role
// @Summary Grant or remove a role
// @Tags Admin
// @Accept json
// @Produce json
// @Param requestBody body RoleChangeRequest true "Role change"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/user/role [put]
func (handler *adminHandler) ChangeRole(ctx *gin.Context) {
	var request RoleChangeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid role data: "+err.Error())
		return
	}
	if !handler.valid(ctx, request.Validate) {
		return
	}

	login, err := handler.adminService.ChangeRole(ctx.Request.Context(), Principal(ctx).Email, &accounts.RoleChange{
		User:      request.User,
		Role:      request.Role,
		Operation: request.Operation,
	})
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newLoginResponse(login))
}

// ChangeAccess handles the PUT request locking or unlocking a user
// @Summary Lock or unlock a user
// @Tags Admin
// @Accept json
// @Produce json
// @Param requestBody body AccessChangeRequest true "Access change"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/user/access [put]
func (handler *adminHandler) ChangeAccess(ctx *gin.Context) {
	var request AccessChangeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid access data: "+err.Error())
		return
	}
	if !handler.valid(ctx, request.Validate) {
		return
	}

	change := &accounts.AccessChange{User: request.User, Operation: request.Operation}
	if err := handler.adminService.ChangeAccess(ctx.Request.Context(), Principal(ctx).Email, change); err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	state := "unlocked"
	if change.IsLock() {
		state = "locked"
	}
	ctx.JSON(http.StatusOK, StatusResponse{Status: "User " + request.User + " " + state + "!"})
}

// valid runs validate and answers 400 with all violations joined if there are any.
func (handler *adminHandler) valid(ctx *gin.Context, validate func() ([]string, error)) bool {
	messages, err := validate()
	if err != nil {
		handleError(ctx, handler.logger, err)
		return false
	}
	if len(messages) > 0 {
		abortWithError(ctx, http.StatusBadRequest, strings.Join(messages, " && "))
		return false
	}
	return true
}
