package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/v1/create/user [post]
func (h *UserHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	u, err := h.cmds.Create(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromUser(u), "User created"))
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.UserResponse}
// @Failure 403 {object} httperr.Response
// @Router /admin/v1/get/users [get]
func (h *UserHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), caller)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromUserViews(views), ""))
}

// @Summary Update user
// @Description Requires the current password; a mismatch is reported as not found.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "User ID"
// @Param user_name query string true "User name"
// @Param email query string true "Email"
// @Param old_password query string true "Current password"
// @Param new_password query string true "New password"
// @Param role_id query int true "Role ID"
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/v1/update/user [put]
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	u, err := h.cmds.Update(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromUser(u), "User updated"))
}

// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id query int true "User ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/v1/delete/user [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.DeleteUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, req); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(nil, "User deleted"))
}
