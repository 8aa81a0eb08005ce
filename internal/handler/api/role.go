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

type RoleHandler struct {
	cmds commands.RoleCommands
	q    queries.RoleQueries
}

func NewRoleHandler(cmds commands.RoleCommands, q queries.RoleQueries) *RoleHandler {
	return &RoleHandler{cmds: cmds, q: q}
}

// @Summary Create role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoleRequest true "Create role request"
// @Success 201 {object} resdto.Envelope{data=resdto.RoleResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/v1/create/role [post]
func (h *RoleHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create role")
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromRole(r), "Role created"))
}

// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.RoleResponse}
// @Failure 403 {object} httperr.Response
// @Router /admin/api/v1/get/roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), caller)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list roles")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromRoleViews(views), ""))
}

// @Summary Update role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param role_id query int true "Role ID"
// @Param role_name query string true "New role name"
// @Success 200 {object} resdto.Envelope{data=resdto.RoleResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/v1/update/role [put]
func (h *RoleHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	r, err := h.cmds.Update(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromRole(r), "Role updated"))
}

// @Summary Delete role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param role_id query int true "Role ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/v1/delete/role [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.DeleteRoleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, req); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to delete role")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(nil, "Role deleted"))
}
