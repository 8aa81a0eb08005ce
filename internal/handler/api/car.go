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

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary Create car
// @Description New cars start available.
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Create car request"
// @Success 201 {object} resdto.Envelope{data=resdto.CarResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/api/v1/create/car [post]
func (h *CarHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create car")
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromCar(created), "Car created"))
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.CarResponse}
// @Router /admin/api/v1/get/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	if _, ok := callerFrom(c); !ok {
		return
	}
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list cars")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCarViews(views), ""))
}

// @Summary Update car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param car_id query int true "Car ID"
// @Param make query string true "Make"
// @Param model query string true "Model"
// @Param year query int true "Year"
// @Param price_per_day query number true "Daily price"
// @Success 200 {object} resdto.Envelope{data=resdto.CarResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/v1/update/car [put]
func (h *CarHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), caller, req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update car")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCar(updated), "Car updated"))
}

// @Summary Delete car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param car_id query int true "Car ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/v1/delete/car [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.DeleteCarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), caller, req); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to delete car")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(nil, "Car deleted"))
}
