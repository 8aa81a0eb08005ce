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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Bookings start pending; dates accept 2006-01-02 or RFC3339.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/v1/create/booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	if _, ok := callerFrom(c); !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromBooking(b), "Booking created"))
}

// @Summary List bookings
// @Description Admins see every booking, other callers their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.BookingResponse}
// @Router /admin/api/v1/get/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), caller)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingViews(views), ""))
}

// @Summary Update booking
// @Description Status is not changed here; bookings are confirmed through create/transaction.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param booking_id query int true "Booking ID"
// @Param user_id query int true "User ID"
// @Param car_id query int true "Car ID"
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Param total_cost query number true "Total cost"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/v1/update/booking [put]
func (h *BookingHandler) Update(c *gin.Context) {
	if _, ok := callerFrom(c); !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	b, err := h.cmds.Update(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromBooking(b), "Booking updated"))
}

// @Summary Delete booking
// @Description Deleting a booking also removes its payment.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param booking_id query int true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /admin/api/v1/delete/booking [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if _, ok := callerFrom(c); !ok {
		return
	}
	var req reqdto.DeleteBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), req); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(nil, "Booking deleted"))
}
