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

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary Confirm booking
// @Description Confirms the booking, marks its car unavailable and records the payment atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTransactionRequest true "Payment for a booking"
// @Success 201 {object} resdto.Envelope{data=resdto.ConfirmationResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/api/v1/create/transaction [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	result, err := h.cmds.Confirm(c.Request.Context(), caller, req)
	if err != nil {
		// workflow failures carry their cause to the client
		httperr.AbortWithUsecaseError(c, err, "Booking confirmation failed: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromConfirmation(result), "Booking confirmed"))
}

// @Summary List transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.TransactionResponse}
// @Failure 403 {object} httperr.Response
// @Router /admin/api/v1/get/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), caller)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromTransactionViews(views), ""))
}
