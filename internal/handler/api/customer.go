package api

import (
	"errors"
	"net/http"

	reqdto "reserva-api/internal/handler/dto/request"
	resdto "reserva-api/internal/handler/dto/response"
	"reserva-api/internal/handler/httperr"
	"reserva-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
}

func NewCustomerHandler(customerCommands commands.CustomerCommands) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
	}
}

// @Summary Register customer
// @Description Register a new customer with a unique email
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCustomerRequest true "Customer request"
// @Success 201 {object} resdto.RegisterCustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /register [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.customerCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer data", nil)
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterCustomerResponse{ID: id})
}
