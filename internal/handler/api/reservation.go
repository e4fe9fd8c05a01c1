package api

import (
	"errors"
	"net/http"
	"strconv"

	"reserva-api/internal/domain/reservation"
	reqdto "reserva-api/internal/handler/dto/request"
	resdto "reserva-api/internal/handler/dto/response"
	"reserva-api/internal/handler/httperr"
	"reserva-api/internal/usecase/commands"
	"reserva-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a slot for a registered customer
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reserva [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation data", nil)
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, commands.ErrNoCapacity):
			httperr.AbortWithError(c, http.StatusConflict, err, "No availability for the requested slot", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary List reservations
// @Description List all reservations with customer details
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /reservas [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation and release its table
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservas/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// @Summary Check availability
// @Description Report slot availability under the active allocation policy
// @Tags reservations
// @Produce json
// @Param date path string true "Reservation date"
// @Param time path string true "Reservation time"
// @Param partySize query int false "Party size filter"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /disponibilidad/{date}/{time} [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	slot, err := reservation.NewSlot(c.Param("date"), c.Param("time"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot", nil)
		return
	}

	var partySize *int32
	if raw := c.Query("partySize"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid partySize"), "Invalid partySize", nil)
			return
		}
		v := int32(n)
		partySize = &v
	}

	view, err := h.reservationQueries.Availability(c.Request.Context(), slot.Date(), slot.Time(), partySize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
