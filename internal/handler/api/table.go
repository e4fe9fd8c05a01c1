package api

import (
	"errors"
	"net/http"

	reqdto "reserva-api/internal/handler/dto/request"
	resdto "reserva-api/internal/handler/dto/response"
	"reserva-api/internal/handler/httperr"
	"reserva-api/internal/usecase/commands"
	"reserva-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableCommands commands.TableCommands
	tableQueries  queries.TableQueries
}

func NewTableHandler(tableCommands commands.TableCommands, tableQueries queries.TableQueries) *TableHandler {
	return &TableHandler{
		tableCommands: tableCommands,
		tableQueries:  tableQueries,
	}
}

// @Summary Reconfigure table
// @Description Update the capacity of an existing table, or add a new one
// @Tags tables
// @Accept json
// @Produce json
// @Param request body reqdto.ReconfigureTableRequest true "Table request"
// @Success 200 {object} resdto.ReconfigureTableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /configurar-mesa [post]
func (h *TableHandler) Reconfigure(c *gin.Context) {
	var req reqdto.ReconfigureTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.tableCommands.Reconfigure(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid table data", nil)
		case errors.Is(err, commands.ErrTableNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Table not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReconfigureTableResponse{ID: id, Capacity: req.Capacity})
}

// @Summary List tables
// @Description List all tables with capacity and availability
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.TableResponse
// @Router /mesas [get]
func (h *TableHandler) List(c *gin.Context) {
	views, err := h.tableQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTableViews(views))
}
