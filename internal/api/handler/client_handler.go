package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientinfo/client-registry/internal/api/metrics"
	"github.com/clientinfo/client-registry/internal/core/domain"
	"github.com/clientinfo/client-registry/internal/core/ports"
)

// ClientHandler handles client-information submissions and listing.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Upsert handles POST /client-information — the three-way create-or-update
// keyed on phone number. The duplicate case (same phone, equivalent purpose)
// is answered directly here so the response keeps the duplicate marker the
// callers rely on, instead of the generic error envelope.
//
// @Summary      Create or update a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      upsertClientRequest  true  "Client details"
// @Success      200   {object}  upsertClientResponse  "existing record's purpose updated"
// @Success      201   {object}  upsertClientResponse  "new record inserted"
// @Failure      409   {object}  upsertClientResponse  "same phone number and purpose already stored"
// @Failure      422   {object}  errorResponse
// @Router       /client-information [post]
func (h *ClientHandler) Upsert(c echo.Context) error {
	var req upsertClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.clients.UpsertClient(c.Request().Context(), ports.UpsertClientInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Purpose:     req.Purpose,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateClient) {
			metrics.ClientUpsertsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, upsertClientResponse{
				Message:   "client with same phone number and purpose already exists",
				Duplicate: true,
			})
		}
		return err
	}

	switch result.Outcome {
	case ports.OutcomeUpdated:
		metrics.ClientUpsertsTotal.WithLabelValues("updated").Inc()
		return c.JSON(http.StatusOK, upsertClientResponse{
			Message: "purpose updated for existing client",
			Updated: true,
			Result:  &upsertResult{ID: result.ID},
		})
	default:
		metrics.ClientUpsertsTotal.WithLabelValues("inserted").Inc()
		return c.JSON(http.StatusCreated, upsertClientResponse{
			Message:  "new client added successfully",
			Inserted: true,
			Result:   &upsertResult{ID: result.ID},
		})
	}
}

// List handles GET /client-information — returns all records with created_at
// rendered in the configured display timezone ("N/A" when absent).
//
// @Summary      List all client records
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.ClientRecordView
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /client-information [get]
func (h *ClientHandler) List(c echo.Context) error {
	views, err := h.clients.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
