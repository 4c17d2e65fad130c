package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cityevents/events-system/internal/api/metrics"
	"github.com/cityevents/events-system/internal/core/domain"
	"github.com/cityevents/events-system/internal/core/ports"
)

// EventHandler handles HTTP requests for the event lifecycle.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /api/events. No authentication required.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.EventListSnapshotsTotal.Inc()
	return c.JSON(http.StatusOK, events)
}

// Create handles POST /api/admin/events. Requires an admin bearer token; the
// verified identity stamps created_by.
//
// @Summary      Create a new event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedBy:   userID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing fields"})
		}
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /api/admin/events/:id. Requires an admin bearer token.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Bad id"})
	}

	if err := h.service.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		}
		return err
	}

	metrics.EventsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteResponse{OK: true})
}
