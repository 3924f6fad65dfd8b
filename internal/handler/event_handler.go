package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/service"
)

// EventHandler handles dinner event endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents an event create/update request.
type EventRequest struct {
	RestaurantName string `json:"restaurantName" validate:"required_without=Status"`
	Cuisine        string `json:"cuisine"`
	EventDate      string `json:"eventDate" validate:"required_without=Status"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
	MaxSeats       *uint  `json:"maxSeats" validate:"omitempty,gt=0"`
	CostPerPerson  string `json:"costPerPerson"`
	Status         string `json:"status" validate:"omitempty,oneof=pending confirmed past"`
}

func (r *EventRequest) toInput() (service.EventInput, error) {
	input := service.EventInput{
		RestaurantName: r.RestaurantName,
		Cuisine:        r.Cuisine,
		Location:       r.Location,
		Notes:          r.Notes,
		MaxSeats:       r.MaxSeats,
		Status:         r.Status,
	}
	if r.EventDate != "" {
		parsed, err := parseEventDate(r.EventDate)
		if err != nil {
			return input, err
		}
		input.EventDate = parsed
	}
	if r.CostPerPerson != "" {
		cost, err := decimal.NewFromString(r.CostPerPerson)
		if err != nil {
			return input, err
		}
		input.CostPerPerson = &cost
	}
	return input, nil
}

func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// EventsResponse splits a club's events around the current day.
type EventsResponse struct {
	Upcoming interface{} `json:"upcoming"`
	Past     interface{} `json:"past"`
}

// Create godoc
// @Summary Create an event in a club
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Param request body EventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event date or cost")
	}

	event, err := h.eventService.Create(c.Request().Context(), clubID, userID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, event)
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	event, err := h.eventService.Get(c.Request().Context(), eventID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, event)
}

// Update godoc
// @Summary Update an event (picker or club owner)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body EventRequest true "Fields to change"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event date or cost")
	}

	event, err := h.eventService.Update(c.Request().Context(), eventID, userID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event (picker or club owner)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.eventService.Delete(c.Request().Context(), eventID, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "event deleted",
	})
}

// ListByClub godoc
// @Summary List a club's events split into upcoming and past
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {object} EventsResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/events [get]
func (h *EventHandler) ListByClub(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	upcoming, past, err := h.eventService.ListByClub(c.Request().Context(), clubID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, EventsResponse{
		Upcoming: upcoming,
		Past:     past,
	})
}
