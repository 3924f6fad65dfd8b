package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/service"
)

// RSVPHandler handles RSVP endpoints.
type RSVPHandler struct {
	rsvpService service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler.
func NewRSVPHandler(rsvpService service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService}
}

// RSVPRequest represents an RSVP submission.
type RSVPRequest struct {
	Status string `json:"status" validate:"required,oneof=attending declined maybe"`
}

// RSVPResponse confirms a recorded RSVP.
type RSVPResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Submit godoc
// @Summary Submit or update an RSVP for an event
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body RSVPRequest true "RSVP status"
// @Success 200 {object} RSVPResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id}/rsvp [post]
func (h *RSVPHandler) Submit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req RSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidRSVPStatus)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	status, err := h.rsvpService.Submit(c.Request().Context(), eventID, userID, req.Status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, RSVPResponse{
		Message: "RSVP recorded",
		Status:  status,
	})
}

// List godoc
// @Summary List all RSVPs for an event
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} service.AttendeeResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id}/rsvps [get]
func (h *RSVPHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	attendees, err := h.rsvpService.List(c.Request().Context(), eventID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, attendees)
}

// Me godoc
// @Summary Get the current user's RSVP for an event
// @Tags rsvps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} model.RSVP
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id}/rsvp/me [get]
func (h *RSVPHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrEventNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	rsvp, err := h.rsvpService.ForUser(c.Request().Context(), eventID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if rsvp == nil {
		// No response yet; the client treats null as "not answered".
		return c.JSON(http.StatusOK, nil)
	}

	return c.JSON(http.StatusOK, rsvp)
}
