package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/service"
)

// DatePollHandler handles date poll endpoints.
type DatePollHandler struct {
	pollService service.DatePollService
}

// NewDatePollHandler creates a new date poll handler.
func NewDatePollHandler(pollService service.DatePollService) *DatePollHandler {
	return &DatePollHandler{pollService: pollService}
}

// CreatePollRequest represents a date poll creation request.
type CreatePollRequest struct {
	Title          string   `json:"title"`
	RestaurantName string   `json:"restaurantName"`
	OptionDates    []string `json:"optionDates" validate:"required"`
}

// VoteRequest represents a vote submission. The submitted ids fully replace
// the user's previous votes for the poll.
type VoteRequest struct {
	OptionIDs []string `json:"optionIds"`
}

// Create godoc
// @Summary Create a date poll for a club
// @Tags date-polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Param request body CreatePollRequest true "Poll data (3-5 candidate dates)"
// @Success 201 {object} service.PollResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/date-polls [post]
func (h *DatePollHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req CreatePollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrBadOptionCount)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	result, err := h.pollService.Create(c.Request().Context(), clubID, userID, req.OptionDates, req.Title, req.RestaurantName)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, result)
}

// Active godoc
// @Summary Get the club's active date poll
// @Tags date-polls
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {object} service.PollResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/date-polls/active [get]
func (h *DatePollHandler) Active(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	result, err := h.pollService.Active(c.Request().Context(), clubID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if result == nil {
		return c.JSON(http.StatusOK, nil)
	}

	return c.JSON(http.StatusOK, result)
}

// Vote godoc
// @Summary Vote on a date poll
// @Tags date-polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pollId path string true "Poll ID"
// @Param request body VoteRequest true "Option ids the voter can attend"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /date-polls/{pollId}/vote [post]
func (h *DatePollHandler) Vote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrPollNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil || req.OptionIDs == nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "optionIds must be an array",
			Code:  "INVALID_OPTION_IDS",
		})
	}

	// Unparseable ids are dropped the same way unknown option ids are.
	optionIDs := make([]uuid.UUID, 0, len(req.OptionIDs))
	for _, raw := range req.OptionIDs {
		if id, err := uuid.Parse(raw); err == nil {
			optionIDs = append(optionIDs, id)
		}
	}

	if err := h.pollService.Vote(c.Request().Context(), pollID, userID, optionIDs); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "vote recorded",
	})
}

// Close godoc
// @Summary Close a date poll and compute the winning date
// @Tags date-polls
// @Produce json
// @Security BearerAuth
// @Param pollId path string true "Poll ID"
// @Success 200 {object} service.PollResult
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /date-polls/{pollId}/close [post]
func (h *DatePollHandler) Close(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrPollNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	result, err := h.pollService.Close(c.Request().Context(), pollID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}
