package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/service"
)

// ClubHandler handles club endpoints.
type ClubHandler struct {
	clubService service.ClubService
}

// NewClubHandler creates a new club handler.
func NewClubHandler(clubService service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// CreateClubRequest represents a club creation request.
type CreateClubRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Privacy string `json:"privacy" validate:"omitempty,oneof=public private"`
}

// UpdateClubRequest represents a club update request.
type UpdateClubRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Privacy string `json:"privacy" validate:"omitempty,oneof=public private"`
}

// JoinClubRequest represents a join-by-code request.
type JoinClubRequest struct {
	Code string `json:"code" validate:"required,min=6,max=8"`
}

// Create godoc
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClubRequest true "Club data"
// @Success 201 {object} model.Club
// @Failure 400 {object} errors.ErrorResponse
// @Router /clubs [post]
func (h *ClubHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	club, err := h.clubService.Create(c.Request().Context(), req.Name, req.Privacy, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, club)
}

// Get godoc
// @Summary Get a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {object} model.Club
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId} [get]
func (h *ClubHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	club, err := h.clubService.Get(c.Request().Context(), clubID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, club)
}

// Update godoc
// @Summary Update a club (owner only)
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Param request body UpdateClubRequest true "Fields to change"
// @Success 200 {object} model.Club
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId} [put]
func (h *ClubHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdateClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	club, err := h.clubService.Update(c.Request().Context(), clubID, userID, req.Name, req.Privacy)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, club)
}

// JoinCode godoc
// @Summary Get (or lazily generate) the club's join code
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/join-code [get]
func (h *ClubHandler) JoinCode(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	code, err := h.clubService.JoinCode(c.Request().Context(), clubID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"joinCode": code,
	})
}

// Join godoc
// @Summary Join a club by code
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JoinClubRequest true "Join code"
// @Success 200 {object} model.Club
// @Failure 400 {object} errors.ErrorResponse
// @Router /clubs/join [post]
func (h *ClubHandler) Join(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req JoinClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	club, err := h.clubService.Join(c.Request().Context(), req.Code, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, club)
}

// Leave godoc
// @Summary Leave a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/leave [post]
func (h *ClubHandler) Leave(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.clubService.Leave(c.Request().Context(), clubID, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "left club",
	})
}

// Members godoc
// @Summary List club members
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param clubId path string true "Club ID"
// @Success 200 {array} service.MemberResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clubs/{clubId}/members [get]
func (h *ClubHandler) Members(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrClubNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	members, err := h.clubService.Members(c.Request().Context(), clubID, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, members)
}
