package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/service"
)

// WishlistHandler handles saved-restaurant endpoints.
type WishlistHandler struct {
	wishlistService service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// WishlistRequest represents a save-restaurant request.
type WishlistRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Cuisine  string `json:"cuisine"`
	PlaceID  string `json:"placeId"`
	ImageURL string `json:"imageUrl"`
}

// List godoc
// @Summary List the current user's saved restaurants
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.WishlistRestaurant
// @Router /wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.wishlistService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, items)
}

// Add godoc
// @Summary Save a restaurant to the wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WishlistRequest true "Restaurant data"
// @Success 201 {object} model.WishlistRestaurant
// @Failure 400 {object} errors.ErrorResponse
// @Router /wishlist [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.wishlistService.Add(c.Request().Context(), userID, service.WishlistInput{
		Name:     req.Name,
		Address:  req.Address,
		Cuisine:  req.Cuisine,
		PlaceID:  req.PlaceID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, item)
}

// Remove godoc
// @Summary Remove a saved restaurant
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist item ID"
// @Success 200 {object} map[string]string
// @Router /wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.wishlistService.Remove(c.Request().Context(), userID, itemID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "removed from wishlist",
	})
}
