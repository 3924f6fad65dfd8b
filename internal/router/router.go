package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dinnerclub/internal/auth"
	"dinnerclub/internal/handler"
)

// jwtConfig builds the echo-jwt middleware config. Tokens are validated by
// the auth service's own parser so the middleware and the issuer agree on the
// claims type, and blocklisted token ids are rejected here before any
// handler runs.
func jwtConfig(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) echojwt.Config {
	return echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			if claims.ID != "" {
				revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil {
					return nil, err
				}
				if revoked {
					return nil, errors.New("token revoked")
				}
			}
			return claims, nil
		},
	}
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	clubHandler *handler.ClubHandler,
	eventHandler *handler.EventHandler,
	rsvpHandler *handler.RSVPHandler,
	pollHandler *handler.DatePollHandler,
	wishlistHandler *handler.WishlistHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/verify", authHandler.Verify)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(jwtConfig(jwtService, tokenStore)))

	// Profile routes
	secured.GET("/me", authHandler.Me)
	secured.PUT("/me", authHandler.UpdateProfile)

	// Club routes
	secured.POST("/clubs", clubHandler.Create)
	secured.POST("/clubs/join", clubHandler.Join)
	secured.GET("/clubs/:clubId", clubHandler.Get)
	secured.PUT("/clubs/:clubId", clubHandler.Update)
	secured.GET("/clubs/:clubId/join-code", clubHandler.JoinCode)
	secured.POST("/clubs/:clubId/leave", clubHandler.Leave)
	secured.GET("/clubs/:clubId/members", clubHandler.Members)

	// Event routes
	secured.POST("/clubs/:clubId/events", eventHandler.Create)
	secured.GET("/clubs/:clubId/events", eventHandler.ListByClub)
	secured.GET("/events/:id", eventHandler.Get)
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)

	// RSVP routes
	secured.POST("/events/:id/rsvp", rsvpHandler.Submit)
	secured.GET("/events/:id/rsvps", rsvpHandler.List)
	secured.GET("/events/:id/rsvp/me", rsvpHandler.Me)

	// Date poll routes
	secured.POST("/clubs/:clubId/date-polls", pollHandler.Create)
	secured.GET("/clubs/:clubId/date-polls/active", pollHandler.Active)
	secured.POST("/date-polls/:pollId/vote", pollHandler.Vote)
	secured.POST("/date-polls/:pollId/close", pollHandler.Close)

	// Wishlist routes
	secured.GET("/wishlist", wishlistHandler.List)
	secured.POST("/wishlist", wishlistHandler.Add)
	secured.DELETE("/wishlist/:id", wishlistHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
