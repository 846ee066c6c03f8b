// Package router builds the Echo instance: it installs the middleware chain,
// the global error handler and every route.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/offered-places/internal/handler"
	"github.com/deppfellow/offered-places/internal/middleware"
	"github.com/deppfellow/offered-places/internal/server"
)

// NewRouter wires middleware and routes.
//
// Order matters: the request id must exist before the context logger is
// built, and the New Relic transaction must exist before it is enhanced.
// CORS is global so preflight requests answered by Echo's default OPTIONS
// handler get the headers too. The rate limiter is attached per route: as
// group middleware Echo would register a catch-all under /api and answer a
// wrong method on a known path with 404 instead of 405.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api")
	registerPlaceRoutes(api, h, middlewares.RateLimit.Limit())

	return router
}

func registerPlaceRoutes(api *echo.Group, h *handler.Handlers, limit echo.MiddlewareFunc) {
	places := api.Group("/offered_places")

	places.GET("", handler.Handle(h.Place.Handler, h.Place.ListPlaces, http.StatusOK), limit)
	places.GET("/:id", handler.Handle(h.Place.Handler, h.Place.GetPlace, http.StatusOK), limit)
	places.POST("", handler.Handle(h.Place.Handler, h.Place.CreatePlace, http.StatusCreated), limit)
	places.PUT("/:id", handler.Handle(h.Place.Handler, h.Place.UpdatePlace, handler.UpdateStatus), limit)
	places.DELETE("/:id", handler.Handle(h.Place.Handler, h.Place.DeletePlace, http.StatusOK), limit)
}
