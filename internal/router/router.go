package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/message-backend/internal/codec"      // JSON implementation for request binding and responses
	"github.com/iliyamo/message-backend/internal/config"     // runtime configuration resolved at startup
	"github.com/iliyamo/message-backend/internal/handler"    // import the handlers that build the responses
	"github.com/iliyamo/message-backend/internal/middleware" // import the CORS and JSON body middleware
)

// New builds the Echo instance serving the API for cfg.  Echo's banner and
// port line are suppressed because the process logs its own startup line.
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = codec.JSONSerializer{}

	// Both middlewares wrap every handler Echo resolves, including the
	// not-found and method-not-allowed handlers, so CORS headers are present
	// on error responses too.
	e.Use(middleware.NewCORS())
	e.Use(middleware.NewJSONBody())

	RegisterRoutes(e, handler.NewMessageHandler(cfg.Env))
	return e
}

// RegisterRoutes registers the public read-only routes on the provided Echo
// instance.  Only GET is mapped; any other method on these paths yields
// Echo's 405 and unknown paths yield its 404.
func RegisterRoutes(e *echo.Echo, m *handler.MessageHandler) {
	// Liveness probe used by the load balancer.
	e.GET("/health", handler.Health)
	// Greeting with environment name and request time.
	e.GET("/api/message", m.Message)
}
