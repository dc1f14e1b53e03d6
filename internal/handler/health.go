package handler // declare the package name; contains HTTP handlers

import (
    "net/http" // net/http provides status codes

    "github.com/labstack/echo/v4" // echo is the web framework used for this project

    "github.com/iliyamo/message-backend/internal/model"
)

// Health is the liveness endpoint used by load balancers and monitoring
// systems.  It consults nothing and always answers 200 with
// {"status":"healthy"}.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, model.NewHealthStatus())
}
