package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
)

// CORSMethods are advertised to preflight requests.
var CORSMethods = []string{
    http.MethodGet,
    http.MethodHead,
    http.MethodPut,
    http.MethodPatch,
    http.MethodPost,
    http.MethodDelete,
}

// NewCORS returns an open CORS policy: every origin is allowed on every
// route, and preflight requests are answered with 204 before routing
// decides anything.  Requested headers are echoed back because AllowHeaders
// is left empty.  Echo skips requests without an Origin header, so those get
// the wildcard here.
func NewCORS() echo.MiddlewareFunc {
    cors := echomw.CORSWithConfig(echomw.CORSConfig{
        AllowOrigins: []string{"*"},
        AllowMethods: CORSMethods,
    })
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        h := cors(next)
        return func(c echo.Context) error {
            if c.Request().Header.Get(echo.HeaderOrigin) == "" {
                c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
            }
            return h(c)
        }
    }
}
