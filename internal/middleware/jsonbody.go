package middleware

import (
    "bytes"
    "io"
    "mime"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/message-backend/internal/codec"
)

// JSONBodyKey is the context key holding the decoded request body.
const JSONBodyKey = "json_body"

// MaxJSONBodyBytes bounds how much of a body is buffered for decoding.
const MaxJSONBodyBytes = 100 << 10

// NewJSONBody decodes JSON request bodies before the handler runs and
// stores the result under JSONBodyKey.  The body is rewound afterwards so
// c.Bind still works.  Bodies that are not JSON, are larger than
// MaxJSONBodyBytes, or fail to decode are passed through untouched; a bad
// body never changes the response.
func NewJSONBody() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            req := c.Request()
            if req.Body == nil || req.ContentLength == 0 || !isJSON(req.Header.Get(echo.HeaderContentType)) {
                return next(c)
            }

            buf, err := io.ReadAll(io.LimitReader(req.Body, MaxJSONBodyBytes+1))
            if err != nil || len(buf) > MaxJSONBodyBytes {
                // Hand the unread remainder (or the read error) back behind
                // what was consumed.
                req.Body = readCloser{io.MultiReader(bytes.NewReader(buf), req.Body), req.Body}
                return next(c)
            }
            req.Body = io.NopCloser(bytes.NewReader(buf))

            if len(bytes.TrimSpace(buf)) == 0 {
                return next(c)
            }
            var v any
            if err := codec.Unmarshal(buf, &v); err != nil {
                return next(c)
            }
            c.Set(JSONBodyKey, v)
            return next(c)
        }
    }
}

// isJSON reports whether a Content-Type names JSON, including the
// application/*+json family.
func isJSON(contentType string) bool {
    if contentType == "" {
        return false
    }
    mt, _, err := mime.ParseMediaType(contentType)
    if err != nil {
        return false
    }
    return mt == echo.MIMEApplicationJSON || strings.HasSuffix(mt, "+json")
}

type readCloser struct {
    io.Reader
    io.Closer
}
