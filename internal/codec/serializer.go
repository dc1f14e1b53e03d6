// Package codec provides the JSON implementation Echo uses for request
// binding and response rendering.
package codec

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// encoder is the subset shared by the go-json and sonic stream encoders.
type encoder interface {
	Encode(v any) error
	SetIndent(prefix, indent string)
}

// JSONSerializer implements echo.JSONSerializer.
type JSONSerializer struct{}

var _ echo.JSONSerializer = JSONSerializer{}

// Serialize writes i to the response as JSON followed by a newline.
func (JSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := newEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize decodes the request body into i. Decode failures are client
// errors.
func (JSONSerializer) Deserialize(c echo.Context, i any) error {
	if err := decode(c.Request().Body, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body: "+err.Error()).SetInternal(err)
	}
	return nil
}

// Unmarshal decodes data with the active JSON implementation.
func Unmarshal(data []byte, v any) error {
	return jsonUnmarshal(data, v)
}
