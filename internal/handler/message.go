// Package handler exposes the HTTP handlers of the backend.  This file
// defines the informational message endpoint.

package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/message-backend/internal/model"
)

// MessageHandler serves the greeting together with the deployment
// environment and the current time.  It holds only read-only state and is
// safe for concurrent use.
type MessageHandler struct {
    Env string           // environment name resolved at startup
    Now func() time.Time // clock; time.Now when nil
}

// NewMessageHandler returns a MessageHandler for env using the wall clock.
func NewMessageHandler(env string) *MessageHandler {
    return &MessageHandler{Env: env, Now: time.Now}
}

// Message handles GET /api/message.
func (h *MessageHandler) Message(c echo.Context) error {
    now := time.Now
    if h.Now != nil {
        now = h.Now
    }
    return c.JSON(http.StatusOK, model.NewInfoMessage(h.Env, now()))
}
