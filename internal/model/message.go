package model

import "time"

// BackendMessage is the fixed greeting served by the message endpoint.
const BackendMessage = "Hello from the Backend!"

// TimestampLayout renders UTC instants as YYYY-MM-DDTHH:MM:SS.sssZ.  The
// trailing Z is a literal, so callers must convert to UTC first.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// InfoMessage is the body returned by the message endpoint.
//
// Fields:
//  Message     – always BackendMessage.
//  Environment – deployment environment name resolved at startup.
//  Timestamp   – request time in TimestampLayout.
type InfoMessage struct {
    Message     string `json:"message"`
    Environment string `json:"environment"`
    Timestamp   string `json:"timestamp"`
}

// NewInfoMessage builds the message payload for env at instant now.
func NewInfoMessage(env string, now time.Time) InfoMessage {
    return InfoMessage{
        Message:     BackendMessage,
        Environment: env,
        Timestamp:   FormatTimestamp(now),
    }
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
    return t.UTC().Format(TimestampLayout)
}
