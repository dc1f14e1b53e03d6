package model

// StatusHealthy is the only status the health endpoint ever reports.
const StatusHealthy = "healthy"

// HealthStatus is the body returned by the liveness endpoint.  A fresh value
// is built for every request.
type HealthStatus struct {
    Status string `json:"status"` // always StatusHealthy
}

// NewHealthStatus returns the healthy status payload.
func NewHealthStatus() HealthStatus {
    return HealthStatus{Status: StatusHealthy}
}
