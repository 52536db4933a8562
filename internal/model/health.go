package model

import "time"

// TimestampLayout renders local wall-clock time with microsecond precision,
// e.g. 2025-03-14T09:26:53.589793.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ApplicationName is reported by the health endpoint.
const ApplicationName = "demo-app"

// StatusUp is the only status the health endpoint reports.
const StatusUp = "UP"

// HealthStatus is the JSON body of GET /api/health.  A fresh value is built
// for every request.
type HealthStatus struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Application string `json:"application"`
}

// NewHealthStatus returns an UP status stamped with now in the local zone.
func NewHealthStatus(now time.Time) HealthStatus {
	return HealthStatus{
		Status:      StatusUp,
		Timestamp:   now.Local().Format(TimestampLayout),
		Application: ApplicationName,
	}
}
