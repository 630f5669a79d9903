package types

import "time"

const (
	// Version is the service version reported by the health endpoint
	Version = "1.0.0"

	// ServiceName is the service name reported by the health endpoint
	ServiceName = "f3a-microservice"

	// TimestampLayout renders UTC times the way JavaScript's toISOString does
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Timestamp formats t as an ISO-8601 UTC string with millisecond precision
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
