package types_test

import (
	"testing"
	"time"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestTimestamp(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	ts := time.Date(2024, 2, 3, 2, 0, 0, 123456789, loc)

	gt.Value(t, types.Timestamp(ts)).Equal("2024-02-03T10:00:00.123Z")
}

func TestTimestamp_RoundTrip(t *testing.T) {
	now := time.Now()
	parsed, err := time.Parse(time.RFC3339Nano, types.Timestamp(now))
	gt.NoError(t, err)
	gt.True(t, now.Sub(parsed) < time.Millisecond)
	gt.True(t, now.Sub(parsed) >= 0)
}
