package interfaces

import (
	"context"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
)

// ClubUseCase serves the club's published information
type ClubUseCase interface {
	// ClubInfo returns the club description and contact details
	ClubInfo(ctx context.Context) (*model.ClubInfo, error)

	// UpcomingEvents returns the scheduled events in publication order
	UpcomingEvents(ctx context.Context) (*model.EventList, error)

	// RecommendedAircraft returns the aircraft the club recommends
	RecommendedAircraft(ctx context.Context) (*model.AircraftList, error)

	// Health reports the service status as of now
	Health(ctx context.Context) *model.HealthStatus
}

// Catalog provides the compiled-in club data
type Catalog interface {
	Club() model.ClubInfo
	Events() []model.Event
	Aircraft() []model.Aircraft
}
