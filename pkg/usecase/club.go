package usecase

import (
	"context"
	"time"

	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/interfaces"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/types"
)

type clubUseCase struct {
	catalog interfaces.Catalog
	now     func() time.Time
}

// ClubOption configures the club use case
type ClubOption func(*clubUseCase)

// WithClock replaces the clock used for health timestamps
func WithClock(now func() time.Time) ClubOption {
	return func(uc *clubUseCase) {
		uc.now = now
	}
}

// NewClub creates a new instance of ClubUseCase backed by catalog
func NewClub(catalog interfaces.Catalog, opts ...ClubOption) *clubUseCase {
	uc := &clubUseCase{
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ClubInfo returns the club record as published in the catalog
func (uc *clubUseCase) ClubInfo(ctx context.Context) (*model.ClubInfo, error) {
	club := uc.catalog.Club()
	return &club, nil
}

// UpcomingEvents returns every catalog event, in catalog order
func (uc *clubUseCase) UpcomingEvents(ctx context.Context) (*model.EventList, error) {
	return &model.EventList{Upcoming: uc.catalog.Events()}, nil
}

// RecommendedAircraft returns every catalog aircraft, in catalog order
func (uc *clubUseCase) RecommendedAircraft(ctx context.Context) (*model.AircraftList, error) {
	return &model.AircraftList{Recommended: uc.catalog.Aircraft()}, nil
}

// Health reports the service as healthy, stamped with the current time
func (uc *clubUseCase) Health(ctx context.Context) *model.HealthStatus {
	return &model.HealthStatus{
		Status:    "healthy",
		Timestamp: types.Timestamp(uc.now()),
		Service:   types.ServiceName,
		Version:   types.Version,
	}
}
