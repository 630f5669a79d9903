package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	controller "github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/controller/http"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/interfaces"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/domain/model"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/infra/catalog"
	"github.com/f3a-pattern-aerobatics-rc/f3a-microservice/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newClubUseCase(t *testing.T) interfaces.ClubUseCase {
	t.Helper()
	c, err := catalog.Load()
	gt.NoError(t, err)
	return usecase.NewClub(c)
}

func newHandler(t *testing.T, uc interfaces.ClubUseCase, opts ...controller.Option) http.Handler {
	t.Helper()
	opts = append([]controller.Option{controller.WithAddr("localhost:0")}, opts...)
	server, err := controller.NewServer(context.Background(), uc, opts...)
	gt.NoError(t, err)
	return server.Handler
}

// brokenUseCase fails every data call, either by error or by panic
type brokenUseCase struct {
	interfaces.ClubUseCase
	panics bool
}

func (uc *brokenUseCase) fail() error {
	if uc.panics {
		panic("catalog exploded: secret internal detail")
	}
	return errors.New("catalog unavailable: secret internal detail")
}

func (uc *brokenUseCase) ClubInfo(ctx context.Context) (*model.ClubInfo, error) {
	return nil, uc.fail()
}

func (uc *brokenUseCase) UpcomingEvents(ctx context.Context) (*model.EventList, error) {
	return nil, uc.fail()
}

func (uc *brokenUseCase) RecommendedAircraft(ctx context.Context) (*model.AircraftList, error) {
	return nil, uc.fail()
}
