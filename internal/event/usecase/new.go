package usecase

import (
	"time"

	clientRepo "banquetpro/internal/client/repository"
	"banquetpro/internal/event"
	"banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/internal/stock"
	pkgLog "banquetpro/pkg/log"
)

// CalendarConfig targets the banquet schedule calendar.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	clients   clientRepo.Repository
	staff     staffRepo.Repository
	inventory inventoryRepo.Repository
	stock     stock.Service
	cal       event.Calendar
	calCfg    CalendarConfig
	now       func() time.Time
}

// New creates a new event UseCase instance. cal may be nil, which disables
// calendar sync entirely.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	clients clientRepo.Repository,
	staff staffRepo.Repository,
	inventory inventoryRepo.Repository,
	stockSvc stock.Service,
	cal event.Calendar,
	calCfg CalendarConfig,
	now func() time.Time,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		clients:   clients,
		staff:     staff,
		inventory: inventory,
		stock:     stockSvc,
		cal:       cal,
		calCfg:    calCfg,
		now:       now,
	}
}
