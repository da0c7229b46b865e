package usecase

import (
	"time"

	eventRepo "banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/internal/stock"
	pkgLog "banquetpro/pkg/log"
)

// Config tunes the aggregation windows.
type Config struct {
	MonthsBack          int // summary window when no dates are given
	UpcomingHorizonDays int
	LeaderboardSize     int
}

type implUseCase struct {
	l         pkgLog.Logger
	events    eventRepo.Repository
	staff     staffRepo.Repository
	inventory inventoryRepo.Repository
	stock     stock.Service
	cfg       Config
	now       func() time.Time
}

// New creates a new analytics UseCase instance. now anchors every window;
// pass time.Now in production and a fixed clock in tests.
func New(
	l pkgLog.Logger,
	events eventRepo.Repository,
	staff staffRepo.Repository,
	inventory inventoryRepo.Repository,
	stockSvc stock.Service,
	cfg Config,
	now func() time.Time,
) *implUseCase {
	if cfg.MonthsBack <= 0 {
		cfg.MonthsBack = 12
	}
	if cfg.UpcomingHorizonDays <= 0 {
		cfg.UpcomingHorizonDays = 30
	}
	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = 5
	}
	return &implUseCase{
		l:         l,
		events:    events,
		staff:     staff,
		inventory: inventory,
		stock:     stockSvc,
		cfg:       cfg,
		now:       now,
	}
}
