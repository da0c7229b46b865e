package usecase

import (
	"time"

	"banquetpro/internal/inventory/repository"
	"banquetpro/internal/stock"
	pkgLog "banquetpro/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	stock stock.Service
	now   func() time.Time
}

// New creates a new inventory UseCase instance. now supplies the restock
// timestamp; pass time.Now in production and a fixed clock in tests.
func New(l pkgLog.Logger, repo repository.Repository, stockSvc stock.Service, now func() time.Time) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		stock: stockSvc,
		now:   now,
	}
}
