package usecase

import (
	"banquetpro/internal/client/repository"
	eventRepo "banquetpro/internal/event/repository"
	pkgLog "banquetpro/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	events eventRepo.Repository
}

// New creates a new client UseCase instance. events is consulted before
// deletion to keep referenced clients alive.
func New(l pkgLog.Logger, repo repository.Repository, events eventRepo.Repository) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		events: events,
	}
}
