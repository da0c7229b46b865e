package usecase

import (
	"banquetpro/internal/staff/repository"
	pkgLog "banquetpro/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new staff UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
