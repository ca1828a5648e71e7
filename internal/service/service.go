package service

import (
	"fmt"
	"time"

	"brothertrans/backend/internal/domain"
	"brothertrans/backend/internal/ports"
)

type Service struct {
	repo      ports.Repository
	telemetry ports.Telemetry
	ids       *domain.Sequence
	now       func() time.Time
}

func New(repo ports.Repository, telemetry ports.Telemetry) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("new service: repository is nil")
	}
	if telemetry == nil {
		return nil, fmt.Errorf("new service: telemetry is nil")
	}
	return &Service{
		repo:      repo,
		telemetry: telemetry,
		ids:       domain.NewSequence(),
		now:       time.Now,
	}, nil
}
