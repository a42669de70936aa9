package usecase

import (
	"context"
	"time"
)

const StatusHealthy = "healthy"

type HealthStatus struct {
	Status    string
	Timestamp time.Time
	Version   string
}

type HealthService struct {
	version string
	clock   func() time.Time
}

func NewHealthService(version string, clock func() time.Time) *HealthService {
	if clock == nil {
		clock = time.Now
	}
	return &HealthService{version: version, clock: clock}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	_, span := startUsecaseSpan(ctx, "usecase.HealthService.Check")
	defer span.End()

	return HealthStatus{
		Status:    StatusHealthy,
		Timestamp: s.clock().UTC(),
		Version:   s.version,
	}
}
