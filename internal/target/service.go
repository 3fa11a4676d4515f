package target

import "log/slog"

// Repository defines the data access methods for sales targets
type Repository interface {
	GetByRepID(repID string) ([]*SalesTarget, error)
}

// Service handles sales target business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetMyTargets returns the representative's targets with derived progress
// stamped on each record.
func (s *Service) GetMyTargets(repID string) ([]*SalesTarget, error) {
	targets, err := s.repo.GetByRepID(repID)
	if err != nil {
		s.logger.Error("failed to get targets", "error", err, "rep_id", repID)
		return nil, err
	}

	for _, t := range targets {
		t.ProgressPercentage = t.Progress()
	}

	return targets, nil
}
