package dashboard

import "log/slog"

// Repository is the read-side access for dashboard aggregates
type Repository interface {
	StatsForRep(repID string) (*Stats, error)
	PerformanceForRep(repID string, months int) ([]*MonthlyPerformance, error)
}

// Service handles dashboard aggregation
type Service struct {
	repo   Repository
	logger *slog.Logger
}

const defaultPerformanceMonths = 6

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetStats(repID string) (*Stats, error) {
	stats, err := s.repo.StatsForRep(repID)
	if err != nil {
		s.logger.Error("failed to compute dashboard stats", "error", err, "rep_id", repID)
		return nil, err
	}
	return stats, nil
}

func (s *Service) GetPerformance(repID string) ([]*MonthlyPerformance, error) {
	rows, err := s.repo.PerformanceForRep(repID, defaultPerformanceMonths)
	if err != nil {
		s.logger.Error("failed to compute performance report", "error", err, "rep_id", repID)
		return nil, err
	}
	return rows, nil
}
