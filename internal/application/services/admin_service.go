package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentaltrack/backend/internal/domain/repositories"
)

// AdminService handles maintenance operations on the data set
type AdminService struct {
	resetter repositories.DataResetter
	logger   zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(resetter repositories.DataResetter, logger zerolog.Logger) *AdminService {
	return &AdminService{resetter: resetter, logger: logger}
}

// Reset restores every collection to seed data and logs the operation
func (s *AdminService) Reset(ctx context.Context) error {
	if err := s.resetter.ResetAll(ctx); err != nil {
		return err
	}
	s.logger.Warn().Msg("all collections reset to seed data")
	return nil
}
