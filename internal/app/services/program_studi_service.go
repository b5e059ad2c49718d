package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

// programStudiRepository is the slice of study program storage the
// service needs.
type programStudiRepository interface {
	CreateProgramStudi(ctx context.Context, prodi *models.ProgramStudi) (int64, error)
	GetProgramStudiByID(ctx context.Context, id int64) (*models.ProgramStudi, error)
	ListProgramStudi(ctx context.Context, fakultasID *int64, search string, offset uint64, limit int) ([]*models.ProgramStudi, int64, error)
	UpdateProgramStudi(ctx context.Context, prodi *models.ProgramStudi) error
	DeleteProgramStudi(ctx context.Context, id int64) error
}

// ProgramStudiService defines the interface for study program operations
type ProgramStudiService interface {
	CreateProgramStudi(ctx context.Context, fakultasID int64, name string) (*models.ProgramStudi, error)
	GetProgramStudiByID(ctx context.Context, id int64) (*models.ProgramStudi, error)
	ListProgramStudi(ctx context.Context, fakultasID *int64, search string, offset uint64, limit int) ([]*models.ProgramStudi, int64, error)
	UpdateProgramStudi(ctx context.Context, id int64, fakultasID *int64, name *string) (*models.ProgramStudi, error)
	DeleteProgramStudi(ctx context.Context, id int64) error
}

// programStudiServiceImpl implements the ProgramStudiService interface
type programStudiServiceImpl struct {
	prodiRepo programStudiRepository
}

// NewProgramStudiService creates a new program studi service instance
func NewProgramStudiService(prodiRepo programStudiRepository) ProgramStudiService {
	return &programStudiServiceImpl{
		prodiRepo: prodiRepo,
	}
}

// CreateProgramStudi creates a new study program under a faculty
func (s *programStudiServiceImpl) CreateProgramStudi(ctx context.Context, fakultasID int64, name string) (*models.ProgramStudi, error) {
	if fakultasID <= 0 {
		return nil, fmt.Errorf("%w: invalid fakultas ID", apperrors.ErrValidationFailed)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	prodi := &models.ProgramStudi{FakultasID: fakultasID, Name: name}
	id, err := s.prodiRepo.CreateProgramStudi(ctx, prodi)
	if err != nil {
		return nil, err
	}

	return s.prodiRepo.GetProgramStudiByID(ctx, id)
}

// GetProgramStudiByID retrieves a study program by ID
func (s *programStudiServiceImpl) GetProgramStudiByID(ctx context.Context, id int64) (*models.ProgramStudi, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid program studi ID", apperrors.ErrValidationFailed)
	}
	return s.prodiRepo.GetProgramStudiByID(ctx, id)
}

// ListProgramStudi retrieves study programs with filtering and pagination
func (s *programStudiServiceImpl) ListProgramStudi(ctx context.Context, fakultasID *int64, search string, offset uint64, limit int) ([]*models.ProgramStudi, int64, error) {
	return s.prodiRepo.ListProgramStudi(ctx, fakultasID, strings.TrimSpace(search), offset, limit)
}

// UpdateProgramStudi updates a study program's name or faculty
func (s *programStudiServiceImpl) UpdateProgramStudi(ctx context.Context, id int64, fakultasID *int64, name *string) (*models.ProgramStudi, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid program studi ID", apperrors.ErrValidationFailed)
	}

	current, err := s.prodiRepo.GetProgramStudiByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fakultasID != nil {
		if *fakultasID <= 0 {
			return nil, fmt.Errorf("%w: invalid fakultas ID", apperrors.ErrValidationFailed)
		}
		current.FakultasID = *fakultasID
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		current.Name = trimmed
	}

	if err := s.prodiRepo.UpdateProgramStudi(ctx, current); err != nil {
		return nil, err
	}

	return s.prodiRepo.GetProgramStudiByID(ctx, id)
}

// DeleteProgramStudi removes a study program not referenced by users
func (s *programStudiServiceImpl) DeleteProgramStudi(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid program studi ID", apperrors.ErrValidationFailed)
	}
	return s.prodiRepo.DeleteProgramStudi(ctx, id)
}
