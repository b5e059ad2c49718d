package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

// fakultasRepository is the slice of faculty storage the service needs.
type fakultasRepository interface {
	CreateFakultas(ctx context.Context, fakultas *models.Fakultas) (int64, error)
	GetFakultasByID(ctx context.Context, id int64) (*models.Fakultas, error)
	ListFakultas(ctx context.Context, search string, offset uint64, limit int) ([]*models.Fakultas, int64, error)
	UpdateFakultas(ctx context.Context, fakultas *models.Fakultas) error
	DeleteFakultas(ctx context.Context, id int64) error
}

// FakultasService defines the interface for faculty master data operations
type FakultasService interface {
	CreateFakultas(ctx context.Context, name string) (*models.Fakultas, error)
	GetFakultasByID(ctx context.Context, id int64) (*models.Fakultas, error)
	ListFakultas(ctx context.Context, search string, offset uint64, limit int) ([]*models.Fakultas, int64, error)
	UpdateFakultas(ctx context.Context, id int64, name string) (*models.Fakultas, error)
	DeleteFakultas(ctx context.Context, id int64) error
}

// fakultasServiceImpl implements the FakultasService interface
type fakultasServiceImpl struct {
	fakultasRepo fakultasRepository
}

// NewFakultasService creates a new fakultas service instance
func NewFakultasService(fakultasRepo fakultasRepository) FakultasService {
	return &fakultasServiceImpl{
		fakultasRepo: fakultasRepo,
	}
}

func validateFakultasName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return name, nil
}

// CreateFakultas creates a new faculty
func (s *fakultasServiceImpl) CreateFakultas(ctx context.Context, name string) (*models.Fakultas, error) {
	name, err := validateFakultasName(name)
	if err != nil {
		return nil, err
	}

	fakultas := &models.Fakultas{Name: name}
	id, err := s.fakultasRepo.CreateFakultas(ctx, fakultas)
	if err != nil {
		return nil, err
	}
	fakultas.ID = id

	return fakultas, nil
}

// GetFakultasByID retrieves a faculty by ID
func (s *fakultasServiceImpl) GetFakultasByID(ctx context.Context, id int64) (*models.Fakultas, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid fakultas ID", apperrors.ErrValidationFailed)
	}
	return s.fakultasRepo.GetFakultasByID(ctx, id)
}

// ListFakultas retrieves faculties with search and pagination
func (s *fakultasServiceImpl) ListFakultas(ctx context.Context, search string, offset uint64, limit int) ([]*models.Fakultas, int64, error) {
	return s.fakultasRepo.ListFakultas(ctx, strings.TrimSpace(search), offset, limit)
}

// UpdateFakultas renames a faculty
func (s *fakultasServiceImpl) UpdateFakultas(ctx context.Context, id int64, name string) (*models.Fakultas, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid fakultas ID", apperrors.ErrValidationFailed)
	}
	name, err := validateFakultasName(name)
	if err != nil {
		return nil, err
	}

	fakultas := &models.Fakultas{ID: id, Name: name}
	if err := s.fakultasRepo.UpdateFakultas(ctx, fakultas); err != nil {
		return nil, err
	}

	return fakultas, nil
}

// DeleteFakultas removes a faculty without study programs
func (s *fakultasServiceImpl) DeleteFakultas(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid fakultas ID", apperrors.ErrValidationFailed)
	}
	return s.fakultasRepo.DeleteFakultas(ctx, id)
}
