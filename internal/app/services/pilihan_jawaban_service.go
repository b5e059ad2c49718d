package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

// pilihanJawabanRepository is the slice of choice storage the service needs.
type pilihanJawabanRepository interface {
	CreatePilihanJawaban(ctx context.Context, pilihan *models.PilihanJawaban) (int64, error)
	GetPilihanJawabanByID(ctx context.Context, id int64) (*models.PilihanJawaban, error)
	GetPilihanJawabanByPertanyaanID(ctx context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error)
	UpdatePilihanJawaban(ctx context.Context, id int64, name string) error
	DeletePilihanJawaban(ctx context.Context, id int64) error
}

// pilihanPertanyaanReader checks that the target question exists.
type pilihanPertanyaanReader interface {
	GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error)
}

// PilihanJawabanService defines the interface for answer choice operations
type PilihanJawabanService interface {
	CreatePilihanJawaban(ctx context.Context, req dto.CreatePilihanJawabanRequest) (*models.PilihanJawaban, error)
	GetPilihanJawabanByPertanyaanID(ctx context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error)
	UpdatePilihanJawaban(ctx context.Context, id int64, req dto.UpdatePilihanJawabanRequest) (*models.PilihanJawaban, error)
	DeletePilihanJawaban(ctx context.Context, id int64) error
}

// pilihanJawabanServiceImpl implements the PilihanJawabanService interface
type pilihanJawabanServiceImpl struct {
	pilihanRepo      pilihanJawabanRepository
	pertanyaanReader pilihanPertanyaanReader
}

// NewPilihanJawabanService creates a new pilihan jawaban service instance
func NewPilihanJawabanService(pilihanRepo pilihanJawabanRepository, pertanyaanReader pilihanPertanyaanReader) PilihanJawabanService {
	return &pilihanJawabanServiceImpl{
		pilihanRepo:      pilihanRepo,
		pertanyaanReader: pertanyaanReader,
	}
}

// CreatePilihanJawaban attaches a choice to an existing question
func (s *pilihanJawabanServiceImpl) CreatePilihanJawaban(ctx context.Context, req dto.CreatePilihanJawabanRequest) (*models.PilihanJawaban, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.pertanyaanReader.GetPertanyaanByID(ctx, req.PertanyaanID); err != nil {
		return nil, err
	}

	pilihan := &models.PilihanJawaban{
		PertanyaanID: req.PertanyaanID,
		Name:         name,
	}
	id, err := s.pilihanRepo.CreatePilihanJawaban(ctx, pilihan)
	if err != nil {
		return nil, err
	}
	pilihan.ID = id

	return pilihan, nil
}

// GetPilihanJawabanByPertanyaanID lists the choices of one question
func (s *pilihanJawabanServiceImpl) GetPilihanJawabanByPertanyaanID(ctx context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error) {
	if pertanyaanID <= 0 {
		return nil, fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}
	return s.pilihanRepo.GetPilihanJawabanByPertanyaanID(ctx, pertanyaanID)
}

// UpdatePilihanJawaban renames a choice
func (s *pilihanJawabanServiceImpl) UpdatePilihanJawaban(ctx context.Context, id int64, req dto.UpdatePilihanJawabanRequest) (*models.PilihanJawaban, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid pilihan jawaban ID", apperrors.ErrValidationFailed)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.pilihanRepo.UpdatePilihanJawaban(ctx, id, name); err != nil {
		return nil, err
	}

	return s.pilihanRepo.GetPilihanJawabanByID(ctx, id)
}

// DeletePilihanJawaban removes a choice
func (s *pilihanJawabanServiceImpl) DeletePilihanJawaban(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid pilihan jawaban ID", apperrors.ErrValidationFailed)
	}
	return s.pilihanRepo.DeletePilihanJawaban(ctx, id)
}
