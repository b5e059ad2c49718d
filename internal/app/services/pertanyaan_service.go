package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/helpers"
	"github.com/hanifz/tracerstudy/internal/pkg/validation"
)

// pertanyaanRepository is the slice of question storage the service needs.
type pertanyaanRepository interface {
	CreatePertanyaan(ctx context.Context, pertanyaan *models.Pertanyaan) (int64, error)
	GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error)
	GetPertanyaanByTahunAkademik(ctx context.Context, tahunAkademik string, onlyActive bool) ([]*models.Pertanyaan, error)
	ListPertanyaan(ctx context.Context, filter dto.PertanyaanListFilter, offset uint64, limit int) ([]*models.Pertanyaan, int64, error)
	GetDistinctTahunAkademik(ctx context.Context) ([]string, error)
	UpdatePertanyaan(ctx context.Context, id int64, values map[string]interface{}) error
	UpdateStatusByTahunAkademik(ctx context.Context, tahunAkademik string, status int16) (int64, error)
	DeletePertanyaan(ctx context.Context, id int64) error
}

// pertanyaanChoiceRepository loads and stores answer choices for the
// copy and detail operations.
type pertanyaanChoiceRepository interface {
	CreatePilihanJawaban(ctx context.Context, pilihan *models.PilihanJawaban) (int64, error)
	GetPilihanJawabanByPertanyaanID(ctx context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error)
}

// PertanyaanService defines the interface for survey question operations
type PertanyaanService interface {
	CreatePertanyaan(ctx context.Context, req dto.CreatePertanyaanRequest) (*models.Pertanyaan, error)
	GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error)
	ListPertanyaan(ctx context.Context, filter dto.PertanyaanListFilter, offset uint64, limit int) ([]*models.Pertanyaan, int64, error)
	UpdatePertanyaan(ctx context.Context, id int64, req dto.UpdatePertanyaanRequest) (*models.Pertanyaan, error)
	DeletePertanyaan(ctx context.Context, id int64) error
	CopyPertanyaan(ctx context.Context, req dto.CopyPertanyaanRequest) (*dto.CopyPertanyaanResult, error)
	UpdateStatusByTahunAkademik(ctx context.Context, req dto.UpdateStatusByTahunRequest) (int64, error)
	GetTahunAkademikList(ctx context.Context) ([]string, error)
	GetPertanyaanWithChoicesByTahun(ctx context.Context, tahunAkademik string, onlyActive bool) ([]*models.Pertanyaan, error)
}

// pertanyaanServiceImpl implements the PertanyaanService interface
type pertanyaanServiceImpl struct {
	pertanyaanRepo pertanyaanRepository
	choiceRepo     pertanyaanChoiceRepository
}

// NewPertanyaanService creates a new pertanyaan service instance
func NewPertanyaanService(pertanyaanRepo pertanyaanRepository, choiceRepo pertanyaanChoiceRepository) PertanyaanService {
	return &pertanyaanServiceImpl{
		pertanyaanRepo: pertanyaanRepo,
		choiceRepo:     choiceRepo,
	}
}

func statusFromBool(active bool) int16 {
	if active {
		return models.PertanyaanActive
	}
	return models.PertanyaanInactive
}

func validateTahunAkademik(tahun string) (string, error) {
	tahun = strings.TrimSpace(tahun)
	if !validation.IsValidTahunAkademik(tahun) {
		return "", fmt.Errorf("%w: tahun_akademik must look like 2023/2024", apperrors.ErrValidationFailed)
	}
	return tahun, nil
}

// CreatePertanyaan creates a question. The slug is derived from the name
// with a random suffix so repeated names stay unique.
func (s *pertanyaanServiceImpl) CreatePertanyaan(ctx context.Context, req dto.CreatePertanyaanRequest) (*models.Pertanyaan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	tahun, err := validateTahunAkademik(req.TahunAkademik)
	if err != nil {
		return nil, err
	}

	// New questions start inactive until an admin opens the survey
	status := models.PertanyaanInactive
	if req.Status != nil {
		status = statusFromBool(*req.Status)
	}

	pertanyaan := &models.Pertanyaan{
		Name:          name,
		Slug:          helpers.GenerateSlug(name),
		Status:        status,
		TahunAkademik: tahun,
	}

	id, err := s.pertanyaanRepo.CreatePertanyaan(ctx, pertanyaan)
	if err != nil {
		return nil, err
	}
	pertanyaan.ID = id

	return pertanyaan, nil
}

// GetPertanyaanByID retrieves a question with its answer choices
func (s *pertanyaanServiceImpl) GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}

	pertanyaan, err := s.pertanyaanRepo.GetPertanyaanByID(ctx, id)
	if err != nil {
		return nil, err
	}

	choices, err := s.choiceRepo.GetPilihanJawabanByPertanyaanID(ctx, id)
	if err != nil {
		return nil, err
	}
	pertanyaan.PilihanJawaban = choices

	return pertanyaan, nil
}

// ListPertanyaan retrieves questions with filtering and pagination
func (s *pertanyaanServiceImpl) ListPertanyaan(ctx context.Context, filter dto.PertanyaanListFilter, offset uint64, limit int) ([]*models.Pertanyaan, int64, error) {
	return s.pertanyaanRepo.ListPertanyaan(ctx, filter, offset, limit)
}

// UpdatePertanyaan updates a question. A name change regenerates the slug.
func (s *pertanyaanServiceImpl) UpdatePertanyaan(ctx context.Context, id int64, req dto.UpdatePertanyaanRequest) (*models.Pertanyaan, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		values["name"] = name
		values["slug"] = helpers.GenerateSlug(name)
	}
	if req.TahunAkademik != nil {
		tahun, err := validateTahunAkademik(*req.TahunAkademik)
		if err != nil {
			return nil, err
		}
		values["tahun_akademik"] = tahun
	}
	if req.Status != nil {
		values["status"] = statusFromBool(*req.Status)
	}

	if len(values) > 0 {
		if err := s.pertanyaanRepo.UpdatePertanyaan(ctx, id, values); err != nil {
			return nil, err
		}
	}

	return s.GetPertanyaanByID(ctx, id)
}

// DeletePertanyaan removes a question and its choices
func (s *pertanyaanServiceImpl) DeletePertanyaan(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}
	return s.pertanyaanRepo.DeletePertanyaan(ctx, id)
}

// CopyPertanyaan copies every question of one academic year, with its
// choices, into another year. Copies start inactive so admins can review
// before opening the new survey.
func (s *pertanyaanServiceImpl) CopyPertanyaan(ctx context.Context, req dto.CopyPertanyaanRequest) (*dto.CopyPertanyaanResult, error) {
	asal, err := validateTahunAkademik(req.TahunAkademikAsal)
	if err != nil {
		return nil, err
	}
	tujuan, err := validateTahunAkademik(req.TahunAkademikTujuan)
	if err != nil {
		return nil, err
	}
	if asal == tujuan {
		return nil, fmt.Errorf("%w: source and target tahun_akademik are the same", apperrors.ErrValidationFailed)
	}

	source, err := s.pertanyaanRepo.GetPertanyaanByTahunAkademik(ctx, asal, false)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, apperrors.ErrPertanyaanNotFound
	}

	result := &dto.CopyPertanyaanResult{
		TahunAkademikAsal:   asal,
		TahunAkademikTujuan: tujuan,
	}

	for _, src := range source {
		copied := &models.Pertanyaan{
			Name:          src.Name,
			Slug:          helpers.GenerateSlug(src.Name),
			Status:        models.PertanyaanInactive,
			TahunAkademik: tujuan,
		}
		newID, err := s.pertanyaanRepo.CreatePertanyaan(ctx, copied)
		if err != nil {
			return nil, fmt.Errorf("error copying pertanyaan %d: %w", src.ID, err)
		}
		result.TotalPertanyaanDisalin++

		choices, err := s.choiceRepo.GetPilihanJawabanByPertanyaanID(ctx, src.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading choices of pertanyaan %d: %w", src.ID, err)
		}
		for _, choice := range choices {
			_, err := s.choiceRepo.CreatePilihanJawaban(ctx, &models.PilihanJawaban{
				PertanyaanID: newID,
				Name:         choice.Name,
			})
			if err != nil {
				return nil, fmt.Errorf("error copying choice of pertanyaan %d: %w", src.ID, err)
			}
			result.TotalPilihanJawabanDisalin++
		}
	}

	return result, nil
}

// UpdateStatusByTahunAkademik toggles every question of one academic
// year. A year without questions is a not found error.
func (s *pertanyaanServiceImpl) UpdateStatusByTahunAkademik(ctx context.Context, req dto.UpdateStatusByTahunRequest) (int64, error) {
	tahun, err := validateTahunAkademik(req.TahunAkademik)
	if err != nil {
		return 0, err
	}

	affected, err := s.pertanyaanRepo.UpdateStatusByTahunAkademik(ctx, tahun, statusFromBool(req.Status))
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, apperrors.ErrPertanyaanNotFound
	}

	return affected, nil
}

// GetTahunAkademikList lists the academic years that have questions
func (s *pertanyaanServiceImpl) GetTahunAkademikList(ctx context.Context) ([]string, error) {
	return s.pertanyaanRepo.GetDistinctTahunAkademik(ctx)
}

// GetPertanyaanWithChoicesByTahun retrieves the questions of one
// academic year with their choices attached.
func (s *pertanyaanServiceImpl) GetPertanyaanWithChoicesByTahun(ctx context.Context, tahunAkademik string, onlyActive bool) ([]*models.Pertanyaan, error) {
	tahun, err := validateTahunAkademik(tahunAkademik)
	if err != nil {
		return nil, err
	}

	questions, err := s.pertanyaanRepo.GetPertanyaanByTahunAkademik(ctx, tahun, onlyActive)
	if err != nil {
		return nil, err
	}

	for _, q := range questions {
		choices, err := s.choiceRepo.GetPilihanJawabanByPertanyaanID(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		q.PilihanJawaban = choices
	}

	return questions, nil
}
