package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

// jawabanRepository is the slice of response storage the service needs.
type jawabanRepository interface {
	CreateJawaban(ctx context.Context, jawaban *models.JawabanKuesioner) (int64, error)
	GetJawabanByID(ctx context.Context, id int64) (*models.JawabanKuesioner, error)
	GetJawabanByUserAndPertanyaan(ctx context.Context, userID, pertanyaanID int64) (*models.JawabanKuesioner, error)
	GetJawabanByUser(ctx context.Context, userID int64, tahunAkademik *string) ([]*models.JawabanKuesioner, error)
	UpdateJawaban(ctx context.Context, id int64, values map[string]interface{}) error
	DeleteJawaban(ctx context.Context, id int64) error
	ListJawabanRows(ctx context.Context, filter dto.JawabanListFilter, offset uint64, limit int) ([]*models.JawabanKuesionerRow, int64, error)
}

// jawabanPertanyaanReader loads the question and its choices for
// validation.
type jawabanPertanyaanReader interface {
	GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error)
}

type jawabanChoiceReader interface {
	GetPilihanJawabanByID(ctx context.Context, id int64) (*models.PilihanJawaban, error)
}

// JawabanService defines the interface for survey response operations
type JawabanService interface {
	CreateJawaban(ctx context.Context, userID, pertanyaanID int64, req dto.CreateJawabanRequest) (*models.JawabanKuesioner, error)
	GetMyJawaban(ctx context.Context, userID, pertanyaanID int64) (*models.JawabanKuesioner, error)
	GetMyJawabanList(ctx context.Context, userID int64, tahunAkademik *string) ([]*models.JawabanKuesioner, error)
	UpdateJawaban(ctx context.Context, userID, pertanyaanID int64, req dto.UpdateJawabanRequest) (*models.JawabanKuesioner, error)
	DeleteJawaban(ctx context.Context, id int64) error
	ListJawabanRows(ctx context.Context, filter dto.JawabanListFilter, offset uint64, limit int) ([]*models.JawabanKuesionerRow, int64, error)
}

// jawabanServiceImpl implements the JawabanService interface
type jawabanServiceImpl struct {
	jawabanRepo      jawabanRepository
	pertanyaanReader jawabanPertanyaanReader
	choiceReader     jawabanChoiceReader
}

// NewJawabanService creates a new jawaban service instance
func NewJawabanService(jawabanRepo jawabanRepository, pertanyaanReader jawabanPertanyaanReader, choiceReader jawabanChoiceReader) JawabanService {
	return &jawabanServiceImpl{
		jawabanRepo:      jawabanRepo,
		pertanyaanReader: pertanyaanReader,
		choiceReader:     choiceReader,
	}
}

// validateChoice checks that a referenced choice belongs to the question
func (s *jawabanServiceImpl) validateChoice(ctx context.Context, pertanyaanID, pilihanJawabanID int64) error {
	choice, err := s.choiceReader.GetPilihanJawabanByID(ctx, pilihanJawabanID)
	if err != nil {
		return err
	}
	if choice.PertanyaanID != pertanyaanID {
		return apperrors.ErrPilihanJawabanMismatch
	}
	return nil
}

// CreateJawaban submits the caller's answer to an active question. Each
// user answers a question once.
func (s *jawabanServiceImpl) CreateJawaban(ctx context.Context, userID, pertanyaanID int64, req dto.CreateJawabanRequest) (*models.JawabanKuesioner, error) {
	if pertanyaanID <= 0 {
		return nil, fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}
	if req.PilihanJawabanID == nil && (req.JawabanTeks == nil || strings.TrimSpace(*req.JawabanTeks) == "") {
		return nil, fmt.Errorf("%w: either pilihanJawabanId or jawaban_teks is required", apperrors.ErrValidationFailed)
	}

	pertanyaan, err := s.pertanyaanReader.GetPertanyaanByID(ctx, pertanyaanID)
	if err != nil {
		return nil, err
	}
	if pertanyaan.Status != models.PertanyaanActive {
		return nil, apperrors.ErrPertanyaanInactive
	}

	if _, err := s.jawabanRepo.GetJawabanByUserAndPertanyaan(ctx, userID, pertanyaanID); err == nil {
		return nil, apperrors.ErrJawabanAlreadyExists
	} else if !errors.Is(err, apperrors.ErrJawabanNotFound) {
		return nil, err
	}

	jawaban := &models.JawabanKuesioner{
		UserID:        userID,
		PertanyaanID:  pertanyaanID,
		TahunAkademik: pertanyaan.TahunAkademik,
	}

	// A choice wins over free text when both are sent
	if req.PilihanJawabanID != nil {
		if err := s.validateChoice(ctx, pertanyaanID, *req.PilihanJawabanID); err != nil {
			return nil, err
		}
		jawaban.PilihanJawabanID = req.PilihanJawabanID
	} else {
		teks := strings.TrimSpace(*req.JawabanTeks)
		jawaban.JawabanTeks = &teks
	}

	id, err := s.jawabanRepo.CreateJawaban(ctx, jawaban)
	if err != nil {
		return nil, err
	}
	jawaban.ID = id

	return jawaban, nil
}

// GetMyJawaban retrieves the caller's answer to one question
func (s *jawabanServiceImpl) GetMyJawaban(ctx context.Context, userID, pertanyaanID int64) (*models.JawabanKuesioner, error) {
	if pertanyaanID <= 0 {
		return nil, fmt.Errorf("%w: invalid pertanyaan ID", apperrors.ErrValidationFailed)
	}
	return s.jawabanRepo.GetJawabanByUserAndPertanyaan(ctx, userID, pertanyaanID)
}

// GetMyJawabanList retrieves all of the caller's answers
func (s *jawabanServiceImpl) GetMyJawabanList(ctx context.Context, userID int64, tahunAkademik *string) ([]*models.JawabanKuesioner, error) {
	return s.jawabanRepo.GetJawabanByUser(ctx, userID, tahunAkademik)
}

// UpdateJawaban revises the caller's answer. A new choice clears the
// stored text and new text clears the choice; an empty body changes
// nothing.
func (s *jawabanServiceImpl) UpdateJawaban(ctx context.Context, userID, pertanyaanID int64, req dto.UpdateJawabanRequest) (*models.JawabanKuesioner, error) {
	jawaban, err := s.jawabanRepo.GetJawabanByUserAndPertanyaan(ctx, userID, pertanyaanID)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if req.PilihanJawabanID != nil {
		if err := s.validateChoice(ctx, pertanyaanID, *req.PilihanJawabanID); err != nil {
			return nil, err
		}
		values["pilihan_jawaban_id"] = *req.PilihanJawabanID
		values["jawaban_teks"] = nil
	} else if req.JawabanTeks != nil {
		teks := strings.TrimSpace(*req.JawabanTeks)
		if teks == "" {
			return nil, fmt.Errorf("%w: jawaban_teks cannot be empty", apperrors.ErrValidationFailed)
		}
		values["jawaban_teks"] = teks
		values["pilihan_jawaban_id"] = nil
	}

	if len(values) == 0 {
		// Nothing to change, answer stays as is
		return jawaban, nil
	}

	if err := s.jawabanRepo.UpdateJawaban(ctx, jawaban.ID, values); err != nil {
		return nil, err
	}

	return s.jawabanRepo.GetJawabanByID(ctx, jawaban.ID)
}

// DeleteJawaban removes a response by ID
func (s *jawabanServiceImpl) DeleteJawaban(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid jawaban ID", apperrors.ErrValidationFailed)
	}
	return s.jawabanRepo.DeleteJawaban(ctx, id)
}

// ListJawabanRows retrieves joined report rows for the admin listing
func (s *jawabanServiceImpl) ListJawabanRows(ctx context.Context, filter dto.JawabanListFilter, offset uint64, limit int) ([]*models.JawabanKuesionerRow, int64, error) {
	return s.jawabanRepo.ListJawabanRows(ctx, filter, offset, limit)
}
