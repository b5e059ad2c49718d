package services

import (
	"context"
	"fmt"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
)

// lokasiPekerjaanRepository is the slice of work location storage the
// service needs.
type lokasiPekerjaanRepository interface {
	CreateLokasiPekerjaan(ctx context.Context, lokasi *models.LokasiPekerjaan) (int64, error)
	GetLokasiPekerjaanByID(ctx context.Context, id int64) (*models.LokasiPekerjaan, error)
	UpdateLokasiPekerjaan(ctx context.Context, id int64, values map[string]interface{}) error
	DeleteLokasiPekerjaan(ctx context.Context, id int64) error
	ListLokasiPekerjaanRows(ctx context.Context, filter dto.LokasiPekerjaanListFilter, offset uint64, limit int) ([]*models.LokasiPekerjaanRow, int64, error)
}

// lokasiWilayahReader checks that the referenced regions exist.
type lokasiWilayahReader interface {
	GetProvinsiByID(ctx context.Context, id int64) (*models.Provinsi, error)
	GetKotaByID(ctx context.Context, id string) (*models.Kota, error)
}

// lokasiUserReader resolves the owning account for denormalized fields.
type lokasiUserReader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// LokasiPekerjaanService defines the interface for work location operations
type LokasiPekerjaanService interface {
	CreateLokasiPekerjaan(ctx context.Context, userID int64, req dto.CreateLokasiPekerjaanRequest) (*models.LokasiPekerjaan, error)
	GetLokasiPekerjaanByID(ctx context.Context, id int64) (*models.LokasiPekerjaan, error)
	UpdateLokasiPekerjaan(ctx context.Context, id, userID int64, req dto.UpdateLokasiPekerjaanRequest) (*models.LokasiPekerjaan, error)
	DeleteLokasiPekerjaan(ctx context.Context, id int64, userID *int64) error
	ListLokasiPekerjaanRows(ctx context.Context, filter dto.LokasiPekerjaanListFilter, offset uint64, limit int) ([]*models.LokasiPekerjaanRow, int64, error)
}

// lokasiPekerjaanServiceImpl implements the LokasiPekerjaanService interface
type lokasiPekerjaanServiceImpl struct {
	lokasiRepo    lokasiPekerjaanRepository
	wilayahReader lokasiWilayahReader
	userReader    lokasiUserReader
}

// NewLokasiPekerjaanService creates a new lokasi pekerjaan service instance
func NewLokasiPekerjaanService(lokasiRepo lokasiPekerjaanRepository, wilayahReader lokasiWilayahReader, userReader lokasiUserReader) LokasiPekerjaanService {
	return &lokasiPekerjaanServiceImpl{
		lokasiRepo:    lokasiRepo,
		wilayahReader: wilayahReader,
		userReader:    userReader,
	}
}

// validateRegion checks the province and regency pair
func (s *lokasiPekerjaanServiceImpl) validateRegion(ctx context.Context, provinsiID int64, kotaID string) error {
	if _, err := s.wilayahReader.GetProvinsiByID(ctx, provinsiID); err != nil {
		return err
	}
	kota, err := s.wilayahReader.GetKotaByID(ctx, kotaID)
	if err != nil {
		return err
	}
	if kota.ProvinsiID != provinsiID {
		return fmt.Errorf("%w: kota %s is not in provinsi %d", apperrors.ErrValidationFailed, kotaID, provinsiID)
	}
	return nil
}

// CreateLokasiPekerjaan records where the caller works. Faculty and
// study program come from the account, not the request.
func (s *lokasiPekerjaanServiceImpl) CreateLokasiPekerjaan(ctx context.Context, userID int64, req dto.CreateLokasiPekerjaanRequest) (*models.LokasiPekerjaan, error) {
	user, err := s.userReader.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.FakultasID == nil || user.ProgramStudiID == nil {
		return nil, fmt.Errorf("%w: account has no fakultas or program studi assigned", apperrors.ErrValidationFailed)
	}

	if err := s.validateRegion(ctx, req.ProvinsiID, req.KotaID); err != nil {
		return nil, err
	}

	lokasi := &models.LokasiPekerjaan{
		UserID:          userID,
		ProvinsiID:      req.ProvinsiID,
		KotaID:          req.KotaID,
		FakultasID:      *user.FakultasID,
		ProgramStudiID:  *user.ProgramStudiID,
		CompanyName:     req.CompanyName,
		CompanyAddress:  req.CompanyAddress,
		JobTitle:        req.JobTitle,
		DomisiliAddress: req.DomisiliAddress,
		Longitude:       req.Longitude,
		Latitude:        req.Latitude,
	}

	id, err := s.lokasiRepo.CreateLokasiPekerjaan(ctx, lokasi)
	if err != nil {
		return nil, err
	}
	lokasi.ID = id

	return lokasi, nil
}

// GetLokasiPekerjaanByID retrieves a work location by ID
func (s *lokasiPekerjaanServiceImpl) GetLokasiPekerjaanByID(ctx context.Context, id int64) (*models.LokasiPekerjaan, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid lokasi pekerjaan ID", apperrors.ErrValidationFailed)
	}
	return s.lokasiRepo.GetLokasiPekerjaanByID(ctx, id)
}

// UpdateLokasiPekerjaan updates a row owned by the caller
func (s *lokasiPekerjaanServiceImpl) UpdateLokasiPekerjaan(ctx context.Context, id, userID int64, req dto.UpdateLokasiPekerjaanRequest) (*models.LokasiPekerjaan, error) {
	current, err := s.lokasiRepo.GetLokasiPekerjaanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	provinsiID := current.ProvinsiID
	kotaID := current.KotaID
	if req.ProvinsiID != nil {
		provinsiID = *req.ProvinsiID
	}
	if req.KotaID != nil {
		kotaID = *req.KotaID
	}

	values := map[string]interface{}{}
	if req.ProvinsiID != nil || req.KotaID != nil {
		if err := s.validateRegion(ctx, provinsiID, kotaID); err != nil {
			return nil, err
		}
		values["provinsi_id"] = provinsiID
		values["kota_id"] = kotaID
	}
	if req.CompanyName != nil {
		values["company_name"] = *req.CompanyName
	}
	if req.CompanyAddress != nil {
		values["company_address"] = *req.CompanyAddress
	}
	if req.JobTitle != nil {
		values["job_title"] = *req.JobTitle
	}
	if req.DomisiliAddress != nil {
		values["domisili_address"] = *req.DomisiliAddress
	}
	if req.Longitude != nil {
		values["longitude"] = *req.Longitude
	}
	if req.Latitude != nil {
		values["latitude"] = *req.Latitude
	}

	if len(values) > 0 {
		if err := s.lokasiRepo.UpdateLokasiPekerjaan(ctx, id, values); err != nil {
			return nil, err
		}
	}

	return s.lokasiRepo.GetLokasiPekerjaanByID(ctx, id)
}

// DeleteLokasiPekerjaan removes a row. When userID is set the row must
// belong to that user; admins pass nil.
func (s *lokasiPekerjaanServiceImpl) DeleteLokasiPekerjaan(ctx context.Context, id int64, userID *int64) error {
	lokasi, err := s.lokasiRepo.GetLokasiPekerjaanByID(ctx, id)
	if err != nil {
		return err
	}
	if userID != nil && lokasi.UserID != *userID {
		return apperrors.ErrPermissionDenied
	}

	return s.lokasiRepo.DeleteLokasiPekerjaan(ctx, id)
}

// ListLokasiPekerjaanRows retrieves joined listing rows
func (s *lokasiPekerjaanServiceImpl) ListLokasiPekerjaanRows(ctx context.Context, filter dto.LokasiPekerjaanListFilter, offset uint64, limit int) ([]*models.LokasiPekerjaanRow, int64, error) {
	return s.lokasiRepo.ListLokasiPekerjaanRows(ctx, filter, offset, limit)
}
