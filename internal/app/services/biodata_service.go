package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/filestorage"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

// biodataRepository is the slice of profile storage the service needs.
type biodataRepository interface {
	CreateBiodata(ctx context.Context, biodata *models.Biodata) (int64, error)
	GetBiodataByID(ctx context.Context, id int64) (*models.Biodata, error)
	GetBiodataByUserID(ctx context.Context, userID int64) (*models.Biodata, error)
	UpdateBiodata(ctx context.Context, id int64, values map[string]interface{}) error
	DeleteBiodata(ctx context.Context, id int64) error
	ListBiodata(ctx context.Context, filter dto.BiodataListFilter, offset uint64, limit int) ([]*models.Biodata, int64, error)
}

// biodataUserReader resolves the owning account for denormalized fields.
type biodataUserReader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// BiodataService defines the interface for alumni profile operations
type BiodataService interface {
	CreateBiodata(ctx context.Context, userID int64, req dto.CreateBiodataRequest, image *multipart.FileHeader) (*models.Biodata, error)
	GetBiodataByID(ctx context.Context, id int64) (*models.Biodata, error)
	GetBiodataByUserID(ctx context.Context, userID int64) (*models.Biodata, error)
	UpdateBiodata(ctx context.Context, userID int64, req dto.UpdateBiodataRequest, image *multipart.FileHeader) (*models.Biodata, error)
	DeleteBiodata(ctx context.Context, id int64) error
	ListBiodata(ctx context.Context, filter dto.BiodataListFilter, offset uint64, limit int) ([]dto.BiodataListRow, int64, error)
	PhotoURL(biodata *models.Biodata) *string
}

// biodataServiceImpl implements the BiodataService interface
type biodataServiceImpl struct {
	biodataRepo biodataRepository
	userReader  biodataUserReader
	storage     filestorage.FileStorage
}

// NewBiodataService creates a new biodata service instance
func NewBiodataService(biodataRepo biodataRepository, userReader biodataUserReader, storage filestorage.FileStorage) BiodataService {
	return &biodataServiceImpl{
		biodataRepo: biodataRepo,
		userReader:  userReader,
		storage:     storage,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseTanggalLahir(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tanggalLahir format", apperrors.ErrValidationFailed)
	}
	return &t, nil
}

// CreateBiodata creates the caller's profile. The photo is mandatory,
// and a duplicate create removes the file that was just stored.
func (s *biodataServiceImpl) CreateBiodata(ctx context.Context, userID int64, req dto.CreateBiodataRequest, image *multipart.FileHeader) (*models.Biodata, error) {
	if image == nil {
		return nil, apperrors.ErrBiodataImageRequired
	}

	user, err := s.userReader.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.FakultasID == nil || user.ProgramStudiID == nil {
		return nil, fmt.Errorf("%w: account has no fakultas or program studi assigned", apperrors.ErrValidationFailed)
	}

	tanggalLahir, err := parseTanggalLahir(req.TanggalLahir)
	if err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveFile(image)
	if err != nil {
		return nil, fmt.Errorf("error saving biodata photo: %w", err)
	}

	biodata := &models.Biodata{
		UserID:         userID,
		FakultasID:     *user.FakultasID,
		ProgramStudiID: *user.ProgramStudiID,
		NPM:            optionalString(user.NomorInduk),
		Image:          &filename,
		Name:           user.Name,
		TempatLahir:    optionalString(req.TempatLahir),
		TanggalLahir:   tanggalLahir,
		Alamat:         optionalString(req.Alamat),
		Telepon:        optionalString(req.Telepon),
		JenisKelamin:   optionalString(req.JenisKelamin),
		NamaGelar:      optionalString(req.NamaGelar),
		IPK:            optionalString(req.IPK),
		Angkatan:       optionalString(req.Angkatan),
	}

	id, err := s.biodataRepo.CreateBiodata(ctx, biodata)
	if err != nil {
		// The stored photo is orphaned on failure, clean it up
		if delErr := s.storage.DeleteFile(filename); delErr != nil {
			logger.Warn().Err(delErr).Str("filename", filename).Msg("Failed to remove orphaned biodata photo")
		}
		return nil, err
	}
	biodata.ID = id

	return biodata, nil
}

// GetBiodataByID retrieves a profile by ID
func (s *biodataServiceImpl) GetBiodataByID(ctx context.Context, id int64) (*models.Biodata, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid biodata ID", apperrors.ErrValidationFailed)
	}
	return s.biodataRepo.GetBiodataByID(ctx, id)
}

// GetBiodataByUserID retrieves the profile owned by a user
func (s *biodataServiceImpl) GetBiodataByUserID(ctx context.Context, userID int64) (*models.Biodata, error) {
	return s.biodataRepo.GetBiodataByUserID(ctx, userID)
}

// UpdateBiodata updates the caller's profile. A new photo replaces and
// deletes the old one.
func (s *biodataServiceImpl) UpdateBiodata(ctx context.Context, userID int64, req dto.UpdateBiodataRequest, image *multipart.FileHeader) (*models.Biodata, error) {
	current, err := s.biodataRepo.GetBiodataByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if req.TempatLahir != nil {
		values["tempat_lahir"] = *req.TempatLahir
	}
	if req.TanggalLahir != nil {
		tanggalLahir, err := parseTanggalLahir(*req.TanggalLahir)
		if err != nil {
			return nil, err
		}
		values["tanggal_lahir"] = tanggalLahir
	}
	if req.Alamat != nil {
		values["alamat"] = *req.Alamat
	}
	if req.Telepon != nil {
		values["telepon"] = *req.Telepon
	}
	if req.JenisKelamin != nil {
		values["jenis_kelamin"] = *req.JenisKelamin
	}
	if req.NamaGelar != nil {
		values["nama_gelar"] = *req.NamaGelar
	}
	if req.IPK != nil {
		values["ipk"] = *req.IPK
	}
	if req.Angkatan != nil {
		values["angkatan"] = *req.Angkatan
	}

	var oldImage string
	if image != nil {
		filename, err := s.storage.SaveFile(image)
		if err != nil {
			return nil, fmt.Errorf("error saving biodata photo: %w", err)
		}
		values["image"] = filename
		if current.Image != nil {
			oldImage = *current.Image
		}
	}

	if len(values) > 0 {
		if err := s.biodataRepo.UpdateBiodata(ctx, current.ID, values); err != nil {
			if newImage, ok := values["image"].(string); ok {
				if delErr := s.storage.DeleteFile(newImage); delErr != nil {
					logger.Warn().Err(delErr).Str("filename", newImage).Msg("Failed to remove orphaned biodata photo")
				}
			}
			return nil, err
		}
	}

	if oldImage != "" {
		if err := s.storage.DeleteFile(oldImage); err != nil {
			logger.Warn().Err(err).Str("filename", oldImage).Msg("Failed to delete replaced biodata photo")
		}
	}

	return s.biodataRepo.GetBiodataByID(ctx, current.ID)
}

// DeleteBiodata removes a profile and its photo
func (s *biodataServiceImpl) DeleteBiodata(ctx context.Context, id int64) error {
	biodata, err := s.biodataRepo.GetBiodataByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBiodataNotFound) {
			return apperrors.ErrBiodataNotFound
		}
		return err
	}

	if err := s.biodataRepo.DeleteBiodata(ctx, id); err != nil {
		return err
	}

	if biodata.Image != nil {
		if err := s.storage.DeleteFile(*biodata.Image); err != nil {
			logger.Warn().Err(err).Str("filename", *biodata.Image).Msg("Failed to delete biodata photo")
		}
	}

	return nil
}

// ListBiodata retrieves profiles as listing rows with photo URLs
func (s *biodataServiceImpl) ListBiodata(ctx context.Context, filter dto.BiodataListFilter, offset uint64, limit int) ([]dto.BiodataListRow, int64, error) {
	items, total, err := s.biodataRepo.ListBiodata(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]dto.BiodataListRow, 0, len(items))
	for _, b := range items {
		rows = append(rows, dto.BiodataListRow{
			ID:             b.ID,
			Name:           b.Name,
			NPM:            b.NPM,
			Image:          b.Image,
			Telepon:        b.Telepon,
			JenisKelamin:   b.JenisKelamin,
			FakultasID:     b.FakultasID,
			ProgramStudiID: b.ProgramStudiID,
			FotoURL:        s.PhotoURL(b),
		})
	}

	return rows, total, nil
}

// PhotoURL builds the public URL of a profile photo
func (s *biodataServiceImpl) PhotoURL(biodata *models.Biodata) *string {
	if biodata == nil || biodata.Image == nil || *biodata.Image == "" {
		return nil
	}
	url := s.storage.FileURL(*biodata.Image)
	return &url
}
