package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
	"github.com/hanifz/tracerstudy/internal/pkg/wilayah"
)

// wilayahRepository is the slice of region storage the service needs.
type wilayahRepository interface {
	UpsertProvinsi(ctx context.Context, provinsi *models.Provinsi) error
	UpsertKota(ctx context.Context, kota *models.Kota) error
	GetAllProvinsi(ctx context.Context) ([]*models.Provinsi, error)
	GetKotaByProvinsi(ctx context.Context, provinsiID int64) ([]*models.Kota, error)
}

// wilayahFetcher fetches regions from the national dataset API.
type wilayahFetcher interface {
	GetProvinces(ctx context.Context) ([]wilayah.Region, error)
	GetRegencies(ctx context.Context, provinceCode string) ([]wilayah.Region, error)
}

// WilayahImportResult summarizes a dataset import run
type WilayahImportResult struct {
	TotalProvinsi int `json:"totalProvinsi"`
	TotalKota     int `json:"totalKota"`
}

// WilayahService defines the interface for region master data operations
type WilayahService interface {
	ImportProvinsi(ctx context.Context) (*WilayahImportResult, error)
	ImportKota(ctx context.Context) (*WilayahImportResult, error)
	GetAllProvinsi(ctx context.Context) ([]*models.Provinsi, error)
	GetKotaByProvinsi(ctx context.Context, provinsiID int64) ([]*models.Kota, error)
}

// wilayahServiceImpl implements the WilayahService interface
type wilayahServiceImpl struct {
	wilayahRepo wilayahRepository
	fetcher     wilayahFetcher
}

// NewWilayahService creates a new wilayah service instance
func NewWilayahService(wilayahRepo wilayahRepository, fetcher wilayahFetcher) WilayahService {
	return &wilayahServiceImpl{
		wilayahRepo: wilayahRepo,
		fetcher:     fetcher,
	}
}

// ImportProvinsi pulls all provinces from the dataset and upserts them
// by code, so re-running the import is safe.
func (s *wilayahServiceImpl) ImportProvinsi(ctx context.Context) (*WilayahImportResult, error) {
	provinces, err := s.fetcher.GetProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching provinces: %w", err)
	}

	result := &WilayahImportResult{}
	for _, prov := range provinces {
		code, err := strconv.ParseInt(strings.TrimSpace(prov.Code), 10, 64)
		if err != nil {
			logger.Warn().Str("code", prov.Code).Msg("Skipping province with non-numeric code")
			continue
		}

		err = s.wilayahRepo.UpsertProvinsi(ctx, &models.Provinsi{
			ID:   code,
			Name: prov.Name,
		})
		if err != nil {
			return nil, fmt.Errorf("error storing provinsi %s: %w", prov.Name, err)
		}
		result.TotalProvinsi++
	}

	logger.Info().Int("total", result.TotalProvinsi).Msg("Provinsi import finished")
	return result, nil
}

// ImportKota walks the stored provinces and pulls their regencies from
// the dataset. Regency codes are dotted strings, stored as-is.
func (s *wilayahServiceImpl) ImportKota(ctx context.Context) (*WilayahImportResult, error) {
	provinces, err := s.wilayahRepo.GetAllProvinsi(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading stored provinsi: %w", err)
	}

	result := &WilayahImportResult{TotalProvinsi: len(provinces)}
	for _, prov := range provinces {
		regencies, err := s.fetcher.GetRegencies(ctx, strconv.FormatInt(prov.ID, 10))
		if err != nil {
			return nil, fmt.Errorf("error fetching regencies of provinsi %d: %w", prov.ID, err)
		}

		for _, regency := range regencies {
			err = s.wilayahRepo.UpsertKota(ctx, &models.Kota{
				ID:         strings.TrimSpace(regency.Code),
				ProvinsiID: prov.ID,
				Name:       regency.Name,
			})
			if err != nil {
				return nil, fmt.Errorf("error storing kota %s: %w", regency.Name, err)
			}
			result.TotalKota++
		}
	}

	logger.Info().Int("provinsi", result.TotalProvinsi).Int("kota", result.TotalKota).Msg("Kota import finished")
	return result, nil
}

// GetAllProvinsi lists stored provinces
func (s *wilayahServiceImpl) GetAllProvinsi(ctx context.Context) ([]*models.Provinsi, error) {
	return s.wilayahRepo.GetAllProvinsi(ctx)
}

// GetKotaByProvinsi lists the stored regencies of one province
func (s *wilayahServiceImpl) GetKotaByProvinsi(ctx context.Context, provinsiID int64) ([]*models.Kota, error) {
	return s.wilayahRepo.GetKotaByProvinsi(ctx, provinsiID)
}
