package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

// WilayahRepository handles province and regency master data imported
// from the national wilayah dataset.
type WilayahRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWilayahRepository creates a new WilayahRepository
func NewWilayahRepository(db *pgxpool.Pool) *WilayahRepository {
	return &WilayahRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// UpsertProvinsi inserts a province or refreshes its name. Re-running
// the import never duplicates rows because the dataset code is the key.
func (r *WilayahRepository) UpsertProvinsi(ctx context.Context, provinsi *models.Provinsi) error {
	sql, args, err := r.sb.Insert("provinsi").
		Columns("id", "name").
		Values(provinsi.ID, provinsi.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert provinsi query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("provinsiID", provinsi.ID).Msg("Error executing upsert provinsi query")
		return fmt.Errorf("error upserting provinsi: %w", err)
	}

	return nil
}

// UpsertKota inserts a regency or refreshes its name
func (r *WilayahRepository) UpsertKota(ctx context.Context, kota *models.Kota) error {
	sql, args, err := r.sb.Insert("kota").
		Columns("id", "provinsi_id", "name").
		Values(kota.ID, kota.ProvinsiID, kota.Name).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert kota query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("kotaID", kota.ID).Msg("Error executing upsert kota query")
		return fmt.Errorf("error upserting kota: %w", err)
	}

	return nil
}

// GetProvinsiByID retrieves a province by its dataset code
func (r *WilayahRepository) GetProvinsiByID(ctx context.Context, id int64) (*models.Provinsi, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("provinsi").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get provinsi query: %w", err)
	}

	provinsi := &models.Provinsi{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&provinsi.ID, &provinsi.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProvinsiNotFound
		}
		return nil, fmt.Errorf("error getting provinsi by ID: %w", err)
	}

	return provinsi, nil
}

// GetAllProvinsi retrieves all provinces ordered by name
func (r *WilayahRepository) GetAllProvinsi(ctx context.Context) ([]*models.Provinsi, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("provinsi").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all provinsi query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all provinsi query")
		return nil, fmt.Errorf("error querying provinsi: %w", err)
	}
	defer rows.Close()

	result := []*models.Provinsi{}
	for rows.Next() {
		provinsi := &models.Provinsi{}
		if err := rows.Scan(&provinsi.ID, &provinsi.Name); err != nil {
			return nil, fmt.Errorf("error scanning provinsi row: %w", err)
		}
		result = append(result, provinsi)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provinsi rows: %w", err)
	}

	return result, nil
}

// GetKotaByID retrieves a regency by its dotted dataset code
func (r *WilayahRepository) GetKotaByID(ctx context.Context, id string) (*models.Kota, error) {
	sql, args, err := r.sb.Select("id", "provinsi_id", "name").
		From("kota").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get kota query: %w", err)
	}

	kota := &models.Kota{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&kota.ID, &kota.ProvinsiID, &kota.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKotaNotFound
		}
		return nil, fmt.Errorf("error getting kota by ID: %w", err)
	}

	return kota, nil
}

// GetKotaByProvinsi retrieves the regencies of one province
func (r *WilayahRepository) GetKotaByProvinsi(ctx context.Context, provinsiID int64) ([]*models.Kota, error) {
	sql, args, err := r.sb.Select("id", "provinsi_id", "name").
		From("kota").
		Where(squirrel.Eq{"provinsi_id": provinsiID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get kota by provinsi query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("provinsiID", provinsiID).Msg("Error executing get kota by provinsi query")
		return nil, fmt.Errorf("error querying kota: %w", err)
	}
	defer rows.Close()

	result := []*models.Kota{}
	for rows.Next() {
		kota := &models.Kota{}
		if err := rows.Scan(&kota.ID, &kota.ProvinsiID, &kota.Name); err != nil {
			return nil, fmt.Errorf("error scanning kota row: %w", err)
		}
		result = append(result, kota)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kota rows: %w", err)
	}

	return result, nil
}
