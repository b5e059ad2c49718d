package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/dberrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

const lokasiPekerjaanColumns = `id, user_id, provinsi_id, kota_id, fakultas_id, program_studi_id,
	company_name, company_address, job_title, domisili_address, longitude, latitude,
	created_at, updated_at`

// LokasiPekerjaanRepository handles alumni work location operations
type LokasiPekerjaanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLokasiPekerjaanRepository creates a new LokasiPekerjaanRepository
func NewLokasiPekerjaanRepository(db *pgxpool.Pool) *LokasiPekerjaanRepository {
	return &LokasiPekerjaanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanLokasiPekerjaan(row pgx.Row) (*models.LokasiPekerjaan, error) {
	l := &models.LokasiPekerjaan{}
	err := row.Scan(
		&l.ID, &l.UserID, &l.ProvinsiID, &l.KotaID, &l.FakultasID, &l.ProgramStudiID,
		&l.CompanyName, &l.CompanyAddress, &l.JobTitle, &l.DomisiliAddress,
		&l.Longitude, &l.Latitude, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateLokasiPekerjaan inserts a new work location report
func (r *LokasiPekerjaanRepository) CreateLokasiPekerjaan(ctx context.Context, lokasi *models.LokasiPekerjaan) (int64, error) {
	sql, args, err := r.sb.Insert("lokasi_pekerjaan").
		Columns("user_id", "provinsi_id", "kota_id", "fakultas_id", "program_studi_id",
			"company_name", "company_address", "job_title", "domisili_address", "longitude", "latitude").
		Values(lokasi.UserID, lokasi.ProvinsiID, lokasi.KotaID, lokasi.FakultasID, lokasi.ProgramStudiID,
			lokasi.CompanyName, lokasi.CompanyAddress, lokasi.JobTitle, lokasi.DomisiliAddress,
			lokasi.Longitude, lokasi.Latitude).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create lokasi pekerjaan query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrKotaNotFound
		}
		logger.Error().Err(err).Int64("userID", lokasi.UserID).Msg("Error executing create lokasi pekerjaan query")
		return 0, fmt.Errorf("error creating lokasi pekerjaan: %w", err)
	}

	return id, nil
}

// GetLokasiPekerjaanByID retrieves a work location by ID
func (r *LokasiPekerjaanRepository) GetLokasiPekerjaanByID(ctx context.Context, id int64) (*models.LokasiPekerjaan, error) {
	sql, args, err := r.sb.Select(lokasiPekerjaanColumns).
		From("lokasi_pekerjaan").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get lokasi pekerjaan query: %w", err)
	}

	lokasi, err := scanLokasiPekerjaan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLokasiPekerjaanMissing
		}
		logger.Error().Err(err).Int64("lokasiID", id).Msg("Error scanning lokasi pekerjaan row")
		return nil, fmt.Errorf("error getting lokasi pekerjaan by ID: %w", err)
	}

	return lokasi, nil
}

// UpdateLokasiPekerjaan applies the given column values to one row
func (r *LokasiPekerjaanRepository) UpdateLokasiPekerjaan(ctx context.Context, id int64, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("lokasi_pekerjaan").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lokasi pekerjaan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrKotaNotFound
		}
		logger.Error().Err(err).Int64("lokasiID", id).Msg("Error executing update lokasi pekerjaan query")
		return fmt.Errorf("error updating lokasi pekerjaan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLokasiPekerjaanMissing
	}

	return nil
}

// DeleteLokasiPekerjaan deletes a work location by ID
func (r *LokasiPekerjaanRepository) DeleteLokasiPekerjaan(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lokasi_pekerjaan").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete lokasi pekerjaan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lokasiID", id).Msg("Error executing delete lokasi pekerjaan query")
		return fmt.Errorf("error deleting lokasi pekerjaan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLokasiPekerjaanMissing
	}

	return nil
}

// ListLokasiPekerjaanRows retrieves joined listing rows with filtering
// and pagination.
func (r *LokasiPekerjaanRepository) ListLokasiPekerjaanRows(ctx context.Context, filter dto.LokasiPekerjaanListFilter, offset uint64, limit int) ([]*models.LokasiPekerjaanRow, int64, error) {
	query := r.sb.Select(
		"l.id", "l.company_name", "l.company_address", "l.job_title", "l.domisili_address",
		"l.user_id", "u.name", "l.provinsi_id", "pr.name", "l.kota_id", "k.name",
		"l.fakultas_id", "f.name", "l.program_studi_id", "ps.name",
		"COUNT(*) OVER() AS total_count",
	).
		From("lokasi_pekerjaan l").
		Join("users u ON u.id = l.user_id").
		Join("provinsi pr ON pr.id = l.provinsi_id").
		Join("kota k ON k.id = l.kota_id").
		Join("fakultas f ON f.id = l.fakultas_id").
		Join("program_studi ps ON ps.id = l.program_studi_id")

	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"l.user_id": *filter.UserID})
	}
	if filter.FakultasID != nil {
		query = query.Where(squirrel.Eq{"l.fakultas_id": *filter.FakultasID})
	}
	if filter.ProgramStudiID != nil {
		query = query.Where(squirrel.Eq{"l.program_studi_id": *filter.ProgramStudiID})
	}
	if filter.ProvinsiID != nil {
		query = query.Where(squirrel.Eq{"l.provinsi_id": *filter.ProvinsiID})
	}
	if filter.KotaID != nil {
		query = query.Where(squirrel.Eq{"l.kota_id": *filter.KotaID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"u.name": pattern},
			squirrel.ILike{"l.company_name": pattern},
		})
	}

	sql, args, err := query.
		OrderBy("l.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list lokasi pekerjaan query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list lokasi pekerjaan query")
		return nil, 0, fmt.Errorf("error querying lokasi pekerjaan rows: %w", err)
	}
	defer rows.Close()

	result := []*models.LokasiPekerjaanRow{}
	var total int64
	for rows.Next() {
		row := &models.LokasiPekerjaanRow{}
		err := rows.Scan(
			&row.ID, &row.CompanyName, &row.CompanyAddress, &row.JobTitle, &row.DomisiliAddress,
			&row.UserID, &row.UserName, &row.ProvinsiID, &row.ProvinsiName, &row.KotaID, &row.KotaName,
			&row.FakultasID, &row.FakultasName, &row.ProgramStudiID, &row.ProgramStudiName,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning lokasi pekerjaan row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating lokasi pekerjaan rows: %w", err)
	}

	return result, total, nil
}
