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

const biodataColumns = `id, user_id, fakultas_id, program_studi_id, npm, image, name, tempat_lahir,
	tanggal_lahir, alamat, telepon, jenis_kelamin, nama_gelar, ipk, angkatan, created_at, updated_at`

// BiodataRepository handles alumni profile database operations
type BiodataRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBiodataRepository creates a new BiodataRepository
func NewBiodataRepository(db *pgxpool.Pool) *BiodataRepository {
	return &BiodataRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanBiodata(row pgx.Row) (*models.Biodata, error) {
	b := &models.Biodata{}
	err := row.Scan(
		&b.ID, &b.UserID, &b.FakultasID, &b.ProgramStudiID, &b.NPM, &b.Image, &b.Name,
		&b.TempatLahir, &b.TanggalLahir, &b.Alamat, &b.Telepon, &b.JenisKelamin,
		&b.NamaGelar, &b.IPK, &b.Angkatan, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBiodata inserts a new profile. Each user owns at most one row.
func (r *BiodataRepository) CreateBiodata(ctx context.Context, biodata *models.Biodata) (int64, error) {
	sql, args, err := r.sb.Insert("biodata").
		Columns("user_id", "fakultas_id", "program_studi_id", "npm", "image", "name",
			"tempat_lahir", "tanggal_lahir", "alamat", "telepon", "jenis_kelamin",
			"nama_gelar", "ipk", "angkatan").
		Values(biodata.UserID, biodata.FakultasID, biodata.ProgramStudiID, biodata.NPM,
			biodata.Image, biodata.Name, biodata.TempatLahir, biodata.TanggalLahir,
			biodata.Alamat, biodata.Telepon, biodata.JenisKelamin, biodata.NamaGelar,
			biodata.IPK, biodata.Angkatan).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create biodata query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_biodata_user_id") {
			return 0, apperrors.ErrBiodataAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", biodata.UserID).Msg("Error executing create biodata query")
		return 0, fmt.Errorf("error creating biodata: %w", err)
	}

	return id, nil
}

// GetBiodataByID retrieves a profile by ID
func (r *BiodataRepository) GetBiodataByID(ctx context.Context, id int64) (*models.Biodata, error) {
	sql, args, err := r.sb.Select(biodataColumns).
		From("biodata").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get biodata query: %w", err)
	}

	biodata, err := scanBiodata(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBiodataNotFound
		}
		logger.Error().Err(err).Int64("biodataID", id).Msg("Error scanning biodata row")
		return nil, fmt.Errorf("error getting biodata by ID: %w", err)
	}

	return biodata, nil
}

// GetBiodataByUserID retrieves the profile owned by a user
func (r *BiodataRepository) GetBiodataByUserID(ctx context.Context, userID int64) (*models.Biodata, error) {
	sql, args, err := r.sb.Select(biodataColumns).
		From("biodata").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get biodata by user query: %w", err)
	}

	biodata, err := scanBiodata(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBiodataNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning biodata row")
		return nil, fmt.Errorf("error getting biodata by user ID: %w", err)
	}

	return biodata, nil
}

// UpdateBiodata applies the given column values to one profile row
func (r *BiodataRepository) UpdateBiodata(ctx context.Context, id int64, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("biodata").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update biodata query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("biodataID", id).Msg("Error executing update biodata query")
		return fmt.Errorf("error updating biodata: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBiodataNotFound
	}

	return nil
}

// DeleteBiodata deletes a profile by ID
func (r *BiodataRepository) DeleteBiodata(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("biodata").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete biodata query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("biodataID", id).Msg("Error executing delete biodata query")
		return fmt.Errorf("error deleting biodata: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBiodataNotFound
	}

	return nil
}

// ListBiodata retrieves profiles with filtering and pagination
func (r *BiodataRepository) ListBiodata(ctx context.Context, filter dto.BiodataListFilter, offset uint64, limit int) ([]*models.Biodata, int64, error) {
	query := r.sb.Select(biodataColumns + ", COUNT(*) OVER() AS total_count").
		From("biodata")

	if filter.FakultasID != nil {
		query = query.Where(squirrel.Eq{"fakultas_id": *filter.FakultasID})
	}
	if filter.ProgramStudiID != nil {
		query = query.Where(squirrel.Eq{"program_studi_id": *filter.ProgramStudiID})
	}
	if filter.JenisKelamin != nil {
		query = query.Where(squirrel.Eq{"jenis_kelamin": *filter.JenisKelamin})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"npm": pattern},
		})
	}

	sql, args, err := query.
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list biodata query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list biodata query")
		return nil, 0, fmt.Errorf("error querying biodata: %w", err)
	}
	defer rows.Close()

	result := []*models.Biodata{}
	var total int64
	for rows.Next() {
		b := &models.Biodata{}
		err := rows.Scan(
			&b.ID, &b.UserID, &b.FakultasID, &b.ProgramStudiID, &b.NPM, &b.Image, &b.Name,
			&b.TempatLahir, &b.TanggalLahir, &b.Alamat, &b.Telepon, &b.JenisKelamin,
			&b.NamaGelar, &b.IPK, &b.Angkatan, &b.CreatedAt, &b.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning biodata row: %w", err)
		}
		result = append(result, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating biodata rows: %w", err)
	}

	return result, total, nil
}
