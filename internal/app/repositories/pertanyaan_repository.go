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
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

const pertanyaanColumns = "id, name, slug, status, tahun_akademik, created_at, updated_at"

// PertanyaanRepository handles survey question database operations
type PertanyaanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPertanyaanRepository creates a new PertanyaanRepository
func NewPertanyaanRepository(db *pgxpool.Pool) *PertanyaanRepository {
	return &PertanyaanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPertanyaan(row pgx.Row) (*models.Pertanyaan, error) {
	p := &models.Pertanyaan{}
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Status, &p.TahunAkademik, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePertanyaan inserts a new survey question
func (r *PertanyaanRepository) CreatePertanyaan(ctx context.Context, pertanyaan *models.Pertanyaan) (int64, error) {
	sql, args, err := r.sb.Insert("pertanyaan").
		Columns("name", "slug", "status", "tahun_akademik").
		Values(pertanyaan.Name, pertanyaan.Slug, pertanyaan.Status, pertanyaan.TahunAkademik).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create pertanyaan query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create pertanyaan query")
		return 0, fmt.Errorf("error creating pertanyaan: %w", err)
	}

	return id, nil
}

// GetPertanyaanByID retrieves a question by ID
func (r *PertanyaanRepository) GetPertanyaanByID(ctx context.Context, id int64) (*models.Pertanyaan, error) {
	sql, args, err := r.sb.Select(pertanyaanColumns).
		From("pertanyaan").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pertanyaan query: %w", err)
	}

	pertanyaan, err := scanPertanyaan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPertanyaanNotFound
		}
		logger.Error().Err(err).Int64("pertanyaanID", id).Msg("Error scanning pertanyaan row")
		return nil, fmt.Errorf("error getting pertanyaan by ID: %w", err)
	}

	return pertanyaan, nil
}

// GetPertanyaanByTahunAkademik retrieves all questions of one academic year
func (r *PertanyaanRepository) GetPertanyaanByTahunAkademik(ctx context.Context, tahunAkademik string, onlyActive bool) ([]*models.Pertanyaan, error) {
	query := r.sb.Select(pertanyaanColumns).
		From("pertanyaan").
		Where(squirrel.Eq{"tahun_akademik": tahunAkademik})

	if onlyActive {
		query = query.Where(squirrel.Eq{"status": models.PertanyaanActive})
	}

	sql, args, err := query.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pertanyaan by tahun query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tahunAkademik", tahunAkademik).Msg("Error executing get pertanyaan by tahun query")
		return nil, fmt.Errorf("error querying pertanyaan by tahun akademik: %w", err)
	}
	defer rows.Close()

	result := []*models.Pertanyaan{}
	for rows.Next() {
		p := &models.Pertanyaan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Status, &p.TahunAkademik, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning pertanyaan row: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pertanyaan rows: %w", err)
	}

	return result, nil
}

// ListPertanyaan retrieves questions with filtering and pagination
func (r *PertanyaanRepository) ListPertanyaan(ctx context.Context, filter dto.PertanyaanListFilter, offset uint64, limit int) ([]*models.Pertanyaan, int64, error) {
	query := r.sb.Select(pertanyaanColumns + ", COUNT(*) OVER() AS total_count").
		From("pertanyaan")

	if filter.TahunAkademik != nil {
		query = query.Where(squirrel.Eq{"tahun_akademik": *filter.TahunAkademik})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}

	sql, args, err := query.
		OrderBy("tahun_akademik DESC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list pertanyaan query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list pertanyaan query")
		return nil, 0, fmt.Errorf("error querying pertanyaan: %w", err)
	}
	defer rows.Close()

	result := []*models.Pertanyaan{}
	var total int64
	for rows.Next() {
		p := &models.Pertanyaan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Status, &p.TahunAkademik, &p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning pertanyaan row: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating pertanyaan rows: %w", err)
	}

	return result, total, nil
}

// GetDistinctTahunAkademik lists the academic years that have questions,
// newest first.
func (r *PertanyaanRepository) GetDistinctTahunAkademik(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT tahun_akademik").
		From("pertanyaan").
		OrderBy("tahun_akademik DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build distinct tahun akademik query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying distinct tahun akademik: %w", err)
	}
	defer rows.Close()

	years := []string{}
	for rows.Next() {
		var tahun string
		if err := rows.Scan(&tahun); err != nil {
			return nil, fmt.Errorf("error scanning tahun akademik row: %w", err)
		}
		years = append(years, tahun)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tahun akademik rows: %w", err)
	}

	return years, nil
}

// UpdatePertanyaan applies the given column values to one question row
func (r *PertanyaanRepository) UpdatePertanyaan(ctx context.Context, id int64, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("pertanyaan").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update pertanyaan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Int64("pertanyaanID", id).Msg("Error executing update pertanyaan query")
		return fmt.Errorf("error updating pertanyaan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPertanyaanNotFound
	}

	return nil
}

// UpdateStatusByTahunAkademik sets the status of every question of one
// academic year and returns the number of affected rows.
func (r *PertanyaanRepository) UpdateStatusByTahunAkademik(ctx context.Context, tahunAkademik string, status int16) (int64, error) {
	sql, args, err := r.sb.Update("pertanyaan").
		SetMap(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"tahun_akademik": tahunAkademik}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk status update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tahunAkademik", tahunAkademik).Msg("Error executing bulk status update query")
		return 0, fmt.Errorf("error updating pertanyaan status by tahun akademik: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeletePertanyaan deletes a question; its choices go with it.
func (r *PertanyaanRepository) DeletePertanyaan(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("pertanyaan").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete pertanyaan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("pertanyaanID", id).Msg("Error executing delete pertanyaan query")
		return fmt.Errorf("error deleting pertanyaan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPertanyaanNotFound
	}

	return nil
}
