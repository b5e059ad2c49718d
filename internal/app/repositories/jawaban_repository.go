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

const jawabanColumns = "id, user_id, pertanyaan_id, pilihan_jawaban_id, jawaban_teks, tahun_akademik, created_at, updated_at"

// JawabanRepository handles survey response database operations
type JawabanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJawabanRepository creates a new JawabanRepository
func NewJawabanRepository(db *pgxpool.Pool) *JawabanRepository {
	return &JawabanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanJawaban(row pgx.Row) (*models.JawabanKuesioner, error) {
	j := &models.JawabanKuesioner{}
	err := row.Scan(
		&j.ID, &j.UserID, &j.PertanyaanID, &j.PilihanJawabanID, &j.JawabanTeks,
		&j.TahunAkademik, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// CreateJawaban inserts a response. The unique constraint keeps each
// user to one answer per question.
func (r *JawabanRepository) CreateJawaban(ctx context.Context, jawaban *models.JawabanKuesioner) (int64, error) {
	sql, args, err := r.sb.Insert("jawaban_kuesioner").
		Columns("user_id", "pertanyaan_id", "pilihan_jawaban_id", "jawaban_teks", "tahun_akademik").
		Values(jawaban.UserID, jawaban.PertanyaanID, jawaban.PilihanJawabanID, jawaban.JawabanTeks, jawaban.TahunAkademik).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create jawaban query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_jawaban_user_pertanyaan") {
			return 0, apperrors.ErrJawabanAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrPertanyaanNotFound
		}
		logger.Error().Err(err).Int64("userID", jawaban.UserID).Int64("pertanyaanID", jawaban.PertanyaanID).
			Msg("Error executing create jawaban query")
		return 0, fmt.Errorf("error creating jawaban: %w", err)
	}

	return id, nil
}

// GetJawabanByID retrieves a response by ID
func (r *JawabanRepository) GetJawabanByID(ctx context.Context, id int64) (*models.JawabanKuesioner, error) {
	sql, args, err := r.sb.Select(jawabanColumns).
		From("jawaban_kuesioner").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get jawaban query: %w", err)
	}

	jawaban, err := scanJawaban(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJawabanNotFound
		}
		logger.Error().Err(err).Int64("jawabanID", id).Msg("Error scanning jawaban row")
		return nil, fmt.Errorf("error getting jawaban by ID: %w", err)
	}

	return jawaban, nil
}

// GetJawabanByUserAndPertanyaan retrieves one user's answer to a question
func (r *JawabanRepository) GetJawabanByUserAndPertanyaan(ctx context.Context, userID, pertanyaanID int64) (*models.JawabanKuesioner, error) {
	sql, args, err := r.sb.Select(jawabanColumns).
		From("jawaban_kuesioner").
		Where(squirrel.Eq{"user_id": userID, "pertanyaan_id": pertanyaanID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get jawaban by user query: %w", err)
	}

	jawaban, err := scanJawaban(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJawabanNotFound
		}
		return nil, fmt.Errorf("error getting jawaban by user and pertanyaan: %w", err)
	}

	return jawaban, nil
}

// GetJawabanByUser retrieves all of one user's answers, optionally
// limited to an academic year.
func (r *JawabanRepository) GetJawabanByUser(ctx context.Context, userID int64, tahunAkademik *string) ([]*models.JawabanKuesioner, error) {
	query := r.sb.Select(jawabanColumns).
		From("jawaban_kuesioner").
		Where(squirrel.Eq{"user_id": userID})

	if tahunAkademik != nil {
		query = query.Where(squirrel.Eq{"tahun_akademik": *tahunAkademik})
	}

	sql, args, err := query.OrderBy("pertanyaan_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get jawaban by user query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get jawaban by user query")
		return nil, fmt.Errorf("error querying jawaban by user: %w", err)
	}
	defer rows.Close()

	result := []*models.JawabanKuesioner{}
	for rows.Next() {
		j := &models.JawabanKuesioner{}
		err := rows.Scan(
			&j.ID, &j.UserID, &j.PertanyaanID, &j.PilihanJawabanID, &j.JawabanTeks,
			&j.TahunAkademik, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning jawaban row: %w", err)
		}
		result = append(result, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jawaban rows: %w", err)
	}

	return result, nil
}

// UpdateJawaban applies the given column values to one response row
func (r *JawabanRepository) UpdateJawaban(ctx context.Context, id int64, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("jawaban_kuesioner").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update jawaban query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jawabanID", id).Msg("Error executing update jawaban query")
		return fmt.Errorf("error updating jawaban: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJawabanNotFound
	}

	return nil
}

// DeleteJawaban deletes a response by ID
func (r *JawabanRepository) DeleteJawaban(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("jawaban_kuesioner").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete jawaban query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jawabanID", id).Msg("Error executing delete jawaban query")
		return fmt.Errorf("error deleting jawaban: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJawabanNotFound
	}

	return nil
}

// ListJawabanRows retrieves report rows joined with alumnus, question and
// choice names, with filtering and pagination.
func (r *JawabanRepository) ListJawabanRows(ctx context.Context, filter dto.JawabanListFilter, offset uint64, limit int) ([]*models.JawabanKuesionerRow, int64, error) {
	query := r.sb.Select(
		"j.id", "j.user_id", "u.name", "j.pertanyaan_id", "p.name",
		"pj.name", "j.jawaban_teks", "j.tahun_akademik",
		"COUNT(*) OVER() AS total_count",
	).
		From("jawaban_kuesioner j").
		Join("users u ON u.id = j.user_id").
		Join("pertanyaan p ON p.id = j.pertanyaan_id").
		LeftJoin("pilihan_jawaban pj ON pj.id = j.pilihan_jawaban_id")

	if filter.TahunAkademik != nil {
		query = query.Where(squirrel.Eq{"j.tahun_akademik": *filter.TahunAkademik})
	}
	if filter.PertanyaanID != nil {
		query = query.Where(squirrel.Eq{"j.pertanyaan_id": *filter.PertanyaanID})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"u.name": "%" + filter.Search + "%"})
	}

	sql, args, err := query.
		OrderBy("u.name ASC", "j.pertanyaan_id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list jawaban rows query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jawaban rows query")
		return nil, 0, fmt.Errorf("error querying jawaban rows: %w", err)
	}
	defer rows.Close()

	result := []*models.JawabanKuesionerRow{}
	var total int64
	for rows.Next() {
		row := &models.JawabanKuesionerRow{}
		err := rows.Scan(
			&row.ID, &row.UserID, &row.UserName, &row.PertanyaanID, &row.PertanyaanName,
			&row.PilihanJawabanName, &row.JawabanTeks, &row.TahunAkademik,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning jawaban report row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating jawaban report rows: %w", err)
	}

	return result, total, nil
}

// GetJawabanRowsByTahunAkademik retrieves every report row of one
// academic year, ordered for the PDF export.
func (r *JawabanRepository) GetJawabanRowsByTahunAkademik(ctx context.Context, tahunAkademik string) ([]*models.JawabanKuesionerRow, error) {
	sql, args, err := r.sb.Select(
		"j.id", "j.user_id", "u.name", "j.pertanyaan_id", "p.name",
		"pj.name", "j.jawaban_teks", "j.tahun_akademik",
	).
		From("jawaban_kuesioner j").
		Join("users u ON u.id = j.user_id").
		Join("pertanyaan p ON p.id = j.pertanyaan_id").
		LeftJoin("pilihan_jawaban pj ON pj.id = j.pilihan_jawaban_id").
		Where(squirrel.Eq{"j.tahun_akademik": tahunAkademik}).
		OrderBy("u.name ASC", "j.pertanyaan_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build jawaban report query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tahunAkademik", tahunAkademik).Msg("Error executing jawaban report query")
		return nil, fmt.Errorf("error querying jawaban report rows: %w", err)
	}
	defer rows.Close()

	result := []*models.JawabanKuesionerRow{}
	for rows.Next() {
		row := &models.JawabanKuesionerRow{}
		err := rows.Scan(
			&row.ID, &row.UserID, &row.UserName, &row.PertanyaanID, &row.PertanyaanName,
			&row.PilihanJawabanName, &row.JawabanTeks, &row.TahunAkademik,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning jawaban report row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jawaban report rows: %w", err)
	}

	return result, nil
}
