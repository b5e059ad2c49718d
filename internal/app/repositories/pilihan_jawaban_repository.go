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
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/dberrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

// PilihanJawabanRepository handles answer choice database operations
type PilihanJawabanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPilihanJawabanRepository creates a new PilihanJawabanRepository
func NewPilihanJawabanRepository(db *pgxpool.Pool) *PilihanJawabanRepository {
	return &PilihanJawabanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePilihanJawaban attaches a new choice to a question
func (r *PilihanJawabanRepository) CreatePilihanJawaban(ctx context.Context, pilihan *models.PilihanJawaban) (int64, error) {
	sql, args, err := r.sb.Insert("pilihan_jawaban").
		Columns("pertanyaan_id", "name").
		Values(pilihan.PertanyaanID, pilihan.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create pilihan jawaban query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrPertanyaanNotFound
		}
		logger.Error().Err(err).Int64("pertanyaanID", pilihan.PertanyaanID).Msg("Error executing create pilihan jawaban query")
		return 0, fmt.Errorf("error creating pilihan jawaban: %w", err)
	}

	return id, nil
}

// GetPilihanJawabanByID retrieves a choice by ID
func (r *PilihanJawabanRepository) GetPilihanJawabanByID(ctx context.Context, id int64) (*models.PilihanJawaban, error) {
	sql, args, err := r.sb.Select("id", "pertanyaan_id", "name", "created_at", "updated_at").
		From("pilihan_jawaban").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pilihan jawaban query: %w", err)
	}

	pilihan := &models.PilihanJawaban{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&pilihan.ID, &pilihan.PertanyaanID, &pilihan.Name, &pilihan.CreatedAt, &pilihan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPilihanJawabanNotFound
		}
		logger.Error().Err(err).Int64("pilihanJawabanID", id).Msg("Error scanning pilihan jawaban row")
		return nil, fmt.Errorf("error getting pilihan jawaban by ID: %w", err)
	}

	return pilihan, nil
}

// GetPilihanJawabanByPertanyaanID retrieves the choices of one question
func (r *PilihanJawabanRepository) GetPilihanJawabanByPertanyaanID(ctx context.Context, pertanyaanID int64) ([]models.PilihanJawaban, error) {
	sql, args, err := r.sb.Select("id", "pertanyaan_id", "name", "created_at", "updated_at").
		From("pilihan_jawaban").
		Where(squirrel.Eq{"pertanyaan_id": pertanyaanID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get pilihan jawaban by pertanyaan query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("pertanyaanID", pertanyaanID).Msg("Error executing get pilihan jawaban query")
		return nil, fmt.Errorf("error querying pilihan jawaban: %w", err)
	}
	defer rows.Close()

	result := []models.PilihanJawaban{}
	for rows.Next() {
		var pilihan models.PilihanJawaban
		if err := rows.Scan(&pilihan.ID, &pilihan.PertanyaanID, &pilihan.Name, &pilihan.CreatedAt, &pilihan.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning pilihan jawaban row: %w", err)
		}
		result = append(result, pilihan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pilihan jawaban rows: %w", err)
	}

	return result, nil
}

// UpdatePilihanJawaban renames a choice
func (r *PilihanJawabanRepository) UpdatePilihanJawaban(ctx context.Context, id int64, name string) error {
	sql, args, err := r.sb.Update("pilihan_jawaban").
		SetMap(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update pilihan jawaban query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("pilihanJawabanID", id).Msg("Error executing update pilihan jawaban query")
		return fmt.Errorf("error updating pilihan jawaban: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPilihanJawabanNotFound
	}

	return nil
}

// DeletePilihanJawaban deletes a choice by ID
func (r *PilihanJawabanRepository) DeletePilihanJawaban(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("pilihan_jawaban").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete pilihan jawaban query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("pilihanJawabanID", id).Msg("Error executing delete pilihan jawaban query")
		return fmt.Errorf("error deleting pilihan jawaban: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPilihanJawabanNotFound
	}

	return nil
}
