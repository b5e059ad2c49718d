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

// FakultasRepository handles faculty master data operations
type FakultasRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFakultasRepository creates a new FakultasRepository
func NewFakultasRepository(db *pgxpool.Pool) *FakultasRepository {
	return &FakultasRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateFakultas creates a new faculty
func (r *FakultasRepository) CreateFakultas(ctx context.Context, fakultas *models.Fakultas) (int64, error) {
	sql, args, err := r.sb.Insert("fakultas").
		Columns("name").
		Values(fakultas.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create fakultas SQL")
		return 0, fmt.Errorf("failed to build create fakultas query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrFakultasAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create fakultas query")
		return 0, fmt.Errorf("error creating fakultas: %w", err)
	}

	return id, nil
}

// GetFakultasByID retrieves a faculty by ID
func (r *FakultasRepository) GetFakultasByID(ctx context.Context, id int64) (*models.Fakultas, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("fakultas").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fakultas query: %w", err)
	}

	fakultas := &models.Fakultas{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&fakultas.ID, &fakultas.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFakultasNotFound
		}
		logger.Error().Err(err).Int64("fakultasID", id).Msg("Error scanning fakultas row")
		return nil, fmt.Errorf("error getting fakultas by ID: %w", err)
	}

	return fakultas, nil
}

// ListFakultas retrieves faculties with optional name search and
// pagination.
func (r *FakultasRepository) ListFakultas(ctx context.Context, search string, offset uint64, limit int) ([]*models.Fakultas, int64, error) {
	query := r.sb.Select("id", "name", "COUNT(*) OVER() AS total_count").
		From("fakultas")

	if search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + search + "%"})
	}

	sql, args, err := query.
		OrderBy("name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list fakultas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list fakultas query")
		return nil, 0, fmt.Errorf("error querying fakultas: %w", err)
	}
	defer rows.Close()

	result := []*models.Fakultas{}
	var total int64
	for rows.Next() {
		fakultas := &models.Fakultas{}
		if err := rows.Scan(&fakultas.ID, &fakultas.Name, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning fakultas row: %w", err)
		}
		result = append(result, fakultas)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating fakultas rows: %w", err)
	}

	return result, total, nil
}

// UpdateFakultas updates an existing faculty
func (r *FakultasRepository) UpdateFakultas(ctx context.Context, fakultas *models.Fakultas) error {
	sql, args, err := r.sb.Update("fakultas").
		SetMap(map[string]interface{}{
			"name":       fakultas.Name,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": fakultas.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fakultas query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrFakultasAlreadyExists
		}
		logger.Error().Err(err).Int64("fakultasID", fakultas.ID).Msg("Error executing update fakultas query")
		return fmt.Errorf("error updating fakultas: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFakultasNotFound
	}

	return nil
}

// DeleteFakultas deletes a faculty by ID. A faculty with study programs
// cannot be removed.
func (r *FakultasRepository) DeleteFakultas(ctx context.Context, id int64) error {
	var hasProgramStudi bool
	checkSql, checkArgs, err := r.sb.Select("1").
		From("program_studi").
		Where(squirrel.Eq{"fakultas_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build check program studi query: %w", err)
	}

	err = r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasProgramStudi)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("fakultasID", id).Msg("Error checking associated program studi")
		return fmt.Errorf("error checking associated program studi: %w", err)
	}

	if hasProgramStudi {
		return apperrors.ErrFakultasHasRelations
	}

	sql, args, err := r.sb.Delete("fakultas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete fakultas query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fakultasID", id).Msg("Error executing delete fakultas query")
		return fmt.Errorf("error deleting fakultas: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFakultasNotFound
	}

	return nil
}
