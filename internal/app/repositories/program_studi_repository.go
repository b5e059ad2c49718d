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
	"github.com/hanifz/tracerstudy/internal/pkg/dberrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

// ProgramStudiRepository handles study program master data operations
type ProgramStudiRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramStudiRepository creates a new ProgramStudiRepository
func NewProgramStudiRepository(db *pgxpool.Pool) *ProgramStudiRepository {
	return &ProgramStudiRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProgramStudi creates a new study program under a faculty
func (r *ProgramStudiRepository) CreateProgramStudi(ctx context.Context, prodi *models.ProgramStudi) (int64, error) {
	sql, args, err := r.sb.Insert("program_studi").
		Columns("fakultas_id", "name").
		Values(prodi.FakultasID, prodi.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create program studi query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrFakultasNotFound
		}
		logger.Error().Err(err).Msg("Error executing create program studi query")
		return 0, fmt.Errorf("error creating program studi: %w", err)
	}

	return id, nil
}

// GetProgramStudiByID retrieves a study program with its faculty name
func (r *ProgramStudiRepository) GetProgramStudiByID(ctx context.Context, id int64) (*models.ProgramStudi, error) {
	sql, args, err := r.sb.Select("p.id", "p.fakultas_id", "p.name", "f.name").
		From("program_studi p").
		Join("fakultas f ON f.id = p.fakultas_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program studi query: %w", err)
	}

	prodi := &models.ProgramStudi{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&prodi.ID, &prodi.FakultasID, &prodi.Name, &prodi.FakultasName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramStudiNotFound
		}
		logger.Error().Err(err).Int64("programStudiID", id).Msg("Error scanning program studi row")
		return nil, fmt.Errorf("error getting program studi by ID: %w", err)
	}

	return prodi, nil
}

// ListProgramStudi retrieves study programs joined with their faculty
// name, optionally filtered by faculty, with pagination.
func (r *ProgramStudiRepository) ListProgramStudi(ctx context.Context, fakultasID *int64, search string, offset uint64, limit int) ([]*models.ProgramStudi, int64, error) {
	query := r.sb.Select("p.id", "p.fakultas_id", "p.name", "f.name", "COUNT(*) OVER() AS total_count").
		From("program_studi p").
		Join("fakultas f ON f.id = p.fakultas_id")

	if fakultasID != nil {
		query = query.Where(squirrel.Eq{"p.fakultas_id": *fakultasID})
	}
	if search != "" {
		query = query.Where(squirrel.ILike{"p.name": "%" + search + "%"})
	}

	sql, args, err := query.
		OrderBy("f.name ASC", "p.name ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list program studi query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list program studi query")
		return nil, 0, fmt.Errorf("error querying program studi: %w", err)
	}
	defer rows.Close()

	result := []*models.ProgramStudi{}
	var total int64
	for rows.Next() {
		prodi := &models.ProgramStudi{}
		if err := rows.Scan(&prodi.ID, &prodi.FakultasID, &prodi.Name, &prodi.FakultasName, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning program studi row: %w", err)
		}
		result = append(result, prodi)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating program studi rows: %w", err)
	}

	return result, total, nil
}

// UpdateProgramStudi updates an existing study program
func (r *ProgramStudiRepository) UpdateProgramStudi(ctx context.Context, prodi *models.ProgramStudi) error {
	sql, args, err := r.sb.Update("program_studi").
		SetMap(map[string]interface{}{
			"fakultas_id": prodi.FakultasID,
			"name":        prodi.Name,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": prodi.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program studi query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFakultasNotFound
		}
		logger.Error().Err(err).Int64("programStudiID", prodi.ID).Msg("Error executing update program studi query")
		return fmt.Errorf("error updating program studi: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramStudiNotFound
	}

	return nil
}

// DeleteProgramStudi deletes a study program. A program referenced by
// users cannot be removed.
func (r *ProgramStudiRepository) DeleteProgramStudi(ctx context.Context, id int64) error {
	var hasUsers bool
	checkSql, checkArgs, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"program_studi_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build check users query: %w", err)
	}

	err = r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasUsers)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error checking associated users: %w", err)
	}

	if hasUsers {
		return apperrors.ErrProgramStudiHasRelation
	}

	sql, args, err := r.sb.Delete("program_studi").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program studi query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programStudiID", id).Msg("Error executing delete program studi query")
		return fmt.Errorf("error deleting program studi: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramStudiNotFound
	}

	return nil
}
