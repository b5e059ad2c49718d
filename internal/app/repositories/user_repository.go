package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hanifz/tracerstudy/internal/app/models"
	"github.com/hanifz/tracerstudy/internal/app/models/dto"
	"github.com/hanifz/tracerstudy/internal/pkg/apperrors"
	"github.com/hanifz/tracerstudy/internal/pkg/dberrors"
	"github.com/hanifz/tracerstudy/internal/pkg/logger"
)

const userColumns = `id, fakultas_id, program_studi_id, role_as, nomor_induk, name, email, password,
	last_login, is_verified, reset_password_token, reset_password_expires_at,
	verification_token, verification_token_expires_at, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FakultasID, &user.ProgramStudiID, &user.RoleAs,
		&user.NomorInduk, &user.Name, &user.Email, &user.Password,
		&user.LastLogin, &user.IsVerified,
		&user.ResetPasswordToken, &user.ResetPasswordExpiresAt,
		&user.VerificationToken, &user.VerificationTokenExpiresAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user and returns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("fakultas_id", "program_studi_id", "role_as", "nomor_induk", "name", "email",
			"password", "is_verified", "verification_token", "verification_token_expires_at").
		Values(user.FakultasID, user.ProgramStudiID, user.RoleAs, user.NomorInduk, user.Name,
			user.Email, user.Password, user.IsVerified, user.VerificationToken, user.VerificationTokenExpiresAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_users_email") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// GetUserByResetPasswordToken retrieves a user by a pending reset token
func (r *UserRepository) GetUserByResetPasswordToken(ctx context.Context, token string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"reset_password_token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by reset token query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidPasswordResetToken
		}
		logger.Error().Err(err).Msg("Error scanning user row by reset token")
		return nil, fmt.Errorf("error getting user by reset token: %w", err)
	}

	return user, nil
}

// GetUserByVerificationToken retrieves a user by a pending email
// verification code
func (r *UserRepository) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"verification_token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by verification token query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidEmailToken
		}
		logger.Error().Err(err).Msg("Error scanning user row by verification token")
		return nil, fmt.Errorf("error getting user by verification token: %w", err)
	}

	return user, nil
}

// UpdateUser applies the given column values to one user row
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("users").
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_users_email") {
			return apperrors.ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	return r.UpdateUser(ctx, id, map[string]interface{}{"last_login": time.Now()})
}

// ListUsers retrieves users with filtering and pagination. The total row
// count is computed in the same query via a window function.
func (r *UserRepository) ListUsers(ctx context.Context, filter dto.UserListFilter, offset uint64, limit int) ([]*models.User, int64, error) {
	query := r.sb.Select(userColumns + ", COUNT(*) OVER() AS total_count").
		From("users")

	if filter.RoleAs != nil {
		query = query.Where(squirrel.Eq{"role_as": *filter.RoleAs})
	}
	if filter.FakultasID != nil {
		query = query.Where(squirrel.Eq{"fakultas_id": *filter.FakultasID})
	}
	if filter.ProgramStudiID != nil {
		query = query.Where(squirrel.Eq{"program_studi_id": *filter.ProgramStudiID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"nomor_induk": pattern},
		})
	}

	sql, args, err := query.
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, 0, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	var total int64
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.FakultasID, &user.ProgramStudiID, &user.RoleAs,
			&user.NomorInduk, &user.Name, &user.Email, &user.Password,
			&user.LastLogin, &user.IsVerified,
			&user.ResetPasswordToken, &user.ResetPasswordExpiresAt,
			&user.VerificationToken, &user.VerificationTokenExpiresAt,
			&user.CreatedAt, &user.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, total, nil
}
