package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and refresh-token rotation
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT returns all secretless columns via a RETURNING clause, so the
// caller receives the canonical database representation of the newly
// created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanUser(row, &created); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email matches the given value.
// The password digest is excluded from the projection.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email}, false)
}

// FindUserByEmailWithPassword retrieves the user whose email matches the
// given value, including the stored password digest. Used only on the login
// path where credential verification is required.
func (r *userRepository) FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email}, true)
}

// FindUserByID retrieves the user with the given id, without the password
// digest.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID}, false)
}

// FindUserByRefreshToken retrieves the user whose stored refresh token is
// textually equal to the given value. Only the persisted value can match:
// a token that was rotated away no longer selects any row even though its
// signature would still verify.
func (r *userRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"refresh_token": refreshToken}, false)
}

// UpdateRefreshToken overwrites the stored refresh token of the given user
// and bumps updated_at. The overwrite is the rotation mechanism: the
// previous token value is no longer present in any row and therefore can no
// longer be exchanged for an access token.
//
// Error handling:
//   - Zero affected rows → [ErrRefreshTokenNotUpdated].
//   - Any driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRefreshTokenQuery(userID, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().Int64("user_id", userID).Msg("refresh token update matched no rows")
		return ErrRefreshTokenNotUpdated
	}

	return nil
}

// GetAllUsers retrieves every stored user, without password digests,
// ordered by id.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error: scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// findUser executes a single-row lookup with the given predicate and scans
// the result. Misses surface as [ErrNoUserWasFound].
func (r *userRepository) findUser(ctx context.Context, where any, withPassword bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(where, withPassword)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if withPassword {
		err = scanUserWithPassword(row, &found)
	} else {
		err = scanUser(row, &found)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning found user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Photo,
		&user.Phone,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func scanUserWithPassword(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Photo,
		&user.Phone,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.PasswordHash,
	)
}
