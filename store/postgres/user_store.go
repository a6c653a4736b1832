package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/store"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

var _ store.UserStore = (*UserStore)(nil)

const userColumns = `id, username, email, password_hash, created_at`

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// UserStore implements store.UserStore on PostgreSQL.
type UserStore struct {
	db PgxIface
}

func NewUserStore(db PgxIface) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new account. A duplicate username or email surfaces
// as a ConflictError.
func (s *UserStore) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	log := logger.GetLogger()

	row := s.db.QueryRow(ctx, `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING `+userColumns,
		user.Username,
		user.Email,
		user.PasswordHash,
	)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.NewConflictError("Account already exists", "username or email already in use")
		}
		log.Errorw("Failed to create user", "email", logger.MaskEmail(user.Email), "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return created, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE email = $1`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user", logger.MaskEmail(email))
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*types.User, error) {
	var user types.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
