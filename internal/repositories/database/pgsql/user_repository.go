package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/daily_journal_app/internal/models"
	"github.com/SscSPs/daily_journal_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBTX) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const (
	selectUserFields = `user_id, username, email, password_hash, created_at`

	insertUserQuery = `
		INSERT INTO users (user_id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	findUserByIDQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE user_id = $1;
	`

	findUserByUsernameQuery = `
		SELECT ` + selectUserFields + `
		FROM users
		WHERE username = $1;
	`
)

// SaveUser inserts the user. The UNIQUE constraints on username and email decide
// concurrent registrations; the loser gets apperrors.ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)
	_, err := r.exec(ctx, insertUserQuery,
		modelUser.UserID,
		modelUser.Username,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, constraint)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	modelUser, err := scanUser(r.queryRow(ctx, findUserByIDQuery, userID))
	if err != nil {
		return nil, translateLookupErr(err, "user by ID", userID)
	}
	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	modelUser, err := scanUser(r.queryRow(ctx, findUserByUsernameQuery, username))
	if err != nil {
		return nil, translateLookupErr(err, "user by username", username)
	}
	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
