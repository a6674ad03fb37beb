package user

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"
const PHONE_CONSTRAINT_NAME = "user_phone_idx"

const userColumns = `id, first_name, last_name, email, phone, password_hash, country,
	receive_news, reset_token, reset_token_expires_at, created_at`

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (first_name, last_name, email, phone, password_hash, country,
			receive_news, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		input.FirstName,
		input.LastName,
		string(input.Email),
		string(input.Phone),
		string(input.PasswordHash),
		input.Country,
		input.ReceiveNews,
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case EMAIL_CONSTRAINT_NAME:
			return u, user.ErrEmailAlreadyExists
		case PHONE_CONSTRAINT_NAME:
			return u, user.ErrPhoneAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	return scanExistingUser(row)
}

func (r *PgxUserRepository) GetByPhone(ctx context.Context, phone c.Phone) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE phone = $1`,
		string(phone),
	)
	return scanExistingUser(row)
}

func (r *PgxUserRepository) GetByEmailOrPhone(ctx context.Context, identifier string) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = lower($1) OR phone = $1`,
		identifier,
	)
	return scanExistingUser(row)
}

func (r *PgxUserRepository) GetByResetToken(
	ctx context.Context,
	email c.Email,
	token user.PasswordResetToken,
	now time.Time,
) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		WHERE email = $1 AND reset_token = $2 AND reset_token_expires_at > $3`,
		string(email),
		string(token),
		now,
	)
	return scanExistingUser(row)
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id user.ID,
	token user.PasswordResetToken,
	expiresAt time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET reset_token = $2, reset_token_expires_at = $3 WHERE id = $1`,
		int64(id),
		string(token),
		expiresAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
		WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanExistingUser(row pgx.Row) (user.User, error) {
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id                  int64
		email               string
		phone               string
		passwordHash        string
		resetToken          sql.NullString
		resetTokenExpiresAt sql.NullTime
	)
	err = row.Scan(
		&id,
		&u.FirstName,
		&u.LastName,
		&email,
		&phone,
		&passwordHash,
		&u.Country,
		&u.ReceiveNews,
		&resetToken,
		&resetTokenExpiresAt,
		&u.CreatedAt,
	)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.Phone = c.Phone(phone)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.ResetToken = c.NewOptional(user.PasswordResetToken(resetToken.String), resetToken.Valid)
	u.ResetTokenExpiresAt = c.NewOptional(resetTokenExpiresAt.Time, resetTokenExpiresAt.Valid)
	return u, nil
}
