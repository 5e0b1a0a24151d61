package repository

import (
	"context"
	"time"

	"ifuut-api/internal/domain/user"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, first_name, last_name, tipo, password_hash,
			is_staff, is_superuser, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		u.Username().Value(), u.Email().Value(), u.Name().First, u.Name().Last, u.Role().String(),
		u.PasswordHash(), u.IsStaff(), u.IsSuperuser(), u.IsActive(), u.DateJoined(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var (
		username, email, first, last, tipo, hash string
		isStaff, isSuperuser, isActive           bool
		dateJoined                               time.Time
		lastLogin                                pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT username, email, first_name, last_name, tipo, password_hash,
			is_staff, is_superuser, is_active, date_joined, last_login
		FROM users WHERE id = $1`, id,
	).Scan(&username, &email, &first, &last, &tipo, &hash, &isStaff, &isSuperuser, &isActive, &dateJoined, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return user.Reconstruct(id, user.UsernameFromStorage(username), user.EmailFromStorage(email),
		user.PersonName{First: first, Last: last}, user.Role(tipo), hash,
		isStaff, isSuperuser, isActive, dateJoined, pgconv.TimePtrFromPgtype(lastLogin)), nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role user.Role) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET tipo = $2 WHERE id = $1`, id, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
