package readstore

import (
	"context"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/db"
	"ifuut-api/internal/pkg/pgconv"
	"ifuut-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `u.id, u.username, u.email, u.first_name, u.last_name, u.tipo,
	u.is_staff, u.is_superuser, u.is_active, u.date_joined, u.last_login`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id)
	v, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return v, nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+`, u.password_hash FROM users u WHERE u.username = $1`, username)
	var hash string
	v, err := scanUser(row, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return v, hash, nil
}

func (r *UserReadStore) FindByAPIToken(ctx context.Context, key string) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+`
		FROM api_tokens t JOIN users u ON u.id = t.user_id
		WHERE t.key = $1`, key)
	v, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("api token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by api token", err)
	}
	return v, nil
}

func (r *UserReadStore) List(ctx context.Context, filter queries.UserFilter) ([]*queries.UserView, error) {
	var w where
	w.search(filter.Search, "u.username", "u.email", "u.first_name", "u.last_name")
	if filter.Tipo != "" {
		w.add("u.tipo = " + w.arg(filter.Tipo))
	}
	if filter.IsStaff != nil {
		w.add("u.is_staff = " + w.arg(*filter.IsStaff))
	}
	if filter.IsActive != nil {
		w.add("u.is_active = " + w.arg(*filter.IsActive))
	}
	sql := `SELECT ` + userColumns + ` FROM users u` + w.String() + ` ORDER BY u.username` + w.limit(filter.Limit)

	rows, err := r.db.Query(ctx, sql, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	out := []*queries.UserView{}
	for rows.Next() {
		v, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return out, nil
}

func scanUser(row pgx.Row, extra ...any) (*queries.UserView, error) {
	var (
		v         queries.UserView
		lastLogin pgtype.Timestamptz
	)
	dest := []any{&v.ID, &v.Username, &v.Email, &v.FirstName, &v.LastName, &v.Tipo,
		&v.IsStaff, &v.IsSuperuser, &v.IsActive, &v.DateJoined, &lastLogin}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	v.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &v, nil
}
