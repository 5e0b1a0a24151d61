//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ifuut-api/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

// DB is what the fixtures need from a pool or a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewHasher(bcrypt.MinCost).Hash(DefaultPassword)
		if err == nil {
			defaultHash = h
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash default password")
	return defaultHash
}

// CreateTestUser inserts an active user with DefaultPassword, returning the existing id on conflict.
func CreateTestUser(t *testing.T, db DB, username, tipo string, staff bool) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, email, tipo, password_hash, is_staff, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $5, true)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		username, username+"@example.com", tipo, passwordHash(t), staff).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db DB, id int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
}

func CreateTestQuadra(t *testing.T, db DB, donoID int64, nome string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO quadras (nome, endereco, tipo, dono_id) VALUES ($1, 'Rua A, 100', 'Society', $2) RETURNING id",
		nome, donoID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestAgendamento(t *testing.T, db DB, usuarioID, quadraID int64, data, hora string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO agendamentos (usuario_id, quadra_id, data, hora, duracao_minutos, tipo_pagamento)
		VALUES ($1, $2, $3, $4, 60, 'pix') RETURNING id`,
		usuarioID, quadraID, data, hora).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestOwnerRequest inserts a request with one sub-venue in the given status.
func CreateTestOwnerRequest(t *testing.T, db DB, userID int64, business, status string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO owner_requests (user_id, business_name, business_address, status) VALUES ($1, $2, 'Av. B, 200', $3) RETURNING id",
		userID, business, status).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO owner_request_quadras (owner_request_id, nome, tipo, capacidade, surface_type) VALUES ($1, $2, 'Society', 14, 'synthetic')",
		id, business+" - Quadra 1")
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table and restarts identities.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
